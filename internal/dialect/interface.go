package dialect

// Dialect abstracts the database-specific SQL used by the health check.
type Dialect interface {
	// Metadata Queries (Schema Introspection)
	GetTablesQuery(schema string) string
	GetColumnsQuery(schema string) string
	PingQuery() string

	// Query Generation
	QuoteIdent(name string) string
	QualifiedTable(schema, table string) string
	Placeholder(index int) string // Returns ?, $1, @p1, :1

	// Helpers
	NormalizeType(sqlType string) string
	GetSchemaName(input string) string
}
