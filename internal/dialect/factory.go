package dialect

// GetDialect maps a database/sql driver name to the dialect the health
// check uses for its catalog and sampling queries. Unknown names fall back
// to MySQL.
func GetDialect(driver string) Dialect {
	switch driver {
	case "postgres", "postgresql":
		return &PostgresDialect{}
	case "sqlserver", "mssql":
		return &MSSQLDialect{}
	case "oracle":
		return &OracleDialect{}
	default:
		return &MysqlDialect{}
	}
}

var (
	_ Dialect = (*MysqlDialect)(nil)
	_ Dialect = (*PostgresDialect)(nil)
	_ Dialect = (*MSSQLDialect)(nil)
	_ Dialect = (*OracleDialect)(nil)
)
