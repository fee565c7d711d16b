package dialect

type MysqlDialect struct{}

func (d *MysqlDialect) GetTablesQuery(schema string) string {
	return `SELECT TABLE_NAME FROM information_schema.TABLES WHERE TABLE_SCHEMA = ? AND TABLE_TYPE = 'BASE TABLE' ORDER BY TABLE_NAME`
}

func (d *MysqlDialect) GetColumnsQuery(schema string) string {
	return `SELECT TABLE_NAME, COLUMN_NAME, DATA_TYPE FROM information_schema.COLUMNS WHERE TABLE_SCHEMA = ? ORDER BY TABLE_NAME, ORDINAL_POSITION`
}

func (d *MysqlDialect) PingQuery() string {
	return "SELECT 1"
}

func (d *MysqlDialect) QuoteIdent(name string) string {
	return quoteWith(name, "`", "`")
}

func (d *MysqlDialect) QualifiedTable(schema, table string) string {
	if schema == "" {
		return d.QuoteIdent(table)
	}
	return d.QuoteIdent(schema) + "." + d.QuoteIdent(table)
}

func (d *MysqlDialect) Placeholder(index int) string {
	return "?"
}

func (d *MysqlDialect) NormalizeType(sqlType string) string {
	return DefaultNormalizeType(sqlType)
}

func (d *MysqlDialect) GetSchemaName(input string) string {
	return DefaultGetSchemaName(input)
}
