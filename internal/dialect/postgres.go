package dialect

import (
	"fmt"
	"strings"
)

type PostgresDialect struct{}

func (d *PostgresDialect) GetTablesQuery(schema string) string {
	// use $1 placeholder
	return `SELECT TABLE_NAME FROM information_schema.TABLES WHERE TABLE_SCHEMA = $1 AND TABLE_TYPE = 'BASE TABLE' ORDER BY TABLE_NAME`
}

func (d *PostgresDialect) GetColumnsQuery(schema string) string {
	// udt_name keeps the short names (int4, timestamptz) NormalizeType understands.
	return `SELECT c.table_name, c.column_name, c.udt_name
FROM information_schema.columns c
WHERE c.table_schema = $1
ORDER BY c.table_name, c.ordinal_position`
}

func (d *PostgresDialect) PingQuery() string {
	return "SELECT 1"
}

func (d *PostgresDialect) QuoteIdent(name string) string {
	return quoteWith(name, `"`, `"`)
}

func (d *PostgresDialect) QualifiedTable(schema, table string) string {
	return d.QuoteIdent(d.GetSchemaName(schema)) + "." + d.QuoteIdent(table)
}

func (d *PostgresDialect) Placeholder(index int) string {
	return fmt.Sprintf("$%d", index+1)
}

func (d *PostgresDialect) NormalizeType(sqlType string) string {
	t := strings.ToLower(sqlType)
	switch t {
	case "int4", "int2":
		return "int"
	case "int8":
		return "bigint"
	case "float4":
		return "float"
	case "float8":
		return "double"
	case "bpchar":
		return "char"
	case "timestamptz", "timestamp":
		return "datetime"
	default:
		return t
	}
}

func (d *PostgresDialect) GetSchemaName(input string) string {
	if input == "" {
		return "public"
	}
	return input
}
