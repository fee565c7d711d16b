package dialect

import (
	"fmt"
	"strings"

	_ "github.com/denisenkom/go-mssqldb" // SQL Server Driver
)

type MSSQLDialect struct{}

// Helper: MSSQL Driver (go-mssqldb) prefers @p1, @p2 named parameters over ?

func (d *MSSQLDialect) GetTablesQuery(schema string) string {
	// Use @p1 for schema binding
	return `SELECT TABLE_NAME FROM INFORMATION_SCHEMA.TABLES WHERE TABLE_SCHEMA = @p1 AND TABLE_TYPE = 'BASE TABLE' ORDER BY TABLE_NAME`
}

func (d *MSSQLDialect) GetColumnsQuery(schema string) string {
	return `
		SELECT 
			c.TABLE_NAME, 
			c.COLUMN_NAME, 
			c.DATA_TYPE
		FROM INFORMATION_SCHEMA.COLUMNS c
		WHERE c.TABLE_SCHEMA = @p1 
		ORDER BY c.TABLE_NAME, c.ORDINAL_POSITION
	`
}

func (d *MSSQLDialect) PingQuery() string {
	return "SELECT 1"
}

func (d *MSSQLDialect) QuoteIdent(name string) string {
	return quoteWith(name, "[", "]")
}

func (d *MSSQLDialect) QualifiedTable(schema, table string) string {
	return d.QuoteIdent(d.GetSchemaName(schema)) + "." + d.QuoteIdent(table)
}

func (d *MSSQLDialect) Placeholder(index int) string {
	return fmt.Sprintf("@p%d", index+1)
}

func (d *MSSQLDialect) NormalizeType(sqlType string) string {
	t := strings.ToLower(sqlType)
	switch t {
	case "nvarchar", "nchar", "text", "ntext":
		return "varchar"
	case "bit":
		return "boolean"
	case "decimal", "numeric", "money", "smallmoney":
		return "decimal"
	case "float", "real":
		return "float"
	case "datetime", "datetime2", "smalldatetime", "datetimeoffset":
		return "datetime"
	case "image", "binary", "varbinary":
		return "blob"
	default:
		return t
	}
}

func (d *MSSQLDialect) GetSchemaName(input string) string {
	if input == "" {
		return "dbo"
	}
	return input
}
