package dialect

import (
	"fmt"
	"strings"

	_ "github.com/sijms/go-ora/v2" // Oracle Driver
)

type OracleDialect struct{}

func (d *OracleDialect) GetTablesQuery(schema string) string {
	// USER_TABLES lists tables owned by the current user.
	// We include a dummy clause to consume the schema argument passed by standard callers.
	return `SELECT TABLE_NAME FROM USER_TABLES WHERE :1 IS NOT NULL ORDER BY TABLE_NAME`
}

func (d *OracleDialect) GetColumnsQuery(schema string) string {
	return `
SELECT
    t.TABLE_NAME,
    t.COLUMN_NAME,
    t.DATA_TYPE
FROM USER_TAB_COLUMNS t
WHERE :1 IS NOT NULL
ORDER BY t.TABLE_NAME, t.COLUMN_ID`
}

func (d *OracleDialect) PingQuery() string {
	return "SELECT 1 FROM DUAL"
}

func (d *OracleDialect) QuoteIdent(name string) string {
	return quoteWith(name, `"`, `"`)
}

// QualifiedTable leaves the table unqualified: USER_TABLES is the current user's schema.
func (d *OracleDialect) QualifiedTable(schema, table string) string {
	return d.QuoteIdent(table)
}

func (d *OracleDialect) Placeholder(index int) string {
	return fmt.Sprintf(":%d", index+1)
}

func (d *OracleDialect) NormalizeType(sqlType string) string {
	t := strings.ToLower(sqlType)
	switch {
	case strings.HasPrefix(t, "timestamp"), t == "date":
		return "datetime"
	case t == "varchar2", t == "nvarchar2", t == "clob":
		return "varchar"
	case t == "number":
		return "decimal"
	default:
		return t
	}
}

func (d *OracleDialect) GetSchemaName(input string) string {
	// Oracle uses the connected user's schema.
	if input == "" {
		return "USER"
	}
	return strings.ToUpper(input)
}
