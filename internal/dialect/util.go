package dialect

import (
	"fmt"
	"strings"
)

// DefaultNormalizeType is a default implementation for type normalization (lowercase).
func DefaultNormalizeType(sqlType string) string {
	return strings.ToLower(sqlType)
}

// DefaultGetSchemaName is a default implementation for Getting Schema Name (identity).
func DefaultGetSchemaName(input string) string {
	return input
}

// quoteWith wraps name in open/close and doubles any embedded close character.
func quoteWith(name, open, close string) string {
	return open + strings.ReplaceAll(name, close, close+close) + close
}

// SelectMax builds SELECT MAX(col) FROM table [WHERE filter = ?].
func SelectMax(d Dialect, schema, table, col, filter string) string {
	q := fmt.Sprintf("SELECT MAX(%s) FROM %s", d.QuoteIdent(col), d.QualifiedTable(schema, table))
	if filter != "" {
		q += fmt.Sprintf(" WHERE %s = %s", d.QuoteIdent(filter), d.Placeholder(0))
	}
	return q
}

// SelectDistinct builds SELECT DISTINCT col FROM table.
func SelectDistinct(d Dialect, schema, table, col string) string {
	return fmt.Sprintf("SELECT DISTINCT %s FROM %s", d.QuoteIdent(col), d.QualifiedTable(schema, table))
}

// SelectTimestamps builds an ordered, non-null timestamp query, optionally
// filtered by one bound value.
func SelectTimestamps(d Dialect, schema, table, col, filter string) string {
	c := d.QuoteIdent(col)
	q := fmt.Sprintf("SELECT %s FROM %s WHERE ", c, d.QualifiedTable(schema, table))
	if filter != "" {
		q += fmt.Sprintf("%s = %s AND ", d.QuoteIdent(filter), d.Placeholder(0))
	}
	return q + fmt.Sprintf("%s IS NOT NULL ORDER BY %s", c, c)
}

// SelectIntervals builds the ordered start/end query of an event table.
func SelectIntervals(d Dialect, schema, table, startCol, endCol string) string {
	s, e := d.QuoteIdent(startCol), d.QuoteIdent(endCol)
	return fmt.Sprintf("SELECT %s, %s FROM %s WHERE %s IS NOT NULL AND %s IS NOT NULL ORDER BY %s",
		s, e, d.QualifiedTable(schema, table), s, e, s)
}
