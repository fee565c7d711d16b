package converter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// BooleanCast is the post-creation type applied to tinyint columns.
const BooleanCast = "boolean"

// SequenceColumn is the only column name that gets a backing sequence.
const SequenceColumn = "id"

// EnumType is a synthetic enumerated type named {table}_{column}.
type EnumType struct {
	Name   string
	Values []string // quoted literals, in declaration order
}

// TypeMapping is the outcome of mapping one column type.
type TypeMapping struct {
	Target   string
	CastTo   string // empty when no post-creation cast is needed
	Sequence bool
	Enum     *EnumType
}

var varcharSize = regexp.MustCompile(`\((\d+)\)`)

type integerRule struct {
	prefix string
	target string
	cast   string
}

// tinyint( is listed before int( so the longer prefix wins.
var integerRules = []integerRule{
	{"tinyint(", "int4", BooleanCast},
	{"smallint(", "int2", ""},
	{"bigint(", "bigint", ""},
	{"int(", "integer", ""},
}

var plainRules = []struct {
	prefix string
	target string
}{
	{"longtext", "text"},
	{"mediumtext", "text"},
	{"tinytext", "text"},
	{"datetime", "timestamp with time zone"},
	{"double", "double precision"},
}

// MapType maps a source column type token to its target type. It is a pure
// function of its arguments.
func MapType(table, column, sourceType string) TypeMapping {
	lower := strings.ToLower(sourceType)

	for _, r := range integerRules {
		if strings.HasPrefix(lower, r.prefix) {
			return TypeMapping{
				Target:   r.target,
				CastTo:   r.cast,
				Sequence: column == SequenceColumn,
			}
		}
	}

	if strings.HasPrefix(lower, "varchar(") {
		if m := varcharSize.FindStringSubmatch(sourceType); m != nil {
			if size, err := strconv.Atoi(m[1]); err == nil {
				return TypeMapping{Target: fmt.Sprintf("varchar(%d)", size*2)}
			}
		}
		return TypeMapping{Target: sourceType}
	}

	for _, r := range plainRules {
		if strings.HasPrefix(lower, r.prefix) {
			return TypeMapping{Target: r.target}
		}
	}

	if strings.HasSuffix(lower, "blob") {
		return TypeMapping{Target: "bytea"}
	}

	if isEnumType(sourceType) {
		enum := &EnumType{
			Name:   fmt.Sprintf("%s_%s", table, column),
			Values: parseEnumValues(sourceType),
		}
		return TypeMapping{Target: enum.Name, Enum: enum}
	}

	return TypeMapping{Target: sourceType}
}

func isEnumType(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "enum(") || strings.HasPrefix(lower, "set(")
}

// closingParen returns the index of the parenthesis closing the first one
// in s, ignoring parentheses inside single-quoted literals, or -1.
func closingParen(s string) int {
	var (
		depth   int
		inQuote bool
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\'':
			inQuote = !inQuote
		case '(':
			if !inQuote {
				depth++
			}
		case ')':
			if inQuote {
				continue
			}
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func parseEnumValues(sourceType string) []string {
	_, list, _ := strings.Cut(sourceType, "(")
	list = strings.TrimRight(strings.TrimSuffix(list, `"`), ")")
	return splitQuotedList(list)
}

// splitQuotedList splits on commas outside single-quoted literals.
func splitQuotedList(s string) []string {
	var (
		out     []string
		inQuote bool
		start   int
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\'':
			inQuote = !inQuote
		case ',':
			if !inQuote {
				out = append(out, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	if tail := strings.TrimSpace(s[start:]); tail != "" || len(out) > 0 {
		out = append(out, tail)
	}
	return out
}
