package converter

import "strings"

// ClauseKind tags the shape of a normalized dump line.
type ClauseKind int

const (
	ClauseUnknown ClauseKind = iota
	ClauseSkip               // comments, LOCK/UNLOCK TABLES, DROP TABLE, blank
	ClauseCreateTable
	ClauseInsert
	ClauseColumn
	ClausePrimaryKey
	ClauseConstraint
	ClauseUniqueKey
	ClauseFulltextKey
	ClauseKey
	ClauseTableClose
)

var clauseNames = map[ClauseKind]string{
	ClauseUnknown:     "unknown",
	ClauseSkip:        "skip",
	ClauseCreateTable: "create-table",
	ClauseInsert:      "insert",
	ClauseColumn:      "column",
	ClausePrimaryKey:  "primary-key",
	ClauseConstraint:  "constraint",
	ClauseUniqueKey:   "unique-key",
	ClauseFulltextKey: "fulltext-key",
	ClauseKey:         "key",
	ClauseTableClose:  "table-close",
}

func (k ClauseKind) String() string {
	if s, ok := clauseNames[k]; ok {
		return s
	}
	return "invalid"
}

// Clause is one classified line.
type Clause struct {
	Kind ClauseKind
	Text string
}

type matcher struct {
	kind  ClauseKind
	match func(line string) bool
}

func prefix(p ...string) func(string) bool {
	return func(line string) bool {
		for _, s := range p {
			if strings.HasPrefix(line, s) {
				return true
			}
		}
		return false
	}
}

func isTableClose(line string) bool {
	return line == ");"
}

func isSkippable(line string) bool {
	return line == "" || prefix("--", "/*", "LOCK TABLES", "DROP TABLE", "UNLOCK TABLES")(line)
}

// Evaluated in order; the first match wins.
var matchers = []matcher{
	{ClauseSkip, isSkippable},
	{ClauseCreateTable, prefix("CREATE TABLE")},
	{ClauseInsert, prefix("INSERT INTO")},
	{ClauseColumn, prefix(`"`, "`")},
	{ClausePrimaryKey, prefix("PRIMARY KEY")},
	{ClauseConstraint, prefix("CONSTRAINT")},
	{ClauseUniqueKey, prefix("UNIQUE KEY")},
	{ClauseFulltextKey, prefix("FULLTEXT KEY")},
	{ClauseKey, prefix("KEY")},
	{ClauseTableClose, isTableClose},
}

// Classify tags a normalized line. It does not depend on parser state.
func Classify(line string) Clause {
	for _, m := range matchers {
		if m.match(line) {
			return Clause{Kind: m.kind, Text: line}
		}
	}
	return Clause{Kind: ClauseUnknown, Text: line}
}
