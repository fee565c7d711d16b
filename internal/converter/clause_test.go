package converter_test

import (
	"testing"

	"db-converter/internal/converter"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := map[string]converter.ClauseKind{
		"":                                 converter.ClauseSkip,
		"-- MySQL dump 10.13":              converter.ClauseSkip,
		"/*!40101 SET NAMES utf8 */;":      converter.ClauseSkip,
		"LOCK TABLES \"t\" WRITE;":         converter.ClauseSkip,
		"UNLOCK TABLES;":                   converter.ClauseSkip,
		"DROP TABLE IF EXISTS \"t\";":      converter.ClauseSkip,
		"CREATE TABLE \"t\" (":             converter.ClauseCreateTable,
		"INSERT INTO \"t\" VALUES (1);":    converter.ClauseInsert,
		"\"id\" int(11) NOT NULL,":         converter.ClauseColumn,
		"`id` int(11) NOT NULL,":           converter.ClauseColumn,
		"PRIMARY KEY (\"id\"),":            converter.ClausePrimaryKey,
		"CONSTRAINT \"fk\" FOREIGN KEY":    converter.ClauseConstraint,
		"UNIQUE KEY \"u\" (\"a\"),":        converter.ClauseUniqueKey,
		"FULLTEXT KEY \"f\" (\"a\",\"b\")": converter.ClauseFulltextKey,
		"KEY \"idx\" (\"a\"),":             converter.ClauseKey,
		");":                               converter.ClauseTableClose,
		") ENGINE=InnoDB;":                 converter.ClauseUnknown,
		"SET time_zone = '+00:00';":        converter.ClauseUnknown,
	}
	for line, want := range tests {
		got := converter.Classify(line)
		assert.Equal(t, want, got.Kind, "line %q classified as %s", line, got.Kind)
		assert.Equal(t, line, got.Text)
	}
}

func TestClauseKindString(t *testing.T) {
	assert.Equal(t, "table-close", converter.ClauseTableClose.String())
	assert.Equal(t, "invalid", converter.ClauseKind(99).String())
}
