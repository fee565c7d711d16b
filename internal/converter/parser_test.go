package converter_test

import (
	"bytes"
	"testing"

	"db-converter/internal/converter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParserTracksOpenTable(t *testing.T) {
	var out bytes.Buffer
	p := converter.NewParser(converter.NewAssembler(&out, "mem"), converter.Options{})

	require.Nil(t, p.OpenTable())
	lines := []string{
		"CREATE TABLE `account` (",
		"`id` tinyint(4) unsigned NOT NULL,",
		"`email` varchar(64) COLLATE utf8mb4_unicode_ci DEFAULT NULL,",
	}
	for i, l := range lines {
		require.NoError(t, p.Feed(i+1, converter.NormalizeLine(l)))
	}

	tbl := p.OpenTable()
	require.NotNil(t, tbl)
	assert.Equal(t, "account", tbl.Name)
	assert.Equal(t, []converter.Column{
		{Name: "id", SourceType: "tinyint(4)", TargetType: "int4", Modifiers: "NOT NULL", NeedsCast: true, NeedsSequence: true},
		{Name: "email", SourceType: "varchar(64)", TargetType: "varchar(128)", Modifiers: "DEFAULT NULL"},
	}, tbl.Columns)
	assert.Equal(t, []string{`"id" int4 NOT NULL`, `"email" varchar(128) DEFAULT NULL`}, tbl.Clauses)

	assert.Empty(t, p.Collector().Casts(), "deferred until the table closes")
	assert.Empty(t, p.Collector().Sequences())

	require.NoError(t, p.Feed(4, ");"))
	assert.Nil(t, p.OpenTable())
	assert.Equal(t, []converter.CastSpec{{Table: "account", Column: "id", Type: "boolean"}}, p.Collector().Casts())
	assert.Equal(t, []converter.SequenceSpec{{Table: "account"}}, p.Collector().Sequences())
	assert.Equal(t, 1, p.Stats().Tables)

	// Nothing is written until Finish flushes the buffer.
	require.NoError(t, p.Finish())
	assert.Contains(t, out.String(), `CREATE TABLE "account" (`)
}

func TestCollectorDeclareEnum(t *testing.T) {
	c := converter.NewCollector()
	assert.True(t, c.DeclareEnum("t_c"))
	assert.False(t, c.DeclareEnum("t_c"))
	assert.True(t, c.DeclareEnum("u_c"))
	assert.Equal(t, 2, c.EnumCount())
}

func TestEmissionStatements(t *testing.T) {
	assert.Equal(t, []string{
		"CREATE SEQUENCE users_id_seq",
		"SELECT setval('users_id_seq', max(id)) FROM users",
		`ALTER TABLE "users" ALTER COLUMN "id" SET DEFAULT nextval('users_id_seq')`,
	}, converter.SequenceSpec{Table: "users"}.Statements())

	ft := converter.FulltextEmission{Table: "doc", Columns: []string{"a", "b", "c"}, Language: "english"}
	assert.Equal(t, []string{
		"CREATE INDEX ON doc USING gin(to_tsvector('english', a || ' ' || b || ' ' || c))",
	}, ft.Statements())
}
