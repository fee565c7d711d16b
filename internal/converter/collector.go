package converter

import (
	"fmt"
	"strings"
)

// CastSpec narrows a column after all tables exist.
type CastSpec struct {
	Table  string
	Column string
	Type   string
}

func (c CastSpec) Statements() []string {
	return []string{fmt.Sprintf(
		`ALTER TABLE "%s" ALTER COLUMN "%s" DROP DEFAULT, ALTER COLUMN "%s" TYPE %s USING CAST("%s" as %s)`,
		c.Table, c.Column, c.Column, c.Type, c.Column, c.Type)}
}

// SequenceSpec backs the id column of Table with a sequence.
type SequenceSpec struct {
	Table string
}

func (s SequenceSpec) Statements() []string {
	seq := s.Table + "_id_seq"
	return []string{
		fmt.Sprintf("CREATE SEQUENCE %s", seq),
		fmt.Sprintf("SELECT setval('%s', max(id)) FROM %s", seq, s.Table),
		fmt.Sprintf(`ALTER TABLE "%s" ALTER COLUMN "id" SET DEFAULT nextval('%s')`, s.Table, seq),
	}
}

// ForeignKeyEmission is a deferred constraint plus an index over its local columns.
type ForeignKeyEmission struct {
	Table      string
	Constraint string // text between CONSTRAINT and the trailing comma
	Columns    string // text between FOREIGN KEY and REFERENCES
}

func (f ForeignKeyEmission) Statements() []string {
	return []string{
		fmt.Sprintf(`ALTER TABLE "%s" ADD CONSTRAINT %s DEFERRABLE INITIALLY DEFERRED`, f.Table, f.Constraint),
		fmt.Sprintf(`CREATE INDEX ON "%s" %s`, f.Table, f.Columns),
	}
}

// FulltextEmission is a GIN index over the concatenated text of Columns.
type FulltextEmission struct {
	Table    string
	Columns  []string
	Language string
}

func (f FulltextEmission) Statements() []string {
	expr := strings.Join(f.Columns, " || ' ' || ")
	return []string{fmt.Sprintf("CREATE INDEX ON %s USING gin(to_tsvector('%s', %s))", f.Table, f.Language, expr)}
}

type emission interface {
	Statements() []string
}

// Collector accumulates the statements emitted after the main pass. All lists
// are append-only and keep insertion order.
type Collector struct {
	casts       []CastSpec
	foreignKeys []ForeignKeyEmission
	sequences   []SequenceSpec
	fulltext    []FulltextEmission
	enums       map[string]struct{}
}

func NewCollector() *Collector {
	return &Collector{enums: make(map[string]struct{})}
}

// addTable queues the deferred statements of a closed table.
func (c *Collector) addTable(t *Table) {
	c.casts = append(c.casts, t.casts...)
	c.foreignKeys = append(c.foreignKeys, t.foreignKeys...)
	c.sequences = append(c.sequences, t.sequences...)
	c.fulltext = append(c.fulltext, t.fulltext...)
}

func (c *Collector) Casts() []CastSpec { return c.casts }
func (c *Collector) ForeignKeys() []ForeignKeyEmission { return c.foreignKeys }
func (c *Collector) Sequences() []SequenceSpec { return c.sequences }
func (c *Collector) Fulltext() []FulltextEmission { return c.fulltext }

// DeclareEnum records name and reports whether it was not seen before.
func (c *Collector) DeclareEnum(name string) bool {
	if _, ok := c.enums[name]; ok {
		return false
	}
	c.enums[name] = struct{}{}
	return true
}

func (c *Collector) EnumCount() int {
	return len(c.enums)
}

func statementsOf[T emission](items []T) []string {
	var out []string
	for _, it := range items {
		out = append(out, it.Statements()...)
	}
	return out
}
