package converter

import (
	"fmt"
	"regexp"
	"strings"
)

// ZeroDateTime is the only literal rewritten inside INSERT statements.
const ZeroDateTime = "'0000-00-00 00:00:00'"

// DefaultFulltextLanguage is the text search configuration of full-text indexes.
const DefaultFulltextLanguage = "english"

var (
	tableNamePattern = regexp.MustCompile("^CREATE TABLE (?:IF NOT EXISTS )?[`\"]?([\\p{L}\\p{N}_]+)[`\"]?")
	unsignedPattern  = regexp.MustCompile(`\bunsigned\b\s*`)
	charsetPattern   = regexp.MustCompile(`CHARACTER SET \w+\s*`)
	collatePattern   = regexp.MustCompile(`COLLATE \w+\s*`)
)

// Table is the table body currently being assembled. Its deferred
// statements reach the Collector only when the table is closed.
type Table struct {
	Name    string
	Clauses []string
	Columns []Column

	casts       []CastSpec
	sequences   []SequenceSpec
	foreignKeys []ForeignKeyEmission
	fulltext    []FulltextEmission
}

type Column struct {
	Name          string
	SourceType    string
	TargetType    string
	Modifiers     string
	NeedsCast     bool
	NeedsSequence bool
}

// Stats summarizes one conversion.
type Stats struct {
	Lines       int
	Tables      int
	Inserts     int
	Enums       int
	Casts       int
	ForeignKeys int
	Sequences   int
	Fulltext    int
	Diagnostics int
}

type Options struct {
	InputPath        string
	OutputPath       string
	FulltextLanguage string
	// OnDiagnostic receives every non-fatal error. Nil discards them.
	OnDiagnostic func(err error)
	// OnLine is called after each input line with the running statistics.
	OnLine func(stats Stats)
}

// Parser is the conversion state machine. It is either at top level
// (table == nil) or inside exactly one open table body.
type Parser struct {
	out    *Assembler
	coll   *Collector
	opts   Options
	table  *Table
	lineNo int
	stats  Stats
}

func NewParser(out *Assembler, opts Options) *Parser {
	if opts.FulltextLanguage == "" {
		opts.FulltextLanguage = DefaultFulltextLanguage
	}
	return &Parser{out: out, coll: NewCollector(), opts: opts}
}

// Collector exposes the deferred statements gathered so far.
func (p *Parser) Collector() *Collector {
	return p.coll
}

// OpenTable returns the table being assembled, or nil at top level.
func (p *Parser) OpenTable() *Table {
	return p.table
}

func (p *Parser) Stats() Stats {
	s := p.stats
	s.Enums = p.coll.EnumCount()
	s.Casts = len(p.coll.Casts())
	s.ForeignKeys = len(p.coll.ForeignKeys())
	s.Sequences = len(p.coll.Sequences())
	s.Fulltext = len(p.coll.Fulltext())
	return s
}

func (p *Parser) report(err error) {
	p.stats.Diagnostics++
	if p.opts.OnDiagnostic != nil {
		p.opts.OnDiagnostic(err)
	}
}

// Feed consumes one normalized line. Only write failures are returned.
func (p *Parser) Feed(lineNo int, line string) error {
	p.lineNo = lineNo
	p.stats.Lines++
	cl := Classify(line)
	if p.table == nil {
		return p.topLevel(cl)
	}
	return p.inTable(cl)
}

func (p *Parser) topLevel(cl Clause) error {
	switch cl.Kind {
	case ClauseSkip:
		return nil
	case ClauseCreateTable:
		m := tableNamePattern.FindStringSubmatch(cl.Text)
		if m == nil {
			p.report(&UnrecognizedTableNameError{LineNo: p.lineNo, Line: cl.Text})
			return nil
		}
		p.table = &Table{Name: m[1]}
		return nil
	case ClauseInsert:
		p.stats.Inserts++
		return p.out.Insert(strings.ReplaceAll(cl.Text, ZeroDateTime, "NULL"))
	default:
		p.report(&UnknownTopLevelLineError{LineNo: p.lineNo, Line: cl.Text})
		return nil
	}
}

func (p *Parser) inTable(cl Clause) error {
	switch cl.Kind {
	case ClauseSkip, ClauseKey:
		return nil
	case ClauseColumn:
		return p.column(cl.Text)
	case ClausePrimaryKey:
		p.table.Clauses = append(p.table.Clauses, strings.TrimRight(cl.Text, ","))
	case ClauseConstraint:
		p.foreignKey(cl.Text)
	case ClauseUniqueKey:
		p.uniqueKey(cl.Text)
	case ClauseFulltextKey:
		p.fulltextKey(cl.Text)
	case ClauseTableClose:
		return p.closeTable()
	default:
		p.unknownInTable(cl.Text)
	}
	return nil
}

func (p *Parser) unknownInTable(line string) {
	p.report(&UnknownInTableLineError{LineNo: p.lineNo, Table: p.table.Name, Line: line})
}

func (p *Parser) column(line string) error {
	trimmed := strings.Trim(line, ",")
	end := strings.IndexAny(trimmed[1:], "\"`")
	if end < 0 {
		p.report(&UnparsableColumnDefinitionError{LineNo: p.lineNo, Table: p.table.Name, Line: line})
		return nil
	}
	name := trimmed[1 : 1+end]
	definition := strings.TrimSpace(trimmed[2+end:])
	sourceType, modifiers, ok := splitColumnType(definition)
	if !ok {
		p.report(&UnparsableColumnDefinitionError{LineNo: p.lineNo, Table: p.table.Name, Line: line})
		return nil
	}
	modifiers = cleanModifiers(modifiers)

	m := MapType(p.table.Name, name, sourceType)
	if m.Enum != nil && p.coll.DeclareEnum(m.Enum.Name) {
		if err := p.out.CreateType(m.Enum); err != nil {
			return err
		}
	}
	if m.CastTo != "" {
		p.table.casts = append(p.table.casts, CastSpec{Table: p.table.Name, Column: name, Type: m.CastTo})
	}
	if m.Sequence {
		p.table.sequences = append(p.table.sequences, SequenceSpec{Table: p.table.Name})
	}

	p.table.Clauses = append(p.table.Clauses, strings.TrimSpace(fmt.Sprintf(`"%s" %s %s`, name, m.Target, modifiers)))
	p.table.Columns = append(p.table.Columns, Column{
		Name:          name,
		SourceType:    sourceType,
		TargetType:    m.Target,
		Modifiers:     modifiers,
		NeedsCast:     m.CastTo != "",
		NeedsSequence: m.Sequence,
	})
	return nil
}

// splitColumnType separates the type token from the modifiers. An enum or
// set list may contain spaces inside its literals, so it runs to the
// parenthesis closing it; ok is false when that parenthesis is missing.
func splitColumnType(definition string) (sourceType, modifiers string, ok bool) {
	if isEnumType(definition) {
		end := closingParen(definition)
		if end < 0 {
			return "", "", false
		}
		return definition[:end+1], strings.TrimSpace(definition[end+1:]), true
	}
	sourceType, modifiers, _ = strings.Cut(definition, " ")
	return sourceType, modifiers, true
}

func cleanModifiers(s string) string {
	s = unsignedPattern.ReplaceAllString(s, "")
	s = charsetPattern.ReplaceAllString(s, "")
	s = collatePattern.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

func (p *Parser) foreignKey(line string) {
	_, constraint, _ := strings.Cut(line, "CONSTRAINT")
	_, keyPart, hasKey := strings.Cut(line, "FOREIGN KEY")
	columns, _, hasRef := strings.Cut(keyPart, "REFERENCES")
	if !hasKey || !hasRef {
		p.unknownInTable(line)
		return
	}
	p.table.foreignKeys = append(p.table.foreignKeys, ForeignKeyEmission{
		Table:      p.table.Name,
		Constraint: strings.TrimRight(strings.TrimSpace(constraint), ","),
		Columns:    strings.TrimRight(strings.TrimSpace(columns), ","),
	})
}

func (p *Parser) uniqueKey(line string) {
	_, rest, ok := strings.Cut(line, "(")
	if !ok {
		p.unknownInTable(line)
		return
	}
	columns, _, _ := strings.Cut(rest, ")")
	p.table.Clauses = append(p.table.Clauses, fmt.Sprintf("UNIQUE (%s)", columns))
}

func (p *Parser) fulltextKey(line string) {
	open := strings.LastIndex(line, "(")
	if open < 0 {
		p.unknownInTable(line)
		return
	}
	list, _, _ := strings.Cut(line[open+1:], ")")
	list = strings.NewReplacer(`"`, "", "`", "").Replace(list)
	var cols []string
	for _, c := range strings.Split(list, ",") {
		cols = append(cols, strings.TrimSpace(c))
	}
	p.table.fulltext = append(p.table.fulltext, FulltextEmission{Table: p.table.Name, Columns: cols, Language: p.opts.FulltextLanguage})
}

func (p *Parser) closeTable() error {
	t := p.table
	p.table = nil
	p.stats.Tables++
	if err := p.out.CreateTable(t.Name, t.Clauses); err != nil {
		return err
	}
	p.coll.addTable(t)
	return nil
}

// Finish ends the pass: an open table is reported and dropped along with
// its deferred statements, then the deferred sections are written.
func (p *Parser) Finish() error {
	if p.table != nil {
		p.report(&UnterminatedTableError{Table: p.table.Name})
		p.table = nil
	}
	return p.out.Finish(p.coll)
}
