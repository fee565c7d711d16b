package converter

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const preamble = `-- Converted by db_converter
START TRANSACTION;
SET standard_conforming_strings=off;
SET escape_string_warning=off;
SET CONSTRAINTS ALL DEFERRED;

`

// stage is one deferred section of the script.
type stage struct {
	title      string
	statements func(c *Collector) []string
}

// Casts need the tables, foreign keys may reference cast columns, and
// sequences read the cast id columns. The order must not change.
var postPassStages = []stage{
	{"Typecasts", func(c *Collector) []string { return statementsOf(c.Casts()) }},
	{"Foreign keys", func(c *Collector) []string { return statementsOf(c.ForeignKeys()) }},
	{"Sequences", func(c *Collector) []string { return statementsOf(c.Sequences()) }},
	{"Full Text keys", func(c *Collector) []string { return statementsOf(c.Fulltext()) }},
}

// Assembler writes the target script. Inline statements go out as soon as
// they are complete; the deferred sections are written by Finish.
type Assembler struct {
	w    *bufio.Writer
	path string
}

func NewAssembler(w io.Writer, path string) *Assembler {
	return &Assembler{w: bufio.NewWriterSize(w, 64*1024), path: path}
}

func (a *Assembler) write(s string) error {
	if _, err := a.w.WriteString(s); err != nil {
		return &ResourceError{Op: "write", Path: a.path, Err: err}
	}
	return nil
}

func (a *Assembler) Preamble() error {
	return a.write(preamble)
}

// CreateTable writes one statement with one clause per line.
func (a *Assembler) CreateTable(name string, clauses []string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE \"%s\" (\n", name)
	for i, cl := range clauses {
		sep := ","
		if i == len(clauses)-1 {
			sep = ""
		}
		fmt.Fprintf(&b, "    %s%s\n", cl, sep)
	}
	b.WriteString(");\n\n")
	return a.write(b.String())
}

func (a *Assembler) CreateType(e *EnumType) error {
	return a.write(fmt.Sprintf("CREATE TYPE %s AS ENUM (%s);\n", e.Name, strings.Join(e.Values, ",")))
}

func (a *Assembler) Insert(line string) error {
	return a.write(line + "\n")
}

// Finish writes the post-data sections and the final COMMIT. A script
// without the final COMMIT was truncated.
func (a *Assembler) Finish(c *Collector) error {
	if err := a.write("\n-- Post-data save --\nCOMMIT;\nSTART TRANSACTION;\n"); err != nil {
		return err
	}
	for _, st := range postPassStages {
		if err := a.write(fmt.Sprintf("\n-- %s --\n", st.title)); err != nil {
			return err
		}
		for _, stmt := range st.statements(c) {
			if err := a.write(stmt + ";\n"); err != nil {
				return err
			}
		}
	}
	if err := a.write("\nCOMMIT;\n"); err != nil {
		return err
	}
	return a.Flush()
}

// Flush pushes buffered output to the underlying writer.
func (a *Assembler) Flush() error {
	if err := a.w.Flush(); err != nil {
		return &ResourceError{Op: "write", Path: a.path, Err: err}
	}
	return nil
}
