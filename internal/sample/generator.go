package sample

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

// Options controls the shape of a generated dump.
type Options struct {
	Tables int
	Rows   int
	Seed   int64 // 0 picks a random seed
	// Quote delimits identifiers: `"` (postgresql-compatible export) or "`".
	Quote string
}

// Summary counts what a converter should find in the generated dump.
type Summary struct {
	Tables      int
	Inserts     int
	Enums       int
	Casts       int
	Sequences   int
	ForeignKeys int
	Fulltext    int
}

var kinds = []string{"draft", "active", "archived", "o'brien"}

type generator struct {
	f     *gofakeit.Faker
	w     *bufio.Writer
	quote string
}

func (g *generator) ident(name string) string {
	return g.quote + name + g.quote
}

// Generate writes a dump in the postgresql-compatible export format.
func Generate(w io.Writer, opts Options) (Summary, error) {
	if opts.Quote == "" {
		opts.Quote = `"`
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &generator{f: gofakeit.New(seed), w: bufio.NewWriter(w), quote: opts.Quote}

	var sum Summary
	g.header()

	var prev string
	for i := 0; i < opts.Tables; i++ {
		name := g.tableName(i)
		g.createTable(name, prev)

		sum.Tables++
		sum.Enums++
		sum.Casts++
		sum.Sequences++
		sum.Fulltext++
		if prev != "" {
			sum.ForeignKeys++
		}

		if opts.Rows > 0 {
			fmt.Fprintf(g.w, "LOCK TABLES %s WRITE;\n", g.ident(name))
			for r := 1; r <= opts.Rows; r++ {
				g.insert(name, r, prev != "")
				sum.Inserts++
			}
			fmt.Fprintln(g.w, "UNLOCK TABLES;")
		}
		prev = name
	}
	fmt.Fprintln(g.w, "-- Dump completed")

	if err := g.w.Flush(); err != nil {
		return sum, fmt.Errorf("failed to write dump: %w", err)
	}
	return sum, nil
}

func (g *generator) header() {
	fmt.Fprintln(g.w, "-- MySQL dump 10.13  Distrib 5.7.42, for Linux (x86_64)")
	fmt.Fprintln(g.w, "--")
	fmt.Fprintln(g.w, "/*!40101 SET @OLD_CHARACTER_SET_CLIENT=@@CHARACTER_SET_CLIENT */;")
	fmt.Fprintln(g.w, "/*!40101 SET NAMES utf8 */;")
	fmt.Fprintln(g.w)
}

func (g *generator) tableName(i int) string {
	word := strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r
		}
		return -1
	}, strings.ToLower(g.f.Noun()))
	if word == "" {
		word = "table"
	}
	return fmt.Sprintf("%s_%d", word, i)
}

func (g *generator) createTable(name, parent string) {
	q := g.ident
	lines := []string{
		fmt.Sprintf("%s int(11) unsigned NOT NULL", q("id")),
		fmt.Sprintf("%s varchar(%d) CHARACTER SET utf8 COLLATE utf8_bin NOT NULL", q("name"), g.f.Number(16, 128)),
		fmt.Sprintf("%s varchar(100) DEFAULT NULL", q("email")),
		fmt.Sprintf("%s tinyint(1) NOT NULL DEFAULT '1'", q("active")),
		fmt.Sprintf("%s enum('draft','active','archived','o''brien') NOT NULL", q("kind")),
		fmt.Sprintf("%s datetime DEFAULT NULL", q("created")),
		fmt.Sprintf("%s double NOT NULL", q("score")),
		fmt.Sprintf("%s longtext", q("bio")),
		fmt.Sprintf("%s blob", q("avatar")),
	}
	if parent != "" {
		lines = append(lines, fmt.Sprintf("%s int(11) DEFAULT NULL", q("parent_id")))
	}
	lines = append(lines,
		fmt.Sprintf("PRIMARY KEY (%s)", q("id")),
		fmt.Sprintf("UNIQUE KEY %s (%s)", q("email"), q("email")),
	)
	if parent != "" {
		lines = append(lines,
			fmt.Sprintf("KEY %s (%s)", q("parent_id"), q("parent_id")),
			fmt.Sprintf("CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s (%s)",
				q(name+"_ibfk_1"), q("parent_id"), q(parent), q("id")),
		)
	}
	lines = append(lines, fmt.Sprintf("FULLTEXT KEY %s (%s,%s)", q("search"), q("name"), q("bio")))

	fmt.Fprintf(g.w, "DROP TABLE IF EXISTS %s;\n", q(name))
	fmt.Fprintf(g.w, "CREATE TABLE %s (\n  %s\n);\n", q(name), strings.Join(lines, ",\n  "))
}

// escape renders a MySQL string literal the way mysqldump does.
func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}

func (g *generator) insert(table string, id int, hasParent bool) {
	created := "'0000-00-00 00:00:00'"
	if g.f.Number(0, 3) > 0 {
		created = "'" + g.f.DateRange(
			time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		).Format("2006-01-02 15:04:05") + "'"
	}
	active := 0
	if g.f.Bool() {
		active = 1
	}
	vals := []string{
		fmt.Sprintf("%d", id),
		escape(g.f.Name()),
		escape(g.f.Email()),
		fmt.Sprintf("%d", active),
		escape(kinds[g.f.Number(0, len(kinds)-1)]),
		created,
		fmt.Sprintf("%.2f", g.f.Price(0.99, 99.99)),
		escape(g.f.Sentence(8)),
		"NULL",
	}
	if hasParent {
		vals = append(vals, fmt.Sprintf("%d", g.f.Number(1, id)))
	}
	fmt.Fprintf(g.w, "INSERT INTO %s VALUES (%s);\n", g.ident(table), strings.Join(vals, ","))
}
