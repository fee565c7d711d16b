package health

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"db-converter/internal/dialect"
	"db-converter/internal/schema"
)

const dateLayout = "2006-01-02 15:04:05"

// Checker reports data-integrity problems of a loaded database.
type Checker struct {
	DB     *sql.DB
	D      dialect.Dialect
	Schema string
	Factor float64
}

func New(db *sql.DB, d dialect.Dialect, schemaName string, factor float64) *Checker {
	if factor <= 0 {
		factor = DefaultGapFactor
	}
	return &Checker{DB: db, D: d, Schema: schemaName, Factor: factor}
}

// Ping verifies the connection with the dialect's trivial query.
func (c *Checker) Ping() error {
	var one int
	if err := c.DB.QueryRow(c.D.PingQuery()).Scan(&one); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	return nil
}

// Data analyzes every table that has a recognizable date or event column
// and returns one report line per analyzed table.
func (c *Checker) Data() (string, error) {
	tables, err := schema.Analyze(c.DB, c.D, c.Schema)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, t := range tables {
		line, err := c.analyzeTable(t)
		if err != nil {
			return b.String(), fmt.Errorf("table %s: %w", t.Name, err)
		}
		b.WriteString(line)
	}
	return b.String(), nil
}

func (c *Checker) analyzeTable(t *schema.Table) (string, error) {
	start := t.FindColumn(schema.RoleEventStart)
	end := t.FindColumn(schema.RoleEventEnd)
	if start != "" && end != "" {
		return c.analyzeEventTable(t.Name, start, end)
	}

	dateCol := t.FindColumn(schema.RoleDate)
	if dateCol == "" {
		return "", nil
	}
	return c.analyzeTimeSeries(t.Name, dateCol, t.FindColumn(schema.RoleStation, dateCol))
}

func (c *Checker) analyzeEventTable(table, startCol, endCol string) (string, error) {
	rows, err := c.DB.Query(dialect.SelectIntervals(c.D, c.Schema, table, startCol, endCol))
	if err != nil {
		return "", fmt.Errorf("failed to query intervals: %w", err)
	}
	defer rows.Close()

	var events []Interval
	for rows.Next() {
		var s, e time.Time
		if err := rows.Scan(&s, &e); err != nil {
			return "", fmt.Errorf("failed to scan interval: %w", err)
		}
		events = append(events, Interval{Start: s, End: e})
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("error iterating intervals: %w", err)
	}

	last, err := c.maxDate(table, endCol)
	if err != nil {
		return "", err
	}
	return EventReport(table, events, last, c.Factor), nil
}

// maxDate returns the latest value of col over the whole table, including
// rows the interval query leaves out. Nil for an empty column.
func (c *Checker) maxDate(table, col string) (*time.Time, error) {
	var t sql.NullTime
	if err := c.DB.QueryRow(dialect.SelectMax(c.D, c.Schema, table, col, "")).Scan(&t); err != nil {
		return nil, fmt.Errorf("failed to query latest %s: %w", col, err)
	}
	if !t.Valid {
		return nil, nil
	}
	return &t.Time, nil
}

func (c *Checker) analyzeTimeSeries(table, dateCol, stationCol string) (string, error) {
	if stationCol == "" {
		ts, err := c.timestamps(table, dateCol, "", nil)
		if err != nil {
			return "", err
		}
		return SeriesReport(table, [][]time.Time{ts}, c.Factor, false), nil
	}

	stations, err := c.distinct(table, stationCol)
	if err != nil {
		return "", err
	}
	var series [][]time.Time
	for _, st := range stations {
		ts, err := c.timestamps(table, dateCol, stationCol, st)
		if err != nil {
			return "", err
		}
		series = append(series, ts)
	}
	return SeriesReport(table, series, c.Factor, true), nil
}

func (c *Checker) distinct(table, col string) ([]interface{}, error) {
	rows, err := c.DB.Query(dialect.SelectDistinct(c.D, c.Schema, table, col))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s values: %w", col, err)
	}
	defer rows.Close()

	var vals []interface{}
	for rows.Next() {
		var v interface{}
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan %s value: %w", col, err)
		}
		vals = append(vals, v)
	}
	return vals, rows.Err()
}

func (c *Checker) timestamps(table, dateCol, filter string, value interface{}) ([]time.Time, error) {
	var args []interface{}
	if filter != "" {
		args = append(args, value)
	}
	rows, err := c.DB.Query(dialect.SelectTimestamps(c.D, c.Schema, table, dateCol, filter), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query timestamps: %w", err)
	}
	defer rows.Close()

	var ts []time.Time
	for rows.Next() {
		var t sql.NullTime
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("failed to scan timestamp: %w", err)
		}
		if t.Valid {
			ts = append(ts, t.Time)
		}
	}
	return ts, rows.Err()
}
