package schema

import (
	"database/sql"
	"fmt"
	"strings"

	"db-converter/internal/dialect"
)

// Analyze loads every base table of the schema together with its columns,
// ordered by table name.
func Analyze(db *sql.DB, d dialect.Dialect, schemaName string) ([]*Table, error) {
	// [Interface-First]: Delegate schema resolution to the dialect
	target := d.GetSchemaName(schemaName)

	// Use map for O(1) lookups, with normalized keys for case-insensitive matching (Oracle support)
	tableMap := make(map[string]*Table)
	var tables []*Table

	// --- Step 1: Fetch Tables ---
	rows, err := db.Query(d.GetTablesQuery(target), target)
	if err != nil {
		return nil, fmt.Errorf("failed to query tables: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		t := &Table{Name: name}
		tableMap[strings.ToUpper(name)] = t
		tables = append(tables, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tables: %w", err)
	}

	// --- Step 2: Fetch Columns ---
	colRows, err := db.Query(d.GetColumnsQuery(target), target)
	if err != nil {
		return nil, fmt.Errorf("failed to query columns: %w", err)
	}
	defer colRows.Close()

	for colRows.Next() {
		var tName, cName, dType sql.NullString
		if err := colRows.Scan(&tName, &cName, &dType); err != nil {
			return nil, fmt.Errorf("failed to scan column (table: %s): %w", tName.String, err)
		}
		if !tName.Valid || !cName.Valid {
			continue // Skip invalid rows
		}
		// Views and other relations are not in the table map.
		if t, ok := tableMap[strings.ToUpper(tName.String)]; ok {
			t.Columns = append(t.Columns, &Column{
				Name:     cName.String,
				DataType: d.NormalizeType(dType.String),
			})
		}
	}
	if err := colRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating columns: %w", err)
	}

	return tables, nil
}
