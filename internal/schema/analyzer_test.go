package schema_test

import (
	"db-converter/internal/schema"
	"testing"
)

func table(name string, cols ...string) *schema.Table {
	t := &schema.Table{Name: name}
	for _, c := range cols {
		t.Columns = append(t.Columns, &schema.Column{Name: c})
	}
	return t
}

func TestFindColumn_Priority(t *testing.T) {
	// time_tag and date both present: date wins (candidate order)
	tbl := table("measurements", "id", "time_tag", "date", "value")

	if got := tbl.FindColumn(schema.RoleDate); got != "date" {
		t.Errorf("Expected date, got %q", got)
	}
	if got := tbl.FindColumn(schema.RoleStation); got != "id" {
		t.Errorf("Expected id, got %q", got)
	}
}

func TestFindColumn_Exclude(t *testing.T) {
	// A station candidate that is also the date column must be skipped.
	tbl := table("odd", "name", "channel")

	if got := tbl.FindColumn(schema.RoleStation, "name"); got != "channel" {
		t.Errorf("Expected channel, got %q", got)
	}
	if got := tbl.FindColumn(schema.RoleEventStart); got != "" {
		t.Errorf("Expected no event start column, got %q", got)
	}
}

func TestFindColumn_CaseInsensitive(t *testing.T) {
	tbl := table("EVENTS", "ID", "BEGIN", "FINISH")

	if got := tbl.FindColumn(schema.RoleEventStart); got != "BEGIN" {
		t.Errorf("Expected BEGIN, got %q", got)
	}
	if got := tbl.FindColumn(schema.RoleEventEnd); got != "FINISH" {
		t.Errorf("Expected FINISH, got %q", got)
	}
}

func TestFindColumn_RequiresTemporalType(t *testing.T) {
	tbl := &schema.Table{Name: "obs", Columns: []*schema.Column{
		{Name: "date", DataType: "varchar"},
		{Name: "time_tag", DataType: "datetime"},
		{Name: "name", DataType: "varchar"},
	}}

	if got := tbl.FindColumn(schema.RoleDate); got != "time_tag" {
		t.Errorf("Expected time_tag, got %q", got)
	}
	// Station candidates are not restricted by type.
	if got := tbl.FindColumn(schema.RoleStation); got != "name" {
		t.Errorf("Expected name, got %q", got)
	}

	tbl.Columns[1].DataType = "int"
	if got := tbl.FindColumn(schema.RoleDate); got != "" {
		t.Errorf("Expected no date column, got %q", got)
	}
}

func TestColumnNames(t *testing.T) {
	tbl := table("t", "a", "b")
	names := tbl.ColumnNames()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("Unexpected column names: %v", names)
	}
}

func TestRoleString(t *testing.T) {
	if schema.RoleEventEnd.String() != "event end" {
		t.Errorf("Unexpected role name: %s", schema.RoleEventEnd)
	}
}
