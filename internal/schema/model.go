package schema

type Table struct {
	Name    string
	Columns []*Column
}

type Column struct {
	Name     string
	DataType string // dialect-normalized, empty when unknown
}

// temporalTypes are the normalized types every dialect reports for date
// and time columns.
var temporalTypes = map[string]bool{
	"datetime":  true,
	"timestamp": true,
	"date":      true,
}

// IsTemporal reports whether the column can hold dates. Columns of unknown
// type are given the benefit of the doubt.
func (c *Column) IsTemporal() bool {
	return c.DataType == "" || temporalTypes[c.DataType]
}

// ColumnNames returns the column names in ordinal order.
func (t *Table) ColumnNames() []string {
	names := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		names = append(names, c.Name)
	}
	return names
}
