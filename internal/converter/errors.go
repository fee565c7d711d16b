package converter

import "fmt"

// UnrecognizedTableNameError is reported when a CREATE TABLE line carries no
// extractable identifier. The line is dropped.
type UnrecognizedTableNameError struct {
	LineNo int
	Line   string
}

func (e *UnrecognizedTableNameError) Error() string {
	return fmt.Sprintf("line %d: could not determine table name: %s", e.LineNo, e.Line)
}

// UnparsableColumnDefinitionError is reported when a quoted column line splits
// into fewer than three segments.
type UnparsableColumnDefinitionError struct {
	LineNo int
	Table  string
	Line   string
}

func (e *UnparsableColumnDefinitionError) Error() string {
	return fmt.Sprintf("line %d: could not parse column definition in %q: %s", e.LineNo, e.Table, e.Line)
}

type UnknownTopLevelLineError struct {
	LineNo int
	Line   string
}

func (e *UnknownTopLevelLineError) Error() string {
	return fmt.Sprintf("line %d: unknown line in main body: %s", e.LineNo, e.Line)
}

type UnknownInTableLineError struct {
	LineNo int
	Table  string
	Line   string
}

func (e *UnknownInTableLineError) Error() string {
	return fmt.Sprintf("line %d: unknown line inside table %q: %s", e.LineNo, e.Table, e.Line)
}

// UnterminatedTableError is reported at end of input when a table body was
// never closed. No CREATE TABLE statement is emitted for it.
type UnterminatedTableError struct {
	Table string
}

func (e *UnterminatedTableError) Error() string {
	return fmt.Sprintf("end of input inside table %q: statement dropped", e.Table)
}

// ResourceError is the only fatal error: the input or output could not be
// opened, read or written.
type ResourceError struct {
	Op   string // open, read, write, close
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}
