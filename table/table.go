package table

import (
	"fmt"

	"github.com/turbot/owid-covid-dashboard/schema"
)

type Row []Value

// Table is an in-memory table with named, typed columns and ordered rows
type Table struct {
	Columns []*schema.ColumnSchema
	Rows    []Row
}

func New(columns []*schema.ColumnSchema) *Table {
	return &Table{Columns: columns}
}

func (t *Table) ColumnNames() []string {
	res := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		res[i] = c.ColumnName
	}
	return res
}

// ColumnIndex returns the index of the named column, or -1
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c.ColumnName == name {
			return i
		}
	}
	return -1
}

func (t *Table) Len() int {
	return len(t.Rows)
}

func (t *Table) Empty() bool {
	return len(t.Rows) == 0
}

// Append adds a row - the row must have one value per column
func (t *Table) Append(row Row) error {
	if len(row) != len(t.Columns) {
		return fmt.Errorf("expected %d values, got %d", len(t.Columns), len(row))
	}
	t.Rows = append(t.Rows, row)
	return nil
}

// Validate checks the table has all the required columns, returning the table unchanged on success
// and a *schema.SchemaError otherwise
func (t *Table) Validate(required []string) (*Table, error) {
	if err := schema.Validate(t.ColumnNames(), required); err != nil {
		return nil, err
	}
	return t, nil
}

// Head returns a table containing the first n rows
func (t *Table) Head(n int) *Table {
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	if n < 0 {
		n = 0
	}
	res := New(t.cloneColumns())
	res.Rows = append([]Row(nil), t.Rows[:n]...)
	return res
}

// Column returns the values of the named column
func (t *Table) Column(name string) ([]Value, error) {
	idx, err := t.mustIndex(name)
	if err != nil {
		return nil, err
	}
	res := make([]Value, len(t.Rows))
	for i, r := range t.Rows {
		res[i] = r[idx]
	}
	return res, nil
}

func (t *Table) mustIndex(name string) (int, error) {
	idx := t.ColumnIndex(name)
	if idx == -1 {
		return -1, &schema.SchemaError{Missing: []string{name}}
	}
	return idx, nil
}

func (t *Table) cloneColumns() []*schema.ColumnSchema {
	res := make([]*schema.ColumnSchema, len(t.Columns))
	for i, c := range t.Columns {
		res[i] = c.Clone()
	}
	return res
}
