package table

import (
	"github.com/turbot/owid-covid-dashboard/schema"
)

// Project returns a copy of the table restricted to exactly the given columns, in that order.
// Row order and row count are preserved. Projecting an already projected table yields an equal table.
func (t *Table) Project(columns []string) (*Table, error) {
	if err := schema.Validate(t.ColumnNames(), columns); err != nil {
		return nil, err
	}

	indexes := make([]int, len(columns))
	res := New(make([]*schema.ColumnSchema, len(columns)))
	for i, name := range columns {
		indexes[i] = t.ColumnIndex(name)
		res.Columns[i] = t.Columns[indexes[i]].Clone()
	}

	res.Rows = make([]Row, len(t.Rows))
	for r, row := range t.Rows {
		projected := make(Row, len(indexes))
		for i, idx := range indexes {
			projected[i] = row[idx]
		}
		res.Rows[r] = projected
	}
	return res, nil
}

// CoerceDate returns a copy of the table with every cell of the named column parsed as a date.
// Cells which cannot be parsed become absent - this never fails on cell content and the row count is unchanged.
// The only error is a missing column.
func (t *Table) CoerceDate(column string) (*Table, error) {
	idx, err := t.mustIndex(column)
	if err != nil {
		return nil, err
	}

	res := New(t.cloneColumns())
	res.Columns[idx].Type = schema.TypeDate
	res.Rows = make([]Row, len(t.Rows))
	for r, row := range t.Rows {
		coerced := append(Row(nil), row...)
		coerced[idx] = coerceDateValue(row[idx])
		res.Rows[r] = coerced
	}
	return res, nil
}

func coerceDateValue(v Value) Value {
	switch v.Kind() {
	case KindDate:
		return v
	case KindString:
		s, _ := v.AsString()
		if d, ok := parseDate(s); ok {
			return Date(d)
		}
	}
	return Null()
}
