package schema

import "strings"

// ColumnType is the declared type of a dataset column
type ColumnType string

const (
	TypeVarchar ColumnType = "VARCHAR"
	TypeDouble  ColumnType = "DOUBLE"
	TypeDate    ColumnType = "DATE"
)

var validColumnTypes = map[ColumnType]struct{}{
	TypeVarchar: {},
	TypeDouble:  {},
	TypeDate:    {},
}

// ParseColumnType converts a (case insensitive) type name to a ColumnType
func ParseColumnType(s string) (ColumnType, bool) {
	t := ColumnType(strings.ToUpper(strings.TrimSpace(s)))
	_, ok := validColumnTypes[t]
	return t, ok
}

type ColumnSchema struct {
	// SourceName is the struct field the column was derived from, if any
	SourceName string     `json:"-"`
	ColumnName string     `json:"name"`
	Type       ColumnType `json:"type"`
}

// Clone returns a copy of the column schema
func (c *ColumnSchema) Clone() *ColumnSchema {
	res := *c
	return &res
}
