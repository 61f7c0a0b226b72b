package schema

type RowSchema struct {
	Columns []*ColumnSchema `json:"columns"`
}

// ColumnNames returns the column names in declaration order
func (r *RowSchema) ColumnNames() []string {
	res := make([]string, len(r.Columns))
	for i, c := range r.Columns {
		res[i] = c.ColumnName
	}
	return res
}

// Column returns the schema for the given column, or one of type VARCHAR if the column is not declared
func (r *RowSchema) Column(name string) *ColumnSchema {
	if r != nil {
		for _, c := range r.Columns {
			if c.ColumnName == name {
				return c
			}
		}
	}
	return &ColumnSchema{ColumnName: name, Type: TypeVarchar}
}
