package table

// DistinctLocations returns the distinct non-absent values of the named column, in order of first appearance
func (t *Table) DistinctLocations(column string) ([]string, error) {
	idx, err := t.mustIndex(column)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var res []string
	for _, row := range t.Rows {
		v := row[idx]
		if v.IsNull() {
			continue
		}
		s := v.String()
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		res = append(res, s)
	}
	return res, nil
}

// FilterByLocation returns the rows whose value in the named column exactly equals key, in original order.
// No matching rows is not an error - an empty table is returned.
func (t *Table) FilterByLocation(column, key string) (*Table, error) {
	idx, err := t.mustIndex(column)
	if err != nil {
		return nil, err
	}

	res := New(t.cloneColumns())
	for _, row := range t.Rows {
		v := row[idx]
		if !v.IsNull() && v.String() == key {
			res.Rows = append(res.Rows, row)
		}
	}
	return res, nil
}
