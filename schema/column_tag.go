package schema

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
)

// ColumnTag represents the components of a `column` struct tag, e.g. `column:"name=date,type=DATE"`
type ColumnTag struct {
	Name string
	Type ColumnType
	Skip bool
}

// ParseColumnTag parses and validates a column tag string
func ParseColumnTag(tag string) (*ColumnTag, error) {
	ct := &ColumnTag{}

	// NOTE: if tag is "-" then skip the field
	if tag == "-" {
		ct.Skip = true
		return ct, nil
	}

	for _, part := range strings.Split(tag, ",") {
		part = strings.TrimSpace(part)

		kv := strings.Split(part, "=")
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid column tag: %s - expected comma separated key=value pairs", tag)
		}

		key := strings.TrimSpace(kv[0])
		value := strings.TrimSpace(kv[1])

		switch key {
		case "name":
			if !IsValidColumnName(value) {
				return nil, fmt.Errorf("invalid column tag: %s, '%s' is not a valid column name", tag, value)
			}
			ct.Name = value
		case "type":
			columnType, ok := ParseColumnType(value)
			if !ok {
				return nil, fmt.Errorf("invalid column tag: %s, 'type' must be one of %v", tag, maps.Keys(validColumnTypes))
			}
			ct.Type = columnType
		default:
			return nil, fmt.Errorf("invalid column tag: %s, key '%s' not recognized", tag, key)
		}
	}
	return ct, nil
}
