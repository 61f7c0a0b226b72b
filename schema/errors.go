package schema

import (
	"fmt"
	"strings"
)

// SchemaError is returned when a table is missing one or more required columns
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset is missing required columns: %s", strings.Join(e.Missing, ", "))
}
