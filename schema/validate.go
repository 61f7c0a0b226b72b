package schema

import (
	"regexp"

	"github.com/turbot/pipe-fittings/utils"
)

var validNameRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// IsValidColumnName checks the name starts with a letter or underscore and contains only letters, digits, or underscores
func IsValidColumnName(name string) bool {
	if len(name) == 0 || len(name) > 255 {
		return false
	}
	return validNameRegex.MatchString(name)
}

// Validate checks that every required column is present in columns.
// Matching is exact and case sensitive; order is irrelevant.
// Returns a *SchemaError listing the missing columns in required order.
func Validate(columns []string, required []string) error {
	have := utils.SliceToLookup(columns)

	var missing []string
	for _, c := range required {
		if _, ok := have[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}
	return nil
}
