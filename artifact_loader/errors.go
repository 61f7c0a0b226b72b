package artifact_loader

import "fmt"

// LoadError is returned when the local artifact cannot be read or parsed
type LoadError struct {
	Path string
	// Line is the 1-based line of the failure, 0 if not line specific
	Line int
	// Column is set when a cell could not be parsed as its declared type
	Column string
	Err    error
}

func (e *LoadError) Error() string {
	switch {
	case e.Column != "":
		return fmt.Sprintf("error loading %s: line %d, column %s: %s", e.Path, e.Line, e.Column, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("error loading %s: line %d: %s", e.Path, e.Line, e.Err)
	default:
		return fmt.Sprintf("error loading %s: %s", e.Path, e.Err)
	}
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
