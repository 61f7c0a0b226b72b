package events

// TableLoaded is raised when the local artifact has been parsed into a table
type TableLoaded struct {
	Base
	ExecutionId string
	Path        string
	RowCount    int
	ColumnCount int
}

func NewTableLoadedEvent(executionId string, path string, rowCount, columnCount int) *TableLoaded {
	return &TableLoaded{
		ExecutionId: executionId,
		Path:        path,
		RowCount:    rowCount,
		ColumnCount: columnCount,
	}
}

// SchemaValidated is raised when the table has been checked for the required columns
type SchemaValidated struct {
	Base
	ExecutionId   string
	LocationCount int
}

func NewSchemaValidatedEvent(executionId string, locationCount int) *SchemaValidated {
	return &SchemaValidated{
		ExecutionId:   executionId,
		LocationCount: locationCount,
	}
}

// LocationFiltered is raised when the projection has been filtered to the selected location
type LocationFiltered struct {
	Base
	ExecutionId string
	Location    string
	RowCount    int
}

func NewLocationFilteredEvent(executionId string, location string, rowCount int) *LocationFiltered {
	return &LocationFiltered{
		ExecutionId: executionId,
		Location:    location,
		RowCount:    rowCount,
	}
}

// Empty reports whether the selection matched no rows
func (e *LocationFiltered) Empty() bool {
	return e.RowCount == 0
}
