package schema

import (
	"time"
)

// CovidRecord describes the columns of the OWID dataset the dashboard depends on
// numeric columns are pointers as any of them may be absent for a given row
type CovidRecord struct {
	Location    string
	Date        time.Time
	TotalCases  *float64
	NewCases    *float64
	TotalDeaths *float64
	NewDeaths   *float64
	Population  *float64
}

// CovidSchema returns the explicit schema used to load the dataset
func CovidSchema() *RowSchema {
	s, err := SchemaFromStruct(CovidRecord{})
	if err != nil {
		// CovidRecord is static so this can only be a programming error
		panic(err)
	}
	return s
}

// RequiredColumns returns the columns which must be present in the dataset, in projection order
func RequiredColumns() []string {
	return CovidSchema().ColumnNames()
}
