package constants

const (
	// DefaultSourceUrl is the public Our World in Data COVID-19 dataset
	DefaultSourceUrl = "https://covid.ourworldindata.org/data/owid-covid-data.csv"
	// DefaultArtifactPath is the local copy of the dataset, overwritten on every fetch
	DefaultArtifactPath = "datos_covid.csv"
)

// column names of the dataset used by the dashboard
const (
	ColumnLocation    = "location"
	ColumnDate        = "date"
	ColumnTotalCases  = "total_cases"
	ColumnNewCases    = "new_cases"
	ColumnTotalDeaths = "total_deaths"
	ColumnNewDeaths   = "new_deaths"
	ColumnPopulation  = "population"
)

// PreviewRowCount is the number of rows shown in the data preview
const PreviewRowCount = 5
