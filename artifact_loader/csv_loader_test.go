package artifact_loader

import (
	"compress/gzip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turbot/owid-covid-dashboard/schema"
	"github.com/turbot/owid-covid-dashboard/table"
	"github.com/turbot/owid-covid-dashboard/types"
)

const validCsv = `iso_code,location,date,total_cases,new_cases,total_deaths,new_deaths,population
AAA,A,2020-01-01,1,1,,,100
AAA,A,2020-01-02,3,2,1,1,100
BBB,B,2020-01-01,5,5,0,0,200
BBB,B,2020-01-02,7,2,0,0,200
`

func writeArtifact(t *testing.T, name, content string) *types.DownloadedArtifactInfo {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return &types.DownloadedArtifactInfo{LocalName: path}
}

func TestCsvLoader_Load(t *testing.T) {
	info := writeArtifact(t, "data.csv", validCsv)

	tbl, err := NewCsvLoader(schema.CovidSchema()).Load(context.Background(), info)
	require.NoError(t, err)

	assert.Equal(t, []string{"iso_code", "location", "date", "total_cases", "new_cases", "total_deaths", "new_deaths", "population"}, tbl.ColumnNames())
	assert.Equal(t, 4, tbl.Len())

	// declared types are applied, undeclared columns are VARCHAR
	assert.Equal(t, schema.TypeVarchar, tbl.Columns[0].Type)
	assert.Equal(t, schema.TypeDate, tbl.Columns[2].Type)
	assert.Equal(t, schema.TypeDouble, tbl.Columns[3].Type)

	assert.Equal(t, table.String("AAA"), tbl.Rows[0][0])
	assert.Equal(t, table.String("2020-01-01"), tbl.Rows[0][2])
	assert.Equal(t, table.Number(1), tbl.Rows[0][3])
	// empty cells are absent
	assert.True(t, tbl.Rows[0][5].IsNull())
	// zero is a value
	assert.Equal(t, table.Number(0), tbl.Rows[2][5])
}

func TestCsvLoader_MissingValueTokens(t *testing.T) {
	info := writeArtifact(t, "data.csv", `location,date,total_cases,new_cases,total_deaths,new_deaths,population
A,2020-01-01,NaN,NA,N/A,null,100
NA,2020-01-02,3,#N/A,<NA>,None,100
`)

	tbl, err := NewCsvLoader(schema.CovidSchema()).Load(context.Background(), info)
	require.NoError(t, err)
	require.Equal(t, 2, tbl.Len())

	for _, row := range tbl.Rows {
		for _, col := range []int{3, 4, 5} {
			assert.True(t, row[col].IsNull(), "column %s", tbl.Columns[col].ColumnName)
		}
	}
	assert.Equal(t, table.Number(3), tbl.Rows[1][2])
	assert.True(t, tbl.Rows[1][0].IsNull())
}

func TestCsvLoader_LoadErrors(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantLine   int
		wantColumn string
	}{
		{
			name:    "empty file",
			content: "",
		},
		{
			name:     "ragged row",
			content:  "location,date\nA,2020-01-01,extra\n",
			wantLine: 2,
		},
		{
			name:     "bad quoting",
			content:  "location,date\nA,\"2020\"x\n",
			wantLine: 2,
		},
		{
			name:       "non numeric value in numeric column",
			content:    "location,total_cases\nA,1\nA,lots\n",
			wantLine:   3,
			wantColumn: "total_cases",
		},
		{
			name:       "infinite value in numeric column",
			content:    "location,total_cases\nA,Inf\n",
			wantLine:   2,
			wantColumn: "total_cases",
		},
		{
			name:     "duplicate header",
			content:  "location,location\nA,B\n",
			wantLine: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := writeArtifact(t, "data.csv", tt.content)
			_, err := NewCsvLoader(schema.CovidSchema()).Load(context.Background(), info)
			var loadErr *LoadError
			require.True(t, errors.As(err, &loadErr), "expected LoadError, got %v", err)
			assert.Equal(t, info.LocalName, loadErr.Path)
			assert.Equal(t, tt.wantLine, loadErr.Line)
			assert.Equal(t, tt.wantColumn, loadErr.Column)
		})
	}
}

func TestCsvLoader_MissingFile(t *testing.T) {
	info := &types.DownloadedArtifactInfo{LocalName: filepath.Join(t.TempDir(), "nope.csv")}
	_, err := NewCsvLoader(schema.CovidSchema()).Load(context.Background(), info)
	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestCsvLoader_StripsByteOrderMark(t *testing.T) {
	info := writeArtifact(t, "data.csv", "\ufefflocation,date\nA,2020-01-01\n")
	tbl, err := NewCsvLoader(schema.CovidSchema()).Load(context.Background(), info)
	require.NoError(t, err)
	assert.Equal(t, []string{"location", "date"}, tbl.ColumnNames())
}

func TestCsvLoader_Cancelled(t *testing.T) {
	info := writeArtifact(t, "data.csv", validCsv)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewCsvLoader(schema.CovidSchema()).Load(ctx, info)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestGzipLoader_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	gw := gzip.NewWriter(f)
	_, err = gw.Write([]byte(validCsv))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, f.Close())

	info := &types.DownloadedArtifactInfo{LocalName: path}
	loader := LoaderForArtifact(info, schema.CovidSchema())
	assert.Equal(t, GzipLoaderIdentifier, loader.Identifier())

	tbl, err := loader.Load(context.Background(), info)
	require.NoError(t, err)
	assert.Equal(t, 4, tbl.Len())
}

func TestGzipLoader_NotGzip(t *testing.T) {
	info := writeArtifact(t, "data.csv.gz", validCsv)
	_, err := NewGzipLoader(schema.CovidSchema()).Load(context.Background(), info)
	var loadErr *LoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestLoaderForArtifact(t *testing.T) {
	assert.Equal(t, CsvLoaderIdentifier, LoaderForArtifact(&types.DownloadedArtifactInfo{LocalName: "datos_covid.csv"}, nil).Identifier())
	assert.Equal(t, GzipLoaderIdentifier, LoaderForArtifact(&types.DownloadedArtifactInfo{LocalName: "datos_covid.csv.gz"}, nil).Identifier())

	remote := types.DownloadedArtifactInfo{ArtifactInfo: types.ArtifactInfo{Key: "/data/owid-covid-data.csv.gz"}, LocalName: "datos_covid.csv"}
	assert.Equal(t, GzipLoaderIdentifier, LoaderForArtifact(&remote, nil).Identifier())
}
