package artifact_loader

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/turbot/owid-covid-dashboard/schema"
	"github.com/turbot/owid-covid-dashboard/table"
	"github.com/turbot/owid-covid-dashboard/types"
)

const CsvLoaderIdentifier = "csv_loader"

// how often (in rows) the loader checks for context cancellation
const cancelCheckInterval = 10000

// CsvLoader is a Loader which parses a CSV file with a header row.
// The table columns are exactly the header fields. Columns declared in Schema are parsed as their declared type,
// any other column is loaded as VARCHAR.
type CsvLoader struct {
	Schema *schema.RowSchema
}

func NewCsvLoader(s *schema.RowSchema) Loader {
	return &CsvLoader{Schema: s}
}

func (l *CsvLoader) Identifier() string {
	return CsvLoaderIdentifier
}

// Load implements [Loader]
func (l *CsvLoader) Load(ctx context.Context, info *types.DownloadedArtifactInfo) (*table.Table, error) {
	inputPath := info.LocalName
	f, err := os.Open(inputPath)
	if err != nil {
		return nil, &LoadError{Path: inputPath, Err: err}
	}
	defer f.Close()

	return l.LoadReader(ctx, inputPath, f)
}

// LoadReader parses CSV text from r - path is only used for error messages
func (l *CsvLoader) LoadReader(ctx context.Context, path string, r io.Reader) (*table.Table, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &LoadError{Path: path, Err: errors.New("file is empty")}
		}
		return nil, csvLoadError(path, err)
	}

	columns, err := l.columnsForHeader(header)
	if err != nil {
		return nil, &LoadError{Path: path, Line: 1, Err: err}
	}
	res := table.New(columns)

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, csvLoadError(path, err)
		}

		line, _ := reader.FieldPos(0)
		if len(res.Rows)%cancelCheckInterval == 0 && ctx.Err() != nil {
			return nil, &LoadError{Path: path, Line: line, Err: ctx.Err()}
		}

		row := make(table.Row, len(columns))
		for i, raw := range record {
			v, err := table.ParseValue(columns[i].Type, raw)
			if err != nil {
				return nil, &LoadError{Path: path, Line: line, Column: columns[i].ColumnName, Err: err}
			}
			row[i] = v
		}
		res.Rows = append(res.Rows, row)
	}

	slog.Debug("CsvLoader loaded table", "path", path, "columns", len(columns), "rows", res.Len())
	return res, nil
}

func (l *CsvLoader) columnsForHeader(header []string) ([]*schema.ColumnSchema, error) {
	columns := make([]*schema.ColumnSchema, len(header))
	seen := make(map[string]struct{}, len(header))
	for i, name := range header {
		if i == 0 {
			// strip a utf-8 byte order mark
			name = strings.TrimPrefix(name, "\ufeff")
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("duplicate column %q in header", name)
		}
		seen[name] = struct{}{}
		if !schema.IsValidColumnName(name) {
			slog.Warn("CsvLoader unusual column name", "column", name)
		}
		columns[i] = l.Schema.Column(name).Clone()
	}
	return columns, nil
}

func csvLoadError(path string, err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return &LoadError{Path: path, Line: parseErr.Line, Err: parseErr.Err}
	}
	return &LoadError{Path: path, Err: err}
}
