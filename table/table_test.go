package table

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turbot/owid-covid-dashboard/schema"
)

// testTable builds a table with the covid schema plus an extra iso_code column
func testTable(t *testing.T) *Table {
	t.Helper()
	s := schema.CovidSchema()
	columns := append([]*schema.ColumnSchema{{ColumnName: "iso_code", Type: schema.TypeVarchar}}, s.Columns...)
	tbl := New(columns)
	rows := []Row{
		{String("AAA"), String("A"), String("2020-01-01"), Number(1), Number(1), Null(), Null(), Number(100)},
		{String("AAA"), String("A"), String("2020-01-02"), Number(3), Number(2), Number(1), Number(1), Number(100)},
		{String("BBB"), String("B"), String("not a date"), Number(5), Number(5), Number(0), Number(0), Number(200)},
		{String("BBB"), String("B"), String("2020-01-02"), Null(), Null(), Null(), Null(), Number(200)},
		{String("CCC"), Null(), String(""), Null(), Null(), Null(), Null(), Null()},
	}
	for _, r := range rows {
		require.NoError(t, tbl.Append(r))
	}
	return tbl
}

func TestTable_Append(t *testing.T) {
	tbl := New([]*schema.ColumnSchema{{ColumnName: "a", Type: schema.TypeVarchar}})
	assert.Error(t, tbl.Append(Row{String("x"), String("y")}))
	assert.NoError(t, tbl.Append(Row{String("x")}))
	assert.Equal(t, 1, tbl.Len())
}

func TestTable_Validate(t *testing.T) {
	tbl := testTable(t)
	got, err := tbl.Validate(schema.RequiredColumns())
	require.NoError(t, err)
	assert.Same(t, tbl, got)

	projected, err := tbl.Project([]string{"location", "date"})
	require.NoError(t, err)
	_, err = projected.Validate(schema.RequiredColumns())
	var schemaErr *schema.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, []string{"total_cases", "new_cases", "total_deaths", "new_deaths", "population"}, schemaErr.Missing)
}

func TestTable_Project(t *testing.T) {
	tbl := testTable(t)
	required := schema.RequiredColumns()

	projected, err := tbl.Project(required)
	require.NoError(t, err)
	assert.Equal(t, required, projected.ColumnNames())
	assert.Equal(t, tbl.Len(), projected.Len())
	assert.Equal(t, String("A"), projected.Rows[0][0])
	assert.Equal(t, Number(100), projected.Rows[0][6])

	// idempotent
	again, err := projected.Project(required)
	require.NoError(t, err)
	assert.Equal(t, projected, again)

	// the source table is not modified
	assert.Len(t, tbl.Columns, 8)

	_, err = tbl.Project([]string{"location", "missing"})
	assert.Error(t, err)
}

func TestTable_CoerceDate(t *testing.T) {
	tbl := testTable(t)
	coerced, err := tbl.CoerceDate("date")
	require.NoError(t, err)

	assert.Equal(t, tbl.Len(), coerced.Len())
	dateIdx := coerced.ColumnIndex("date")
	assert.Equal(t, schema.TypeDate, coerced.Columns[dateIdx].Type)

	want := []Value{
		Date(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)),
		Date(time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)),
		Null(),
		Date(time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)),
		Null(),
	}
	got, err := coerced.Column("date")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// original untouched
	orig, _ := tbl.Column("date")
	assert.Equal(t, String("not a date"), orig[2])

	// coercing twice keeps the dates
	twice, err := coerced.CoerceDate("date")
	require.NoError(t, err)
	assert.Equal(t, coerced, twice)

	_, err = tbl.CoerceDate("missing")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{in: "2021-03-04", want: time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC), ok: true},
		{in: " 2021-03-04 ", want: time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC), ok: true},
		{in: "2021/03/04", want: time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC), ok: true},
		{in: "2021-03-04 10:11:12", want: time.Date(2021, 3, 4, 10, 11, 12, 0, time.UTC), ok: true},
		{in: "2021-13-01", ok: false},
		{in: "yesterday", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseDate(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.want.Equal(got))
			}
		})
	}
}

func TestTable_DistinctLocations(t *testing.T) {
	tbl := testTable(t)
	got, err := tbl.DistinctLocations("location")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, got)

	// deterministic across calls
	again, _ := tbl.DistinctLocations("location")
	assert.Equal(t, got, again)

	_, err = tbl.DistinctLocations("missing")
	assert.Error(t, err)
}

func TestTable_FilterByLocation(t *testing.T) {
	tbl := testTable(t)

	tests := []struct {
		name      string
		key       string
		wantIso   []string
		wantEmpty bool
	}{
		{name: "A", key: "A", wantIso: []string{"AAA", "AAA"}},
		{name: "B", key: "B", wantIso: []string{"BBB", "BBB"}},
		{name: "not present", key: "C", wantEmpty: true},
		{name: "case sensitive", key: "a", wantEmpty: true},
		{name: "empty key does not match absent", key: "", wantEmpty: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tbl.FilterByLocation("location", tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.wantEmpty, got.Empty())
			assert.Equal(t, tbl.ColumnNames(), got.ColumnNames())

			locIdx := got.ColumnIndex("location")
			var iso []string
			for _, r := range got.Rows {
				assert.Equal(t, tt.key, r[locIdx].String())
				iso = append(iso, r[0].String())
			}
			assert.Equal(t, tt.wantIso, iso)
		})
	}

	// original relative order is kept
	a, _ := tbl.FilterByLocation("location", "A")
	assert.Equal(t, String("2020-01-01"), a.Rows[0][2])
	assert.Equal(t, String("2020-01-02"), a.Rows[1][2])
}

func TestTable_Head(t *testing.T) {
	tbl := testTable(t)
	assert.Equal(t, 2, tbl.Head(2).Len())
	assert.Equal(t, 5, tbl.Head(50).Len())
	assert.Equal(t, 0, tbl.Head(-1).Len())
}

func TestTable_Describe(t *testing.T) {
	tbl := New([]*schema.ColumnSchema{
		{ColumnName: "location", Type: schema.TypeVarchar},
		{ColumnName: "cases", Type: schema.TypeDouble},
		{ColumnName: "single", Type: schema.TypeDouble},
		{ColumnName: "none", Type: schema.TypeDouble},
	})
	for i, v := range []float64{4, 2, 1, 3} {
		single := Null()
		if i == 0 {
			single = Number(7)
		}
		require.NoError(t, tbl.Append(Row{String("A"), Number(v), single, Null()}))
	}
	// absent values are ignored
	require.NoError(t, tbl.Append(Row{String("A"), Null(), Null(), Null()}))

	stats := tbl.Describe()
	require.Len(t, stats, 3)

	cases := stats[0]
	assert.Equal(t, "cases", cases.Column)
	assert.Equal(t, 4, cases.Count)
	assert.InDelta(t, 2.5, cases.Mean, 1e-9)
	assert.InDelta(t, math.Sqrt(5.0/3.0), cases.Std, 1e-9)
	assert.Equal(t, 1.0, cases.Min)
	assert.InDelta(t, 1.75, cases.Q25, 1e-9)
	assert.InDelta(t, 2.5, cases.Median, 1e-9)
	assert.InDelta(t, 3.25, cases.Q75, 1e-9)
	assert.Equal(t, 4.0, cases.Max)

	single := stats[1]
	assert.Equal(t, 1, single.Count)
	assert.Equal(t, 7.0, single.Mean)
	assert.Equal(t, 7.0, single.Median)
	assert.True(t, math.IsNaN(single.Std))

	none := stats[2]
	assert.Equal(t, 0, none.Count)
	assert.True(t, math.IsNaN(none.Mean))

	b, err := none.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"column":"none","count":0,"mean":null,"std":null,"min":null,"25%":null,"50%":null,"75%":null,"max":null}`, string(b))
}

func TestLinearQuantile(t *testing.T) {
	tests := []struct {
		name   string
		p      float64
		values []float64
		want   float64
	}{
		{name: "single value", p: 0.25, values: []float64{5}, want: 5},
		{name: "lower quartile interpolates", p: 0.25, values: []float64{1, 2, 3, 4}, want: 1.75},
		{name: "odd count median", p: 0.5, values: []float64{1, 2, 10}, want: 2},
		{name: "upper quartile interpolates", p: 0.75, values: []float64{0, 10, 20, 30, 40, 50}, want: 37.5},
		{name: "max", p: 1, values: []float64{1, 2, 3}, want: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, linearQuantile(tt.p, tt.values), 1e-9)
		})
	}
}

func TestTable_Series(t *testing.T) {
	tbl := testTable(t)
	coerced, err := tbl.CoerceDate("date")
	require.NoError(t, err)

	points, err := coerced.Series("date", "total_cases")
	require.NoError(t, err)
	// row 3 has no date, row 4 no cases, row 5 neither
	require.Len(t, points, 2)
	assert.Equal(t, 1.0, points[0].Value)
	assert.Equal(t, 3.0, points[1].Value)

	s := Summarise(points)
	assert.Equal(t, 2, s.Points)
	assert.Equal(t, 3.0, s.Latest)
	assert.Equal(t, 3.0, s.Peak.Value)
	assert.Equal(t, time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC), s.Last)

	assert.Equal(t, SeriesSummary{}, Summarise(nil))

	_, err = coerced.Series("date", "missing")
	assert.Error(t, err)
}

func TestValue(t *testing.T) {
	v, err := ParseValue(schema.TypeDouble, "12.5")
	require.NoError(t, err)
	assert.Equal(t, Number(12.5), v)

	v, err = ParseValue(schema.TypeDouble, "")
	require.NoError(t, err)
	assert.True(t, v.IsNull())

	_, err = ParseValue(schema.TypeDouble, "abc")
	assert.Error(t, err)

	for _, raw := range []string{"NaN", "nan", "NA", "N/A", "null", "NULL", "None", "#N/A", "<NA>", " NaN "} {
		v, err = ParseValue(schema.TypeDouble, raw)
		require.NoError(t, err, raw)
		assert.True(t, v.IsNull(), raw)
	}
	v, err = ParseValue(schema.TypeVarchar, "NA")
	require.NoError(t, err)
	assert.True(t, v.IsNull())

	for _, raw := range []string{"Inf", "-Inf", "+Infinity", "1e400"} {
		_, err = ParseValue(schema.TypeDouble, raw)
		assert.Error(t, err, raw)
	}

	v, err = ParseValue(schema.TypeDate, "2020-01-01")
	require.NoError(t, err)
	assert.Equal(t, String("2020-01-01"), v)

	// absent is distinct from zero and from the empty string
	assert.NotEqual(t, Null(), Number(0))
	assert.NotEqual(t, Null(), String(""))

	b, err := Date(time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2020-01-02"`, string(b))
	b, _ = Null().MarshalJSON()
	assert.Equal(t, "null", string(b))
	b, err = Number(math.NaN()).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
	assert.Equal(t, "1.5", Number(1.5).String())
}
