package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type simpleStructNoTags struct {
	StringField  string
	IntegerField int
	Float64Field float64
	PtrField     *float64
	TimeField    time.Time
	unexported   string
}

type structWithTags struct {
	Renamed   string    `column:"name=renamed_field"`
	Retyped   string    `column:"type=date"`
	Both      float64   `column:"name=both_field,type=VARCHAR"`
	Skipped   string    `column:"-"`
	TimeField time.Time `column:"type=DATE"`
}

type structWithBadTag struct {
	Field string `column:"type=STRUCT"`
}

type structWithUnsupportedField struct {
	Field map[string]string
}

func TestSchemaFromStruct(t *testing.T) {
	tests := []struct {
		name    string
		s       any
		want    *RowSchema
		wantErr bool
	}{
		{
			name: "simple no tags",
			s:    simpleStructNoTags{},
			want: &RowSchema{
				Columns: []*ColumnSchema{
					{SourceName: "StringField", ColumnName: "string_field", Type: TypeVarchar},
					{SourceName: "IntegerField", ColumnName: "integer_field", Type: TypeDouble},
					{SourceName: "Float64Field", ColumnName: "float_64_field", Type: TypeDouble},
					{SourceName: "PtrField", ColumnName: "ptr_field", Type: TypeDouble},
					{SourceName: "TimeField", ColumnName: "time_field", Type: TypeDate},
				},
			},
		},
		{
			name: "pointer to struct with tags",
			s:    &structWithTags{},
			want: &RowSchema{
				Columns: []*ColumnSchema{
					{SourceName: "Renamed", ColumnName: "renamed_field", Type: TypeVarchar},
					{SourceName: "Retyped", ColumnName: "retyped", Type: TypeDate},
					{SourceName: "Both", ColumnName: "both_field", Type: TypeVarchar},
					{SourceName: "TimeField", ColumnName: "time_field", Type: TypeDate},
				},
			},
		},
		{
			name:    "invalid tag type",
			s:       structWithBadTag{},
			wantErr: true,
		},
		{
			name:    "unsupported field type",
			s:       structWithUnsupportedField{},
			wantErr: true,
		},
		{
			name:    "not a struct",
			s:       "hello",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SchemaFromStruct(tt.s)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequiredColumns(t *testing.T) {
	assert.Equal(t,
		[]string{"location", "date", "total_cases", "new_cases", "total_deaths", "new_deaths", "population"},
		RequiredColumns())

	s := CovidSchema()
	assert.Equal(t, TypeVarchar, s.Column("location").Type)
	assert.Equal(t, TypeDate, s.Column("date").Type)
	assert.Equal(t, TypeDouble, s.Column("population").Type)
	// undeclared columns default to VARCHAR
	assert.Equal(t, TypeVarchar, s.Column("iso_code").Type)
}
