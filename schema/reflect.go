package schema

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/iancoleman/strcase"
)

func SchemaFromStruct(s any) (*RowSchema, error) {
	return SchemaFromType(reflect.TypeOf(s))
}

// SchemaFromType builds a row schema from the exported fields of a struct type
// column names default to the snake cased field name, types are inferred from the field type
// unless overridden with a `column` tag
func SchemaFromType(t reflect.Type) (*RowSchema, error) {
	var res = &RowSchema{}

	// If rowStruct is a pointer, get the element type
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected a struct, got %s", t.Kind())
	}

	var errorList []error
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		var tag = &ColumnTag{}
		if tagString := field.Tag.Get("column"); tagString != "" {
			var err error
			tag, err = ParseColumnTag(tagString)
			if err != nil {
				errorList = append(errorList, err)
				continue
			}
			if tag.Skip {
				continue
			}
		}

		// if the tag does not specify a name, use the field name
		if tag.Name == "" {
			tag.Name = strcase.ToSnake(field.Name)
		}
		// if the tag does not specify a type, infer from the field type
		if tag.Type == "" {
			columnType, err := columnTypeForField(field.Type)
			if err != nil {
				errorList = append(errorList, fmt.Errorf("failed to get schema for field %s: %w", field.Name, err))
				continue
			}
			tag.Type = columnType
		}

		res.Columns = append(res.Columns, &ColumnSchema{
			SourceName: field.Name,
			ColumnName: tag.Name,
			Type:       tag.Type,
		})
	}

	if len(errorList) > 0 {
		return nil, errors.Join(errorList...)
	}

	return res, nil
}

func columnTypeForField(t reflect.Type) (ColumnType, error) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t == reflect.TypeOf(time.Time{}) {
		return TypeDate, nil
	}

	switch t.Kind() {
	case reflect.String:
		return TypeVarchar, nil
	case reflect.Float32, reflect.Float64,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return TypeDouble, nil
	default:
		return "", fmt.Errorf("unsupported type %s", t)
	}
}
