package table

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/turbot/owid-covid-dashboard/schema"
)

// DateLayout is the layout used to render date values
const DateLayout = "2006-01-02"

// dateLayouts are tried in order when coercing a cell to a date
var dateLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006/01/02",
}

// naTokens are the cell values read as absent, matching the default NA values of pandas read_csv
var naTokens = map[string]struct{}{
	"#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {}, "-NaN": {}, "-nan": {},
	"1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {}, "NA": {}, "NULL": {}, "NaN": {},
	"None": {}, "n/a": {}, "nan": {}, "null": {},
}

// IsNA reports whether a raw cell denotes an absent value
func IsNA(raw string) bool {
	if raw == "" {
		return true
	}
	_, ok := naTokens[raw]
	return ok
}

type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindDate
)

// Value is a single table cell
// the zero Value is absent (null), which is distinct from a zero number or an empty string
type Value struct {
	kind Kind
	str  string
	num  float64
	date time.Time
}

func Null() Value {
	return Value{}
}

func String(s string) Value {
	return Value{kind: KindString, str: s}
}

func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

func Date(t time.Time) Value {
	return Value{kind: KindDate, date: t}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsNull() bool {
	return v.kind == KindNull
}

func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

func (v Value) AsNumber() (float64, bool) {
	return v.num, v.kind == KindNumber
}

func (v Value) AsDate() (time.Time, bool) {
	return v.date, v.kind == KindDate
}

// String renders the value for display - absent values render as an empty string
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindDate:
		return v.date.Format(DateLayout)
	default:
		return ""
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString, KindDate:
		return json.Marshal(v.String())
	case KindNumber:
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
			return []byte("null"), nil
		}
		return json.Marshal(v.num)
	default:
		return []byte("null"), nil
	}
}

// ParseValue converts a raw CSV cell into a Value of the given column type.
// Empty cells and NA tokens are absent. DATE cells are kept as text - use CoerceDate to parse them.
func ParseValue(columnType schema.ColumnType, raw string) (Value, error) {
	if IsNA(raw) {
		return Null(), nil
	}
	switch columnType {
	case schema.TypeDouble:
		trimmed := strings.TrimSpace(raw)
		if IsNA(trimmed) {
			return Null(), nil
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return Null(), fmt.Errorf("invalid number %q", raw)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Null(), fmt.Errorf("non-finite number %q", raw)
		}
		return Number(f), nil
	default:
		return String(raw), nil
	}
}

// parseDate tries each supported layout, returning false if none match
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
