package pagination

import (
	"encoding/json"
	"fmt"
	"regexp"
	"time"
)

// isoDateLayout is the fixed wire format for date-like cursor fields.
// Decode detects strings of exactly this shape and rehydrates them into
// time values; everything else stays a plain string.
const isoDateLayout = "2006-01-02T15:04:05.000Z"

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z$`)

// FieldKind discriminates the scalar variants a cursor field can hold.
type FieldKind int

const (
	KindString FieldKind = iota
	KindNumber
	KindTime
)

// FieldValue is a tagged scalar carried in a continuation token's fields
// map. Tokens only ever hold the values needed to re-derive the keyset
// predicate for one sort key (a name, a creation timestamp, or a computed
// relevance rank), so a closed set of variants is enough and keeps the
// decode path type-safe.
type FieldValue struct {
	Kind FieldKind
	Str  string
	Num  float64
	Time time.Time
}

// StringValue wraps a string cursor field.
func StringValue(s string) FieldValue { return FieldValue{Kind: KindString, Str: s} }

// NumberValue wraps a numeric cursor field (e.g. a relevance rank).
func NumberValue(f float64) FieldValue { return FieldValue{Kind: KindNumber, Num: f} }

// TimeValue wraps a date-like cursor field.
func TimeValue(t time.Time) FieldValue { return FieldValue{Kind: KindTime, Time: t.UTC()} }

// Scalar returns the underlying value in a form suitable for a query
// argument.
func (v FieldValue) Scalar() any {
	switch v.Kind {
	case KindNumber:
		return v.Num
	case KindTime:
		return v.Time
	default:
		return v.Str
	}
}

// MarshalJSON writes the bare scalar: strings and numbers as-is, times in
// the fixed ISO-8601 millisecond layout.
func (v FieldValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindNumber:
		return json.Marshal(v.Num)
	case KindTime:
		return json.Marshal(v.Time.UTC().Format(isoDateLayout))
	default:
		return json.Marshal(v.Str)
	}
}

// UnmarshalJSON reads a scalar, rehydrating ISO-8601 date strings into time
// values. Non-scalar JSON (objects, arrays, booleans, null) is rejected so
// that a tampered payload cannot smuggle structure into a cursor field.
func (v *FieldValue) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*v = NumberValue(num)
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("cursor field must be a string or number")
	}
	if isoDatePattern.MatchString(str) {
		t, err := time.Parse(isoDateLayout, str)
		if err == nil {
			*v = TimeValue(t)
			return nil
		}
	}
	*v = StringValue(str)
	return nil
}
