package model

import (
	"strings"
	"time"
)

// Timestamp wraps time.Time with a lenient JSON decoder. Imported backups may
// carry dates in several layouts, or strings that do not parse at all; a bad
// date must not abort the whole decode, so an unparsable value yields the
// zero timestamp and aggregation excludes the record from date-bucketed views.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps a time.Time.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// Accepted layouts, most specific first.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses s against the accepted layouts. An empty or
// unparsable string yields the zero timestamp and ok=false.
func ParseTimestamp(s string) (Timestamp, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Timestamp{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{Time: t}, true
		}
	}
	return Timestamp{}, false
}

// MarshalJSON encodes the timestamp as an RFC3339 string.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.UTC().Format(time.RFC3339Nano) + `"`), nil
}

// UnmarshalJSON decodes a JSON string into the timestamp. Null and
// unparsable values decode to the zero timestamp without error.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		*t = Timestamp{}
		return nil
	}
	s = strings.Trim(s, `"`)
	parsed, _ := ParseTimestamp(s)
	*t = parsed
	return nil
}

// SameMonth reports whether the timestamp falls in the same calendar month
// as ref, evaluated in ref's location.
func (t Timestamp) SameMonth(ref time.Time) bool {
	if t.IsZero() {
		return false
	}
	in := t.In(ref.Location())
	return in.Year() == ref.Year() && in.Month() == ref.Month()
}
