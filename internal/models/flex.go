package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexID is an identifier that may be stored as a JSON number or a JSON
// string. The seed catalog uses numeric event ids while bookings use string
// ids, so the type remembers which form it was parsed from and marshals the
// same form back out.
type FlexID string

func (id FlexID) String() string {
	return string(id)
}

// Numeric reports the id as a float64 when it parses as one.
func (id FlexID) Numeric() (float64, bool) {
	n, err := strconv.ParseFloat(string(id), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (id *FlexID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = FlexID(n.String())
	return nil
}

func (id FlexID) MarshalJSON() ([]byte, error) {
	s := string(id)
	// Canonical integers ("1", "42") marshal back as numbers; anything else
	// ("b17...", "007") stays a string.
	if n, err := strconv.ParseInt(s, 10, 64); err == nil && strconv.FormatInt(n, 10) == s {
		return []byte(s), nil
	}
	return json.Marshal(s)
}

// FlexFloat accepts a JSON number, a numeric string, or null. Catalog writes
// coming from forms often carry "350" instead of 350; the original backend
// coerced those with Number(), so the boundary here does the same.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexFloat(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*f = 0
		return nil
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexFloat(parsed)
	return nil
}

func (f FlexFloat) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(f))
}
