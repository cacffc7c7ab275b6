package models

import (
	"encoding/json"
	"strings"
	"time"
)

// FlexibleTime is a custom time type that can unmarshal both RFC3339 and "YYYY-MM-DD" formats
type FlexibleTime struct {
	time.Time
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexibleTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		f.Time = time.Time{}
		return nil
	}

	// Try parsing as RFC3339 full timestamp first
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		f.Time = t
		return nil
	}

	// Zone-less timestamps are common from clients
	t, err = time.Parse("2006-01-02T15:04:05", s)
	if err == nil {
		f.Time = t
		return nil
	}

	// If that fails, try parsing as a date-only string
	t, err = time.Parse("2006-01-02", s)
	if err != nil {
		return err
	}
	f.Time = t
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (f FlexibleTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Time)
}
