// Package models defines the client-side mirrors of StitchDesk backend
// resources. The client holds no authoritative state: every type here is the
// latest known representation of a backend-owned record.
package models

import (
	"fmt"
	"strings"
	"time"
)

// dateLayout is the wire format for date-only fields (order dates, delivery
// dates, invoice dates).
const dateLayout = "2006-01-02"

// Date is a date-only value marshalled as "2006-01-02". The backend uses
// plain dates for business dates and full timestamps for record metadata.
type Date struct {
	time.Time
}

// NewDate returns a Date for the given year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current date.
func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler. Null and empty strings decode to
// the zero Date.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("parse date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// String returns the wire representation.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}
