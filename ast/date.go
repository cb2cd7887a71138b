package ast

import (
	"fmt"
	"time"
)

// dateLayout is the on-disk layout for journal dates, "YYYY-MM-DD".
const dateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day component. It is immutable once
// set on a Transaction (§3 of the journal model).
type Date struct {
	time.Time
}

// NewDate constructs a Date from a time.Time, truncating to the calendar day.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses "YYYY-MM-DD" into a Date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t}, nil
}

// String renders the date in the on-disk layout.
func (d Date) String() string {
	return d.Format(dateLayout)
}

// Equal reports whether two dates name the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.Time.Equal(other.Time)
}
