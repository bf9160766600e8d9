package calendar

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidDate = errors.New("calendar: invalid date")

const layout = "2006-01-02"

// Date is a pure calendar day (year, month, day) with no time-of-day or
// timezone component. The zero value is not a valid date.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a normalized Date; out-of-range components roll over the
// same way time.Date does (April 31 becomes May 1).
func NewDate(year int, month time.Month, day int) Date {
	return fromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// Parse reads a Date from its ISO form, e.g. "2025-04-05".
func Parse(value string) (Date, error) {
	t, err := time.Parse(layout, value)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return fromTime(t), nil
}

// MustParse is Parse that panics; for fixtures and tests.
func MustParse(value string) Date {
	d, err := Parse(value)
	if err != nil {
		panic(err)
	}
	return d
}

func fromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// AddDays returns the date n whole days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return fromTime(d.time().AddDate(0, 0, n))
}

// Weekday uses Sunday-first numbering: Sunday=0 .. Saturday=6.
func (d Date) Weekday() time.Weekday {
	return d.time().Weekday()
}

func (d Date) Before(other Date) bool {
	return d.time().Before(other.time())
}

func (d Date) After(other Date) bool {
	return d.time().After(other.time())
}

// Compare orders dates lexicographically on (year, month, day): -1, 0 or +1.
func (d Date) Compare(other Date) int {
	return d.time().Compare(other.time())
}

// DaysUntil counts whole days from d to other; negative when other is earlier.
func (d Date) DaysUntil(other Date) int {
	return int(other.time().Sub(d.time()) / (24 * time.Hour))
}

// DaysInMonth returns the number of days in d's month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the Sunday-first column index of the 1st of the month.
func FirstWeekday(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// String renders the ISO form, e.g. "2025-04-05".
func (d Date) String() string {
	return d.time().Format(layout)
}

// MarshalJSON encodes the date as an ISO string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes an ISO date string.
func (d *Date) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("%w: %s", ErrInvalidDate, string(data))
	}
	parsed, err := Parse(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
