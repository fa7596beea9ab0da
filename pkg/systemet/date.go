package systemet

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the timestamp format used by every date field of the API.
// The time of day is always midnight on output and discarded on input.
const DateLayout = "2006-01-02T15:04:05"

var jsonNull = []byte("null")

// Date is a calendar date without a time of day. UTC is implied.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the UTC calendar date of t.
func DateOf(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses s in DateLayout. Any time of day is dropped.
// time.Parse accepts trailing fractional seconds the layout does not name,
// so the input must also reformat to itself.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, &DateError{Value: s, Err: err}
	}
	if t.Format(DateLayout) != s {
		return Date{}, &DateError{Value: s, Err: errDateLayout}
	}
	return DateOf(t), nil
}

// Time returns midnight UTC of d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) String() string {
	return d.Time().Format(DateLayout)
}

// MarshalJSON fails for the zero Date, which has no valid wire form.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return nil, &DateError{Value: "", Err: errDateRequired}
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts only a string in DateLayout. A null is rejected
// because a Date value is a required field; optional dates are *Date.
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		return &DateError{Value: "null", Err: errDateRequired}
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &DateError{Value: string(data), Err: err}
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DateError reports a date string that does not match DateLayout.
type DateError struct {
	Value string
	Err   error
}

func (e *DateError) Error() string {
	return fmt.Sprintf("invalid date %q, expected layout %s: %v", e.Value, DateLayout, e.Err)
}

func (e *DateError) Unwrap() error {
	return e.Err
}
