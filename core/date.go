package core

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

var (
	NowFunc = time.Now // mockable

	ErrInvalidDate  = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidMonth = errors.New("invalid month format, use YYYY-MM")
)

// Date is a calendar day (UTC midnight) serialized as YYYY-MM-DD.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func Today() Date {
	return DateOf(NowFunc())
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return DateOf(t), nil
}

// ParseMonth accepts YYYY-MM or YYYY-MM-DD and returns the first day of that month.
func ParseMonth(s string) (Date, error) {
	s = strings.TrimSpace(s)
	layout := MonthLayout
	if len(s) > len(MonthLayout) {
		layout = DateLayout
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return Date{}, ErrInvalidMonth
	}
	return DateOf(t).MonthStart(), nil
}

// MonthOrCurrent parses s with ParseMonth, defaulting to the current month when s is empty.
func MonthOrCurrent(s string) (Date, error) {
	if strings.TrimSpace(s) == "" {
		return Today().MonthStart(), nil
	}
	return ParseMonth(s)
}

func (d Date) MonthStart() Date {
	return NewDate(d.Year(), d.Month(), 1)
}

func (d Date) MonthEnd() Date {
	return NewDate(d.Year(), d.Month()+1, 0)
}

func (d Date) DaysInMonth() int {
	return d.MonthEnd().Day()
}

func (d Date) Before(o Date) bool { return d.Time.Before(o.Time) }
func (d Date) After(o Date) bool  { return d.Time.After(o.Time) }
func (d Date) Equal(o Date) bool  { return d.Time.Equal(o.Time) }

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// MonthString formats d as YYYY-MM.
func (d Date) MonthString() string {
	return d.Format(MonthLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	// also accept full timestamps sent by date pickers
	if len(s) > len(DateLayout) {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			*d = DateOf(t)
			return nil
		}
	}
	date, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = date
	return nil
}

// UnmarshalParam lets echo bind query and form values into a Date.
func (d *Date) UnmarshalParam(src string) error {
	if src == "" {
		*d = Date{}
		return nil
	}
	date, err := ParseDate(src)
	if err != nil {
		return err
	}
	*d = date
	return nil
}

// DatePtr returns nil for the zero Date.
func DatePtr(d Date) *Date {
	if d.IsZero() {
		return nil
	}
	return &d
}
