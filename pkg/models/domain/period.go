package domain

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	start, end = Day(start), Day(end)
	if end.Before(start) {
		return DateRange{}, fmt.Errorf("start date %s is after end date %s: %w",
			start.Format(DateLayout), end.Format(DateLayout), ErrValidation)
	}
	return DateRange{Start: start, End: end}, nil
}

// Label renders the range as "{start} - {end}".
func (r DateRange) Label() string {
	return fmt.Sprintf("%s - %s", r.Start.Format(DateLayout), r.End.Format(DateLayout))
}

// Days returns the number of calendar days covered, both ends included.
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// Day truncates t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, ErrValidation)
	}
	return t, nil
}
