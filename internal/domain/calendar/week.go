package calendar

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the ISO date format used for every date key on the wire and in storage.
const DateLayout = "2006-01-02"

// DaysPerWeek is the number of days in a calendar week.
const DaysPerWeek = 7

// Week is a Monday to Sunday window. Start is always a Monday at midnight,
// End is the Sunday six days later and Days increases by one calendar day.
type Week struct {
	Start time.Time
	End   time.Time
	Days  [DaysPerWeek]time.Time
}

// GetWeekDates returns the Monday-start week containing ref.
// This is the single place week boundaries are computed.
func GetWeekDates(ref time.Time) Week {
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())

	// Sunday is day 7 so it pulls the Monday back six days
	dow := int(day.Weekday())
	if dow == 0 {
		dow = 7
	}
	start := day.AddDate(0, 0, -(dow - 1))

	var w Week
	w.Start = start
	w.End = start.AddDate(0, 0, DaysPerWeek-1)
	for i := range w.Days {
		w.Days[i] = start.AddDate(0, 0, i)
	}
	return w
}

// Next returns the following week.
func (w Week) Next() Week {
	return GetWeekDates(w.Start.AddDate(0, 0, DaysPerWeek))
}

// Prev returns the preceding week.
func (w Week) Prev() Week {
	return GetWeekDates(w.Start.AddDate(0, 0, -DaysPerWeek))
}

// Contains reports whether t falls on one of the week's days.
func (w Week) Contains(t time.Time) bool {
	key := FormatDate(t)
	for _, d := range w.Days {
		if FormatDate(d) == key {
			return true
		}
	}
	return false
}

// Matches reports whether the week spans exactly start..end (date precision).
func (w Week) Matches(start, end time.Time) bool {
	return FormatDate(w.Start) == FormatDate(start) && FormatDate(w.End) == FormatDate(end)
}

// Key returns the ISO start and end dates of the week.
func (w Week) Key() (string, string) {
	return FormatDate(w.Start), FormatDate(w.End)
}

// FormatDate formats t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD date in UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

// ParseDayName parses a weekday name, full ("Saturday") or short ("sat"), ignoring case.
func ParseDayName(name string) (time.Weekday, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return 0, fmt.Errorf("empty day name")
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if n == full || n == full[:3] {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown day name %q", name)
}

// DayNames returns the names of days in the given order.
func DayNames(days []time.Weekday) []string {
	names := make([]string, 0, len(days))
	for _, d := range days {
		names = append(names, d.String())
	}
	return names
}
