package weekoff

import (
	"sort"
	"time"
)

// MaxOffDays is the most week-off days an employee may flag in a single week.
const MaxOffDays = 2

// WeekOff is the set of non-working days an employee flagged for one week range.
// Identified by (EmployeeID, WeekStart, WeekEnd).
type WeekOff struct {
	ID         string
	EmployeeID string
	WeekStart  time.Time
	WeekEnd    time.Time
	OffDays    []time.Weekday
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsOff reports whether day is one of the record's off days.
func (w WeekOff) IsOff(day time.Weekday) bool {
	for _, d := range w.OffDays {
		if d == day {
			return true
		}
	}
	return false
}

// DaySet is a set of weekdays.
type DaySet map[time.Weekday]struct{}

// NewDaySet builds a set from days, dropping duplicates.
func NewDaySet(days ...time.Weekday) DaySet {
	s := make(DaySet, len(days))
	for _, d := range days {
		s[d] = struct{}{}
	}
	return s
}

func (s DaySet) Has(d time.Weekday) bool {
	_, ok := s[d]
	return ok
}

// Sorted returns the days in Monday..Sunday order.
func (s DaySet) Sorted() []time.Weekday {
	days := make([]time.Weekday, 0, len(s))
	for d := range s {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool {
		return mondayIndex(days[i]) < mondayIndex(days[j])
	})
	return days
}

func (s DaySet) Clone() DaySet {
	c := make(DaySet, len(s))
	for d := range s {
		c[d] = struct{}{}
	}
	return c
}

func mondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}
