package attendance

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidStatus      = errors.New("status must be Present, Leave or WFH")
	ErrDayIsWeekOff       = errors.New("day is a week-off day and cannot be edited")
	ErrRowIndexOutOfRange = errors.New("row index out of range")
	ErrDateOutsideWeek    = errors.New("date is outside the active week")
)

// CollaboratorError reports a failed fetch or submit at the I/O boundary.
type CollaboratorError struct {
	Op      string
	Message string
	Err     error
}

func (e *CollaboratorError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}

// Submission rule messages
var (
	ErrWeekOffViolation = errors.New("week-off day cannot carry attendance")
	ErrNoAttendanceData = errors.New("no valid attendance data: provide data for at least one non-week-off day")
	ErrHoursOutOfRange  = errors.New("hours must be between 0 and 24")
)
