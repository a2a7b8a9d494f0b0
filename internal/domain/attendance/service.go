package attendance

import (
	"context"
	"time"
)

// AttendanceService drives the weekly timesheet for the authenticated employee
type AttendanceService interface {
	// GetWeek rebuilds the rows of the week containing ref
	GetWeek(ctx context.Context, employeeID string, ref time.Time) (WeekResponse, error)

	// GetDaily returns the stored days of a month
	GetDaily(ctx context.Context, employeeID string, year int, month time.Month) (DailyResponse, error)

	// ValidateWeek checks a submission without storing it
	ValidateWeek(ctx context.Context, employeeID string, req SubmitWeekRequest) (SubmissionPayload, error)

	SubmitWeek(ctx context.Context, employeeID string, req SubmitWeekRequest) (WeekResponse, error)
}
