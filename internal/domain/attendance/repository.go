package attendance

import (
	"context"
	"time"
)

// AttendanceRepository - interface for timesheet_entries table
type AttendanceRepository interface {
	// GetByRange returns entries for from..to inclusive, ordered by date
	GetByRange(ctx context.Context, employeeID string, from, to time.Time) ([]Entry, error)

	// Upsert replaces the entry for (employee_id, date)
	Upsert(ctx context.Context, entry Entry) error
}
