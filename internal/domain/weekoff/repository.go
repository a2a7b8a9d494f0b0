package weekoff

import (
	"context"
	"time"
)

// WeekOffRepository - interface for week_offs table
type WeekOffRepository interface {
	ListByEmployee(ctx context.Context, employeeID string) ([]WeekOff, error)
	GetByWeek(ctx context.Context, employeeID string, weekStart, weekEnd time.Time) (WeekOff, error)
	// Upsert inserts or replaces the record keyed by (employee_id, week_start, week_end)
	Upsert(ctx context.Context, record WeekOff) (WeekOff, error)
}
