package weekoff

import "context"

type WeekOffService interface {
	ListMyWeekOffs(ctx context.Context, employeeID string) ([]WeekOffResponse, error)
	SaveWeekOff(ctx context.Context, employeeID string, req SaveWeekOffRequest) (WeekOffResponse, error)
}
