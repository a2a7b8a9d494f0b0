package weekoff

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/weekoff"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/pkg/validator"
	attendanceService "github.com/cmlabs-hris/hris-timesheet-go/internal/service/attendance"
	"github.com/google/uuid"
)

type WeekOffServiceImpl struct {
	weekoff.WeekOffRepository
}

func NewWeekOffService(weekOffRepo weekoff.WeekOffRepository) *WeekOffServiceImpl {
	return &WeekOffServiceImpl{WeekOffRepository: weekOffRepo}
}

var _ weekoff.WeekOffService = (*WeekOffServiceImpl)(nil)
var _ attendanceService.WeekOffSaver = (*WeekOffServiceImpl)(nil)

// ListMyWeekOffs implements weekoff.WeekOffService.
func (s *WeekOffServiceImpl) ListMyWeekOffs(ctx context.Context, employeeID string) ([]weekoff.WeekOffResponse, error) {
	if validator.IsEmpty(employeeID) {
		return nil, employee.ErrEmployeeIdentityUnknown
	}

	records, err := s.WeekOffRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, &attendance.CollaboratorError{Op: "fetch week-offs", Err: err}
	}

	resp := make([]weekoff.WeekOffResponse, 0, len(records))
	for _, r := range records {
		resp = append(resp, weekoff.NewWeekOffResponse(r))
	}
	return resp, nil
}

// SaveWeekOff implements weekoff.WeekOffService.
func (s *WeekOffServiceImpl) SaveWeekOff(ctx context.Context, employeeID string, req weekoff.SaveWeekOffRequest) (weekoff.WeekOffResponse, error) {
	if validator.IsEmpty(employeeID) {
		return weekoff.WeekOffResponse{}, employee.ErrEmployeeIdentityUnknown
	}
	if err := req.Validate(); err != nil {
		return weekoff.WeekOffResponse{}, err
	}

	records, err := s.WeekOffRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return weekoff.WeekOffResponse{}, &attendance.CollaboratorError{Op: "fetch week-offs", Err: err}
	}

	ledger := attendanceService.NewLedger(employeeID, req.Start, records)
	ledger.ClearSelection()
	for _, day := range req.Days {
		if err := ledger.ToggleWeekOff(day); err != nil {
			return weekoff.WeekOffResponse{}, err
		}
	}

	saved, err := ledger.SaveWeekOff(ctx, s)
	if err != nil {
		return weekoff.WeekOffResponse{}, err
	}

	slog.Info("Week-off saved", "employee_id", employeeID, "week_start", req.WeekStart, "off_days", len(saved.OffDays))
	return weekoff.NewWeekOffResponse(saved), nil
}

// UpsertWeekOff implements attendanceService.WeekOffSaver.
func (s *WeekOffServiceImpl) UpsertWeekOff(ctx context.Context, record weekoff.WeekOff) (weekoff.WeekOff, error) {
	existing, err := s.WeekOffRepository.GetByWeek(ctx, record.EmployeeID, record.WeekStart, record.WeekEnd)
	switch {
	case err == nil:
		record.ID = existing.ID
	case errors.Is(err, weekoff.ErrWeekOffNotFound):
		id, err := uuid.NewV7()
		if err != nil {
			return weekoff.WeekOff{}, fmt.Errorf("failed to generate week-off id: %w", err)
		}
		record.ID = id.String()
	default:
		return weekoff.WeekOff{}, fmt.Errorf("failed to get week-off: %w", err)
	}

	saved, err := s.WeekOffRepository.Upsert(ctx, record)
	if err != nil {
		return weekoff.WeekOff{}, fmt.Errorf("failed to upsert week-off: %w", err)
	}
	return saved, nil
}
