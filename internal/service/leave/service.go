package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
	reconciler *Reconciler
}

func NewLeaveService(leaveRepo leave.LeaveRepository, reconciler *Reconciler) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository: leaveRepo,
		reconciler:      reconciler,
	}
}

// ListMyLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) ListMyLeaves(ctx context.Context, employeeID string, filter leave.LeaveFilter) ([]leave.LeaveResponse, error) {
	if validator.IsEmpty(employeeID) {
		return nil, employee.ErrEmployeeIdentityUnknown
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.LeaveRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	resp := make([]leave.LeaveResponse, 0, len(records))
	for _, r := range records {
		if filter.Status != nil && string(r.DecisionStatus) != *filter.Status {
			continue
		}
		resp = append(resp, leave.LeaveResponse{
			ID:        r.ID,
			LeaveType: r.LeaveType,
			Category:  string(r.Category),
			StartDate: calendar.FormatDate(r.StartDate),
			EndDate:   calendar.FormatDate(r.EndDate),
			Days:      r.Days.InexactFloat64(),
			Status:    r.Status,
			Decision:  string(r.DecisionStatus),
			Reason:    r.Reason,
		})
	}
	return resp, nil
}

// GetMyBalance implements leave.LeaveService.
func (s *LeaveServiceImpl) GetMyBalance(ctx context.Context, employeeID string) (leave.BalanceResponse, error) {
	if validator.IsEmpty(employeeID) {
		return leave.BalanceResponse{}, employee.ErrEmployeeIdentityUnknown
	}

	records, err := s.LeaveRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return leave.BalanceResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	snapshot, err := s.LeaveRepository.GetBalance(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, leave.ErrBalanceNotFound) {
			return leave.BalanceResponse{}, fmt.Errorf("failed to get leave balance: %w", err)
		}
		// No balance row yet means nothing is available
		slog.Warn("Leave balance missing, using zero balance", "employee_id", employeeID)
		snapshot = leave.BalanceSnapshot{EmployeeID: employeeID}
	}

	return leave.NewBalanceResponse(s.reconciler.Reconcile(records, snapshot)), nil
}
