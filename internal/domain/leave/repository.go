package leave

import (
	"context"
)

// LeaveRepository - interface for leave_requests and leave_balances tables
type LeaveRepository interface {
	// ListByEmployee returns classified leave requests, newest first
	ListByEmployee(ctx context.Context, employeeID string) ([]Record, error)

	// GetBalance returns ErrBalanceNotFound when the employee has no balance row
	GetBalance(ctx context.Context, employeeID string) (BalanceSnapshot, error)
}
