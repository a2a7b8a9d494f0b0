package leave

import (
	"context"
)

type LeaveService interface {
	ListMyLeaves(ctx context.Context, employeeID string, filter LeaveFilter) ([]LeaveResponse, error)
	GetMyBalance(ctx context.Context, employeeID string) (BalanceResponse, error)
}
