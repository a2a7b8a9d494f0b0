package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

// ListByEmployee implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id, lt.name, lr.start_date, lr.end_date,
			   lr.no_of_days::text, lr.total_days::text, lr.status, lr.reason, lr.created_at
		FROM leave_requests lr
		INNER JOIN leave_types lt ON lt.id = lr.leave_type_id
		WHERE lr.employee_id = $1
		ORDER BY lr.start_date DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []leave.Record
	for rows.Next() {
		var raw leave.RawLeave
		var noOfDays, totalDays *string
		err := rows.Scan(
			&raw.ID,
			&raw.EmployeeID,
			&raw.LeaveType,
			&raw.StartDate,
			&raw.EndDate,
			&noOfDays,
			&totalDays,
			&raw.Status,
			&raw.Reason,
			&raw.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if raw.NoOfDays, err = parseDecimal(noOfDays); err != nil {
			return nil, fmt.Errorf("leave request %s no_of_days: %w", raw.ID, err)
		}
		if raw.TotalDays, err = parseDecimal(totalDays); err != nil {
			return nil, fmt.Errorf("leave request %s total_days: %w", raw.ID, err)
		}
		records = append(records, leave.NewRecord(raw))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// GetBalance implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetBalance(ctx context.Context, employeeID string) (leave.BalanceSnapshot, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, sick_leaves::text, casual_leaves::text, paid_leaves::text, updated_at
		FROM leave_balances
		WHERE employee_id = $1
	`

	var b leave.BalanceSnapshot
	var sick, casual, paid string
	err := q.QueryRow(ctx, query, employeeID).Scan(&b.EmployeeID, &sick, &casual, &paid, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.BalanceSnapshot{}, leave.ErrBalanceNotFound
		}
		return leave.BalanceSnapshot{}, err
	}

	if b.SickLeaves, err = decimal.NewFromString(sick); err != nil {
		return leave.BalanceSnapshot{}, fmt.Errorf("sick_leaves: %w", err)
	}
	if b.CasualLeaves, err = decimal.NewFromString(casual); err != nil {
		return leave.BalanceSnapshot{}, fmt.Errorf("casual_leaves: %w", err)
	}
	if b.PaidLeaves, err = decimal.NewFromString(paid); err != nil {
		return leave.BalanceSnapshot{}, fmt.Errorf("paid_leaves: %w", err)
	}
	return b, nil
}

func parseDecimal(s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
