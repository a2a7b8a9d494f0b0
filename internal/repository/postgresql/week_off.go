package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/weekoff"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type weekOffRepositoryImpl struct {
	db *database.DB
}

func NewWeekOffRepository(db *database.DB) weekoff.WeekOffRepository {
	return &weekOffRepositoryImpl{db: db}
}

// ListByEmployee implements weekoff.WeekOffRepository.
func (r *weekOffRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]weekoff.WeekOff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, week_start, week_end, off_days, created_at, updated_at
		FROM week_offs
		WHERE employee_id = $1
		ORDER BY week_start DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []weekoff.WeekOff
	for rows.Next() {
		w, err := scanWeekOff(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// GetByWeek implements weekoff.WeekOffRepository.
func (r *weekOffRepositoryImpl) GetByWeek(ctx context.Context, employeeID string, weekStart, weekEnd time.Time) (weekoff.WeekOff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, week_start, week_end, off_days, created_at, updated_at
		FROM week_offs
		WHERE employee_id = $1 AND week_start = $2 AND week_end = $3
	`

	w, err := scanWeekOff(q.QueryRow(ctx, query, employeeID, weekStart, weekEnd))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return weekoff.WeekOff{}, weekoff.ErrWeekOffNotFound
		}
		return weekoff.WeekOff{}, err
	}
	return w, nil
}

// Upsert implements weekoff.WeekOffRepository.
func (r *weekOffRepositoryImpl) Upsert(ctx context.Context, record weekoff.WeekOff) (weekoff.WeekOff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO week_offs (id, employee_id, week_start, week_end, off_days, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (employee_id, week_start, week_end)
		DO UPDATE SET off_days = EXCLUDED.off_days, updated_at = NOW()
		RETURNING id, employee_id, week_start, week_end, off_days, created_at, updated_at
	`

	saved, err := scanWeekOff(q.QueryRow(ctx, query,
		record.ID,
		record.EmployeeID,
		record.WeekStart,
		record.WeekEnd,
		calendar.DayNames(weekoff.NewDaySet(record.OffDays...).Sorted()),
	))
	if err != nil {
		return weekoff.WeekOff{}, err
	}
	return saved, nil
}

func scanWeekOff(row pgx.Row) (weekoff.WeekOff, error) {
	var w weekoff.WeekOff
	var names []string
	err := row.Scan(
		&w.ID,
		&w.EmployeeID,
		&w.WeekStart,
		&w.WeekEnd,
		&names,
		&w.CreatedAt,
		&w.UpdatedAt,
	)
	if err != nil {
		return weekoff.WeekOff{}, err
	}

	for _, name := range names {
		d, err := calendar.ParseDayName(name)
		if err != nil {
			return weekoff.WeekOff{}, fmt.Errorf("week-off %s: %w", w.ID, err)
		}
		w.OffDays = append(w.OffDays, d)
	}
	return w, nil
}
