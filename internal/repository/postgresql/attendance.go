package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// GetByRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, entry_date, action, hours::float8, project_ids, sub_tasks, created_at, updated_at
		FROM timesheet_entries
		WHERE employee_id = $1 AND entry_date BETWEEN $2 AND $3
		ORDER BY entry_date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []attendance.Entry
	for rows.Next() {
		var e attendance.Entry
		var action string
		var projectIDs []int32
		var subTasks []byte
		err := rows.Scan(
			&e.ID,
			&e.EmployeeID,
			&e.Date,
			&action,
			&e.Hours,
			&projectIDs,
			&subTasks,
			&e.CreatedAt,
			&e.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		e.Action = attendance.Status(action)
		for _, id := range projectIDs {
			e.ProjectIDs = append(e.ProjectIDs, int(id))
		}
		if len(subTasks) > 0 {
			if err := json.Unmarshal(subTasks, &e.SubTasks); err != nil {
				return nil, fmt.Errorf("decode sub_tasks of %s: %w", e.ID, err)
			}
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Upsert implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Upsert(ctx context.Context, entry attendance.Entry) error {
	q := GetQuerier(ctx, r.db)

	subTasks := entry.SubTasks
	if subTasks == nil {
		subTasks = []attendance.SubmissionSubTask{}
	}
	encoded, err := json.Marshal(subTasks)
	if err != nil {
		return fmt.Errorf("encode sub_tasks: %w", err)
	}

	projectIDs := make([]int32, 0, len(entry.ProjectIDs))
	for _, id := range entry.ProjectIDs {
		projectIDs = append(projectIDs, int32(id))
	}

	query := `
		INSERT INTO timesheet_entries (
			id, employee_id, entry_date, action, hours, project_ids, sub_tasks, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, NOW(), NOW()
		)
		ON CONFLICT (employee_id, entry_date)
		DO UPDATE SET
			action = EXCLUDED.action,
			hours = EXCLUDED.hours,
			project_ids = EXCLUDED.project_ids,
			sub_tasks = EXCLUDED.sub_tasks,
			updated_at = NOW()
	`

	_, err = q.Exec(ctx, query,
		entry.ID,
		entry.EmployeeID,
		entry.Date,
		string(entry.Action),
		entry.Hours,
		projectIDs,
		encoded,
	)
	return err
}
