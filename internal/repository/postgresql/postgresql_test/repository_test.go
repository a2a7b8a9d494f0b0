package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/weekoff"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newID(t *testing.T) string {
	t.Helper()
	id, err := uuid.NewV7()
	require.NoError(t, err)
	return id.String()
}

func TestWeekOffRepository_Upsert(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	require.NoError(t, setup.TruncateAllTables(ctx))

	repo := postgresql.NewWeekOffRepository(setup.DB)
	employeeID := newID(t)
	week := calendar.GetWeekDates(time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC))

	_, err := repo.GetByWeek(ctx, employeeID, week.Start, week.End)
	assert.ErrorIs(t, err, weekoff.ErrWeekOffNotFound)

	saved, err := repo.Upsert(ctx, weekoff.WeekOff{
		ID:         newID(t),
		EmployeeID: employeeID,
		WeekStart:  week.Start,
		WeekEnd:    week.End,
		OffDays:    []time.Weekday{time.Sunday, time.Saturday},
	})
	require.NoError(t, err)
	assert.Equal(t, []time.Weekday{time.Saturday, time.Sunday}, saved.OffDays)

	again, err := repo.Upsert(ctx, weekoff.WeekOff{
		ID:         newID(t),
		EmployeeID: employeeID,
		WeekStart:  week.Start,
		WeekEnd:    week.End,
		OffDays:    []time.Weekday{time.Friday},
	})
	require.NoError(t, err)
	assert.Equal(t, saved.ID, again.ID, "conflict keeps the original row")

	records, err := repo.ListByEmployee(ctx, employeeID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []time.Weekday{time.Friday}, records[0].OffDays)
}

func TestAttendanceRepository_UpsertAndRange(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	require.NoError(t, setup.TruncateAllTables(ctx))

	repo := postgresql.NewAttendanceRepository(setup.DB)
	tx := postgresql.NewTransactor(setup.DB)
	employeeID := newID(t)
	day, _ := calendar.ParseDate("2024-06-10")

	err := tx.RunInTx(ctx, func(ctx context.Context) error {
		return repo.Upsert(ctx, attendance.Entry{
			ID:         newID(t),
			EmployeeID: employeeID,
			Date:       day,
			Action:     attendance.StatusPresent,
			Hours:      7.5,
			ProjectIDs: []int{3, 4},
			SubTasks:   []attendance.SubmissionSubTask{{ProjectID: 3, SubTask: "Design", Hours: 7.5}},
		})
	})
	require.NoError(t, err)

	err = tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := repo.Upsert(ctx, attendance.Entry{ID: newID(t), EmployeeID: employeeID, Date: day.AddDate(0, 0, 1), Action: attendance.StatusWFH, Hours: 4}); err != nil {
			return err
		}
		return errors.New("abort")
	})
	require.Error(t, err)

	entries, err := repo.GetByRange(ctx, employeeID, day, day.AddDate(0, 0, 6))
	require.NoError(t, err)
	require.Len(t, entries, 1, "aborted transaction leaves nothing behind")
	assert.Equal(t, attendance.StatusPresent, entries[0].Action)
	assert.Equal(t, 7.5, entries[0].Hours)
	assert.Equal(t, []int{3, 4}, entries[0].ProjectIDs)
	assert.Equal(t, "Design", entries[0].SubTasks[0].SubTask)
}

func TestLeaveRepository(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	require.NoError(t, setup.TruncateAllTables(ctx))

	repo := postgresql.NewLeaveRepository(setup.DB)
	employeeID := newID(t)

	_, err := repo.GetBalance(ctx, employeeID)
	assert.ErrorIs(t, err, leave.ErrBalanceNotFound)

	typeID := newID(t)
	_, err = setup.DB.Exec(ctx, `INSERT INTO leave_types (id, name) VALUES ($1, 'Sick Leave')`, typeID)
	require.NoError(t, err)
	_, err = setup.DB.Exec(ctx, `
		INSERT INTO leave_requests (id, employee_id, leave_type_id, start_date, end_date, no_of_days, total_days, status)
		VALUES ($1, $2, $3, '2024-06-03', '2024-06-04', NULL, 2, 'Approved')
	`, newID(t), employeeID, typeID)
	require.NoError(t, err)
	_, err = setup.DB.Exec(ctx, `INSERT INTO leave_balances (employee_id, sick_leaves) VALUES ($1, 3)`, employeeID)
	require.NoError(t, err)

	records, err := repo.ListByEmployee(ctx, employeeID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, leave.CategorySick, records[0].Category)
	assert.Equal(t, leave.StatusApproved, records[0].DecisionStatus)
	assert.Equal(t, "2", records[0].Days.String())

	balance, err := repo.GetBalance(ctx, employeeID)
	require.NoError(t, err)
	assert.Equal(t, "3", balance.SickLeaves.String())
	assert.True(t, balance.CasualLeaves.IsZero())
}
