package weekoff

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/weekoff"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	records   []weekoff.WeekOff
	upsertErr error
	getErr    error
}

func (r *memRepo) ListByEmployee(ctx context.Context, employeeID string) ([]weekoff.WeekOff, error) {
	return r.records, nil
}

func (r *memRepo) GetByWeek(ctx context.Context, employeeID string, weekStart, weekEnd time.Time) (weekoff.WeekOff, error) {
	if r.getErr != nil {
		return weekoff.WeekOff{}, r.getErr
	}
	for _, w := range r.records {
		if w.EmployeeID == employeeID && w.WeekStart.Equal(weekStart) && w.WeekEnd.Equal(weekEnd) {
			return w, nil
		}
	}
	return weekoff.WeekOff{}, weekoff.ErrWeekOffNotFound
}

func (r *memRepo) Upsert(ctx context.Context, record weekoff.WeekOff) (weekoff.WeekOff, error) {
	if r.upsertErr != nil {
		return weekoff.WeekOff{}, r.upsertErr
	}
	for i, w := range r.records {
		if w.ID == record.ID {
			r.records[i] = record
			return record, nil
		}
	}
	r.records = append(r.records, record)
	return record, nil
}

func TestWeekOffService_SaveWeekOff(t *testing.T) {
	repo := &memRepo{}
	svc := NewWeekOffService(repo)

	resp, err := svc.SaveWeekOff(context.Background(), "emp-1", weekoff.SaveWeekOffRequest{
		WeekStart: "2024-06-10",
		WeekEnd:   "2024-06-16",
		OffDays:   []string{"Sunday", "saturday"},
	})
	require.NoError(t, err)

	id, err := uuid.Parse(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.Equal(t, []string{"Saturday", "Sunday"}, resp.OffDays)
	require.Len(t, repo.records, 1)

	// same week again keeps the id and replaces the days
	resp2, err := svc.SaveWeekOff(context.Background(), "emp-1", weekoff.SaveWeekOffRequest{
		WeekStart: "2024-06-10",
		WeekEnd:   "2024-06-16",
		OffDays:   []string{"Fri"},
	})
	require.NoError(t, err)
	assert.Equal(t, resp.ID, resp2.ID)
	assert.Equal(t, []string{"Friday"}, resp2.OffDays)
	require.Len(t, repo.records, 1)

	list, err := svc.ListMyWeekOffs(context.Background(), "emp-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "2024-06-10", list[0].WeekStart)
}

func TestWeekOffService_SaveWeekOff_Rejects(t *testing.T) {
	svc := NewWeekOffService(&memRepo{})

	_, err := svc.SaveWeekOff(context.Background(), "emp-1", weekoff.SaveWeekOffRequest{
		WeekStart: "2024-06-10",
		WeekEnd:   "2024-06-16",
		OffDays:   []string{"Friday", "Saturday", "Sunday"},
	})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, weekoff.ErrWeekOffLimitExceeded.Error(), verrs.ToMap()["off_days"])

	_, err = svc.SaveWeekOff(context.Background(), "", weekoff.SaveWeekOffRequest{})
	assert.ErrorIs(t, err, employee.ErrEmployeeIdentityUnknown)
}

func TestWeekOffService_SaveWeekOff_StoreFailure(t *testing.T) {
	svc := NewWeekOffService(&memRepo{upsertErr: errors.New("disk full")})

	_, err := svc.SaveWeekOff(context.Background(), "emp-1", weekoff.SaveWeekOffRequest{
		WeekStart: "2024-06-10",
		WeekEnd:   "2024-06-16",
		OffDays:   []string{"Sunday"},
	})
	var collab *attendance.CollaboratorError
	require.ErrorAs(t, err, &collab)
	assert.Equal(t, "save week-off", collab.Op)
}

func TestWeekOffService_UpsertWeekOff_LookupError(t *testing.T) {
	svc := NewWeekOffService(&memRepo{getErr: errors.New("timeout")})
	start, _ := calendar.ParseDate("2024-06-10")

	_, err := svc.UpsertWeekOff(context.Background(), weekoff.WeekOff{EmployeeID: "emp-1", WeekStart: start, WeekEnd: start.AddDate(0, 0, 6)})
	assert.Error(t, err)
}
