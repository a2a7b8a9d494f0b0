package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/project"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/weekoff"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/pkg/validator"
	"github.com/google/uuid"
)

type AttendanceServiceImpl struct {
	tx database.Transactor
	attendance.AttendanceRepository
	weekoff.WeekOffRepository
	project.ProjectRepository
}

func NewAttendanceService(
	tx database.Transactor,
	attendanceRepo attendance.AttendanceRepository,
	weekOffRepo weekoff.WeekOffRepository,
	projectRepo project.ProjectRepository,
) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		tx:                   tx,
		AttendanceRepository: attendanceRepo,
		WeekOffRepository:    weekOffRepo,
		ProjectRepository:    projectRepo,
	}
}

var _ attendance.AttendanceService = (*AttendanceServiceImpl)(nil)
var _ AttendanceGateway = (*AttendanceServiceImpl)(nil)

// GetWeek implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetWeek(ctx context.Context, employeeID string, ref time.Time) (attendance.WeekResponse, error) {
	ledger, err := s.openLedger(ctx, employeeID, ref)
	if err != nil {
		return attendance.WeekResponse{}, err
	}
	return NewWeekResponse(ledger), nil
}

// GetDaily implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetDaily(ctx context.Context, employeeID string, year int, month time.Month) (attendance.DailyResponse, error) {
	if validator.IsEmpty(employeeID) {
		return attendance.DailyResponse{}, employee.ErrEmployeeIdentityUnknown
	}

	days, err := s.DailyAttendance(ctx, employeeID, year, month)
	if err != nil {
		return attendance.DailyResponse{}, &attendance.CollaboratorError{Op: "fetch daily attendance", Err: err}
	}
	return attendance.DailyResponse{Year: year, Month: int(month), Days: days}, nil
}

// ValidateWeek implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ValidateWeek(ctx context.Context, employeeID string, req attendance.SubmitWeekRequest) (attendance.SubmissionPayload, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ledger, err := s.openLedger(ctx, employeeID, req.Week.Start)
	if err != nil {
		return nil, err
	}
	return ValidateSubmission(ledger.Stage(req.Patches), ledger.OffDays())
}

// SubmitWeek implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) SubmitWeek(ctx context.Context, employeeID string, req attendance.SubmitWeekRequest) (attendance.WeekResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.WeekResponse{}, err
	}

	// Week-off days are loaded in this request so the check never runs on a stale set
	ledger, err := s.openLedger(ctx, employeeID, req.Week.Start)
	if err != nil {
		return attendance.WeekResponse{}, err
	}

	// Reject off-day data with the same rules the ledger applies
	if _, err := ValidateSubmission(ledger.Stage(req.Patches), ledger.OffDays()); err != nil {
		return attendance.WeekResponse{}, err
	}

	offDays := ledger.OffDays()
	for date, patch := range req.Patches {
		d, err := calendar.ParseDate(date)
		if err != nil {
			return attendance.WeekResponse{}, fmt.Errorf("failed to parse staged date: %w", err)
		}
		if offDays.Has(d.Weekday()) {
			continue
		}
		if err := ledger.EditDate(d, patch); err != nil {
			return attendance.WeekResponse{}, err
		}
	}

	payload, err := ledger.Submit(ctx, s)
	if err != nil {
		return attendance.WeekResponse{}, err
	}

	slog.Info("Attendance submitted", "employee_id", employeeID, "week_start", calendar.FormatDate(req.Week.Start), "days", len(payload))
	return NewWeekResponse(ledger), nil
}

func (s *AttendanceServiceImpl) openLedger(ctx context.Context, employeeID string, ref time.Time) (*Ledger, error) {
	if validator.IsEmpty(employeeID) {
		return nil, employee.ErrEmployeeIdentityUnknown
	}

	records, err := s.WeekOffRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, &attendance.CollaboratorError{Op: "fetch week-offs", Err: err}
	}

	ledger := NewLedger(employeeID, ref, records)
	snapshot, err := s.WeeklyAttendance(ctx, employeeID, ledger.Week())
	if err != nil {
		return nil, &attendance.CollaboratorError{Op: "fetch weekly attendance", Err: err}
	}
	ledger.RebuildRows(snapshot)
	return ledger, nil
}

// WeeklyAttendance implements AttendanceGateway.
func (s *AttendanceServiceImpl) WeeklyAttendance(ctx context.Context, employeeID string, week calendar.Week) (attendance.Snapshot, error) {
	entries, err := s.AttendanceRepository.GetByRange(ctx, employeeID, week.Start, week.End)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance by range: %w", err)
	}
	return s.toSnapshot(ctx, entries)
}

// DailyAttendance implements AttendanceGateway.
func (s *AttendanceServiceImpl) DailyAttendance(ctx context.Context, employeeID string, year int, month time.Month) (attendance.Snapshot, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	entries, err := s.AttendanceRepository.GetByRange(ctx, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance by range: %w", err)
	}
	return s.toSnapshot(ctx, entries)
}

// SubmitAttendance implements AttendanceGateway.
func (s *AttendanceServiceImpl) SubmitAttendance(ctx context.Context, employeeID string, payload attendance.SubmissionPayload) error {
	dates := make([]string, 0, len(payload))
	for date := range payload {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for _, date := range dates {
			item := payload[date]
			d, err := calendar.ParseDate(item.Date)
			if err != nil {
				return fmt.Errorf("invalid payload date %q: %w", item.Date, err)
			}
			id, err := uuid.NewV7()
			if err != nil {
				return fmt.Errorf("failed to generate entry id: %w", err)
			}
			entry := attendance.Entry{
				ID:         id.String(),
				EmployeeID: employeeID,
				Date:       d,
				Action:     item.Action,
				Hours:      item.Hours,
				ProjectIDs: item.ProjectIDs,
				SubTasks:   item.SubTasks,
			}
			if err := s.AttendanceRepository.Upsert(txCtx, entry); err != nil {
				return fmt.Errorf("failed to upsert attendance for %s: %w", item.Date, err)
			}
		}
		return nil
	})
}

func (s *AttendanceServiceImpl) toSnapshot(ctx context.Context, entries []attendance.Entry) (attendance.Snapshot, error) {
	var ids []int
	seen := make(map[int]bool)
	for _, e := range entries {
		for _, id := range e.ProjectIDs {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}

	names := map[int]string{}
	if len(ids) > 0 {
		var err error
		names, err = s.ProjectRepository.GetNames(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("failed to get project names: %w", err)
		}
	}

	snapshot := make(attendance.Snapshot, len(entries))
	for _, e := range entries {
		rec := attendance.DayRecord{
			Action:   string(e.Action),
			Status:   string(e.Action),
			Hours:    e.Hours,
			Projects: []attendance.ProjectOption{},
			SubTasks: []attendance.ProjectSubTasks{},
		}
		groups := make(map[int]int)
		for _, id := range e.ProjectIDs {
			value := strconv.Itoa(id)
			rec.Projects = append(rec.Projects, attendance.ProjectOption{Value: value, Label: names[id]})
		}
		for _, st := range e.SubTasks {
			i, ok := groups[st.ProjectID]
			if !ok {
				i = len(rec.SubTasks)
				groups[st.ProjectID] = i
				rec.SubTasks = append(rec.SubTasks, attendance.ProjectSubTasks{Project: strconv.Itoa(st.ProjectID)})
			}
			rec.SubTasks[i].SubTasks = append(rec.SubTasks[i].SubTasks, attendance.SubTask{Name: st.SubTask, Hours: st.Hours})
		}
		snapshot[calendar.FormatDate(e.Date)] = rec
	}
	return snapshot, nil
}

// NewWeekResponse renders the ledger's current rows.
func NewWeekResponse(l *Ledger) attendance.WeekResponse {
	week := l.Week()
	start, end := week.Key()
	resp := attendance.WeekResponse{
		WeekStart: start,
		WeekEnd:   end,
		OffDays:   calendar.DayNames(l.OffDays().Sorted()),
	}
	for _, d := range week.Days {
		resp.Days = append(resp.Days, calendar.FormatDate(d))
	}
	for i, r := range l.Rows() {
		projects := r.Projects
		if projects == nil {
			projects = []attendance.ProjectAllocation{}
		}
		resp.Rows = append(resp.Rows, attendance.RowResponse{
			Date:      calendar.FormatDate(r.Date),
			Day:       r.Day.String(),
			Status:    r.Status,
			Hours:     r.Hours,
			Projects:  projects,
			Submitted: r.Submitted,
			WeekOff:   r.WeekOff,
			State:     l.State(i),
		})
	}
	return resp
}
