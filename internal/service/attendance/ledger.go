package attendance

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/weekoff"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/pkg/validator"
)

// AttendanceGateway is the I/O boundary a Ledger reads from and submits to.
type AttendanceGateway interface {
	WeeklyAttendance(ctx context.Context, employeeID string, week calendar.Week) (attendance.Snapshot, error)
	DailyAttendance(ctx context.Context, employeeID string, year int, month time.Month) (attendance.Snapshot, error)
	SubmitAttendance(ctx context.Context, employeeID string, payload attendance.SubmissionPayload) error
}

// WeekOffSaver persists a week-off record.
type WeekOffSaver interface {
	UpsertWeekOff(ctx context.Context, record weekoff.WeekOff) (weekoff.WeekOff, error)
}

// Ledger is the attendance session of one employee for one active week.
// All methods are safe for concurrent use; mutations are serialized.
type Ledger struct {
	mu         sync.Mutex
	employeeID string
	week       calendar.Week
	records    []weekoff.WeekOff
	offDays    weekoff.DaySet // saved off days of the active week
	selection  weekoff.DaySet // working selection, not yet saved
	rows       [calendar.DaysPerWeek]attendance.Row
	snapshot   attendance.Snapshot
	daily      attendance.Snapshot
	checked    bool
}

// NewLedger opens a session on the week containing ref.
func NewLedger(employeeID string, ref time.Time, records []weekoff.WeekOff) *Ledger {
	l := &Ledger{
		employeeID: employeeID,
		records:    append([]weekoff.WeekOff(nil), records...),
	}
	l.setWeek(ref)
	return l
}

func (l *Ledger) EmployeeID() string {
	return l.employeeID
}

func (l *Ledger) Week() calendar.Week {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.week
}

// SetWeek moves the session to the week containing ref and clears the rows.
func (l *Ledger) SetWeek(ref time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.setWeek(ref)
}

func (l *Ledger) setWeek(ref time.Time) {
	l.week = calendar.GetWeekDates(ref)
	l.refreshOffDays()
	l.selection = l.offDays.Clone()
	l.rebuildRows(nil)
	l.daily = nil
}

// SetWeekOffRecords replaces the known week-off records and rebuilds the rows.
func (l *Ledger) SetWeekOffRecords(records []weekoff.WeekOff) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append([]weekoff.WeekOff(nil), records...)
	l.refreshOffDays()
	l.selection = l.offDays.Clone()
	l.rebuildRows(l.snapshot)
}

func (l *Ledger) refreshOffDays() {
	l.offDays = weekoff.NewDaySet()
	for _, r := range l.records {
		if r.EmployeeID != "" && l.employeeID != "" && r.EmployeeID != l.employeeID {
			continue
		}
		if l.week.Matches(r.WeekStart, r.WeekEnd) {
			l.offDays = weekoff.NewDaySet(r.OffDays...)
			return
		}
	}
}

// OffDays returns the saved off days of the active week.
func (l *Ledger) OffDays() weekoff.DaySet {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.offDays.Clone()
}

// Selection returns the working off-day selection, Monday first.
func (l *Ledger) Selection() []time.Weekday {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.selection.Sorted()
}

// Rows returns a copy of the rows.
func (l *Ledger) Rows() []attendance.Row {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.copyRows()
}

func (l *Ledger) copyRows() []attendance.Row {
	rows := make([]attendance.Row, len(l.rows))
	for i, r := range l.rows {
		rows[i] = r.Clone()
	}
	return rows
}

// Daily returns the month view loaded by the last successful Submit.
func (l *Ledger) Daily() attendance.Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(attendance.Snapshot, len(l.daily))
	for k, v := range l.daily {
		out[k] = v
	}
	return out
}

// RebuildRows resets the rows to the server snapshot. Days missing from the
// snapshot come back empty and unsubmitted.
func (l *Ledger) RebuildRows(snapshot attendance.Snapshot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rebuildRows(snapshot)
}

func (l *Ledger) rebuildRows(snapshot attendance.Snapshot) {
	l.snapshot = snapshot
	l.checked = false
	for i, d := range l.week.Days {
		row := attendance.Row{
			Date:    d,
			Day:     d.Weekday(),
			WeekOff: l.offDays.Has(d.Weekday()),
		}
		if rec, ok := snapshot[calendar.FormatDate(d)]; ok {
			row.Submitted = strings.TrimSpace(rec.Action) != ""
			// week-off rows stay read-only and empty
			if !row.WeekOff {
				overlay(&row, rec)
			}
		}
		l.rows[i] = row
	}
}

func overlay(row *attendance.Row, rec attendance.DayRecord) {
	raw := rec.Action
	if strings.TrimSpace(raw) == "" {
		raw = rec.Status
	}
	status, err := attendance.ParseStatus(raw)
	if err != nil {
		status = attendance.StatusNone
	}
	row.Status = status
	row.Hours = rec.Hours
	if status == attendance.StatusLeave {
		row.Hours = 0
	}
	row.Projects = mergeProjects(rec.Projects, rec.SubTasks)
}

// mergeProjects joins the project list with the subtasks grouped by project.
// Subtask groups naming an unlisted project become their own allocation.
func mergeProjects(options []attendance.ProjectOption, groups []attendance.ProjectSubTasks) []attendance.ProjectAllocation {
	if len(options) == 0 && len(groups) == 0 {
		return nil
	}
	projects := make([]attendance.ProjectAllocation, 0, len(options))
	index := make(map[string]int, len(options))
	for _, o := range options {
		if _, dup := index[o.Value]; dup {
			continue
		}
		index[o.Value] = len(projects)
		projects = append(projects, attendance.ProjectAllocation{ProjectID: o.Value, ProjectName: o.Label})
	}
	for _, g := range groups {
		i, ok := index[g.Project]
		if !ok {
			index[g.Project] = len(projects)
			i = len(projects)
			projects = append(projects, attendance.ProjectAllocation{ProjectID: g.Project})
		}
		projects[i].SubTasks = append(projects[i].SubTasks, g.SubTasks...)
	}
	return projects
}

// EditRow merges patch into row i. Week-off rows cannot be edited.
func (l *Ledger) EditRow(i int, patch attendance.RowPatch) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if i < 0 || i >= len(l.rows) {
		return attendance.ErrRowIndexOutOfRange
	}
	if l.offDays.Has(l.rows[i].Day) {
		return attendance.ErrDayIsWeekOff
	}
	l.rows[i] = attendance.ApplyPatch(l.rows[i], patch)
	l.checked = false
	return nil
}

// EditDate is EditRow addressed by date.
func (l *Ledger) EditDate(date time.Time, patch attendance.RowPatch) error {
	key := calendar.FormatDate(date)
	for i, d := range l.Week().Days {
		if calendar.FormatDate(d) == key {
			return l.EditRow(i, patch)
		}
	}
	return attendance.ErrDateOutsideWeek
}

// Stage returns the rows with patches applied, keyed by ISO date, without
// touching the session. Week-off rows are patched too so that the result
// can be checked by ValidateSubmission.
func (l *Ledger) Stage(patches map[string]attendance.RowPatch) []attendance.Row {
	l.mu.Lock()
	defer l.mu.Unlock()
	rows := l.copyRows()
	for i := range rows {
		if p, ok := patches[calendar.FormatDate(rows[i].Date)]; ok {
			rows[i] = attendance.ApplyPatch(rows[i], p)
		}
	}
	return rows
}

// ToggleWeekOff flips day in the working selection. Selecting a third day
// fails and leaves the selection unchanged.
func (l *Ledger) ToggleWeekOff(day time.Weekday) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.selection.Has(day) {
		delete(l.selection, day)
		return nil
	}
	if len(l.selection) >= weekoff.MaxOffDays {
		return weekoff.ErrWeekOffLimitExceeded
	}
	l.selection[day] = struct{}{}
	return nil
}

// ClearSelection empties the working selection.
func (l *Ledger) ClearSelection() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.selection = weekoff.NewDaySet()
}

// SaveWeekOff upserts the working selection for the active week and makes it
// the week's saved off days.
func (l *Ledger) SaveWeekOff(ctx context.Context, saver WeekOffSaver) (weekoff.WeekOff, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if validator.IsEmpty(l.employeeID) {
		return weekoff.WeekOff{}, employee.ErrEmployeeIdentityUnknown
	}

	record := weekoff.WeekOff{
		EmployeeID: l.employeeID,
		WeekStart:  l.week.Start,
		WeekEnd:    l.week.End,
		OffDays:    l.selection.Sorted(),
	}
	saved, err := saver.UpsertWeekOff(ctx, record)
	if err != nil {
		return weekoff.WeekOff{}, &attendance.CollaboratorError{Op: "save week-off", Err: err}
	}

	replaced := false
	for i, r := range l.records {
		if r.EmployeeID == saved.EmployeeID && calendar.GetWeekDates(r.WeekStart).Matches(saved.WeekStart, saved.WeekEnd) {
			l.records[i] = saved
			replaced = true
		}
	}
	if !replaced {
		l.records = append(l.records, saved)
	}
	l.refreshOffDays()
	l.rebuildRows(l.snapshot)
	return saved, nil
}

// Validate runs ValidateSubmission on the session rows.
func (l *Ledger) Validate() (attendance.SubmissionPayload, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.checked = true
	return ValidateSubmission(l.copyRows(), l.offDays)
}

// State reports where row i is in its lifecycle.
func (l *Ledger) State(i int) attendance.RowState {
	l.mu.Lock()
	defer l.mu.Unlock()
	if i < 0 || i >= len(l.rows) {
		return attendance.RowStateEmpty
	}
	r := l.rows[i]
	switch {
	case r.Submitted && !r.Edited:
		return attendance.RowStateSubmitted
	case !r.HasData():
		return attendance.RowStateEmpty
	case !l.checked:
		return attendance.RowStateEditing
	case l.offDays.Has(r.Day) || r.Hours < 0 || r.Hours > attendance.MaxHoursPerDay:
		return attendance.RowStateInvalid
	}
	return attendance.RowStateValid
}

// Submit validates the rows and sends them through gw. Validation failures
// never reach gw. A failed submit leaves the rows untouched; a successful one
// reloads the weekly rows and the daily month view from gw.
func (l *Ledger) Submit(ctx context.Context, gw AttendanceGateway) (attendance.SubmissionPayload, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if validator.IsEmpty(l.employeeID) {
		return nil, employee.ErrEmployeeIdentityUnknown
	}

	l.checked = true
	payload, err := ValidateSubmission(l.copyRows(), l.offDays)
	if err != nil {
		return nil, err
	}

	if err := gw.SubmitAttendance(ctx, l.employeeID, payload); err != nil {
		return nil, &attendance.CollaboratorError{Op: "submit attendance", Err: err}
	}

	snapshot, err := gw.WeeklyAttendance(ctx, l.employeeID, l.week)
	if err != nil {
		return payload, &attendance.CollaboratorError{Op: "reload weekly attendance", Err: err}
	}
	l.rebuildRows(snapshot)

	daily := make(attendance.Snapshot)
	for _, m := range weekMonths(l.week) {
		days, err := gw.DailyAttendance(ctx, l.employeeID, m.Year(), m.Month())
		if err != nil {
			return payload, &attendance.CollaboratorError{Op: "reload daily attendance", Err: err}
		}
		for k, v := range days {
			daily[k] = v
		}
	}
	l.daily = daily

	return payload, nil
}

// weekMonths returns the first day of each month the week touches.
func weekMonths(w calendar.Week) []time.Time {
	var months []time.Time
	for _, d := range w.Days {
		first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location())
		if len(months) == 0 || !months[len(months)-1].Equal(first) {
			months = append(months, first)
		}
	}
	return months
}
