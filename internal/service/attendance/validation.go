package attendance

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/weekoff"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/pkg/validator"
)

// ValidateSubmission checks rows against offDays and builds the payload.
// Rules run in order and stop at the first failing rule; every row that breaks
// that rule is reported.
func ValidateSubmission(rows []attendance.Row, offDays weekoff.DaySet) (attendance.SubmissionPayload, error) {
	var errs validator.ValidationErrors

	// 1. Week-off days carry nothing
	for _, r := range rows {
		if offDays.Has(r.Day) && r.HasData() {
			errs = append(errs, validator.ValidationError{
				Field:   "week_off",
				Message: fmt.Sprintf("%s: %s", r.Day, attendance.ErrWeekOffViolation),
			})
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}

	// 2. At least one working day has data
	hasData := false
	for _, r := range rows {
		if !offDays.Has(r.Day) && r.HasData() {
			hasData = true
			break
		}
	}
	if !hasData {
		return nil, validator.ValidationErrors{{
			Field:   "attendance",
			Message: attendance.ErrNoAttendanceData.Error(),
		}}
	}

	// 3. Hours range
	for _, r := range rows {
		if offDays.Has(r.Day) {
			continue
		}
		if !validator.IsInRange(r.Hours, 0, attendance.MaxHoursPerDay) {
			errs = append(errs, validator.ValidationError{
				Field:   "hours",
				Message: fmt.Sprintf("%s (%s): %s", r.Day, calendar.FormatDate(r.Date), attendance.ErrHoursOutOfRange),
			})
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}

	payload := make(attendance.SubmissionPayload)
	for _, r := range rows {
		if offDays.Has(r.Day) || !r.HasData() {
			continue
		}
		key := calendar.FormatDate(r.Date)
		payload[key] = buildEntry(key, r)
	}
	return payload, nil
}

func buildEntry(key string, r attendance.Row) attendance.SubmissionEntry {
	entry := attendance.SubmissionEntry{
		Date:       key,
		Action:     r.Status,
		Hours:      r.Hours,
		ProjectIDs: []int{},
		SubTasks:   []attendance.SubmissionSubTask{},
	}

	seen := make(map[int]bool)
	for _, p := range r.Projects {
		// Allocations whose id is not an integer are dropped, not rejected
		id, ok := parseProjectID(p.ProjectID)
		if !ok {
			continue
		}
		if !seen[id] {
			seen[id] = true
			entry.ProjectIDs = append(entry.ProjectIDs, id)
		}
		for _, st := range p.SubTasks {
			name := strings.TrimSpace(st.Name)
			if name == "" {
				continue
			}
			entry.SubTasks = append(entry.SubTasks, attendance.SubmissionSubTask{
				ProjectID: id,
				SubTask:   name,
				Hours:     st.Hours,
			})
		}
	}
	return entry
}

// Project ids are stored as INTEGER.
func parseProjectID(s string) (int, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, false
	}
	return int(id), true
}
