package attendance

import (
	"fmt"

	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/pkg/validator"
)

// ========================================
// SUBMISSION DTOs
// ========================================

type SubTaskInput struct {
	Name  string  `json:"name"`
	Hours float64 `json:"hours"`
}

type ProjectInput struct {
	ProjectID   string         `json:"project_id"`
	ProjectName string         `json:"project_name"`
	SubTasks    []SubTaskInput `json:"sub_tasks"`
}

type RowInput struct {
	Date     string          `json:"date"`
	Status   *string         `json:"status,omitempty"`
	Hours    *float64        `json:"hours,omitempty"`
	Projects *[]ProjectInput `json:"projects,omitempty"`
}

type SubmitWeekRequest struct {
	// Any date inside the week being submitted
	Date string     `json:"date"`
	Rows []RowInput `json:"rows"`

	// Parsed by Validate
	Week    calendar.Week       `json:"-"`
	Patches map[string]RowPatch `json:"-"`
}

// Validate checks the request shape. Business rules (week-off days, emptiness,
// hours range) are applied by the ledger against the stored week-off record.
func (r *SubmitWeekRequest) Validate() error {
	var errs validator.ValidationErrors

	ref, ok := validator.IsValidDate(r.Date)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
		return errs
	}
	week := calendar.GetWeekDates(ref)

	if len(r.Rows) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "rows",
			Message: "rows is required",
		})
	}

	patches := make(map[string]RowPatch, len(r.Rows))
	for i, row := range r.Rows {
		field := fmt.Sprintf("rows[%d]", i)

		d, ok := validator.IsValidDate(row.Date)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".date",
				Message: "date must be in YYYY-MM-DD format",
			})
			continue
		}
		if !week.Contains(d) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".date",
				Message: ErrDateOutsideWeek.Error(),
			})
			continue
		}
		key := calendar.FormatDate(d)
		if _, dup := patches[key]; dup {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".date",
				Message: fmt.Sprintf("%s is listed more than once", key),
			})
			continue
		}

		patch := RowPatch{Hours: row.Hours}
		if row.Status != nil {
			status, err := ParseStatus(*row.Status)
			if err != nil {
				errs = append(errs, validator.ValidationError{
					Field:   field + ".status",
					Message: ErrInvalidStatus.Error(),
				})
				continue
			}
			patch.Status = &status
		}
		if row.Projects != nil {
			projects := make([]ProjectAllocation, 0, len(*row.Projects))
			for _, p := range *row.Projects {
				alloc := ProjectAllocation{ProjectID: p.ProjectID, ProjectName: p.ProjectName}
				for _, st := range p.SubTasks {
					alloc.SubTasks = append(alloc.SubTasks, SubTask{Name: st.Name, Hours: st.Hours})
				}
				projects = append(projects, alloc)
			}
			patch.Projects = &projects
		}
		patches[key] = patch
	}

	if len(errs) > 0 {
		return errs
	}

	r.Week = week
	r.Patches = patches
	return nil
}

// ========================================
// RESPONSE DTOs
// ========================================

type RowResponse struct {
	Date      string              `json:"date"`
	Day       string              `json:"day"`
	Status    Status              `json:"status"`
	Hours     float64             `json:"hours"`
	Projects  []ProjectAllocation `json:"projects"`
	Submitted bool                `json:"submitted"`
	WeekOff   bool                `json:"week_off"`
	State     RowState            `json:"state"`
}

type WeekResponse struct {
	WeekStart string        `json:"week_start"`
	WeekEnd   string        `json:"week_end"`
	Days      []string      `json:"days"`
	OffDays   []string      `json:"off_days"`
	Rows      []RowResponse `json:"rows"`
}

type DailyResponse struct {
	Year  int      `json:"year"`
	Month int      `json:"month"`
	Days  Snapshot `json:"days"`
}
