package weekoff

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/pkg/validator"
)

type SaveWeekOffRequest struct {
	WeekStart string   `json:"week_start"`
	WeekEnd   string   `json:"week_end"`
	OffDays   []string `json:"off_days"`

	// Parsed by Validate
	Start time.Time      `json:"-"`
	End   time.Time      `json:"-"`
	Days  []time.Weekday `json:"-"`
}

func (r *SaveWeekOffRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.WeekStart)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "week_start",
			Message: "week_start must be a date in YYYY-MM-DD format",
		})
	}
	end, endOK := validator.IsValidDate(r.WeekEnd)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "week_end",
			Message: "week_end must be a date in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && !calendar.GetWeekDates(start).Matches(start, end) {
		errs = append(errs, validator.ValidationError{
			Field:   "week_start",
			Message: ErrInvalidWeekRange.Error(),
		})
	}

	seen := NewDaySet()
	var days []time.Weekday
	for _, name := range r.OffDays {
		d, err := calendar.ParseDayName(name)
		if err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "off_days",
				Message: fmt.Sprintf("%q is not a day of the week", name),
			})
			continue
		}
		if seen.Has(d) {
			errs = append(errs, validator.ValidationError{
				Field:   "off_days",
				Message: fmt.Sprintf("%s is listed more than once", d),
			})
			continue
		}
		seen[d] = struct{}{}
		days = append(days, d)
	}
	if len(days) > MaxOffDays {
		errs = append(errs, validator.ValidationError{
			Field:   "off_days",
			Message: ErrWeekOffLimitExceeded.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	r.Start = start
	r.End = end
	r.Days = days
	return nil
}

type WeekOffResponse struct {
	ID         string   `json:"id"`
	EmployeeID string   `json:"employee_id"`
	WeekStart  string   `json:"week_start"`
	WeekEnd    string   `json:"week_end"`
	OffDays    []string `json:"off_days"`
}

func NewWeekOffResponse(w WeekOff) WeekOffResponse {
	return WeekOffResponse{
		ID:         w.ID,
		EmployeeID: w.EmployeeID,
		WeekStart:  calendar.FormatDate(w.WeekStart),
		WeekEnd:    calendar.FormatDate(w.WeekEnd),
		OffDays:    calendar.DayNames(NewDaySet(w.OffDays...).Sorted()),
	}
}
