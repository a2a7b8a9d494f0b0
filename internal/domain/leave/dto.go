package leave

import (
	"github.com/cmlabs-hris/hris-timesheet-go/internal/pkg/validator"
)

type LeaveFilter struct {
	Status *string
}

func (f *LeaveFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && !validator.IsInSlice(*f.Status, []string{
		string(StatusApproved), string(StatusRejected), string(StatusPending),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: ErrInvalidStatus.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveResponse struct {
	ID        string  `json:"id"`
	LeaveType string  `json:"leave_type"`
	Category  string  `json:"category"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Days      float64 `json:"no_of_days"`
	Status    string  `json:"status"`
	Decision  string  `json:"decision"`
	Reason    *string `json:"reason,omitempty"`
}

type FiguresResponse struct {
	Available float64 `json:"available"`
	Applied   float64 `json:"applied"`
	Allocated float64 `json:"allocated"`
}

type BalanceResponse struct {
	Sick   FiguresResponse `json:"sick"`
	Casual FiguresResponse `json:"casual"`
	Annual FiguresResponse `json:"annual"`
}

func NewFiguresResponse(f Figures) FiguresResponse {
	return FiguresResponse{
		Available: f.Available.InexactFloat64(),
		Applied:   f.Applied.InexactFloat64(),
		Allocated: f.Allocated.InexactFloat64(),
	}
}

func NewBalanceResponse(s Summary) BalanceResponse {
	return BalanceResponse{
		Sick:   NewFiguresResponse(s.Sick),
		Casual: NewFiguresResponse(s.Casual),
		Annual: NewFiguresResponse(s.Annual),
	}
}
