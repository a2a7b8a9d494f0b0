package http

import (
	"net/http"
	"time"

	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/pkg/validator"
)

type CalendarHandler interface {
	Week(w http.ResponseWriter, r *http.Request)
}

type calendarHandlerImpl struct {
	now func() time.Time
}

func NewCalendarHandler() CalendarHandler {
	return &calendarHandlerImpl{now: time.Now}
}

// Week implements CalendarHandler.
func (h *calendarHandlerImpl) Week(w http.ResponseWriter, r *http.Request) {
	ref, err := referenceDate(r, "date", h.now)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, calendar.NewWeekResponse(calendar.GetWeekDates(ref)))
}

// referenceDate reads an optional YYYY-MM-DD query parameter, defaulting to today.
func referenceDate(r *http.Request, param string, now func() time.Time) (time.Time, error) {
	raw := r.URL.Query().Get(param)
	if raw == "" {
		n := now()
		return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC), nil
	}

	ref, ok := validator.IsValidDate(raw)
	if !ok {
		return time.Time{}, validator.ValidationErrors{{
			Field:   param,
			Message: param + " must be in YYYY-MM-DD format",
		}}
	}
	return ref, nil
}
