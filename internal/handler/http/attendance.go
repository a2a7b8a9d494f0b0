package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	GetWeekly(w http.ResponseWriter, r *http.Request)
	GetDaily(w http.ResponseWriter, r *http.Request)
	Validate(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	now               func() time.Time
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		now:               time.Now,
	}
}

// GetWeekly implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetWeekly(w http.ResponseWriter, r *http.Request) {
	ref, err := referenceDate(r, "date", h.now)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.GetWeek(r.Context(), middleware.EmployeeIDFromContext(r.Context()), ref)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDaily implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetDaily(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	year, month := now.Year(), int(now.Month())

	var errs validator.ValidationErrors
	if v := r.URL.Query().Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || !validator.IsInRange(float64(parsed), 1970, 9999) {
			errs = append(errs, validator.ValidationError{Field: "year", Message: "year must be a valid year"})
		}
		year = parsed
	}
	if v := r.URL.Query().Get("month"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || !validator.IsInRange(float64(parsed), 1, 12) {
			errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be between 1 and 12"})
		}
		month = parsed
	}
	if len(errs) > 0 {
		response.HandleError(w, errs)
		return
	}

	result, err := h.attendanceService.GetDaily(r.Context(), middleware.EmployeeIDFromContext(r.Context()), year, time.Month(month))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Validate implements AttendanceHandler.
func (h *attendanceHandlerImpl) Validate(w http.ResponseWriter, r *http.Request) {
	var req attendance.SubmitWeekRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	payload, err := h.attendanceService.ValidateWeek(r.Context(), middleware.EmployeeIDFromContext(r.Context()), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance is valid", payload)
}

// Submit implements AttendanceHandler.
func (h *attendanceHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req attendance.SubmitWeekRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.SubmitWeek(r.Context(), middleware.EmployeeIDFromContext(r.Context()), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance submitted successfully", result)
}
