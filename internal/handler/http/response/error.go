package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/weekoff"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Backend fetch or submit failures carry their own message
	var collab *attendance.CollaboratorError
	if errors.As(err, &collab) {
		slog.Error("Collaborator failure", "op", collab.Op, "error", collab.Err)
		BadGateway(w, collab.Error())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrEmployeeClaimMissing):
		Unauthorized(w, err.Error())

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeIdentityUnknown):
		Unauthorized(w, "Employee identity unknown")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrDayIsWeekOff):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrRowIndexOutOfRange),
		errors.Is(err, attendance.ErrDateOutsideWeek):
		BadRequest(w, err.Error(), nil)

	// Week-off domain errors
	case errors.Is(err, weekoff.ErrWeekOffNotFound):
		NotFound(w, "Week-off record not found")
	case errors.Is(err, weekoff.ErrWeekOffLimitExceeded):
		BadRequest(w, err.Error(), nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrBalanceNotFound):
		NotFound(w, "Leave balance not found")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
