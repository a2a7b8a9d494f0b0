package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/weekoff"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/handler/http/response"
)

type WeekOffHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Save(w http.ResponseWriter, r *http.Request)
}

type weekOffHandlerImpl struct {
	weekOffService weekoff.WeekOffService
}

func NewWeekOffHandler(weekOffService weekoff.WeekOffService) WeekOffHandler {
	return &weekOffHandlerImpl{
		weekOffService: weekOffService,
	}
}

// List implements WeekOffHandler.
func (h *weekOffHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.weekOffService.ListMyWeekOffs(r.Context(), middleware.EmployeeIDFromContext(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Save implements WeekOffHandler.
func (h *weekOffHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	var req weekoff.SaveWeekOffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.weekOffService.SaveWeekOff(r.Context(), middleware.EmployeeIDFromContext(r.Context()), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Week-off days saved", result)
}
