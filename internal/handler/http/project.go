package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/project"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/handler/http/response"
)

type ProjectHandler interface {
	ListActive(w http.ResponseWriter, r *http.Request)
}

type projectHandlerImpl struct {
	projectService project.ProjectService
}

func NewProjectHandler(projectService project.ProjectService) ProjectHandler {
	return &projectHandlerImpl{
		projectService: projectService,
	}
}

// ListActive implements ProjectHandler.
func (h *projectHandlerImpl) ListActive(w http.ResponseWriter, r *http.Request) {
	result, err := h.projectService.ListMyActiveProjects(r.Context(), middleware.EmployeeIDFromContext(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
