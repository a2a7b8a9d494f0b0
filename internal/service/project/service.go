package project

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/project"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/pkg/validator"
)

type ProjectServiceImpl struct {
	project.ProjectRepository
}

func NewProjectService(projectRepo project.ProjectRepository) project.ProjectService {
	return &ProjectServiceImpl{ProjectRepository: projectRepo}
}

// ListMyActiveProjects implements project.ProjectService.
func (s *ProjectServiceImpl) ListMyActiveProjects(ctx context.Context, employeeID string) ([]project.ProjectResponse, error) {
	if validator.IsEmpty(employeeID) {
		return nil, employee.ErrEmployeeIdentityUnknown
	}

	projects, err := s.ProjectRepository.ListActiveByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active projects: %w", err)
	}

	resp := make([]project.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		resp = append(resp, project.ProjectResponse{ProjectID: p.ID, ProjectName: p.Name})
	}
	return resp, nil
}
