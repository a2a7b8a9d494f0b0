package project

import "context"

// ProjectRepository - interface for projects and project_members tables
type ProjectRepository interface {
	// ListActiveByEmployee returns active projects the employee is a member of
	ListActiveByEmployee(ctx context.Context, employeeID string) ([]Project, error)

	// GetNames maps project ids to names; unknown ids are absent from the result
	GetNames(ctx context.Context, ids []int) (map[int]string, error)
}
