package project

import "context"

type ProjectService interface {
	ListMyActiveProjects(ctx context.Context, employeeID string) ([]ProjectResponse, error)
}
