package postgresql

import (
	"context"

	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/project"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/pkg/database"
)

type projectRepositoryImpl struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

// ListActiveByEmployee implements project.ProjectRepository.
func (r *projectRepositoryImpl) ListActiveByEmployee(ctx context.Context, employeeID string) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.name, p.is_active, p.created_at, p.updated_at
		FROM projects p
		INNER JOIN project_members pm ON pm.project_id = p.id
		WHERE pm.employee_id = $1 AND p.is_active = TRUE
		ORDER BY p.name ASC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		var p project.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return projects, nil
}

// GetNames implements project.ProjectRepository.
func (r *projectRepositoryImpl) GetNames(ctx context.Context, ids []int) (map[int]string, error) {
	q := GetQuerier(ctx, r.db)

	params := make([]int32, 0, len(ids))
	for _, id := range ids {
		params = append(params, int32(id))
	}

	rows, err := q.Query(ctx, `SELECT id, name FROM projects WHERE id = ANY($1)`, params)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make(map[int]string, len(ids))
	for rows.Next() {
		var id int32
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		names[int(id)] = name
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return names, nil
}
