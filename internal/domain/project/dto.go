package project

type ProjectResponse struct {
	ProjectID   int    `json:"project_id"`
	ProjectName string `json:"project_name"`
}
