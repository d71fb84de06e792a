package dto

import (
	"time"
)

// Project represents a project entity in the platform
type Project struct {
	UUID        string    `json:"uuid"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateProjectRequest is the payload for creating a project.
type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"max=2000"`
}

// UpdateProjectRequest is the payload for renaming a project.
type UpdateProjectRequest struct {
	Name        string `json:"name" binding:"max=200"`
	Description string `json:"description" binding:"max=2000"`
}

// ProjectListResponse is the list envelope for projects.
type ProjectListResponse struct {
	Count      int        `json:"count"`
	List       []*Project `json:"list"`
	Pagination Pagination `json:"pagination"`
}
