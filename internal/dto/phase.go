package dto

import (
	"time"
)

// Phase represents a project stage grouping test scenarios.
type Phase struct {
	UUID      string    `json:"uuid"`
	ProjectID string    `json:"project_id"`
	Name      string    `json:"name"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreatePhaseRequest is the payload for creating a phase.
type CreatePhaseRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=200"`
	Position int    `json:"position" binding:"gte=0"`
}

// UpdatePhaseRequest is the payload for updating a phase.
type UpdatePhaseRequest struct {
	Name     string `json:"name" binding:"max=200"`
	Position *int   `json:"position" binding:"omitempty,gte=0"`
}

// PhaseListResponse is the list envelope for phases.
type PhaseListResponse struct {
	Count      int        `json:"count"`
	List       []*Phase   `json:"list"`
	Pagination Pagination `json:"pagination"`
}
