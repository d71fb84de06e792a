package dto

import (
	"time"
)

// Scenario represents a test scenario inside a phase.
type Scenario struct {
	UUID        string    `json:"uuid"`
	PhaseID     string    `json:"phase_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateScenarioRequest is the payload for creating a scenario.
type CreateScenarioRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"max=2000"`
}

// UpdateScenarioRequest is the payload for updating a scenario.
type UpdateScenarioRequest struct {
	Name        string `json:"name" binding:"max=200"`
	Description string `json:"description" binding:"max=2000"`
}

// ScenarioListResponse is the list envelope for scenarios.
type ScenarioListResponse struct {
	Count      int         `json:"count"`
	List       []*Scenario `json:"list"`
	Pagination Pagination  `json:"pagination"`
}
