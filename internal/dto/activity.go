package dto

import (
	"time"
)

// Activity represents a sequenced unit of work inside a scenario.
type Activity struct {
	UUID           string     `json:"uuid"`
	ScenarioID     string     `json:"scenario_id"`
	SequenceNumber int        `json:"sequence_number"`
	Description    string     `json:"description"`
	AssigneeID     *string    `json:"assignee_id,omitempty"`
	Status         string     `json:"status"`
	ReleasedAt     *time.Time `json:"released_at,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	CreatedBy      string     `json:"created_by"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// CreateActivityRequest is the payload for creating an activity. Released
// controls whether the activity is immediately available for completion.
type CreateActivityRequest struct {
	Description string  `json:"description" binding:"required,min=1,max=500"`
	AssigneeID  *string `json:"assignee_id"`
	Released    bool    `json:"released"`
}

// UpdateActivityRequest is the payload for editing an activity.
type UpdateActivityRequest struct {
	Description string  `json:"description" binding:"max=500"`
	AssigneeID  *string `json:"assignee_id"`
}

// ActivityListResponse is the list envelope for activities.
type ActivityListResponse struct {
	Count      int         `json:"count"`
	List       []*Activity `json:"list"`
	Pagination Pagination  `json:"pagination"`
}
