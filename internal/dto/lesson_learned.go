package dto

import (
	"time"
)

// LessonLearned represents a lesson captured during a project.
type LessonLearned struct {
	UUID               string    `json:"uuid"`
	ProjectID          string    `json:"project_id"`
	PhaseID            *string   `json:"phase_id,omitempty"`
	Category           string    `json:"category"`
	Type               string    `json:"type"`
	Description        string    `json:"description"`
	RootCause          string    `json:"root_cause"`
	Impact             string    `json:"impact"`
	ActionTaken        string    `json:"action_taken"`
	Recommendation     string    `json:"recommendation"`
	Owner              string    `json:"owner"`
	Status             string    `json:"status"`
	ApplicableToFuture bool      `json:"applicable_to_future"`
	CreatedBy          string    `json:"created_by"`
	RecordedAt         time.Time `json:"recorded_at"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// CreateLessonLearnedRequest is the payload for recording a lesson.
type CreateLessonLearnedRequest struct {
	PhaseID            *string `json:"phase_id"`
	Category           string  `json:"category" binding:"max=100"`
	Type               string  `json:"type" binding:"max=50"`
	Description        string  `json:"description" binding:"required,min=1"`
	RootCause          string  `json:"root_cause"`
	Impact             string  `json:"impact"`
	ActionTaken        string  `json:"action_taken"`
	Recommendation     string  `json:"recommendation"`
	Owner              string  `json:"owner" binding:"max=100"`
	Status             string  `json:"status" binding:"omitempty,oneof=open in_progress closed"`
	ApplicableToFuture *bool   `json:"applicable_to_future"`
}

// UpdateLessonLearnedRequest is the payload for editing a lesson.
type UpdateLessonLearnedRequest struct {
	PhaseID            *string `json:"phase_id"`
	Category           string  `json:"category" binding:"max=100"`
	Type               string  `json:"type" binding:"max=50"`
	Description        string  `json:"description"`
	RootCause          string  `json:"root_cause"`
	Impact             string  `json:"impact"`
	ActionTaken        string  `json:"action_taken"`
	Recommendation     string  `json:"recommendation"`
	Owner              string  `json:"owner" binding:"max=100"`
	Status             string  `json:"status" binding:"omitempty,oneof=open in_progress closed"`
	ApplicableToFuture *bool   `json:"applicable_to_future"`
}

// LessonLearnedListResponse is the list envelope for lessons learned.
type LessonLearnedListResponse struct {
	Count      int              `json:"count"`
	List       []*LessonLearned `json:"list"`
	Pagination Pagination       `json:"pagination"`
}
