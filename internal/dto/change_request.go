package dto

import (
	"time"
)

// ChangeRequest represents a formal change request with its impact
// assessment and decision trail.
type ChangeRequest struct {
	UUID               string     `json:"uuid"`
	ProjectID          string     `json:"project_id"`
	RequestedBy        string     `json:"requested_by"`
	RequestingArea     string     `json:"requesting_area"`
	Description        string     `json:"description"`
	Justification      string     `json:"justification"`
	ChangeType         string     `json:"change_type"`
	ScheduleImpact     string     `json:"schedule_impact"`
	CostImpact         string     `json:"cost_impact"`
	ScopeImpact        string     `json:"scope_impact"`
	ResourceImpact     string     `json:"resource_impact"`
	RiskImpact         string     `json:"risk_impact"`
	Priority           string     `json:"priority"`
	PMRecommendation   string     `json:"pm_recommendation"`
	Status             string     `json:"status"`
	Approver           string     `json:"approver"`
	DecisionDate       *time.Time `json:"decision_date,omitempty"`
	ImplementationDate *time.Time `json:"implementation_date,omitempty"`
	Notes              string     `json:"notes"`
	CreatedBy          string     `json:"created_by"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// CreateChangeRequestRequest is the payload for opening a change request.
type CreateChangeRequestRequest struct {
	RequestedBy    string `json:"requested_by" binding:"max=100"`
	RequestingArea string `json:"requesting_area" binding:"max=100"`
	Description    string `json:"description" binding:"required,min=1"`
	Justification  string `json:"justification"`
	ChangeType     string `json:"change_type" binding:"max=50"`
	ScheduleImpact string `json:"schedule_impact" binding:"max=100"`
	CostImpact     string `json:"cost_impact" binding:"max=100"`
	ScopeImpact    string `json:"scope_impact" binding:"max=50"`
	ResourceImpact string `json:"resource_impact" binding:"max=200"`
	RiskImpact     string `json:"risk_impact" binding:"max=50"`
	Priority       string `json:"priority" binding:"max=50"`
}

// UpdateChangeRequestRequest is the payload for editing a change request,
// including recording the decision.
type UpdateChangeRequestRequest struct {
	RequestedBy        string     `json:"requested_by" binding:"max=100"`
	RequestingArea     string     `json:"requesting_area" binding:"max=100"`
	Description        string     `json:"description"`
	Justification      string     `json:"justification"`
	ChangeType         string     `json:"change_type" binding:"max=50"`
	ScheduleImpact     string     `json:"schedule_impact" binding:"max=100"`
	CostImpact         string     `json:"cost_impact" binding:"max=100"`
	ScopeImpact        string     `json:"scope_impact" binding:"max=50"`
	ResourceImpact     string     `json:"resource_impact" binding:"max=200"`
	RiskImpact         string     `json:"risk_impact" binding:"max=50"`
	Priority           string     `json:"priority" binding:"max=50"`
	PMRecommendation   string     `json:"pm_recommendation" binding:"max=50"`
	Status             string     `json:"status" binding:"omitempty,oneof=pending approved rejected implemented"`
	Approver           string     `json:"approver" binding:"max=100"`
	DecisionDate       *time.Time `json:"decision_date"`
	ImplementationDate *time.Time `json:"implementation_date"`
	Notes              string     `json:"notes"`
}

// ChangeRequestListResponse is the list envelope for change requests.
type ChangeRequestListResponse struct {
	Count      int              `json:"count"`
	List       []*ChangeRequest `json:"list"`
	Pagination Pagination       `json:"pagination"`
}
