package dto

import (
	"time"
)

// Membership binds a user to a profile within a project. Username and
// ProfileName are denormalized for listing convenience.
type Membership struct {
	UUID        string    `json:"uuid"`
	ProjectID   string    `json:"project_id"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"username,omitempty"`
	ProfileID   string    `json:"profile_id"`
	ProfileName string    `json:"profile_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AddMemberRequest is the payload for adding a user to a project.
type AddMemberRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	ProfileID string `json:"profile_id" binding:"required"`
}

// ChangeProfileRequest is the payload for reassigning a member's profile.
type ChangeProfileRequest struct {
	ProfileID string `json:"profile_id" binding:"required"`
}

// MembershipListResponse is the list envelope for memberships.
type MembershipListResponse struct {
	Count      int           `json:"count"`
	List       []*Membership `json:"list"`
	Pagination Pagination    `json:"pagination"`
}
