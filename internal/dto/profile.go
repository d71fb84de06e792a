package dto

import (
	"time"
)

// Profile represents a project-scoped capability bundle. Capabilities is a
// name→bool map over the closed capability set.
type Profile struct {
	UUID         string          `json:"uuid"`
	ProjectID    string          `json:"project_id"`
	Name         string          `json:"name"`
	IsDefault    bool            `json:"is_default"`
	Capabilities map[string]bool `json:"capabilities"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// CreateProfileRequest is the payload for creating a profile. Capability
// names absent from the map default to false; unknown names are rejected.
type CreateProfileRequest struct {
	Name         string          `json:"name" binding:"required,min=1,max=100"`
	Capabilities map[string]bool `json:"capabilities"`
}

// UpdateProfileRequest is the payload for updating a profile. A nil
// Capabilities map leaves the capability set untouched.
type UpdateProfileRequest struct {
	Name         string          `json:"name" binding:"max=100"`
	Capabilities map[string]bool `json:"capabilities"`
}

// ProfileListResponse is the list envelope for profiles.
type ProfileListResponse struct {
	Count      int        `json:"count"`
	List       []*Profile `json:"list"`
	Pagination Pagination `json:"pagination"`
}
