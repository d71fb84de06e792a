package dto

import (
	"time"
)

// User represents an account identity exposed over the API. Password
// material never leaves the service layer.
type User struct {
	UUID      string    `json:"uuid"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RegisterRequest is the payload for user self-registration. Username is
// optional and defaults to the local part of the email address.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the payload for credential login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued bearer token and the authenticated user.
type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
