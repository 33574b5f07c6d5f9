package dto

import "time"

// LoginRequest carries the shared admin secret.
type LoginRequest struct {
	Code string `json:"code" validate:"required"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Success bool `json:"success"`
}

// CheckResponse reports session state for GET /api/auth/check.
type CheckResponse struct {
	Authenticated bool `json:"authenticated"`
}

// DriveStatusResponse reports Google Drive connection state.
type DriveStatusResponse struct {
	Connected   bool       `json:"connected"`
	Expiry      *time.Time `json:"expiry,omitempty"`
	ExpiresSoon bool       `json:"expires_soon,omitempty"`
}
