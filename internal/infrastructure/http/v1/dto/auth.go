package dto

import (
	"time"

	"storefront/internal/domain/auth"
)

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued session token.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   string `json:"expires_at"`
	FullName    string `json:"full_name"`
}

// FromLogin projects the login result.
func FromLogin(r *auth.LoginResponse) LoginResponse {
	return LoginResponse{
		AccessToken: r.AccessToken,
		ExpiresAt:   r.ExpiresAt.Format(time.RFC3339),
		FullName:    r.FullName,
	}
}
