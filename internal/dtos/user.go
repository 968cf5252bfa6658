// File: internal/dtos/user.go
package dtos

import (
	"time"

	"github.com/nordsted/juridisk-ai/internal/domain"
)

// UserResponseDTO defines what fields to expose in user API responses.
// The password hash is never serialized.
type UserResponseDTO struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

// RegisterRequestDTO represents the payload to create a new account.
type RegisterRequestDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponseDTO wraps the confirmation message and the created user.
type RegisterResponseDTO struct {
	Message string          `json:"message"`
	User    UserResponseDTO `json:"user"`
}

// LoginRequestDTO represents the login payload.
type LoginRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponseDTO represents the login response. The token is also set
// as a cookie; the body copy serves non-browser clients.
type LoginResponseDTO struct {
	User  UserResponseDTO `json:"user"`
	Token string          `json:"token"`
}

// FromUserDomain converts a domain user to its API representation.
func FromUserDomain(user domain.User) UserResponseDTO {
	return UserResponseDTO{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}
