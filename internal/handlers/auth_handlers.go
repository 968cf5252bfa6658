// File: internal/handlers/auth_handlers.go
package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/nordsted/juridisk-ai/internal/dtos"
	"github.com/nordsted/juridisk-ai/internal/services/user_services"
)

// AuthHandler holds the dependencies for authentication handlers.
type AuthHandler struct {
	AuthService *user_services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service *user_services.AuthService) *AuthHandler {
	return &AuthHandler{AuthService: service}
}

// Register handles new user registrations.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dtos.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Ugyldig forespørgsel", http.StatusBadRequest)
		return
	}

	created, err := h.AuthService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, user_services.ErrMissingFields):
			writeError(w, "Alle felter er påkrævet", http.StatusBadRequest)
		case errors.Is(err, user_services.ErrEmailTaken):
			writeError(w, "En bruger med denne email findes allerede", http.StatusBadRequest)
		default:
			log.Printf("[AuthHandler] Registration failed: %v", err)
			writeError(w, "Der opstod en fejl ved oprettelse af bruger", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, dtos.RegisterResponseDTO{
		Message: "Bruger oprettet succesfuldt",
		User:    dtos.FromUserDomain(*created),
	})
}

// Login verifies credentials, sets the session cookie, and returns the
// token in the body as well for non-browser clients.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Ugyldig forespørgsel", http.StatusBadRequest)
		return
	}

	found, token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user_services.ErrInvalidCredentials) {
			writeError(w, "Forkert email eller adgangskode", http.StatusUnauthorized)
			return
		}
		log.Printf("[AuthHandler] Login failed: %v", err)
		writeError(w, "Der opstod en fejl ved login", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(24 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, dtos.LoginResponseDTO{
		User:  dtos.FromUserDomain(*found),
		Token: token,
	})
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
