// File: internal/services/user_services/auth_service.go
package user_services

import (
	"context"
	"errors"
	"strings"

	"github.com/nordsted/juridisk-ai/internal/auth"
	"github.com/nordsted/juridisk-ai/internal/domain"
	"github.com/nordsted/juridisk-ai/internal/repository/user"
	"github.com/nordsted/juridisk-ai/internal/services"
)

var (
	ErrMissingFields      = errors.New("all fields are required")
	ErrEmailTaken         = errors.New("a user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthService handles registration and login.
type AuthService struct {
	userRepo  user.UserRepository
	jwtSecret []byte
	logger    services.Logger
}

func NewAuthService(userRepo user.UserRepository, jwtSecret []byte, logger services.Logger) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		logger:    logger,
	}
}

// Register creates a new account. The email must not be in use and every
// field must be non-empty. The returned user carries the hashed password;
// serialization hides it.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return nil, err
	}

	newUser := &domain.User{Name: name, Email: email}
	if err := newUser.HashPassword(password); err != nil {
		s.logger.Error("password hashing failed", "error", err)
		return nil, err
	}

	created, err := s.userRepo.Create(ctx, newUser)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "user_id", created.ID)
	return created, nil
}

// Login verifies credentials and issues a signed session token. The same
// error comes back for an unknown email and a wrong password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	found, err := s.userRepo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := found.ValidatePassword(password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := auth.GenerateJWT(found.ID, s.jwtSecret)
	if err != nil {
		s.logger.Error("token generation failed", "error", err, "user_id", found.ID)
		return nil, "", err
	}

	s.logger.Info("user logged in", "user_id", found.ID)
	return found, token, nil
}
