package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"storefront/internal/core/apperror"
	"storefront/internal/core/id"
	"storefront/pkg/logger"
)

// Service provides login and user directory lookups.
type Service struct {
	users      Repository
	jwtService *JWTService
}

// NewService creates an auth service.
func NewService(users Repository, jwtService *JWTService) *Service {
	return &Service{users: users, jwtService: jwtService}
}

// Login verifies credentials and issues an access token.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewUnauthorized("invalid credentials")
		}
		return nil, err
	}

	if user.Disabled {
		return nil, apperror.NewUnauthorized("account disabled")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.NewUnauthorized("invalid credentials")
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(
		user.ID.String(), user.Email, user.FullName, user.Roles,
	)
	if err != nil {
		return nil, apperror.NewUnexpected(err)
	}

	logger.Info(ctx, "user logged in", "user_id", user.ID, "email", user.Email)

	return &LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		FullName:    user.FullName,
	}, nil
}

// HashPassword produces a bcrypt hash for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// FullName implements quotation.UserDirectory: it resolves a session user id
// to the display name shown as a document's creator.
func (s *Service) FullName(ctx context.Context, userID string) (string, error) {
	uid, err := id.Parse(userID)
	if err != nil {
		return "", apperror.NewNotFound("user", userID)
	}
	user, err := s.users.GetByID(ctx, uid)
	if err != nil {
		return "", err
	}
	return user.FullName, nil
}
