// Package services holds the business rules of the marketplace. Services
// speak in models and domain errors; HTTP concerns stay in the controllers.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cropconnect/api/app/models"
	"github.com/cropconnect/api/app/repositories"
	"github.com/cropconnect/api/pkg/auth"
)

// AuthService registers accounts and issues session tokens.
type AuthService struct {
	users repositories.UserRepository
}

func NewAuth(users repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// RegisterInput carries a signup request. Validation happens at the
// controller boundary.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,in=farmer,buyer"`
	Location string `json:"location"`
}

// Register creates an account and returns it with a signed token.
// Returns models.ErrDuplicateEmail when the email is already taken.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, string, error) {
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, "", fmt.Errorf("auth: hash password: %w", err)
	}

	u := &models.User{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Password:  hash,
		Role:      in.Role,
		Location:  in.Location,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, "", err
	}

	token, err := auth.GenerateToken(u.ID, u.Email, u.Role)
	if err != nil {
		return nil, "", fmt.Errorf("auth: sign token: %w", err)
	}
	return u, token, nil
}

// Login verifies credentials and returns the account with a fresh token.
// Unknown email and wrong password both come back as
// models.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, "", models.ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !auth.CheckPassword(u.Password, password) {
		return nil, "", models.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(u.ID, u.Email, u.Role)
	if err != nil {
		return nil, "", fmt.Errorf("auth: sign token: %w", err)
	}
	return u, token, nil
}
