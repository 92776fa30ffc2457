package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/joshua-takyi/orange/internal/helpers"
	"github.com/joshua-takyi/orange/internal/models"
)

type AuthService struct {
	users     models.UserRepo
	jwtSecret string
}

func NewAuthService(users models.UserRepo, jwtSecret string) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: jwtSecret,
	}
}

// AuthResult is returned by signup and login: a bearer token plus the
// account it identifies.
type AuthResult struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        *models.User `json:"user"`
}

// Signup registers a new account. Email, role and credential hash are
// immutable after this point; there is no update path for them.
func (as *AuthService) Signup(ctx context.Context, email, password, role string) (*AuthResult, error) {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return nil, fmt.Errorf("invalid email: %w", models.ErrInvalidInput)
	}
	if role != models.RoleCreator && role != models.RoleBusiness {
		return nil, fmt.Errorf("role must be 'creator' or 'business': %w", models.ErrInvalidInput)
	}
	if !helpers.IsPasswordStrong(password) {
		return nil, fmt.Errorf("password must be at least 8 characters with a letter and a number: %w", models.ErrInvalidInput)
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	if _, err := as.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return as.issue(user)
}

// Login verifies credentials and issues a fresh token. A missing account and
// a wrong password are indistinguishable to the caller.
func (as *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := as.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("invalid email or password: %w", models.ErrUnauthorized)
		}
		return nil, err
	}

	if !helpers.VerifyPassword(password, user.PasswordHash) {
		return nil, fmt.Errorf("invalid email or password: %w", models.ErrUnauthorized)
	}

	return as.issue(user)
}

// ResolveToken maps a bearer token back to the live account record.
func (as *AuthService) ResolveToken(ctx context.Context, token string) (*models.User, error) {
	claims, err := helpers.ValidateToken(as.jwtSecret, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrUnauthorized, err)
	}

	user, err := as.users.FindByID(ctx, claims.UserID())
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("user not found: %w", models.ErrUnauthorized)
		}
		return nil, err
	}
	return user, nil
}

func (as *AuthService) issue(user *models.User) (*AuthResult, error) {
	token, err := helpers.GenerateToken(as.jwtSecret, user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	}, nil
}
