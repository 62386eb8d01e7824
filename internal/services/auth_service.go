package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shirokane/todo-app-api/internal/auth"
	"github.com/shirokane/todo-app-api/internal/models"
	"github.com/shirokane/todo-app-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrDuplicateIdentity    = errors.New("username or email already exists")
	ErrPasswordMismatch     = errors.New("password confirmation does not match")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// AuthService handles identity, credential verification, and session issuance.
type AuthService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, tokens *auth.TokenService) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Email                string
	Username             string
	FirstName            string
	LastName             string
	Password             string
	PasswordConfirmation string
}

// Register creates a new active user with a hashed password.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if input.Password != input.PasswordConfirmation {
		return nil, ErrPasswordMismatch
	}

	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return nil, ErrDuplicateIdentity
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	if _, err := s.userRepo.FindByEmail(input.Email); err == nil {
		return nil, ErrDuplicateIdentity
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Email:          input.Email,
		Username:       username,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		HashedPassword: hashedPassword,
		IsActive:       true,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Username string
	Password string
}

// Authenticate verifies credentials and returns the authenticated user.
// An unknown username and a wrong password fail identically.
func (s *AuthService) Authenticate(input LoginInput) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !auth.VerifyPassword(input.Password, user.HashedPassword) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// IssueToken creates a signed session token for the user. A zero ttl uses
// the configured default; an expiry is embedded either way.
func (s *AuthService) IssueToken(user *models.User, ttl time.Duration) (string, error) {
	return s.tokens.Issue(user.ID, user.Username, ttl)
}

// ChangePasswordInput carries a password change request. Username is the
// account whose digest is re-verified, deliberately taken from the request
// body rather than the session identity.
type ChangePasswordInput struct {
	Username        string
	CurrentPassword string
	NewPassword     string
}

// ChangePassword re-verifies the current password for the named account
// before replacing the digest.
func (s *AuthService) ChangePassword(input ChangePasswordInput) error {
	user, err := s.userRepo.FindByUsername(input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if !auth.VerifyPassword(input.CurrentPassword, user.HashedPassword) {
		return ErrInvalidCredentials
	}

	hashedPassword, err := auth.HashPassword(input.NewPassword)
	if err != nil {
		return ErrFailedToHashPassword
	}

	if err := s.userRepo.UpdatePassword(user.ID, hashedPassword); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}
