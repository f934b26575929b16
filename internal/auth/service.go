package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"project-tracker-backend/internal/database/models"
	apperrors "project-tracker-backend/internal/errors"
	"project-tracker-backend/internal/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository is the subset of user storage the auth layer needs
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
}

// AuthService handles local credential signup, login and profile management
type AuthService struct {
	config   *AuthConfig
	tokens   *TokenService
	userRepo UserRepository
}

// SignupRequest represents the request to register an account
type SignupRequest struct {
	Name     string       `json:"name" binding:"required,min=2,max=100" example:"Jane Doe"`
	Email    string       `json:"email" binding:"required,email,max=255" example:"jane@example.com"`
	Password string       `json:"password" binding:"required,min=6,max=72" example:"secret123"`
	Role     *models.Role `json:"role,omitempty" swaggertype:"string" enums:"member,leader"`
}

// LoginRequest represents the login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"secret123"`
}

// UpdateProfileRequest represents a change to the caller's own profile
type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email,max=255"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=6,max=72"`
}

// ProfileResponse is the public view of an account
type ProfileResponse struct {
	ID     uuid.UUID   `json:"id"`
	Name   string      `json:"name"`
	Email  string      `json:"email"`
	Role   models.Role `json:"role"`
	Active bool        `json:"active"`
}

// LoginResponse is returned after a successful login
type LoginResponse struct {
	AccessToken string          `json:"accessToken"`
	TokenType   string          `json:"tokenType" example:"Bearer"`
	ExpiresAt   time.Time       `json:"expiresAt"`
	Profile     ProfileResponse `json:"profile"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, userRepo UserRepository) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	return &AuthService{
		config:   config,
		tokens:   NewTokenService(config),
		userRepo: userRepo,
	}, nil
}

// Tokens returns the token service used to sign sessions
func (s *AuthService) Tokens() *TokenService {
	return s.tokens
}

// Signup registers a new account. Self-registration cannot create admins.
func (s *AuthService) Signup(ctx context.Context, req *SignupRequest) (*ProfileResponse, error) {
	role := s.config.SignupRole
	if req.Role != nil {
		role = *req.Role
	}
	if role != models.RoleMember && role != models.RoleLeader {
		return nil, apperrors.ErrInvalidRole
	}

	email := normalizeEmail(req.Email)
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Active:       true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"new_user": user.ID,
		"new_role": user.Role,
	}).Info("account registered")

	return toProfile(user), nil
}

// Login verifies credentials and issues a session token. A deactivated
// account is reported as such only after the email matched an account.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !user.Active {
		return nil, apperrors.ErrAccountDeactivated
	}
	if !CheckPassword(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.GenerateJWT(user)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		Profile:     *toProfile(user),
	}, nil
}

// Me returns the caller's own profile
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*ProfileResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return toProfile(user), nil
}

// UpdateMe changes the caller's own name, email or password
func (s *AuthService) UpdateMe(ctx context.Context, userID uuid.UUID, req *UpdateProfileRequest) (*ProfileResponse, error) {
	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		existing, err := s.userRepo.GetByEmail(ctx, email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing user: %w", err)
		}
		if existing != nil && existing.ID != userID {
			return nil, apperrors.ErrUserExists
		}
		updates["email"] = email
	}
	if req.Password != nil {
		hash, err := HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		updates["password"] = hash
	}
	if len(updates) == 0 {
		return nil, apperrors.ErrNoChanges
	}

	if err := s.userRepo.Update(ctx, userID, updates); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return s.Me(ctx, userID)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toProfile(user *models.User) *ProfileResponse {
	return &ProfileResponse{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		Active: user.Active,
	}
}
