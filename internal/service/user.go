package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"project-tracker-backend/internal/access"
	"project-tracker-backend/internal/auth"
	"project-tracker-backend/internal/database/models"
	apperrors "project-tracker-backend/internal/errors"
	"project-tracker-backend/internal/logger"
	"project-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles user account administration
type UserService struct {
	tx        repository.Transactor
	users     repository.UserRepositoryInterface
	projects  repository.ProjectRepositoryInterface
	resolver  *access.Resolver
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(
	tx repository.Transactor,
	users repository.UserRepositoryInterface,
	projects repository.ProjectRepositoryInterface,
	memberships repository.MembershipRepositoryInterface,
	validator *validator.Validate,
) *UserService {
	return &UserService{
		tx:        tx,
		users:     users,
		projects:  projects,
		resolver:  access.NewResolver(memberships),
		validator: validator,
	}
}

// CreateUserRequest represents the request to create a user
type CreateUserRequest struct {
	Name     string      `json:"name" validate:"required,min=2,max=100" example:"Jane Doe"`
	Email    string      `json:"email" validate:"required,email,max=255" example:"jane@example.com"`
	Password string      `json:"password" validate:"required,min=6,max=72"`
	Role     models.Role `json:"role" validate:"required,oneof=admin leader member"`
	Active   *bool       `json:"active,omitempty"`
}

// UpdateUserRequest represents the request to update a user
type UpdateUserRequest struct {
	Name     *string      `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Email    *string      `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Password *string      `json:"password,omitempty" validate:"omitempty,min=6,max=72"`
	Role     *models.Role `json:"role,omitempty" validate:"omitempty,oneof=admin leader member"`
	Active   *bool        `json:"active,omitempty"`
}

// UserResponse represents the response for user operations
type UserResponse struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	Active    bool        `json:"active"`
	CreatedAt string      `json:"created_at"`
	UpdatedAt string      `json:"updated_at"`
}

// List returns all users ordered by name
func (s *UserService) List(ctx context.Context, actor access.Actor) ([]UserResponse, error) {
	if err := s.resolver.Users(actor, access.OpRead); err != nil {
		return nil, err
	}

	users, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = *toUserResponse(&users[i])
	}
	return responses, nil
}

// Get retrieves a single user
func (s *UserService) Get(ctx context.Context, actor access.Actor, id uuid.UUID) (*UserResponse, error) {
	if err := s.resolver.Users(actor, access.OpRead); err != nil {
		return nil, err
	}
	user, err := s.getUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Create creates a user with any role
func (s *UserService) Create(ctx context.Context, actor access.Actor, req *CreateUserRequest) (*UserResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if err := s.resolver.Users(actor, access.OpCreate); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := s.checkEmailFree(ctx, email, uuid.Nil); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	user := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         req.Role,
		Active:       active,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"target_user": user.ID,
		"target_role": user.Role,
	}).Info("user created")
	return toUserResponse(user), nil
}

// Update changes a user's profile, password, role or active flag. An admin
// cannot demote or deactivate themselves.
func (s *UserService) Update(ctx context.Context, actor access.Actor, id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if err := s.resolver.Users(actor, access.OpUpdate); err != nil {
		return nil, err
	}
	if _, err := s.getUser(ctx, id); err != nil {
		return nil, err
	}

	if id == actor.ID {
		if (req.Active != nil && !*req.Active) || (req.Role != nil && *req.Role != models.RoleAdmin) {
			return nil, apperrors.NewInvalidStateError("you cannot demote or deactivate your own account")
		}
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if err := s.checkEmailFree(ctx, email, id); err != nil {
			return nil, err
		}
		updates["email"] = email
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		updates["password"] = hash
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	if len(updates) == 0 {
		return nil, apperrors.ErrNoFieldsToUpdate
	}

	if err := s.users.Update(ctx, id, updates); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	user, err := s.getUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete removes a user. Tasks assigned to the user become unassigned and
// the user's memberships are dropped. A user that still owns projects is
// kept.
func (s *UserService) Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error {
	if err := s.resolver.Users(actor, access.OpDelete); err != nil {
		return err
	}
	if id == actor.ID {
		return apperrors.ErrSelfDelete
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.getUser(ctx, id); err != nil {
			return err
		}

		owned, err := s.projects.CountByCreator(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to count owned projects: %w", err)
		}
		if owned > 0 {
			return apperrors.ErrUserOwnsProjects
		}

		if err := s.users.Delete(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrUserNotFound
			}
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.WithContext(ctx).WithField("target_user", id).Info("user deleted")
	return nil
}

func (s *UserService) getUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// checkEmailFree fails when the email belongs to a user other than self
func (s *UserService) checkEmailFree(ctx context.Context, email string, self uuid.UUID) error {
	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing.ID != self {
		return apperrors.ErrUserExists
	}
	return nil
}

func toUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Active:    user.Active,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		UpdatedAt: user.UpdatedAt.Format(time.RFC3339),
	}
}
