package service

import (
	"context"
	"errors"
	"fmt"

	"project-tracker-backend/internal/access"
	"project-tracker-backend/internal/database/models"
	apperrors "project-tracker-backend/internal/errors"
	"project-tracker-backend/internal/logger"
	"project-tracker-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AddProjectMemberRequest represents the request to add a user to a project
type AddProjectMemberRequest struct {
	UserID        uuid.UUID `json:"user_id" validate:"required"`
	RoleInProject *string   `json:"role_in_project,omitempty" validate:"omitempty,max=100" example:"reviewer"`
}

// ProjectMemberResponse represents a member of a project
type ProjectMemberResponse struct {
	ID            uuid.UUID   `json:"id"`
	Name          string      `json:"name"`
	Email         string      `json:"email"`
	Role          models.Role `json:"role"`
	RoleInProject *string     `json:"role_in_project"`
}

// UserSummary is the public view of a user used in pickers and rosters
type UserSummary struct {
	ID    uuid.UUID   `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

// ListMembers returns the members of a project
func (s *ProjectService) ListMembers(ctx context.Context, actor access.Actor, projectID uuid.UUID) ([]ProjectMemberResponse, error) {
	if _, err := s.authorizeMembers(ctx, actor, projectID, access.OpRead); err != nil {
		return nil, err
	}

	rows, err := s.memberships.GetProjectMembers(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project members: %w", err)
	}

	responses := make([]ProjectMemberResponse, len(rows))
	for i, row := range rows {
		responses[i] = toProjectMemberResponse(row)
	}
	return responses, nil
}

// AddMember grants a user visibility into a project
func (s *ProjectService) AddMember(ctx context.Context, actor access.Actor, projectID uuid.UUID, req *AddProjectMemberRequest) (*ProjectMemberResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if _, err := s.authorizeMembers(ctx, actor, projectID, access.OpCreate); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	exists, err := s.memberships.IsProjectMember(ctx, projectID, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check project membership: %w", err)
	}
	if exists {
		return nil, apperrors.ErrProjectMemberExists
	}

	member := &models.ProjectMember{
		ProjectID:     projectID,
		UserID:        req.UserID,
		RoleInProject: req.RoleInProject,
	}
	if err := s.memberships.AddProjectMember(ctx, member); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrProjectMemberExists
		}
		return nil, fmt.Errorf("failed to add project member: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"project_id": projectID,
		"member_id":  req.UserID,
	}).Info("project member added")

	return &ProjectMemberResponse{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		Role:          user.Role,
		RoleInProject: req.RoleInProject,
	}, nil
}

// RemoveMember revokes a user's project membership. Task assignments of the
// user are left in place.
func (s *ProjectService) RemoveMember(ctx context.Context, actor access.Actor, projectID, userID uuid.UUID) error {
	if _, err := s.authorizeMembers(ctx, actor, projectID, access.OpDelete); err != nil {
		return err
	}

	if err := s.memberships.RemoveProjectMember(ctx, projectID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProjectMemberNotFound
		}
		return fmt.Errorf("failed to remove project member: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"project_id": projectID,
		"member_id":  userID,
	}).Info("project member removed")
	return nil
}

// AvailableMembers lists active users that could still be added to the
// project. The caller is never offered.
func (s *ProjectService) AvailableMembers(ctx context.Context, actor access.Actor, projectID uuid.UUID) ([]UserSummary, error) {
	if _, err := s.authorizeMembers(ctx, actor, projectID, access.OpRead); err != nil {
		return nil, err
	}

	users, err := s.memberships.GetAvailableProjectMembers(ctx, projectID, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get available users: %w", err)
	}
	return toUserSummaries(users), nil
}

// MemberTasks lists the tasks of a project that are assigned to a user
func (s *ProjectService) MemberTasks(ctx context.Context, actor access.Actor, projectID, userID uuid.UUID) ([]AssignedTaskResponse, error) {
	if _, err := s.authorizeMembers(ctx, actor, projectID, access.OpRead); err != nil {
		return nil, err
	}

	rows, err := s.tasks.GetAssignedInProject(ctx, projectID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get member tasks: %w", err)
	}
	return toAssignedTaskResponses(rows), nil
}

func (s *ProjectService) authorizeMembers(ctx context.Context, actor access.Actor, projectID uuid.UUID, op access.Operation) (*models.Project, error) {
	project, err := s.loadProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if err := s.resolver.Project(ctx, actor, project, access.KindProjectMembers, op); err != nil {
		return nil, err
	}
	return project, nil
}

func toProjectMemberResponse(row repository.ProjectMemberRow) ProjectMemberResponse {
	return ProjectMemberResponse{
		ID:            row.ID,
		Name:          row.Name,
		Email:         row.Email,
		Role:          row.Role,
		RoleInProject: row.RoleInProject,
	}
}

func toUserSummary(user *models.User) UserSummary {
	return UserSummary{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role}
}

func toUserSummaries(users []models.User) []UserSummary {
	summaries := make([]UserSummary, len(users))
	for i := range users {
		summaries[i] = toUserSummary(&users[i])
	}
	return summaries
}
