package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"project-tracker-backend/internal/access"
	"project-tracker-backend/internal/database/models"
	apperrors "project-tracker-backend/internal/errors"
	"project-tracker-backend/internal/logger"
	"project-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamService handles leader rosters. A roster never grants project access;
// it only widens which projects a leader can list.
type TeamService struct {
	memberships repository.MembershipRepositoryInterface
	users       repository.UserRepositoryInterface
	tasks       repository.TaskRepositoryInterface
	resolver    *access.Resolver
	validator   *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(
	memberships repository.MembershipRepositoryInterface,
	users repository.UserRepositoryInterface,
	tasks repository.TaskRepositoryInterface,
	validator *validator.Validate,
) *TeamService {
	return &TeamService{
		memberships: memberships,
		users:       users,
		tasks:       tasks,
		resolver:    access.NewResolver(memberships),
		validator:   validator,
	}
}

// AddTeamMemberRequest represents the request to put a user on a roster.
// LeaderID names the roster for admins when the query string does not.
type AddTeamMemberRequest struct {
	UserID   uuid.UUID  `json:"user_id" validate:"required"`
	LeaderID *uuid.UUID `json:"leaderId,omitempty"`
}

// TeamMemberResponse represents a user on a roster
type TeamMemberResponse struct {
	ID       uuid.UUID   `json:"id"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Role     models.Role `json:"role"`
	JoinedAt string      `json:"joined_at"`
}

// TeamSummaryResponse is a leader together with their roster
type TeamSummaryResponse struct {
	Leader      UserSummary          `json:"leader"`
	Members     []TeamMemberResponse `json:"members"`
	MemberCount int                  `json:"member_count"`
}

// TeamDetailsResponse is a leader's roster and the projects it can see
type TeamDetailsResponse struct {
	Leader   UserSummary          `json:"leader"`
	Members  []TeamMemberResponse `json:"members"`
	Projects []ProjectResponse    `json:"projects"`
}

// resolveLeader picks whose roster a request acts on. Without leaderID the
// actor's own roster is used; naming another leader is admin only.
func (s *TeamService) resolveLeader(ctx context.Context, actor access.Actor, leaderID *uuid.UUID, op access.Operation) (uuid.UUID, error) {
	target := actor.ID
	if leaderID != nil && *leaderID != actor.ID {
		leader, err := s.getLeader(ctx, *leaderID)
		if err != nil {
			return uuid.Nil, err
		}
		target = leader.ID
	}

	if err := s.resolver.Team(actor, target, op); err != nil {
		return uuid.Nil, err
	}
	return target, nil
}

func (s *TeamService) getLeader(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeaderNotFound
		}
		return nil, fmt.Errorf("failed to get leader: %w", err)
	}
	if user.Role != models.RoleLeader {
		return nil, apperrors.ErrLeaderNotFound
	}
	return user, nil
}

// Members lists the active users on a roster
func (s *TeamService) Members(ctx context.Context, actor access.Actor, leaderID *uuid.UUID) ([]TeamMemberResponse, error) {
	leader, err := s.resolveLeader(ctx, actor, leaderID, access.OpRead)
	if err != nil {
		return nil, err
	}
	return s.members(ctx, leader)
}

func (s *TeamService) members(ctx context.Context, leaderID uuid.UUID) ([]TeamMemberResponse, error) {
	rows, err := s.memberships.GetTeamMembers(ctx, leaderID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to get team members: %w", err)
	}

	responses := make([]TeamMemberResponse, len(rows))
	for i, row := range rows {
		responses[i] = TeamMemberResponse{
			ID:       row.ID,
			Name:     row.Name,
			Email:    row.Email,
			Role:     row.Role,
			JoinedAt: row.JoinedAt.Format(time.RFC3339),
		}
	}
	return responses, nil
}

// AvailableUsers lists active users not yet on the roster
func (s *TeamService) AvailableUsers(ctx context.Context, actor access.Actor, leaderID *uuid.UUID) ([]UserSummary, error) {
	leader, err := s.resolveLeader(ctx, actor, leaderID, access.OpRead)
	if err != nil {
		return nil, err
	}

	users, err := s.memberships.GetAvailableTeamUsers(ctx, leader)
	if err != nil {
		return nil, fmt.Errorf("failed to get available users: %w", err)
	}
	return toUserSummaries(users), nil
}

// AddMember puts a user on a roster. Project memberships are not touched.
func (s *TeamService) AddMember(ctx context.Context, actor access.Actor, leaderID *uuid.UUID, req *AddTeamMemberRequest) (*TeamMemberResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	leader, err := s.resolveLeader(ctx, actor, leaderID, access.OpCreate)
	if err != nil {
		return nil, err
	}
	if req.UserID == leader {
		return nil, apperrors.NewValidationError("user_id", "a leader cannot join their own team")
	}

	user, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	exists, err := s.memberships.IsTeamMember(ctx, leader, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check team membership: %w", err)
	}
	if exists {
		return nil, apperrors.ErrTeamMemberExists
	}

	member := &models.TeamMember{LeaderID: leader, UserID: req.UserID}
	if err := s.memberships.AddTeamMember(ctx, member); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrTeamMemberExists
		}
		return nil, fmt.Errorf("failed to add team member: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"leader_id": leader,
		"member_id": req.UserID,
	}).Info("team member added")

	return &TeamMemberResponse{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.Role,
		JoinedAt: member.CreatedAt.Format(time.RFC3339),
	}, nil
}

// RemoveMember takes a user off a roster. The user keeps every project
// membership they hold.
func (s *TeamService) RemoveMember(ctx context.Context, actor access.Actor, leaderID *uuid.UUID, userID uuid.UUID) error {
	leader, err := s.resolveLeader(ctx, actor, leaderID, access.OpDelete)
	if err != nil {
		return err
	}

	if err := s.memberships.RemoveTeamMember(ctx, leader, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamMemberNotFound
		}
		return fmt.Errorf("failed to remove team member: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"leader_id": leader,
		"member_id": userID,
	}).Info("team member removed")
	return nil
}

// MemberTasks lists the tasks assigned to a user in projects the leader owns
func (s *TeamService) MemberTasks(ctx context.Context, actor access.Actor, leaderID *uuid.UUID, userID uuid.UUID) ([]AssignedTaskResponse, error) {
	leader, err := s.resolveLeader(ctx, actor, leaderID, access.OpRead)
	if err != nil {
		return nil, err
	}

	rows, err := s.tasks.GetAssignedInProjectsOf(ctx, leader, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get member tasks: %w", err)
	}
	return toAssignedTaskResponses(rows), nil
}

// Projects lists the projects the leader owns plus those where anyone on
// the roster holds a project membership. This grants listing only; opening
// a project still goes through the project permission check.
func (s *TeamService) Projects(ctx context.Context, actor access.Actor, leaderID *uuid.UUID) ([]ProjectResponse, error) {
	leader, err := s.resolveLeader(ctx, actor, leaderID, access.OpRead)
	if err != nil {
		return nil, err
	}

	projects, err := s.memberships.GetProjectsVisibleToTeam(ctx, leader)
	if err != nil {
		return nil, fmt.Errorf("failed to get team projects: %w", err)
	}
	return toProjectResponses(projects), nil
}

// AllTeams lists every leader that has a roster, with the roster
func (s *TeamService) AllTeams(ctx context.Context, actor access.Actor) ([]TeamSummaryResponse, error) {
	if err := s.resolver.Users(actor, access.OpRead); err != nil {
		return nil, err
	}

	leaders, err := s.memberships.GetLeadersWithTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaders: %w", err)
	}

	teams := make([]TeamSummaryResponse, 0, len(leaders))
	for i := range leaders {
		members, err := s.members(ctx, leaders[i].ID)
		if err != nil {
			return nil, err
		}
		teams = append(teams, TeamSummaryResponse{
			Leader:      toUserSummary(&leaders[i]),
			Members:     members,
			MemberCount: len(members),
		})
	}
	return teams, nil
}

// TeamDetails returns one leader's roster and team-visible projects
func (s *TeamService) TeamDetails(ctx context.Context, actor access.Actor, leaderID uuid.UUID) (*TeamDetailsResponse, error) {
	if err := s.resolver.Users(actor, access.OpRead); err != nil {
		return nil, err
	}

	leader, err := s.getLeader(ctx, leaderID)
	if err != nil {
		return nil, err
	}
	members, err := s.members(ctx, leader.ID)
	if err != nil {
		return nil, err
	}
	projects, err := s.memberships.GetProjectsVisibleToTeam(ctx, leader.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team projects: %w", err)
	}

	return &TeamDetailsResponse{
		Leader:   toUserSummary(leader),
		Members:  members,
		Projects: toProjectResponses(projects),
	}, nil
}

// AvailableLeaders lists every active leader
func (s *TeamService) AvailableLeaders(ctx context.Context, actor access.Actor) ([]UserSummary, error) {
	if err := s.resolver.Users(actor, access.OpRead); err != nil {
		return nil, err
	}

	leaders, err := s.users.GetActiveLeaders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaders: %w", err)
	}
	return toUserSummaries(leaders), nil
}
