package repository

import (
	"context"

	"project-tracker-backend/internal/database/models"
	"project-tracker-backend/internal/progress"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// Transactor defines the unit of work used by services
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	GetActiveLeaders(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*models.Project, error)
	GetAll(ctx context.Context) ([]models.Project, error)
	GetByCreator(ctx context.Context, userID uuid.UUID) ([]models.Project, error)
	GetForMember(ctx context.Context, userID uuid.UUID) ([]models.Project, error)
	CountByCreator(ctx context.Context, userID uuid.UUID) (int64, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	Snapshot(ctx context.Context, id uuid.UUID) (progress.Snapshot, error)
	ApplyProgress(ctx context.Context, result progress.Result) error
}

// ModuleRepositoryInterface defines the interface for module repository operations
type ModuleRepositoryInterface interface {
	Create(ctx context.Context, module *models.Module) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Module, error)
	GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]models.Module, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TaskRepositoryInterface defines the interface for task repository operations
type TaskRepositoryInterface interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	GetByModuleID(ctx context.Context, moduleID uuid.UUID) ([]models.Task, error)
	GetAssignedTo(ctx context.Context, userID uuid.UUID) ([]TaskRow, error)
	GetAssignedInProject(ctx context.Context, projectID, userID uuid.UUID) ([]TaskRow, error)
	GetAssignedInProjectsOf(ctx context.Context, creatorID, userID uuid.UUID) ([]TaskRow, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// MembershipRepositoryInterface defines the Membership Index: project
// membership and team rosters, kept as two independent relations
type MembershipRepositoryInterface interface {
	IsProjectMember(ctx context.Context, projectID, userID uuid.UUID) (bool, error)
	AddProjectMember(ctx context.Context, member *models.ProjectMember) error
	RemoveProjectMember(ctx context.Context, projectID, userID uuid.UUID) error
	GetProjectMembers(ctx context.Context, projectID uuid.UUID) ([]ProjectMemberRow, error)
	GetAvailableProjectMembers(ctx context.Context, projectID, excludeUserID uuid.UUID) ([]models.User, error)

	IsTeamMember(ctx context.Context, leaderID, userID uuid.UUID) (bool, error)
	AddTeamMember(ctx context.Context, member *models.TeamMember) error
	RemoveTeamMember(ctx context.Context, leaderID, userID uuid.UUID) error
	GetTeamMembers(ctx context.Context, leaderID uuid.UUID, activeOnly bool) ([]TeamMemberRow, error)
	GetAvailableTeamUsers(ctx context.Context, leaderID uuid.UUID) ([]models.User, error)
	GetProjectsVisibleToTeam(ctx context.Context, leaderID uuid.UUID) ([]models.Project, error)
	GetLeadersWithTeams(ctx context.Context) ([]models.User, error)
}
