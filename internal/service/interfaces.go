package service

import (
	"context"

	"project-tracker-backend/internal/access"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ProjectServiceInterface defines the interface for the project service
type ProjectServiceInterface interface {
	ListProjects(ctx context.Context, actor access.Actor) ([]ProjectResponse, error)
	CreateProject(ctx context.Context, actor access.Actor, req *CreateProjectRequest) (*ProjectResponse, error)
	GetProject(ctx context.Context, actor access.Actor, id uuid.UUID) (*ProjectResponse, error)
	UpdateProject(ctx context.Context, actor access.Actor, id uuid.UUID, req *UpdateProjectRequest) (*ProjectResponse, error)
	DeleteProject(ctx context.Context, actor access.Actor, id uuid.UUID) error
	RecomputeProgress(ctx context.Context, actor access.Actor, id uuid.UUID) (*ProgressResponse, error)

	ListModules(ctx context.Context, actor access.Actor, projectID uuid.UUID) ([]ModuleResponse, error)
	CreateModule(ctx context.Context, actor access.Actor, projectID uuid.UUID, req *CreateModuleRequest) (*ModuleResponse, error)
	UpdateModule(ctx context.Context, actor access.Actor, moduleID uuid.UUID, req *UpdateModuleRequest) (*ModuleResponse, error)
	DeleteModule(ctx context.Context, actor access.Actor, moduleID uuid.UUID) error

	ListTasks(ctx context.Context, actor access.Actor, moduleID uuid.UUID) ([]TaskResponse, error)
	GetTask(ctx context.Context, actor access.Actor, taskID uuid.UUID) (*TaskResponse, error)
	CreateTask(ctx context.Context, actor access.Actor, moduleID uuid.UUID, req *CreateTaskRequest) (*TaskResponse, error)
	UpdateTask(ctx context.Context, actor access.Actor, taskID uuid.UUID, req *UpdateTaskRequest) (*TaskResponse, error)
	DeleteTask(ctx context.Context, actor access.Actor, taskID uuid.UUID) error
	MyTasks(ctx context.Context, actor access.Actor) ([]AssignedTaskResponse, error)

	ListMembers(ctx context.Context, actor access.Actor, projectID uuid.UUID) ([]ProjectMemberResponse, error)
	AddMember(ctx context.Context, actor access.Actor, projectID uuid.UUID, req *AddProjectMemberRequest) (*ProjectMemberResponse, error)
	RemoveMember(ctx context.Context, actor access.Actor, projectID, userID uuid.UUID) error
	AvailableMembers(ctx context.Context, actor access.Actor, projectID uuid.UUID) ([]UserSummary, error)
	MemberTasks(ctx context.Context, actor access.Actor, projectID, userID uuid.UUID) ([]AssignedTaskResponse, error)
}

// TeamServiceInterface defines the interface for the team service. A nil
// leaderID means the caller's own roster.
type TeamServiceInterface interface {
	Members(ctx context.Context, actor access.Actor, leaderID *uuid.UUID) ([]TeamMemberResponse, error)
	AvailableUsers(ctx context.Context, actor access.Actor, leaderID *uuid.UUID) ([]UserSummary, error)
	AddMember(ctx context.Context, actor access.Actor, leaderID *uuid.UUID, req *AddTeamMemberRequest) (*TeamMemberResponse, error)
	RemoveMember(ctx context.Context, actor access.Actor, leaderID *uuid.UUID, userID uuid.UUID) error
	MemberTasks(ctx context.Context, actor access.Actor, leaderID *uuid.UUID, userID uuid.UUID) ([]AssignedTaskResponse, error)
	Projects(ctx context.Context, actor access.Actor, leaderID *uuid.UUID) ([]ProjectResponse, error)
	AllTeams(ctx context.Context, actor access.Actor) ([]TeamSummaryResponse, error)
	TeamDetails(ctx context.Context, actor access.Actor, leaderID uuid.UUID) (*TeamDetailsResponse, error)
	AvailableLeaders(ctx context.Context, actor access.Actor) ([]UserSummary, error)
}

// UserServiceInterface defines the interface for the user service
type UserServiceInterface interface {
	List(ctx context.Context, actor access.Actor) ([]UserResponse, error)
	Get(ctx context.Context, actor access.Actor, id uuid.UUID) (*UserResponse, error)
	Create(ctx context.Context, actor access.Actor, req *CreateUserRequest) (*UserResponse, error)
	Update(ctx context.Context, actor access.Actor, id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error)
	Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error
}
