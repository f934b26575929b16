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
	"project-tracker-backend/internal/progress"
	"project-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectService handles projects and everything below them: modules,
// tasks and project memberships. Every change to the task tree runs in one
// transaction together with the progress recomputation of its project.
type ProjectService struct {
	tx          repository.Transactor
	projects    repository.ProjectRepositoryInterface
	modules     repository.ModuleRepositoryInterface
	tasks       repository.TaskRepositoryInterface
	memberships repository.MembershipRepositoryInterface
	users       repository.UserRepositoryInterface
	resolver    *access.Resolver
	validator   *validator.Validate
}

// NewProjectService creates a new project service
func NewProjectService(
	tx repository.Transactor,
	projects repository.ProjectRepositoryInterface,
	modules repository.ModuleRepositoryInterface,
	tasks repository.TaskRepositoryInterface,
	memberships repository.MembershipRepositoryInterface,
	users repository.UserRepositoryInterface,
	validator *validator.Validate,
) *ProjectService {
	return &ProjectService{
		tx:          tx,
		projects:    projects,
		modules:     modules,
		tasks:       tasks,
		memberships: memberships,
		users:       users,
		resolver:    access.NewResolver(memberships),
		validator:   validator,
	}
}

// CreateProjectRequest represents the request to create a project
type CreateProjectRequest struct {
	Title       string               `json:"title" validate:"required,min=2,max=200" example:"Website relaunch"`
	Description string               `json:"description,omitempty" validate:"max=5000"`
	StartDate   string               `json:"start_date,omitempty" example:"2025-03-01"`
	EndDate     string               `json:"end_date,omitempty" example:"2025-06-30"`
	Status      models.ProjectStatus `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

// UpdateProjectRequest represents the request to update a project. Only
// fields that are present are changed. Progress is derived and cannot be set.
type UpdateProjectRequest struct {
	Title       *string               `json:"title,omitempty" validate:"omitempty,min=2,max=200"`
	Description *string               `json:"description,omitempty" validate:"omitempty,max=5000"`
	StartDate   *string               `json:"start_date,omitempty"`
	EndDate     *string               `json:"end_date,omitempty"`
	Status      *models.ProjectStatus `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

// ProjectResponse represents the response for project operations
type ProjectResponse struct {
	ID          uuid.UUID            `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	StartDate   *string              `json:"start_date"`
	EndDate     *string              `json:"end_date"`
	Status      models.ProjectStatus `json:"status"`
	Progress    int                  `json:"progress"`
	CreatedBy   uuid.UUID            `json:"created_by"`
	CreatedAt   string               `json:"created_at"`
	UpdatedAt   string               `json:"updated_at"`
}

// ProgressResponse reports the derived progress of a project tree
type ProgressResponse struct {
	ProjectID uuid.UUID                `json:"project_id"`
	Progress  int                      `json:"progress"`
	Modules   []ModuleProgressResponse `json:"modules"`
}

// ModuleProgressResponse is the derived progress of one module
type ModuleProgressResponse struct {
	ModuleID uuid.UUID `json:"module_id"`
	Progress int       `json:"progress"`
}

// ListProjects returns the projects visible to the actor: all of them for
// an admin, owned ones for a leader and the ones with a membership for a
// member
func (s *ProjectService) ListProjects(ctx context.Context, actor access.Actor) ([]ProjectResponse, error) {
	var (
		projects []models.Project
		err      error
	)

	switch access.ListScope(actor) {
	case access.ScopeAll:
		projects, err = s.projects.GetAll(ctx)
	case access.ScopeOwned:
		projects, err = s.projects.GetByCreator(ctx, actor.ID)
	case access.ScopeMembership:
		projects, err = s.projects.GetForMember(ctx, actor.ID)
	default:
		return nil, apperrors.ErrForbidden
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return toProjectResponses(projects), nil
}

// CreateProject creates a project owned by the actor. Progress starts at 0.
func (s *ProjectService) CreateProject(ctx context.Context, actor access.Actor, req *CreateProjectRequest) (*ProjectResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if err := s.resolver.CanCreateProject(actor); err != nil {
		return nil, err
	}

	startDate, err := parseDate("start_date", req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate("end_date", req.EndDate)
	if err != nil {
		return nil, err
	}
	if err := checkTimeRange(startDate, endDate); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.ProjectStatusActive
	}

	project := &models.Project{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   startDate,
		EndDate:     endDate,
		Status:      status,
		CreatedBy:   actor.ID,
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	logger.WithContext(ctx).WithField("project_id", project.ID).Info("project created")
	return toProjectResponse(project), nil
}

// GetProject retrieves a single project
func (s *ProjectService) GetProject(ctx context.Context, actor access.Actor, id uuid.UUID) (*ProjectResponse, error) {
	project, err := s.loadProject(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.resolver.Project(ctx, actor, project, access.KindProject, access.OpRead); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// UpdateProject changes the descriptive fields of a project
func (s *ProjectService) UpdateProject(ctx context.Context, actor access.Actor, id uuid.UUID, req *UpdateProjectRequest) (*ProjectResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	project, err := s.loadProject(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.resolver.Project(ctx, actor, project, access.KindProject, access.OpUpdate); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	startDate, endDate := project.StartDate, project.EndDate
	if req.StartDate != nil {
		if startDate, err = parseDate("start_date", *req.StartDate); err != nil {
			return nil, err
		}
		updates["start_date"] = startDate
	}
	if req.EndDate != nil {
		if endDate, err = parseDate("end_date", *req.EndDate); err != nil {
			return nil, err
		}
		updates["end_date"] = endDate
	}

	if len(updates) == 0 {
		return nil, apperrors.ErrNoFieldsToUpdate
	}
	if err := checkTimeRange(startDate, endDate); err != nil {
		return nil, err
	}

	if err := s.projects.Update(ctx, id, updates); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return s.GetProject(ctx, actor, id)
}

// DeleteProject removes a project and its whole tree
func (s *ProjectService) DeleteProject(ctx context.Context, actor access.Actor, id uuid.UUID) error {
	project, err := s.loadProject(ctx, id)
	if err != nil {
		return err
	}
	if err := s.resolver.Project(ctx, actor, project, access.KindProject, access.OpDelete); err != nil {
		return err
	}

	if err := s.projects.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}

	logger.WithContext(ctx).WithField("project_id", id).Info("project deleted")
	return nil
}

// RecomputeProgress rebuilds the stored progress of a project from its
// tasks. Running it on an unchanged tree changes nothing.
func (s *ProjectService) RecomputeProgress(ctx context.Context, actor access.Actor, id uuid.UUID) (*ProgressResponse, error) {
	var result progress.Result
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		project, err := s.lockProject(ctx, id)
		if err != nil {
			return err
		}
		if err := s.resolver.Project(ctx, actor, project, access.KindProject, access.OpUpdate); err != nil {
			return err
		}
		result, err = s.recompute(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	resp := &ProgressResponse{
		ProjectID: result.ProjectID,
		Progress:  result.Project,
		Modules:   make([]ModuleProgressResponse, len(result.Modules)),
	}
	for i, m := range result.Modules {
		resp.Modules[i] = ModuleProgressResponse{ModuleID: m.ModuleID, Progress: m.Percent}
	}
	return resp, nil
}

// recompute derives and stores the progress of every module of the project
// and of the project itself. It must run inside the transaction that
// changed the tree.
func (s *ProjectService) recompute(ctx context.Context, projectID uuid.UUID) (progress.Result, error) {
	snapshot, err := s.projects.Snapshot(ctx, projectID)
	if err != nil {
		return progress.Result{}, fmt.Errorf("failed to read project tree: %w", err)
	}

	result := progress.Compute(snapshot)
	if err := s.projects.ApplyProgress(ctx, result); err != nil {
		return progress.Result{}, fmt.Errorf("failed to store progress: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"project_id": projectID,
		"modules":    len(result.Modules),
		"progress":   result.Project,
	}).Debug("progress recomputed")
	return result, nil
}

func (s *ProjectService) loadProject(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

// lockProject loads a project and holds its row lock until the surrounding
// transaction ends
func (s *ProjectService) lockProject(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	project, err := s.projects.GetForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to lock project: %w", err)
	}
	return project, nil
}

func checkTimeRange(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return apperrors.ErrInvalidTimeRange
	}
	return nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

func toProjectResponse(project *models.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		StartDate:   formatDate(project.StartDate),
		EndDate:     formatDate(project.EndDate),
		Status:      project.Status,
		Progress:    project.Progress,
		CreatedBy:   project.CreatedBy,
		CreatedAt:   project.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   project.UpdatedAt.Format(time.RFC3339),
	}
}

func toProjectResponses(projects []models.Project) []ProjectResponse {
	responses := make([]ProjectResponse, len(projects))
	for i := range projects {
		responses[i] = *toProjectResponse(&projects[i])
	}
	return responses
}
