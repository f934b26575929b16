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

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateModuleRequest represents the request to create a module
type CreateModuleRequest struct {
	ModuleName string `json:"module_name" validate:"required,min=2,max=200" example:"Backend"`
}

// UpdateModuleRequest represents the request to rename a module
type UpdateModuleRequest struct {
	ModuleName *string `json:"module_name,omitempty" validate:"omitempty,min=2,max=200"`
}

// ModuleResponse represents the response for module operations
type ModuleResponse struct {
	ID         uuid.UUID `json:"id"`
	ProjectID  uuid.UUID `json:"project_id"`
	ModuleName string    `json:"module_name"`
	Progress   int       `json:"progress"`
	CreatedAt  string    `json:"created_at"`
	UpdatedAt  string    `json:"updated_at"`
}

// ListModules returns the modules of a project in creation order
func (s *ProjectService) ListModules(ctx context.Context, actor access.Actor, projectID uuid.UUID) ([]ModuleResponse, error) {
	project, err := s.loadProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if err := s.resolver.Project(ctx, actor, project, access.KindModule, access.OpRead); err != nil {
		return nil, err
	}

	modules, err := s.modules.GetByProjectID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list modules: %w", err)
	}

	responses := make([]ModuleResponse, len(modules))
	for i := range modules {
		responses[i] = *toModuleResponse(&modules[i])
	}
	return responses, nil
}

// CreateModule adds a module to a project. The new module has no tasks and
// therefore no progress; the project progress is recomputed with it.
func (s *ProjectService) CreateModule(ctx context.Context, actor access.Actor, projectID uuid.UUID, req *CreateModuleRequest) (*ModuleResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	module := &models.Module{ProjectID: projectID, ModuleName: req.ModuleName}
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		project, err := s.lockProject(ctx, projectID)
		if err != nil {
			return err
		}
		if err := s.resolver.Project(ctx, actor, project, access.KindModule, access.OpCreate); err != nil {
			return err
		}

		if err := s.modules.Create(ctx, module); err != nil {
			return fmt.Errorf("failed to create module: %w", err)
		}
		_, err = s.recompute(ctx, projectID)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"project_id": projectID,
		"module_id":  module.ID,
	}).Info("module created")
	return toModuleResponse(module), nil
}

// UpdateModule renames a module. Progress is not affected.
func (s *ProjectService) UpdateModule(ctx context.Context, actor access.Actor, moduleID uuid.UUID, req *UpdateModuleRequest) (*ModuleResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	module, project, err := s.loadModule(ctx, moduleID)
	if err != nil {
		return nil, err
	}
	if err := s.resolver.Project(ctx, actor, project, access.KindModule, access.OpUpdate); err != nil {
		return nil, err
	}

	if req.ModuleName == nil {
		return nil, apperrors.ErrNoFieldsToUpdate
	}
	if err := s.modules.Update(ctx, moduleID, map[string]interface{}{"module_name": *req.ModuleName}); err != nil {
		return nil, fmt.Errorf("failed to update module: %w", err)
	}

	module.ModuleName = *req.ModuleName
	module.UpdatedAt = time.Now()
	return toModuleResponse(module), nil
}

// DeleteModule removes a module with its tasks and recomputes the project
func (s *ProjectService) DeleteModule(ctx context.Context, actor access.Actor, moduleID uuid.UUID) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		module, err := s.getModule(ctx, moduleID)
		if err != nil {
			return err
		}
		project, err := s.lockProject(ctx, module.ProjectID)
		if err != nil {
			return err
		}
		if err := s.resolver.Project(ctx, actor, project, access.KindModule, access.OpDelete); err != nil {
			return err
		}

		if err := s.modules.Delete(ctx, moduleID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrModuleNotFound
			}
			return fmt.Errorf("failed to delete module: %w", err)
		}
		_, err = s.recompute(ctx, project.ID)
		return err
	})
}

func (s *ProjectService) getModule(ctx context.Context, id uuid.UUID) (*models.Module, error) {
	module, err := s.modules.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrModuleNotFound
		}
		return nil, fmt.Errorf("failed to get module: %w", err)
	}
	return module, nil
}

// loadModule resolves a module and its owning project
func (s *ProjectService) loadModule(ctx context.Context, id uuid.UUID) (*models.Module, *models.Project, error) {
	module, err := s.getModule(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	project, err := s.loadProject(ctx, module.ProjectID)
	if err != nil {
		return nil, nil, err
	}
	return module, project, nil
}

func toModuleResponse(module *models.Module) *ModuleResponse {
	return &ModuleResponse{
		ID:         module.ID,
		ProjectID:  module.ProjectID,
		ModuleName: module.ModuleName,
		Progress:   module.Progress,
		CreatedAt:  module.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  module.UpdatedAt.Format(time.RFC3339),
	}
}
