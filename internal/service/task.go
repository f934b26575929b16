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

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateTaskRequest represents the request to create a task
type CreateTaskRequest struct {
	TaskName    string            `json:"task_name" validate:"required,min=2,max=200" example:"Write API docs"`
	Description string            `json:"description,omitempty" validate:"max=5000"`
	AssignedTo  *uuid.UUID        `json:"assigned_to,omitempty"`
	Status      models.TaskStatus `json:"status,omitempty" validate:"omitempty,oneof=pending in-progress completed"`
}

// UpdateTaskRequest represents the request to update a task. An explicit
// null assigned_to clears the assignment.
type UpdateTaskRequest struct {
	TaskName    *string            `json:"task_name,omitempty" validate:"omitempty,min=2,max=200"`
	Description *string            `json:"description,omitempty" validate:"omitempty,max=5000"`
	AssignedTo  OptionalUUID       `json:"assigned_to" swaggertype:"string"`
	Status      *models.TaskStatus `json:"status,omitempty" validate:"omitempty,oneof=pending in-progress completed"`
}

// statusOnly reports whether the request changes nothing but the status
func (r *UpdateTaskRequest) statusOnly() bool {
	return r.TaskName == nil && r.Description == nil && !r.AssignedTo.Set
}

// TaskResponse represents the response for task operations
type TaskResponse struct {
	ID          uuid.UUID         `json:"id"`
	ModuleID    uuid.UUID         `json:"module_id"`
	TaskName    string            `json:"task_name"`
	Description string            `json:"description"`
	AssignedTo  *uuid.UUID        `json:"assigned_to"`
	Status      models.TaskStatus `json:"status"`
	CreatedAt   string            `json:"created_at"`
	UpdatedAt   string            `json:"updated_at"`
}

// AssignedTaskResponse is a task shown together with where it lives
type AssignedTaskResponse struct {
	ID           uuid.UUID         `json:"id"`
	TaskName     string            `json:"task_name"`
	Description  string            `json:"description"`
	Status       models.TaskStatus `json:"status"`
	ModuleID     uuid.UUID         `json:"module_id"`
	ModuleName   string            `json:"module_name"`
	ProjectID    uuid.UUID         `json:"project_id"`
	ProjectTitle string            `json:"project_title"`
}

// ListTasks returns the tasks of a module in creation order
func (s *ProjectService) ListTasks(ctx context.Context, actor access.Actor, moduleID uuid.UUID) ([]TaskResponse, error) {
	_, project, err := s.loadModule(ctx, moduleID)
	if err != nil {
		return nil, err
	}
	if err := s.resolver.Project(ctx, actor, project, access.KindTask, access.OpRead); err != nil {
		return nil, err
	}

	tasks, err := s.tasks.GetByModuleID(ctx, moduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	responses := make([]TaskResponse, len(tasks))
	for i := range tasks {
		responses[i] = *toTaskResponse(&tasks[i])
	}
	return responses, nil
}

// GetTask retrieves a single task
func (s *ProjectService) GetTask(ctx context.Context, actor access.Actor, taskID uuid.UUID) (*TaskResponse, error) {
	task, err := s.getTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	_, project, err := s.loadModule(ctx, task.ModuleID)
	if err != nil {
		return nil, err
	}
	if err := s.resolver.Task(ctx, actor, project, task, access.OpRead); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// CreateTask adds a task to a module and recomputes the project progress
func (s *ProjectService) CreateTask(ctx context.Context, actor access.Actor, moduleID uuid.UUID, req *CreateTaskRequest) (*TaskResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.TaskStatusPending
	}
	task := &models.Task{
		ModuleID:    moduleID,
		TaskName:    req.TaskName,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		Status:      status,
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		module, err := s.getModule(ctx, moduleID)
		if err != nil {
			return err
		}
		project, err := s.lockProject(ctx, module.ProjectID)
		if err != nil {
			return err
		}
		if err := s.resolver.Project(ctx, actor, project, access.KindTask, access.OpCreate); err != nil {
			return err
		}
		if err := s.checkAssignee(ctx, req.AssignedTo); err != nil {
			return err
		}

		if err := s.tasks.Create(ctx, task); err != nil {
			return fmt.Errorf("failed to create task: %w", err)
		}
		_, err = s.recompute(ctx, project.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"module_id": moduleID,
		"task_id":   task.ID,
	}).Info("task created")
	return toTaskResponse(task), nil
}

// UpdateTask changes a task and recomputes the project progress. A member
// assigned to the task may change its status and nothing else.
func (s *ProjectService) UpdateTask(ctx context.Context, actor access.Actor, taskID uuid.UUID, req *UpdateTaskRequest) (*TaskResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	op := access.OpUpdate
	if req.statusOnly() {
		op = access.OpUpdateStatus
	}

	var updated *models.Task
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		task, err := s.getTask(ctx, taskID)
		if err != nil {
			return err
		}
		module, err := s.getModule(ctx, task.ModuleID)
		if err != nil {
			return err
		}
		project, err := s.lockProject(ctx, module.ProjectID)
		if err != nil {
			return err
		}
		if err := s.resolver.Task(ctx, actor, project, task, op); err != nil {
			return err
		}

		updates := make(map[string]interface{})
		if req.TaskName != nil {
			updates["task_name"] = *req.TaskName
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.Status != nil {
			updates["status"] = *req.Status
		}
		if req.AssignedTo.Set {
			if err := s.checkAssignee(ctx, req.AssignedTo.Value); err != nil {
				return err
			}
			updates["assigned_to"] = req.AssignedTo.Value
		}
		if len(updates) == 0 {
			return apperrors.ErrNoFieldsToUpdate
		}

		if err := s.tasks.Update(ctx, taskID, updates); err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}
		if _, err := s.recompute(ctx, project.ID); err != nil {
			return err
		}

		updated, err = s.getTask(ctx, taskID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return toTaskResponse(updated), nil
}

// DeleteTask removes a task and recomputes the project progress
func (s *ProjectService) DeleteTask(ctx context.Context, actor access.Actor, taskID uuid.UUID) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		task, err := s.getTask(ctx, taskID)
		if err != nil {
			return err
		}
		module, err := s.getModule(ctx, task.ModuleID)
		if err != nil {
			return err
		}
		project, err := s.lockProject(ctx, module.ProjectID)
		if err != nil {
			return err
		}
		if err := s.resolver.Task(ctx, actor, project, task, access.OpDelete); err != nil {
			return err
		}

		if err := s.tasks.Delete(ctx, taskID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTaskNotFound
			}
			return fmt.Errorf("failed to delete task: %w", err)
		}
		_, err = s.recompute(ctx, project.ID)
		return err
	})
}

// MyTasks returns every task assigned to the actor, across projects
func (s *ProjectService) MyTasks(ctx context.Context, actor access.Actor) ([]AssignedTaskResponse, error) {
	rows, err := s.tasks.GetAssignedTo(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assigned tasks: %w", err)
	}
	return toAssignedTaskResponses(rows), nil
}

func (s *ProjectService) getTask(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

// checkAssignee verifies that an assignee, when given, is an existing user
func (s *ProjectService) checkAssignee(ctx context.Context, userID *uuid.UUID) error {
	if userID == nil {
		return nil
	}
	if _, err := s.users.GetByID(ctx, *userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to verify assignee: %w", err)
	}
	return nil
}

func toTaskResponse(task *models.Task) *TaskResponse {
	return &TaskResponse{
		ID:          task.ID,
		ModuleID:    task.ModuleID,
		TaskName:    task.TaskName,
		Description: task.Description,
		AssignedTo:  task.AssignedTo,
		Status:      task.Status,
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.Format(time.RFC3339),
	}
}

func toAssignedTaskResponses(rows []repository.TaskRow) []AssignedTaskResponse {
	responses := make([]AssignedTaskResponse, len(rows))
	for i, row := range rows {
		responses[i] = AssignedTaskResponse{
			ID:           row.ID,
			TaskName:     row.TaskName,
			Description:  row.Description,
			Status:       row.Status,
			ModuleID:     row.ModuleID,
			ModuleName:   row.ModuleName,
			ProjectID:    row.ProjectID,
			ProjectTitle: row.ProjectTitle,
		}
	}
	return responses
}
