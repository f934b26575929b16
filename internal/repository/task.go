package repository

import (
	"context"

	"project-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskRow is a task joined with the names of its module and project
type TaskRow struct {
	ID           uuid.UUID
	TaskName     string
	Description  string
	Status       models.TaskStatus
	ModuleID     uuid.UUID
	ModuleName   string
	ProjectID    uuid.UUID
	ProjectTitle string
}

const taskRowColumns = `tasks.id AS id, tasks.task_name AS task_name, tasks.description AS description,
	tasks.status AS status, modules.id AS module_id, modules.module_name AS module_name,
	projects.id AS project_id, projects.title AS project_title`

// TaskRepository handles database operations for tasks
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create creates a new task
func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	return conn(ctx, r.db).Create(task).Error
}

// GetByID retrieves a task by ID
func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := conn(ctx, r.db).First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// GetByModuleID retrieves the tasks of a module in creation order
func (r *TaskRepository) GetByModuleID(ctx context.Context, moduleID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	err := conn(ctx, r.db).
		Where("module_id = ?", moduleID).
		Order("created_at ASC, id ASC").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) rows(ctx context.Context) *gorm.DB {
	return conn(ctx, r.db).Table("tasks").
		Select(taskRowColumns).
		Joins("JOIN modules ON modules.id = tasks.module_id").
		Joins("JOIN projects ON projects.id = modules.project_id")
}

// GetAssignedTo retrieves every task assigned to a user across all projects
func (r *TaskRepository) GetAssignedTo(ctx context.Context, userID uuid.UUID) ([]TaskRow, error) {
	var rows []TaskRow
	err := r.rows(ctx).
		Where("tasks.assigned_to = ?", userID).
		Order("tasks.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

// GetAssignedInProject retrieves the tasks assigned to a user within one project
func (r *TaskRepository) GetAssignedInProject(ctx context.Context, projectID, userID uuid.UUID) ([]TaskRow, error) {
	var rows []TaskRow
	err := r.rows(ctx).
		Where("projects.id = ? AND tasks.assigned_to = ?", projectID, userID).
		Order("tasks.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

// GetAssignedInProjectsOf retrieves the tasks assigned to a user within the
// projects owned by creatorID
func (r *TaskRepository) GetAssignedInProjectsOf(ctx context.Context, creatorID, userID uuid.UUID) ([]TaskRow, error) {
	var rows []TaskRow
	err := r.rows(ctx).
		Where("projects.created_by = ? AND tasks.assigned_to = ?", creatorID, userID).
		Order("tasks.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

// Update applies the given column updates to a task
func (r *TaskRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return conn(ctx, r.db).Model(&models.Task{}).Where("id = ?", id).Updates(updates).Error
}

// Delete removes a task
func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := conn(ctx, r.db).Delete(&models.Task{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
