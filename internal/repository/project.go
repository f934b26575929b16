package repository

import (
	"context"

	"project-tracker-backend/internal/database/models"
	"project-tracker-backend/internal/progress"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectRepository handles database operations for projects and owns the
// persistence of derived progress for a project tree
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	return conn(ctx, r.db).Create(project).Error
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := conn(ctx, r.db).First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetForUpdate retrieves a project and locks its row until the surrounding
// transaction ends. SQLite has no row locks and relies on its database lock.
func (r *ProjectRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := conn(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetAll retrieves all projects
func (r *ProjectRepository) GetAll(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	err := conn(ctx, r.db).Order("created_at DESC").Find(&projects).Error
	return projects, err
}

// GetByCreator retrieves the projects owned by a user
func (r *ProjectRepository) GetByCreator(ctx context.Context, userID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	err := conn(ctx, r.db).
		Where("created_by = ?", userID).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

// GetForMember retrieves the projects a user holds a membership on
func (r *ProjectRepository) GetForMember(ctx context.Context, userID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	err := conn(ctx, r.db).
		Joins("JOIN project_members pm ON pm.project_id = projects.id").
		Where("pm.user_id = ?", userID).
		Order("projects.created_at DESC").
		Find(&projects).Error
	return projects, err
}

// CountByCreator counts the projects owned by a user
func (r *ProjectRepository) CountByCreator(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&models.Project{}).Where("created_by = ?", userID).Count(&count).Error
	return count, err
}

// Update applies the given column updates to a project
func (r *ProjectRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return conn(ctx, r.db).Model(&models.Project{}).Where("id = ?", id).Updates(updates).Error
}

// Delete removes a project together with its modules, tasks and memberships
func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		moduleIDs := tx.Model(&models.Module{}).Select("id").Where("project_id = ?", id)
		if err := tx.Where("module_id IN (?)", moduleIDs).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.Module{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectMember{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Project{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

type moduleStatusRow struct {
	ModuleID uuid.UUID
	Status   models.TaskStatus
}

// Snapshot reads the task tree of a project for progress recomputation
func (r *ProjectRepository) Snapshot(ctx context.Context, id uuid.UUID) (progress.Snapshot, error) {
	snap := progress.Snapshot{ProjectID: id}
	db := conn(ctx, r.db)

	var modules []models.Module
	if err := db.Where("project_id = ?", id).Order("created_at ASC, id ASC").Find(&modules).Error; err != nil {
		return snap, err
	}

	var rows []moduleStatusRow
	err := db.Table("tasks").
		Select("tasks.module_id AS module_id, tasks.status AS status").
		Joins("JOIN modules ON modules.id = tasks.module_id").
		Where("modules.project_id = ?", id).
		Scan(&rows).Error
	if err != nil {
		return snap, err
	}

	byModule := make(map[uuid.UUID][]models.TaskStatus, len(modules))
	for _, row := range rows {
		byModule[row.ModuleID] = append(byModule[row.ModuleID], row.Status)
	}

	snap.Modules = make([]progress.ModuleTasks, 0, len(modules))
	for _, m := range modules {
		snap.Modules = append(snap.Modules, progress.ModuleTasks{
			ModuleID: m.ID,
			Statuses: byModule[m.ID],
		})
	}
	return snap, nil
}

// ApplyProgress writes every derived percentage of a project. Either all
// values are written or none are.
func (r *ProjectRepository) ApplyProgress(ctx context.Context, result progress.Result) error {
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		for _, m := range result.Modules {
			err := tx.Model(&models.Module{}).
				Where("id = ? AND project_id = ?", m.ModuleID, result.ProjectID).
				Update("progress", m.Percent).Error
			if err != nil {
				return err
			}
		}
		return tx.Model(&models.Project{}).
			Where("id = ?", result.ProjectID).
			Update("progress", result.Project).Error
	})
}
