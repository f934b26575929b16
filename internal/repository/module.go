package repository

import (
	"context"

	"project-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ModuleRepository handles database operations for modules
type ModuleRepository struct {
	db *gorm.DB
}

// NewModuleRepository creates a new module repository
func NewModuleRepository(db *gorm.DB) *ModuleRepository {
	return &ModuleRepository{db: db}
}

// Create creates a new module
func (r *ModuleRepository) Create(ctx context.Context, module *models.Module) error {
	return conn(ctx, r.db).Create(module).Error
}

// GetByID retrieves a module by ID
func (r *ModuleRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Module, error) {
	var module models.Module
	err := conn(ctx, r.db).First(&module, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &module, nil
}

// GetByProjectID retrieves the modules of a project in creation order
func (r *ModuleRepository) GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]models.Module, error) {
	var modules []models.Module
	err := conn(ctx, r.db).
		Where("project_id = ?", projectID).
		Order("created_at ASC, id ASC").
		Find(&modules).Error
	return modules, err
}

// Update applies the given column updates to a module
func (r *ModuleRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return conn(ctx, r.db).Model(&models.Module{}).Where("id = ?", id).Updates(updates).Error
}

// Delete removes a module and its tasks
func (r *ModuleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("module_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Module{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
