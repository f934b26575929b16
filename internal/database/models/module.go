package models

import (
	"github.com/google/uuid"
)

// Module groups tasks inside a project
type Module struct {
	BaseModel
	ProjectID  uuid.UUID `json:"project_id" gorm:"type:varchar(36);not null;index"`
	ModuleName string    `json:"module_name" gorm:"not null;size:200"`
	Progress   int       `json:"progress" gorm:"not null;default:0"`
}

// TableName returns the table name for Module
func (Module) TableName() string {
	return "modules"
}
