package models

import (
	"time"

	"github.com/google/uuid"
)

// Project is the root of a work item tree. It is owned permanently by the
// user that created it; Progress is derived from its modules.
type Project struct {
	BaseModel
	Title       string        `json:"title" gorm:"not null;size:200"`
	Description string        `json:"description" gorm:"type:text"`
	StartDate   *time.Time    `json:"start_date"`
	EndDate     *time.Time    `json:"end_date"`
	Status      ProjectStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'"`
	Progress    int           `json:"progress" gorm:"not null;default:0"`
	CreatedBy   uuid.UUID     `json:"created_by" gorm:"type:varchar(36);not null;index"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
