package models

import (
	"github.com/google/uuid"
)

// Task is the leaf work unit. AssignedTo is a weak reference to a user and is
// nulled when that user is deleted.
type Task struct {
	BaseModel
	ModuleID    uuid.UUID  `json:"module_id" gorm:"type:varchar(36);not null;index"`
	TaskName    string     `json:"task_name" gorm:"not null;size:200"`
	Description string     `json:"description" gorm:"type:text"`
	AssignedTo  *uuid.UUID `json:"assigned_to" gorm:"type:varchar(36);index"`
	Status      TaskStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
}

// TableName returns the table name for Task
func (Task) TableName() string {
	return "tasks"
}
