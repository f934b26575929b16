package models

import (
	"github.com/google/uuid"
)

// ProjectMember grants a user visibility into a single project.
// The (project, user) pair is unique.
type ProjectMember struct {
	BaseModel
	ProjectID     uuid.UUID `json:"project_id" gorm:"type:varchar(36);not null;uniqueIndex:idx_project_members_project_user"`
	UserID        uuid.UUID `json:"user_id" gorm:"type:varchar(36);not null;uniqueIndex:idx_project_members_project_user;index"`
	RoleInProject *string   `json:"role_in_project" gorm:"size:100"`
}

// TableName returns the table name for ProjectMember
func (ProjectMember) TableName() string {
	return "project_members"
}

// TeamMember places a user on a leader's roster. It is independent of any
// project and never grants project access to the user.
type TeamMember struct {
	BaseModel
	LeaderID uuid.UUID `json:"leader_id" gorm:"type:varchar(36);not null;uniqueIndex:idx_team_members_leader_user"`
	UserID   uuid.UUID `json:"user_id" gorm:"type:varchar(36);not null;uniqueIndex:idx_team_members_leader_user;index"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}
