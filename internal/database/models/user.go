package models

// Role is the fixed role tag of a user. A user holds exactly one role.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleLeader Role = "leader"
	RoleMember Role = "member"
)

// IsValid checks if the Role is one of the known roles
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleLeader, RoleMember:
		return true
	}
	return false
}

// User is an account that can authenticate and act on projects
type User struct {
	BaseModel
	Name         string `json:"name" gorm:"not null;size:100" validate:"required,min=2,max=100"`
	Email        string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string `json:"-" gorm:"column:password;not null;size:255"`
	Role         Role   `json:"role" gorm:"type:varchar(20);not null;default:'member'"`
	Active       bool   `json:"active" gorm:"not null"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
