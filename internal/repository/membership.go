package repository

import (
	"context"
	"time"

	"project-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectMemberRow is a member of a project with its user details
type ProjectMemberRow struct {
	ID            uuid.UUID
	Name          string
	Email         string
	Role          models.Role
	RoleInProject *string
}

// TeamMemberRow is a user on a leader's roster
type TeamMemberRow struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Role     models.Role
	JoinedAt time.Time
}

// MembershipRepository answers project membership and team roster queries.
// The two relations are stored and changed independently.
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// IsProjectMember reports whether a user holds a membership on a project
func (r *MembershipRepository) IsProjectMember(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
	var count int64
	err := conn(ctx, r.db).Model(&models.ProjectMember{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Count(&count).Error
	return count > 0, err
}

// AddProjectMember creates a project membership. A duplicate pair is
// rejected by the unique index with gorm.ErrDuplicatedKey.
func (r *MembershipRepository) AddProjectMember(ctx context.Context, member *models.ProjectMember) error {
	return conn(ctx, r.db).Create(member).Error
}

// RemoveProjectMember deletes a project membership
func (r *MembershipRepository) RemoveProjectMember(ctx context.Context, projectID, userID uuid.UUID) error {
	res := conn(ctx, r.db).Where("project_id = ? AND user_id = ?", projectID, userID).Delete(&models.ProjectMember{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetProjectMembers lists the members of a project ordered by name
func (r *MembershipRepository) GetProjectMembers(ctx context.Context, projectID uuid.UUID) ([]ProjectMemberRow, error) {
	var rows []ProjectMemberRow
	err := conn(ctx, r.db).Table("project_members pm").
		Select("u.id AS id, u.name AS name, u.email AS email, u.role AS role, pm.role_in_project AS role_in_project").
		Joins("JOIN users u ON u.id = pm.user_id").
		Where("pm.project_id = ?", projectID).
		Order("u.name ASC").
		Scan(&rows).Error
	return rows, err
}

// GetAvailableProjectMembers lists active users that are not yet members of
// the project, excluding excludeUserID
func (r *MembershipRepository) GetAvailableProjectMembers(ctx context.Context, projectID, excludeUserID uuid.UUID) ([]models.User, error) {
	db := conn(ctx, r.db)
	existing := db.Model(&models.ProjectMember{}).Select("user_id").Where("project_id = ?", projectID)

	var users []models.User
	err := db.
		Where("active = ? AND id <> ?", true, excludeUserID).
		Where("id NOT IN (?)", existing).
		Order("name ASC").
		Find(&users).Error
	return users, err
}

// IsTeamMember reports whether a user is on a leader's roster
func (r *MembershipRepository) IsTeamMember(ctx context.Context, leaderID, userID uuid.UUID) (bool, error) {
	var count int64
	err := conn(ctx, r.db).Model(&models.TeamMember{}).
		Where("leader_id = ? AND user_id = ?", leaderID, userID).
		Count(&count).Error
	return count > 0, err
}

// AddTeamMember puts a user on a leader's roster. Concurrent duplicates are
// rejected by the unique index with gorm.ErrDuplicatedKey.
func (r *MembershipRepository) AddTeamMember(ctx context.Context, member *models.TeamMember) error {
	return conn(ctx, r.db).Create(member).Error
}

// RemoveTeamMember takes a user off a leader's roster. Project memberships
// of the user are not touched.
func (r *MembershipRepository) RemoveTeamMember(ctx context.Context, leaderID, userID uuid.UUID) error {
	res := conn(ctx, r.db).Where("leader_id = ? AND user_id = ?", leaderID, userID).Delete(&models.TeamMember{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetTeamMembers lists a leader's roster ordered by name
func (r *MembershipRepository) GetTeamMembers(ctx context.Context, leaderID uuid.UUID, activeOnly bool) ([]TeamMemberRow, error) {
	query := conn(ctx, r.db).Table("team_members tm").
		Select("u.id AS id, u.name AS name, u.email AS email, u.role AS role, tm.created_at AS joined_at").
		Joins("JOIN users u ON u.id = tm.user_id").
		Where("tm.leader_id = ?", leaderID)
	if activeOnly {
		query = query.Where("u.active = ?", true)
	}

	var rows []TeamMemberRow
	err := query.Order("u.name ASC").Scan(&rows).Error
	return rows, err
}

// GetAvailableTeamUsers lists active users that are not on the leader's
// roster, excluding the leader
func (r *MembershipRepository) GetAvailableTeamUsers(ctx context.Context, leaderID uuid.UUID) ([]models.User, error) {
	db := conn(ctx, r.db)
	existing := db.Model(&models.TeamMember{}).Select("user_id").Where("leader_id = ?", leaderID)

	var users []models.User
	err := db.
		Where("active = ? AND id <> ?", true, leaderID).
		Where("id NOT IN (?)", existing).
		Order("name ASC").
		Find(&users).Error
	return users, err
}

// GetProjectsVisibleToTeam returns the projects the leader owns together
// with the projects where any user on the leader's roster holds a project
// membership
func (r *MembershipRepository) GetProjectsVisibleToTeam(ctx context.Context, leaderID uuid.UUID) ([]models.Project, error) {
	db := conn(ctx, r.db)
	viaTeam := db.Table("project_members pm").
		Select("pm.project_id").
		Joins("JOIN team_members tm ON tm.user_id = pm.user_id").
		Where("tm.leader_id = ?", leaderID)

	var projects []models.Project
	err := db.
		Where("created_by = ?", leaderID).
		Or("id IN (?)", viaTeam).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

// GetLeadersWithTeams lists active leaders that have at least one user on
// their roster
func (r *MembershipRepository) GetLeadersWithTeams(ctx context.Context) ([]models.User, error) {
	db := conn(ctx, r.db)
	leaders := db.Model(&models.TeamMember{}).Select("leader_id")

	var users []models.User
	err := db.
		Where("role = ? AND active = ?", models.RoleLeader, true).
		Where("id IN (?)", leaders).
		Order("name ASC").
		Find(&users).Error
	return users, err
}
