package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"project-tracker-backend/internal/auth"
	"project-tracker-backend/internal/database/models"
	"project-tracker-backend/internal/progress"
	"project-tracker-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Fixture is the layout of the seed file
type Fixture struct {
	Users    []UserData    `yaml:"users"`
	Projects []ProjectData `yaml:"projects"`
	Teams    []TeamData    `yaml:"teams"`
}

type UserData struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
	Active   *bool  `yaml:"active,omitempty"`
}

type ProjectData struct {
	Title       string       `yaml:"title"`
	Description string       `yaml:"description"`
	Owner       string       `yaml:"owner"`
	StartDate   string       `yaml:"start_date,omitempty"`
	EndDate     string       `yaml:"end_date,omitempty"`
	Status      string       `yaml:"status,omitempty"`
	Members     []MemberData `yaml:"members,omitempty"`
	Modules     []ModuleData `yaml:"modules,omitempty"`
}

type MemberData struct {
	Email         string `yaml:"email"`
	RoleInProject string `yaml:"role_in_project,omitempty"`
}

type ModuleData struct {
	Name  string     `yaml:"name"`
	Tasks []TaskData `yaml:"tasks,omitempty"`
}

type TaskData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Assignee    string `yaml:"assignee,omitempty"`
	Status      string `yaml:"status,omitempty"`
}

type TeamData struct {
	Leader  string   `yaml:"leader"`
	Members []string `yaml:"members"`
}

// Stats counts the rows a load created
type Stats struct {
	Users          int
	Projects       int
	Modules        int
	Tasks          int
	ProjectMembers int
	TeamMembers    int
}

func readFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return parseFixture(data)
}

func parseFixture(data []byte) (*Fixture, error) {
	var fixture Fixture
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}
	return &fixture, nil
}

type loader struct {
	tx          repository.Transactor
	users       *repository.UserRepository
	projects    *repository.ProjectRepository
	modules     *repository.ModuleRepository
	tasks       *repository.TaskRepository
	memberships *repository.MembershipRepository
}

func newLoader(db *gorm.DB) *loader {
	return &loader{
		tx:          repository.NewTransactor(db),
		users:       repository.NewUserRepository(db),
		projects:    repository.NewProjectRepository(db),
		modules:     repository.NewModuleRepository(db),
		tasks:       repository.NewTaskRepository(db),
		memberships: repository.NewMembershipRepository(db),
	}
}

// Load inserts the fixture. Users are matched by email and projects by
// owner and title, so running it twice creates nothing new. Each project
// tree is written in one transaction and ends with a progress recompute.
func (l *loader) Load(ctx context.Context, fixture *Fixture) (Stats, error) {
	var stats Stats
	byEmail := make(map[string]*models.User)

	for _, data := range fixture.Users {
		user, created, err := l.ensureUser(ctx, data)
		if err != nil {
			return stats, fmt.Errorf("user %s: %w", data.Email, err)
		}
		byEmail[user.Email] = user
		if created {
			stats.Users++
		}
	}

	lookup := func(email string) (*models.User, error) {
		user, ok := byEmail[normalizeEmail(email)]
		if !ok {
			return nil, fmt.Errorf("unknown user %q", email)
		}
		return user, nil
	}

	for _, data := range fixture.Projects {
		err := l.tx.WithinTransaction(ctx, func(ctx context.Context) error {
			return l.loadProject(ctx, data, lookup, &stats)
		})
		if err != nil {
			return stats, fmt.Errorf("project %s: %w", data.Title, err)
		}
	}

	for _, team := range fixture.Teams {
		leader, err := lookup(team.Leader)
		if err != nil {
			return stats, err
		}
		if leader.Role != models.RoleLeader {
			return stats, fmt.Errorf("team leader %s is a %s", leader.Email, leader.Role)
		}
		for _, email := range team.Members {
			user, err := lookup(email)
			if err != nil {
				return stats, err
			}
			created, err := l.ensureTeamMember(ctx, leader.ID, user.ID)
			if err != nil {
				return stats, fmt.Errorf("team %s: %w", leader.Email, err)
			}
			if created {
				stats.TeamMembers++
			}
		}
	}

	return stats, nil
}

func (l *loader) ensureUser(ctx context.Context, data UserData) (*models.User, bool, error) {
	email := normalizeEmail(data.Email)
	existing, err := l.users.GetByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	role := models.Role(data.Role)
	if !role.IsValid() {
		return nil, false, fmt.Errorf("invalid role %q", data.Role)
	}
	hash, err := auth.HashPassword(data.Password)
	if err != nil {
		return nil, false, err
	}

	user := &models.User{
		Name:         data.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Active:       data.Active == nil || *data.Active,
	}
	if err := l.users.Create(ctx, user); err != nil {
		return nil, false, err
	}
	return user, true, nil
}

func (l *loader) loadProject(ctx context.Context, data ProjectData, lookup func(string) (*models.User, error), stats *Stats) error {
	owner, err := lookup(data.Owner)
	if err != nil {
		return err
	}
	if owner.Role == models.RoleMember {
		return fmt.Errorf("owner %s cannot own projects", owner.Email)
	}

	owned, err := l.projects.GetByCreator(ctx, owner.ID)
	if err != nil {
		return err
	}
	for _, p := range owned {
		if p.Title == data.Title {
			logrus.WithField("project", data.Title).Debug("project already present, skipping")
			return nil
		}
	}

	project := &models.Project{
		Title:       data.Title,
		Description: data.Description,
		Status:      models.ProjectStatusActive,
		CreatedBy:   owner.ID,
	}
	if data.Status != "" {
		project.Status = models.ProjectStatus(data.Status)
		if !project.Status.IsValid() {
			return fmt.Errorf("invalid status %q", data.Status)
		}
	}
	if project.StartDate, err = parseDay(data.StartDate); err != nil {
		return err
	}
	if project.EndDate, err = parseDay(data.EndDate); err != nil {
		return err
	}
	if err := l.projects.Create(ctx, project); err != nil {
		return err
	}
	stats.Projects++

	for _, m := range data.Members {
		user, err := lookup(m.Email)
		if err != nil {
			return err
		}
		member := &models.ProjectMember{ProjectID: project.ID, UserID: user.ID}
		if m.RoleInProject != "" {
			role := m.RoleInProject
			member.RoleInProject = &role
		}
		if err := l.memberships.AddProjectMember(ctx, member); err != nil {
			return err
		}
		stats.ProjectMembers++
	}

	for _, md := range data.Modules {
		module := &models.Module{ProjectID: project.ID, ModuleName: md.Name}
		if err := l.modules.Create(ctx, module); err != nil {
			return err
		}
		stats.Modules++

		for _, td := range md.Tasks {
			task := &models.Task{
				ModuleID:    module.ID,
				TaskName:    td.Name,
				Description: td.Description,
				Status:      models.TaskStatusPending,
			}
			if td.Status != "" {
				task.Status = models.TaskStatus(td.Status)
				if !task.Status.IsValid() {
					return fmt.Errorf("task %s: invalid status %q", td.Name, td.Status)
				}
			}
			if td.Assignee != "" {
				assignee, err := lookup(td.Assignee)
				if err != nil {
					return err
				}
				task.AssignedTo = &assignee.ID
			}
			if err := l.tasks.Create(ctx, task); err != nil {
				return err
			}
			stats.Tasks++
		}
	}

	snapshot, err := l.projects.Snapshot(ctx, project.ID)
	if err != nil {
		return err
	}
	return l.projects.ApplyProgress(ctx, progress.Compute(snapshot))
}

func (l *loader) ensureTeamMember(ctx context.Context, leaderID, userID uuid.UUID) (bool, error) {
	exists, err := l.memberships.IsTeamMember(ctx, leaderID, userID)
	if err != nil || exists {
		return false, err
	}
	if err := l.memberships.AddTeamMember(ctx, &models.TeamMember{LeaderID: leaderID, UserID: userID}); err != nil {
		return false, err
	}
	return true, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func parseDay(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return &t, nil
}
