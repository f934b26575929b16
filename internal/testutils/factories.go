package testutils

import (
	"fmt"
	"time"

	"project-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// TestPassword is the plain password of every user built by UserFactory
const TestPassword = "secret123"

var testPasswordHash = func() string {
	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}()

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates an active test member with a unique email
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:         "Test User",
		Email:        fmt.Sprintf("user-%s@example.com", id.String()[:8]),
		PasswordHash: testPasswordHash,
		Role:         models.RoleMember,
		Active:       true,
	}
}

// WithRole creates a test user holding the given role
func (f *UserFactory) WithRole(role models.Role) *models.User {
	user := f.Create()
	user.Role = role
	user.Name = "Test " + string(role)
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// Inactive creates a deactivated test user
func (f *UserFactory) Inactive() *models.User {
	user := f.Create()
	user.Active = false
	return user
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project with default values
func (f *ProjectFactory) Create() *models.Project {
	return &models.Project{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:       "Test Project",
		Description: "A test project for testing purposes",
		Status:      models.ProjectStatusActive,
	}
}

// WithOwner creates a test project owned by the given user
func (f *ProjectFactory) WithOwner(ownerID uuid.UUID) *models.Project {
	project := f.Create()
	project.CreatedBy = ownerID
	return project
}

// ModuleFactory provides methods to create test Module data
type ModuleFactory struct{}

// NewModuleFactory creates a new ModuleFactory
func NewModuleFactory() *ModuleFactory {
	return &ModuleFactory{}
}

// Create creates a test Module without a project
func (f *ModuleFactory) Create() *models.Module {
	return &models.Module{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ModuleName: "Test Module",
	}
}

// WithProject creates a test module inside the given project
func (f *ModuleFactory) WithProject(projectID uuid.UUID) *models.Module {
	module := f.Create()
	module.ProjectID = projectID
	return module
}

// TaskFactory provides methods to create test Task data
type TaskFactory struct{}

// NewTaskFactory creates a new TaskFactory
func NewTaskFactory() *TaskFactory {
	return &TaskFactory{}
}

// Create creates a pending, unassigned test Task
func (f *TaskFactory) Create() *models.Task {
	return &models.Task{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TaskName: "Test Task",
		Status:   models.TaskStatusPending,
	}
}

// WithModule creates a test task with the given module and status
func (f *TaskFactory) WithModule(moduleID uuid.UUID, status models.TaskStatus) *models.Task {
	task := f.Create()
	task.ModuleID = moduleID
	task.Status = status
	return task
}

// AssignedTo creates a test task assigned to the given user
func (f *TaskFactory) AssignedTo(moduleID, userID uuid.UUID) *models.Task {
	task := f.WithModule(moduleID, models.TaskStatusPending)
	task.AssignedTo = &userID
	return task
}

// FactorySet provides access to all factories
type FactorySet struct {
	User    *UserFactory
	Project *ProjectFactory
	Module  *ModuleFactory
	Task    *TaskFactory
}

// NewFactorySet creates a new FactorySet with all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:    NewUserFactory(),
		Project: NewProjectFactory(),
		Module:  NewModuleFactory(),
		Task:    NewTaskFactory(),
	}
}

// CreateProjectTree builds a leader, a project owned by them and one module
// per entry of statuses, each holding tasks with the listed statuses
func (fs *FactorySet) CreateProjectTree(statuses ...[]models.TaskStatus) (*models.User, *models.Project, []*models.Module, []*models.Task) {
	leader := fs.User.WithRole(models.RoleLeader)
	project := fs.Project.WithOwner(leader.ID)

	var (
		modules []*models.Module
		tasks   []*models.Task
	)
	for _, moduleStatuses := range statuses {
		module := fs.Module.WithProject(project.ID)
		modules = append(modules, module)
		for _, status := range moduleStatuses {
			tasks = append(tasks, fs.Task.WithModule(module.ID, status))
		}
	}
	return leader, project, modules, tasks
}
