package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"project-tracker-backend/internal/access"
	"project-tracker-backend/internal/database/models"
	apperrors "project-tracker-backend/internal/errors"
	"project-tracker-backend/internal/mocks"
	"project-tracker-backend/internal/progress"
	"project-tracker-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ProjectServiceTestSuite defines the test suite for ProjectService
type ProjectServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	tx          *mocks.MockTransactor
	projects    *mocks.MockProjectRepositoryInterface
	modules     *mocks.MockModuleRepositoryInterface
	tasks       *mocks.MockTaskRepositoryInterface
	memberships *mocks.MockMembershipRepositoryInterface
	users       *mocks.MockUserRepositoryInterface
	service     *service.ProjectService
	ctx         context.Context

	admin   access.Actor
	leader  access.Actor
	member  access.Actor
	project *models.Project
	module  *models.Module
}

// SetupTest sets up the test suite
func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.tx = mocks.NewMockTransactor(suite.ctrl)
	suite.projects = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.modules = mocks.NewMockModuleRepositoryInterface(suite.ctrl)
	suite.tasks = mocks.NewMockTaskRepositoryInterface(suite.ctrl)
	suite.memberships = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.users = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.ctx = context.Background()

	suite.tx.EXPECT().
		WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()

	suite.service = service.NewProjectService(
		suite.tx, suite.projects, suite.modules, suite.tasks,
		suite.memberships, suite.users, service.NewValidator(),
	)

	suite.admin = access.Actor{ID: uuid.New(), Role: models.RoleAdmin, Active: true}
	suite.leader = access.Actor{ID: uuid.New(), Role: models.RoleLeader, Active: true}
	suite.member = access.Actor{ID: uuid.New(), Role: models.RoleMember, Active: true}

	suite.project = &models.Project{Title: "Website", Status: models.ProjectStatusActive, CreatedBy: suite.leader.ID}
	suite.project.ID = uuid.New()
	suite.module = &models.Module{ProjectID: suite.project.ID, ModuleName: "Dev"}
	suite.module.ID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *ProjectServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// expectRecompute expects one snapshot read and one progress write and
// returns a pointer that receives the written result
func (suite *ProjectServiceTestSuite) expectRecompute(snapshot progress.Snapshot) *progress.Result {
	written := &progress.Result{}
	suite.projects.EXPECT().Snapshot(gomock.Any(), suite.project.ID).Return(snapshot, nil).Times(1)
	suite.projects.EXPECT().
		ApplyProgress(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, result progress.Result) error {
			*written = result
			return nil
		}).
		Times(1)
	return written
}

func (suite *ProjectServiceTestSuite) TestCreateProject() {
	req := &service.CreateProjectRequest{Title: "Relaunch", StartDate: "2025-03-01", EndDate: "2025-06-30"}

	suite.projects.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.Project) error {
			p.ID = uuid.New()
			return nil
		}).
		Times(1)

	resp, err := suite.service.CreateProject(suite.ctx, suite.leader, req)

	suite.Require().NoError(err)
	suite.Equal(suite.leader.ID, resp.CreatedBy)
	suite.Equal(0, resp.Progress)
	suite.Equal(models.ProjectStatusActive, resp.Status)
	suite.Require().NotNil(resp.StartDate)
	suite.Equal("2025-03-01", *resp.StartDate)
}

func (suite *ProjectServiceTestSuite) TestCreateProjectRejected() {
	testCases := []struct {
		name  string
		actor access.Actor
		req   *service.CreateProjectRequest
		check func(error) bool
	}{
		{
			name:  "member cannot create",
			actor: suite.member,
			req:   &service.CreateProjectRequest{Title: "Relaunch"},
			check: apperrors.IsAuthorization,
		},
		{
			name:  "title too short",
			actor: suite.leader,
			req:   &service.CreateProjectRequest{Title: "R"},
			check: apperrors.IsValidation,
		},
		{
			name:  "end before start",
			actor: suite.leader,
			req:   &service.CreateProjectRequest{Title: "Relaunch", StartDate: "2025-06-30", EndDate: "2025-03-01"},
			check: apperrors.IsValidation,
		},
		{
			name:  "bad date",
			actor: suite.admin,
			req:   &service.CreateProjectRequest{Title: "Relaunch", StartDate: "next week"},
			check: apperrors.IsValidation,
		},
		{
			name:  "unknown status",
			actor: suite.admin,
			req:   &service.CreateProjectRequest{Title: "Relaunch", Status: "archived"},
			check: apperrors.IsValidation,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			_, err := suite.service.CreateProject(suite.ctx, tc.actor, tc.req)
			suite.Error(err)
			suite.True(tc.check(err), "unexpected error %v", err)
		})
	}
}

func (suite *ProjectServiceTestSuite) TestListProjectsByRole() {
	all := []models.Project{*suite.project, {Title: "Other"}}

	suite.projects.EXPECT().GetAll(gomock.Any()).Return(all, nil).Times(1)
	resp, err := suite.service.ListProjects(suite.ctx, suite.admin)
	suite.Require().NoError(err)
	suite.Len(resp, 2)

	suite.projects.EXPECT().GetByCreator(gomock.Any(), suite.leader.ID).Return(all[:1], nil).Times(1)
	resp, err = suite.service.ListProjects(suite.ctx, suite.leader)
	suite.Require().NoError(err)
	suite.Len(resp, 1)

	suite.projects.EXPECT().GetForMember(gomock.Any(), suite.member.ID).Return(nil, nil).Times(1)
	resp, err = suite.service.ListProjects(suite.ctx, suite.member)
	suite.Require().NoError(err)
	suite.Empty(resp)
}

func (suite *ProjectServiceTestSuite) TestGetProjectNotFoundBeforeForbidden() {
	suite.projects.EXPECT().GetByID(gomock.Any(), suite.project.ID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	_, err := suite.service.GetProject(suite.ctx, suite.member, suite.project.ID)

	suite.ErrorIs(err, apperrors.ErrProjectNotFound)
}

func (suite *ProjectServiceTestSuite) TestGetProjectMemberNeedsMembership() {
	suite.projects.EXPECT().GetByID(gomock.Any(), suite.project.ID).Return(suite.project, nil).Times(2)
	gomock.InOrder(
		suite.memberships.EXPECT().IsProjectMember(gomock.Any(), suite.project.ID, suite.member.ID).Return(false, nil),
		suite.memberships.EXPECT().IsProjectMember(gomock.Any(), suite.project.ID, suite.member.ID).Return(true, nil),
	)

	_, err := suite.service.GetProject(suite.ctx, suite.member, suite.project.ID)
	suite.ErrorIs(err, apperrors.ErrForbidden)

	resp, err := suite.service.GetProject(suite.ctx, suite.member, suite.project.ID)
	suite.Require().NoError(err)
	suite.Equal(suite.project.ID, resp.ID)
}

func (suite *ProjectServiceTestSuite) TestUpdateProjectNoFields() {
	suite.projects.EXPECT().GetByID(gomock.Any(), suite.project.ID).Return(suite.project, nil).Times(1)

	_, err := suite.service.UpdateProject(suite.ctx, suite.leader, suite.project.ID, &service.UpdateProjectRequest{})

	suite.ErrorIs(err, apperrors.ErrNoFieldsToUpdate)
}

func (suite *ProjectServiceTestSuite) TestUpdateProjectOtherLeaderForbidden() {
	other := access.Actor{ID: uuid.New(), Role: models.RoleLeader, Active: true}
	title := "Renamed"
	suite.projects.EXPECT().GetByID(gomock.Any(), suite.project.ID).Return(suite.project, nil).Times(1)

	_, err := suite.service.UpdateProject(suite.ctx, other, suite.project.ID, &service.UpdateProjectRequest{Title: &title})

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ProjectServiceTestSuite) TestUpdateProjectChecksMergedDates() {
	start := "2025-05-01"
	suite.project.EndDate = mustDate("2025-04-01")
	suite.projects.EXPECT().GetByID(gomock.Any(), suite.project.ID).Return(suite.project, nil).Times(1)

	_, err := suite.service.UpdateProject(suite.ctx, suite.leader, suite.project.ID, &service.UpdateProjectRequest{StartDate: &start})

	suite.ErrorIs(err, apperrors.ErrInvalidTimeRange)
}

func (suite *ProjectServiceTestSuite) TestCreateModuleRecomputes() {
	suite.projects.EXPECT().GetForUpdate(gomock.Any(), suite.project.ID).Return(suite.project, nil).Times(1)
	suite.modules.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	written := suite.expectRecompute(progress.Snapshot{
		ProjectID: suite.project.ID,
		Modules: []progress.ModuleTasks{
			{ModuleID: suite.module.ID, Statuses: []models.TaskStatus{models.TaskStatusCompleted, models.TaskStatusPending}},
			{ModuleID: uuid.New()},
		},
	})

	resp, err := suite.service.CreateModule(suite.ctx, suite.leader, suite.project.ID, &service.CreateModuleRequest{ModuleName: "QA"})

	suite.Require().NoError(err)
	suite.Equal("QA", resp.ModuleName)
	suite.Equal(25, written.Project)
	suite.Require().Len(written.Modules, 2)
	suite.Equal(50, written.Modules[0].Percent)
	suite.Equal(0, written.Modules[1].Percent)
}

func (suite *ProjectServiceTestSuite) TestCreateModuleMissingProject() {
	suite.projects.EXPECT().GetForUpdate(gomock.Any(), suite.project.ID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	_, err := suite.service.CreateModule(suite.ctx, suite.leader, suite.project.ID, &service.CreateModuleRequest{ModuleName: "QA"})

	suite.ErrorIs(err, apperrors.ErrProjectNotFound)
}

func (suite *ProjectServiceTestSuite) TestUpdateModuleNoFields() {
	suite.modules.EXPECT().GetByID(gomock.Any(), suite.module.ID).Return(suite.module, nil).Times(1)
	suite.projects.EXPECT().GetByID(gomock.Any(), suite.project.ID).Return(suite.project, nil).Times(1)

	_, err := suite.service.UpdateModule(suite.ctx, suite.leader, suite.module.ID, &service.UpdateModuleRequest{})

	suite.ErrorIs(err, apperrors.ErrNoFieldsToUpdate)
}

func (suite *ProjectServiceTestSuite) TestDeleteModuleNotFound() {
	suite.modules.EXPECT().GetByID(gomock.Any(), suite.module.ID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	err := suite.service.DeleteModule(suite.ctx, suite.admin, suite.module.ID)

	suite.ErrorIs(err, apperrors.ErrModuleNotFound)
}

func (suite *ProjectServiceTestSuite) TestCreateTaskUnknownAssignee() {
	assignee := uuid.New()
	suite.modules.EXPECT().GetByID(gomock.Any(), suite.module.ID).Return(suite.module, nil).Times(1)
	suite.projects.EXPECT().GetForUpdate(gomock.Any(), suite.project.ID).Return(suite.project, nil).Times(1)
	suite.users.EXPECT().GetByID(gomock.Any(), assignee).Return(nil, gorm.ErrRecordNotFound).Times(1)

	_, err := suite.service.CreateTask(suite.ctx, suite.leader, suite.module.ID, &service.CreateTaskRequest{
		TaskName:   "Write docs",
		AssignedTo: &assignee,
	})

	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

func (suite *ProjectServiceTestSuite) TestCreateTaskDefaultsToPending() {
	suite.modules.EXPECT().GetByID(gomock.Any(), suite.module.ID).Return(suite.module, nil).Times(1)
	suite.projects.EXPECT().GetForUpdate(gomock.Any(), suite.project.ID).Return(suite.project, nil).Times(1)
	suite.tasks.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	suite.expectRecompute(progress.Snapshot{ProjectID: suite.project.ID})

	resp, err := suite.service.CreateTask(suite.ctx, suite.leader, suite.module.ID, &service.CreateTaskRequest{TaskName: "Write docs"})

	suite.Require().NoError(err)
	suite.Equal(models.TaskStatusPending, resp.Status)
	suite.Nil(resp.AssignedTo)
}

func (suite *ProjectServiceTestSuite) TestUpdateTaskAssignedMemberChangesStatus() {
	task := &models.Task{ModuleID: suite.module.ID, TaskName: "Review", AssignedTo: &suite.member.ID, Status: models.TaskStatusPending}
	task.ID = uuid.New()
	updated := *task
	updated.Status = models.TaskStatusCompleted
	completed := models.TaskStatusCompleted

	gomock.InOrder(
		suite.tasks.EXPECT().GetByID(gomock.Any(), task.ID).Return(task, nil),
		suite.tasks.EXPECT().GetByID(gomock.Any(), task.ID).Return(&updated, nil),
	)
	suite.modules.EXPECT().GetByID(gomock.Any(), suite.module.ID).Return(suite.module, nil).Times(1)
	suite.projects.EXPECT().GetForUpdate(gomock.Any(), suite.project.ID).Return(suite.project, nil).Times(1)
	suite.tasks.EXPECT().
		Update(gomock.Any(), task.ID, map[string]interface{}{"status": models.TaskStatusCompleted}).
		Return(nil).
		Times(1)
	written := suite.expectRecompute(progress.Snapshot{
		ProjectID: suite.project.ID,
		Modules:   []progress.ModuleTasks{{ModuleID: suite.module.ID, Statuses: []models.TaskStatus{models.TaskStatusCompleted}}},
	})

	resp, err := suite.service.UpdateTask(suite.ctx, suite.member, task.ID, &service.UpdateTaskRequest{Status: &completed})

	suite.Require().NoError(err)
	suite.Equal(models.TaskStatusCompleted, resp.Status)
	suite.Equal(100, written.Project)
}

func (suite *ProjectServiceTestSuite) TestUpdateTaskMemberCannotEditOtherFields() {
	task := &models.Task{ModuleID: suite.module.ID, AssignedTo: &suite.member.ID}
	task.ID = uuid.New()
	name := "Renamed"

	suite.tasks.EXPECT().GetByID(gomock.Any(), task.ID).Return(task, nil).Times(1)
	suite.modules.EXPECT().GetByID(gomock.Any(), suite.module.ID).Return(suite.module, nil).Times(1)
	suite.projects.EXPECT().GetForUpdate(gomock.Any(), suite.project.ID).Return(suite.project, nil).Times(1)

	_, err := suite.service.UpdateTask(suite.ctx, suite.member, task.ID, &service.UpdateTaskRequest{TaskName: &name})

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ProjectServiceTestSuite) TestUpdateTaskExplicitNullUnassigns() {
	assignee := uuid.New()
	task := &models.Task{ModuleID: suite.module.ID, AssignedTo: &assignee}
	task.ID = uuid.New()

	var req service.UpdateTaskRequest
	suite.Require().NoError(json.Unmarshal([]byte(`{"assigned_to": null}`), &req))
	suite.Require().True(req.AssignedTo.Set)

	suite.tasks.EXPECT().GetByID(gomock.Any(), task.ID).Return(task, nil).Times(2)
	suite.modules.EXPECT().GetByID(gomock.Any(), suite.module.ID).Return(suite.module, nil).Times(1)
	suite.projects.EXPECT().GetForUpdate(gomock.Any(), suite.project.ID).Return(suite.project, nil).Times(1)
	suite.tasks.EXPECT().
		Update(gomock.Any(), task.ID, map[string]interface{}{"assigned_to": (*uuid.UUID)(nil)}).
		Return(nil).
		Times(1)
	suite.expectRecompute(progress.Snapshot{ProjectID: suite.project.ID})

	_, err := suite.service.UpdateTask(suite.ctx, suite.leader, task.ID, &req)

	suite.NoError(err)
}

func (suite *ProjectServiceTestSuite) TestUpdateTaskAbsentAssigneeIsUntouched() {
	var req service.UpdateTaskRequest
	suite.Require().NoError(json.Unmarshal([]byte(`{"status": "in-progress"}`), &req))

	suite.False(req.AssignedTo.Set)
	suite.Require().NotNil(req.Status)
	suite.Equal(models.TaskStatusInProgress, *req.Status)
}

func (suite *ProjectServiceTestSuite) TestDeleteTaskMemberForbidden() {
	task := &models.Task{ModuleID: suite.module.ID, AssignedTo: &suite.member.ID}
	task.ID = uuid.New()

	suite.tasks.EXPECT().GetByID(gomock.Any(), task.ID).Return(task, nil).Times(1)
	suite.modules.EXPECT().GetByID(gomock.Any(), suite.module.ID).Return(suite.module, nil).Times(1)
	suite.projects.EXPECT().GetForUpdate(gomock.Any(), suite.project.ID).Return(suite.project, nil).Times(1)

	err := suite.service.DeleteTask(suite.ctx, suite.member, task.ID)

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ProjectServiceTestSuite) TestAddMember() {
	user := &models.User{Name: "Mia", Email: "mia@example.com", Role: models.RoleMember, Active: true}
	user.ID = uuid.New()

	suite.projects.EXPECT().GetByID(gomock.Any(), suite.project.ID).Return(suite.project, nil).Times(1)
	suite.users.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil).Times(1)
	suite.memberships.EXPECT().IsProjectMember(gomock.Any(), suite.project.ID, user.ID).Return(false, nil).Times(1)
	suite.memberships.EXPECT().AddProjectMember(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	resp, err := suite.service.AddMember(suite.ctx, suite.leader, suite.project.ID, &service.AddProjectMemberRequest{UserID: user.ID})

	suite.Require().NoError(err)
	suite.Equal("Mia", resp.Name)
}

func (suite *ProjectServiceTestSuite) TestAddMemberDuplicate() {
	userID := uuid.New()
	user := &models.User{Name: "Mia"}
	user.ID = userID

	suite.projects.EXPECT().GetByID(gomock.Any(), suite.project.ID).Return(suite.project, nil).Times(2)
	suite.users.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil).Times(2)
	suite.memberships.EXPECT().IsProjectMember(gomock.Any(), suite.project.ID, userID).Return(true, nil).Times(1)

	_, err := suite.service.AddMember(suite.ctx, suite.leader, suite.project.ID, &service.AddProjectMemberRequest{UserID: userID})
	suite.ErrorIs(err, apperrors.ErrProjectMemberExists)

	// lost race against a concurrent insert
	suite.memberships.EXPECT().IsProjectMember(gomock.Any(), suite.project.ID, userID).Return(false, nil).Times(1)
	suite.memberships.EXPECT().AddProjectMember(gomock.Any(), gomock.Any()).Return(gorm.ErrDuplicatedKey).Times(1)

	_, err = suite.service.AddMember(suite.ctx, suite.leader, suite.project.ID, &service.AddProjectMemberRequest{UserID: userID})
	suite.ErrorIs(err, apperrors.ErrProjectMemberExists)
}

func (suite *ProjectServiceTestSuite) TestRemoveMemberNotPresent() {
	userID := uuid.New()
	suite.projects.EXPECT().GetByID(gomock.Any(), suite.project.ID).Return(suite.project, nil).Times(1)
	suite.memberships.EXPECT().RemoveProjectMember(gomock.Any(), suite.project.ID, userID).Return(gorm.ErrRecordNotFound).Times(1)

	err := suite.service.RemoveMember(suite.ctx, suite.admin, suite.project.ID, userID)

	suite.ErrorIs(err, apperrors.ErrProjectMemberNotFound)
}

func (suite *ProjectServiceTestSuite) TestListMembersHiddenFromMembers() {
	suite.projects.EXPECT().GetByID(gomock.Any(), suite.project.ID).Return(suite.project, nil).Times(1)

	_, err := suite.service.ListMembers(suite.ctx, suite.member, suite.project.ID)

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ProjectServiceTestSuite) TestMyTasks() {
	suite.tasks.EXPECT().GetAssignedTo(gomock.Any(), suite.member.ID).Return(nil, nil).Times(1)

	resp, err := suite.service.MyTasks(suite.ctx, suite.member)

	suite.Require().NoError(err)
	suite.NotNil(resp)
	suite.Empty(resp)
}

func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
