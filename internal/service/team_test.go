package service_test

import (
	"context"
	"testing"
	"time"

	"project-tracker-backend/internal/access"
	"project-tracker-backend/internal/database/models"
	apperrors "project-tracker-backend/internal/errors"
	"project-tracker-backend/internal/mocks"
	"project-tracker-backend/internal/repository"
	"project-tracker-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// TeamServiceTestSuite defines the test suite for TeamService
type TeamServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	memberships *mocks.MockMembershipRepositoryInterface
	users       *mocks.MockUserRepositoryInterface
	tasks       *mocks.MockTaskRepositoryInterface
	service     *service.TeamService
	ctx         context.Context

	admin  access.Actor
	leader access.Actor
	member access.Actor
}

// SetupTest sets up the test suite
func (suite *TeamServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.memberships = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.users = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.tasks = mocks.NewMockTaskRepositoryInterface(suite.ctrl)
	suite.service = service.NewTeamService(suite.memberships, suite.users, suite.tasks, service.NewValidator())
	suite.ctx = context.Background()

	suite.admin = access.Actor{ID: uuid.New(), Role: models.RoleAdmin, Active: true}
	suite.leader = access.Actor{ID: uuid.New(), Role: models.RoleLeader, Active: true}
	suite.member = access.Actor{ID: uuid.New(), Role: models.RoleMember, Active: true}
}

// TearDownTest cleans up after each test
func (suite *TeamServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamServiceTestSuite) TestMembersOfOwnRoster() {
	joined := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	suite.memberships.EXPECT().
		GetTeamMembers(gomock.Any(), suite.leader.ID, true).
		Return([]repository.TeamMemberRow{{ID: suite.member.ID, Name: "Mia", JoinedAt: joined}}, nil).
		Times(1)

	resp, err := suite.service.Members(suite.ctx, suite.leader, nil)

	suite.Require().NoError(err)
	suite.Require().Len(resp, 1)
	suite.Equal("2025-01-02T03:04:05Z", resp[0].JoinedAt)
}

func (suite *TeamServiceTestSuite) TestMemberHasNoRoster() {
	_, err := suite.service.Members(suite.ctx, suite.member, nil)

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *TeamServiceTestSuite) TestAdminNamesUnknownLeader() {
	leaderID := uuid.New()
	suite.users.EXPECT().GetByID(gomock.Any(), leaderID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	_, err := suite.service.AvailableUsers(suite.ctx, suite.admin, &leaderID)

	suite.ErrorIs(err, apperrors.ErrLeaderNotFound)
}

func (suite *TeamServiceTestSuite) TestLeaderCannotNameAnotherLeader() {
	other := &models.User{Role: models.RoleLeader, Active: true}
	other.ID = uuid.New()
	suite.users.EXPECT().GetByID(gomock.Any(), other.ID).Return(other, nil).Times(1)

	_, err := suite.service.Projects(suite.ctx, suite.leader, &other.ID)

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *TeamServiceTestSuite) TestAddMember() {
	user := &models.User{Name: "Mia", Role: models.RoleMember, Active: true}
	user.ID = suite.member.ID

	suite.users.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil).Times(1)
	suite.memberships.EXPECT().IsTeamMember(gomock.Any(), suite.leader.ID, user.ID).Return(false, nil).Times(1)
	suite.memberships.EXPECT().
		AddTeamMember(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m *models.TeamMember) error {
			suite.Equal(suite.leader.ID, m.LeaderID)
			suite.Equal(user.ID, m.UserID)
			return nil
		}).
		Times(1)

	resp, err := suite.service.AddMember(suite.ctx, suite.leader, nil, &service.AddTeamMemberRequest{UserID: user.ID})

	suite.Require().NoError(err)
	suite.Equal("Mia", resp.Name)
}

func (suite *TeamServiceTestSuite) TestAddMemberRejectsSelfAndDuplicates() {
	_, err := suite.service.AddMember(suite.ctx, suite.leader, nil, &service.AddTeamMemberRequest{UserID: suite.leader.ID})
	suite.True(apperrors.IsValidation(err))

	user := &models.User{Name: "Mia"}
	user.ID = suite.member.ID
	suite.users.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil).Times(1)
	suite.memberships.EXPECT().IsTeamMember(gomock.Any(), suite.leader.ID, user.ID).Return(false, nil).Times(1)
	suite.memberships.EXPECT().AddTeamMember(gomock.Any(), gomock.Any()).Return(gorm.ErrDuplicatedKey).Times(1)

	_, err = suite.service.AddMember(suite.ctx, suite.leader, nil, &service.AddTeamMemberRequest{UserID: user.ID})
	suite.ErrorIs(err, apperrors.ErrTeamMemberExists)
}

func (suite *TeamServiceTestSuite) TestRemoveMemberNotOnRoster() {
	suite.memberships.EXPECT().RemoveTeamMember(gomock.Any(), suite.leader.ID, suite.member.ID).Return(gorm.ErrRecordNotFound).Times(1)

	err := suite.service.RemoveMember(suite.ctx, suite.leader, nil, suite.member.ID)

	suite.ErrorIs(err, apperrors.ErrTeamMemberNotFound)
}

func (suite *TeamServiceTestSuite) TestMemberTasksScopedToOwnedProjects() {
	suite.tasks.EXPECT().
		GetAssignedInProjectsOf(gomock.Any(), suite.leader.ID, suite.member.ID).
		Return([]repository.TaskRow{{TaskName: "Review", ProjectTitle: "Website"}}, nil).
		Times(1)

	resp, err := suite.service.MemberTasks(suite.ctx, suite.leader, nil, suite.member.ID)

	suite.Require().NoError(err)
	suite.Require().Len(resp, 1)
	suite.Equal("Website", resp[0].ProjectTitle)
}

func (suite *TeamServiceTestSuite) TestAdminOnlyViews() {
	_, err := suite.service.AvailableLeaders(suite.ctx, suite.leader)
	suite.ErrorIs(err, apperrors.ErrForbidden)

	suite.users.EXPECT().GetActiveLeaders(gomock.Any()).Return([]models.User{{Name: "Lee", Role: models.RoleLeader}}, nil).Times(1)
	leaders, err := suite.service.AvailableLeaders(suite.ctx, suite.admin)
	suite.Require().NoError(err)
	suite.Len(leaders, 1)
}

func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
