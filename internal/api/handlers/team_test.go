package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"project-tracker-backend/internal/access"
	"project-tracker-backend/internal/api/handlers"
	"project-tracker-backend/internal/database/models"
	apperrors "project-tracker-backend/internal/errors"
	"project-tracker-backend/internal/mocks"
	"project-tracker-backend/internal/service"
	"project-tracker-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TeamHandlerTestSuite defines the test suite for TeamHandler
type TeamHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTeamServiceInterface
	handler     *handlers.TeamHandler
	http        *testutils.HTTPTestSuite
	actor       access.Actor
}

// SetupTest sets up the test suite
func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTeamServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTeamHandler(suite.mockService)
	suite.actor = newActor(models.RoleAdmin)
	suite.http = newHTTPSuite(&suite.actor)

	r := suite.http.Router.Group("/api/teams")
	r.GET("/members", suite.handler.GetMembers)
	r.POST("/members", suite.handler.AddMember)
	r.DELETE("/members/:userId", suite.handler.RemoveMember)
	r.GET("/available-users", suite.handler.AvailableUsers)
	r.GET("/member-tasks", suite.handler.MemberTasks)
	r.GET("/projects", suite.handler.GetProjects)
	r.GET("/admin/all-teams", suite.handler.AllTeams)
	r.GET("/admin/team-details/:leaderId", suite.handler.TeamDetails)
	r.GET("/admin/available-leaders", suite.handler.AvailableLeaders)
}

// TearDownTest cleans up after each test
func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamHandlerTestSuite) TestMembersOwnRoster() {
	var noLeader *uuid.UUID
	suite.mockService.EXPECT().Members(gomock.Any(), suite.actor, noLeader).Return([]service.TeamMemberResponse{}, nil).Times(1)

	w := suite.http.MakeRequest(http.MethodGet, "/api/teams/members", nil)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *TeamHandlerTestSuite) TestMembersNamedLeader() {
	leaderID := uuid.New()
	suite.mockService.EXPECT().Members(gomock.Any(), suite.actor, &leaderID).Return(nil, apperrors.ErrLeaderNotFound).Times(1)

	w := suite.http.MakeRequest(http.MethodGet, fmt.Sprintf("/api/teams/members?leaderId=%s", leaderID), nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "leader not found")
}

func (suite *TeamHandlerTestSuite) TestInvalidLeaderID() {
	w := suite.http.MakeRequest(http.MethodGet, "/api/teams/projects?leaderId=abc", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "invalid leaderId")
}

func (suite *TeamHandlerTestSuite) TestAddMember() {
	userID := uuid.New()

	suite.T().Run("Added", func(t *testing.T) {
		suite.mockService.EXPECT().
			AddMember(gomock.Any(), suite.actor, gomock.Nil(), &service.AddTeamMemberRequest{UserID: userID}).
			Return(&service.TeamMemberResponse{ID: userID, Name: "Mia"}, nil).
			Times(1)

		w := suite.http.MakeRequest(http.MethodPost, "/api/teams/members", service.AddTeamMemberRequest{UserID: userID})
		testutils.AssertSuccessResponse(t, w, http.StatusCreated)
	})

	suite.T().Run("Duplicate", func(t *testing.T) {
		suite.mockService.EXPECT().AddMember(gomock.Any(), suite.actor, gomock.Nil(), gomock.Any()).Return(nil, apperrors.ErrTeamMemberExists).Times(1)

		w := suite.http.MakeRequest(http.MethodPost, "/api/teams/members", service.AddTeamMemberRequest{UserID: userID})
		testutils.AssertErrorResponse(t, w, http.StatusConflict, "team member already exists")
	})
}

func (suite *TeamHandlerTestSuite) TestAddMemberLeaderFromBody() {
	userID := uuid.New()
	leaderID := uuid.New()

	suite.T().Run("Body only", func(t *testing.T) {
		req := service.AddTeamMemberRequest{UserID: userID, LeaderID: &leaderID}
		suite.mockService.EXPECT().
			AddMember(gomock.Any(), suite.actor, &leaderID, &req).
			Return(&service.TeamMemberResponse{ID: userID}, nil).
			Times(1)

		w := suite.http.MakeRequest(http.MethodPost, "/api/teams/members", req)
		testutils.AssertSuccessResponse(t, w, http.StatusCreated)
	})

	suite.T().Run("Query and body agree", func(t *testing.T) {
		req := service.AddTeamMemberRequest{UserID: userID, LeaderID: &leaderID}
		suite.mockService.EXPECT().
			AddMember(gomock.Any(), suite.actor, &leaderID, gomock.Any()).
			Return(&service.TeamMemberResponse{ID: userID}, nil).
			Times(1)

		w := suite.http.MakeRequest(http.MethodPost, fmt.Sprintf("/api/teams/members?leaderId=%s", leaderID), req)
		testutils.AssertSuccessResponse(t, w, http.StatusCreated)
	})

	suite.T().Run("Query and body differ", func(t *testing.T) {
		other := uuid.New()
		req := service.AddTeamMemberRequest{UserID: userID, LeaderID: &leaderID}

		w := suite.http.MakeRequest(http.MethodPost, fmt.Sprintf("/api/teams/members?leaderId=%s", other), req)
		testutils.AssertErrorResponse(t, w, http.StatusBadRequest, "leaderId in query and body differ")
	})
}

func (suite *TeamHandlerTestSuite) TestRemoveMember() {
	userID := uuid.New()
	suite.mockService.EXPECT().RemoveMember(gomock.Any(), suite.actor, gomock.Nil(), userID).Return(nil).Times(1)

	w := suite.http.MakeRequest(http.MethodDelete, fmt.Sprintf("/api/teams/members/%s", userID), nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *TeamHandlerTestSuite) TestMemberTasksRequiresUserID() {
	w := suite.http.MakeRequest(http.MethodGet, "/api/teams/member-tasks", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "userId parameter is required")
}

func (suite *TeamHandlerTestSuite) TestAdminViews() {
	suite.T().Run("All teams", func(t *testing.T) {
		suite.mockService.EXPECT().AllTeams(gomock.Any(), suite.actor).Return([]service.TeamSummaryResponse{{Leader: service.UserSummary{Name: "Lee"}, MemberCount: 2}}, nil).Times(1)

		w := suite.http.MakeRequest(http.MethodGet, "/api/teams/admin/all-teams", nil)
		var got []service.TeamSummaryResponse
		testutils.AssertJSONResponse(t, w, http.StatusOK, &got)
		suite.Equal(2, got[0].MemberCount)
	})

	suite.T().Run("Team details not a leader", func(t *testing.T) {
		leaderID := uuid.New()
		suite.mockService.EXPECT().TeamDetails(gomock.Any(), suite.actor, leaderID).Return(nil, apperrors.ErrLeaderNotFound).Times(1)

		w := suite.http.MakeRequest(http.MethodGet, fmt.Sprintf("/api/teams/admin/team-details/%s", leaderID), nil)
		suite.Equal(http.StatusNotFound, w.Code)
	})

	suite.T().Run("Leaders forbidden for non admin", func(t *testing.T) {
		suite.mockService.EXPECT().AvailableLeaders(gomock.Any(), suite.actor).Return(nil, apperrors.ErrForbidden).Times(1)

		w := suite.http.MakeRequest(http.MethodGet, "/api/teams/admin/available-leaders", nil)
		suite.Equal(http.StatusForbidden, w.Code)
	})
}

func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
