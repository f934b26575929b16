package routes_test

import (
	"fmt"
	"net/http"
	"testing"

	"project-tracker-backend/internal/api/routes"
	"project-tracker-backend/internal/config"
	"project-tracker-backend/internal/database/models"
	"project-tracker-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// RouterTestSuite drives the full router against a SQLite database
type RouterTestSuite struct {
	suite.Suite
	db   *gorm.DB
	http *testutils.HTTPTestSuite
}

func testConfig() *config.Config {
	return &config.Config{
		Environment:        "test",
		JWTSecret:          "router-test-secret",
		JWTTTLHours:        1,
		AllowedOrigins:     []string{"http://localhost:3000"},
		AuthRateLimitRPS:   1000,
		AuthRateLimitBurst: 1000,
		DefaultSignupRole:  "member",
	}
}

// SetupTest sets up the test suite
func (suite *RouterTestSuite) SetupTest() {
	suite.db = testutils.SetupSQLite(suite.T())
	suite.http = testutils.SetupHTTPTest()

	router, err := routes.SetupRoutes(suite.db, testConfig())
	suite.Require().NoError(err)
	suite.http.Router = router
}

func (suite *RouterTestSuite) signup(name, email string, role models.Role) {
	w := suite.http.MakeRequest(http.MethodPost, "/api/auth/signup", map[string]interface{}{
		"name": name, "email": email, "password": testutils.TestPassword, "role": role,
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
}

func (suite *RouterTestSuite) login(email string) string {
	w := suite.http.MakeRequest(http.MethodPost, "/api/auth/login", map[string]string{
		"email": email, "password": testutils.TestPassword,
	})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		AccessToken string `json:"accessToken"`
		Profile     struct {
			ID string `json:"id"`
		} `json:"profile"`
	}
	testutils.ParseJSONResponse(suite.T(), w, &resp)
	return resp.AccessToken
}

func (suite *RouterTestSuite) create(token, url string, body interface{}) string {
	w := suite.http.MakeAuthenticatedRequest(http.MethodPost, url, token, body)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		ID string `json:"id"`
	}
	testutils.ParseJSONResponse(suite.T(), w, &resp)
	return resp.ID
}

func (suite *RouterTestSuite) progressOf(token, projectID string) int {
	w := suite.http.MakeAuthenticatedRequest(http.MethodGet, "/api/projects/"+projectID, token, nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Progress int `json:"progress"`
	}
	testutils.ParseJSONResponse(suite.T(), w, &resp)
	return resp.Progress
}

func (suite *RouterTestSuite) TestHealthAndAnonymousAccess() {
	suite.Equal(http.StatusOK, suite.http.MakeRequest(http.MethodGet, "/health", nil).Code)

	w := suite.http.MakeRequest(http.MethodGet, "/api/projects", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusUnauthorized, "authentication required")

	w = suite.http.MakeAuthenticatedRequest(http.MethodGet, "/api/projects", "garbage", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *RouterTestSuite) TestRequestIDHeader() {
	w := suite.http.MakeRequestWithHeaders(http.MethodGet, "/health/live", nil, map[string]string{"X-Request-ID": "trace-1"})

	suite.Equal("trace-1", w.Header().Get("X-Request-ID"))
}

func (suite *RouterTestSuite) TestLeaderAndMemberFlow() {
	suite.signup("Lee Leader", "lee@example.com", models.RoleLeader)
	suite.signup("Mia Member", "mia@example.com", models.RoleMember)
	leader := suite.login("lee@example.com")
	member := suite.login("mia@example.com")

	var mia models.User
	suite.Require().NoError(suite.db.Where("email = ?", "mia@example.com").First(&mia).Error)

	// members cannot create projects
	w := suite.http.MakeAuthenticatedRequest(http.MethodPost, "/api/projects", member, map[string]string{"title": "Nope"})
	suite.Equal(http.StatusForbidden, w.Code)

	projectID := suite.create(leader, "/api/projects", map[string]string{"title": "Website", "start_date": "2025-03-01", "end_date": "2025-06-30"})
	moduleID := suite.create(leader, fmt.Sprintf("/api/projects/%s/modules", projectID), map[string]string{"module_name": "Backend"})
	taskID := suite.create(leader, fmt.Sprintf("/api/projects/modules/%s/tasks", moduleID), map[string]interface{}{"task_name": "Schema", "assigned_to": mia.ID})
	suite.create(leader, fmt.Sprintf("/api/projects/modules/%s/tasks", moduleID), map[string]interface{}{"task_name": "Endpoints"})

	suite.Equal(0, suite.progressOf(leader, projectID))

	// not yet a project member: the project is hidden
	w = suite.http.MakeAuthenticatedRequest(http.MethodGet, "/api/projects/"+projectID, member, nil)
	suite.Equal(http.StatusForbidden, w.Code)

	suite.create(leader, fmt.Sprintf("/api/projects/%s/members", projectID), map[string]interface{}{"user_id": mia.ID})
	w = suite.http.MakeAuthenticatedRequest(http.MethodPost, fmt.Sprintf("/api/projects/%s/members", projectID), leader, map[string]interface{}{"user_id": mia.ID})
	suite.Equal(http.StatusConflict, w.Code)

	// the assignee may move the status but nothing else
	w = suite.http.MakeAuthenticatedRequest(http.MethodPut, "/api/projects/tasks/"+taskID, member, map[string]string{"task_name": "Renamed"})
	suite.Equal(http.StatusForbidden, w.Code)
	w = suite.http.MakeAuthenticatedRequest(http.MethodPut, "/api/projects/tasks/"+taskID, member, map[string]string{"status": "completed"})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	suite.Equal(50, suite.progressOf(member, projectID))

	w = suite.http.MakeAuthenticatedRequest(http.MethodGet, "/api/projects/my-tasks", member, nil)
	var mine []struct {
		TaskName     string `json:"task_name"`
		ProjectTitle string `json:"project_title"`
	}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &mine)
	suite.Require().Len(mine, 1)
	suite.Equal("Website", mine[0].ProjectTitle)

	w = suite.http.MakeAuthenticatedRequest(http.MethodPost, fmt.Sprintf("/api/projects/%s/recompute", projectID), leader, nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(50, suite.progressOf(leader, projectID))
}

func (suite *RouterTestSuite) TestTeamRosterFlow() {
	suite.signup("Lee Leader", "lee@example.com", models.RoleLeader)
	suite.signup("Mia Member", "mia@example.com", models.RoleMember)
	leader := suite.login("lee@example.com")

	var mia models.User
	suite.Require().NoError(suite.db.Where("email = ?", "mia@example.com").First(&mia).Error)

	suite.create(leader, "/api/teams/members", map[string]interface{}{"user_id": mia.ID})

	w := suite.http.MakeAuthenticatedRequest(http.MethodGet, "/api/teams/members", leader, nil)
	var roster []struct {
		ID string `json:"id"`
	}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &roster)
	suite.Require().Len(roster, 1)
	suite.Equal(mia.ID.String(), roster[0].ID)

	// leaders have no access to the admin views
	w = suite.http.MakeAuthenticatedRequest(http.MethodGet, "/api/teams/admin/all-teams", leader, nil)
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.http.MakeAuthenticatedRequest(http.MethodDelete, fmt.Sprintf("/api/teams/members/%s", mia.ID), leader, nil)
	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *RouterTestSuite) TestAdminAddsToLeaderRosterFromBody() {
	admin := testutils.NewUserFactory().WithRole(models.RoleAdmin)
	suite.Require().NoError(suite.db.Create(admin).Error)
	suite.signup("Lee Leader", "lee@example.com", models.RoleLeader)
	suite.signup("Mia Member", "mia@example.com", models.RoleMember)
	token := suite.login(admin.Email)

	var lee, mia models.User
	suite.Require().NoError(suite.db.Where("email = ?", "lee@example.com").First(&lee).Error)
	suite.Require().NoError(suite.db.Where("email = ?", "mia@example.com").First(&mia).Error)

	suite.create(token, "/api/teams/members", map[string]interface{}{"user_id": mia.ID, "leaderId": lee.ID})

	var row models.TeamMember
	suite.Require().NoError(suite.db.Where("user_id = ?", mia.ID).First(&row).Error)
	suite.Equal(lee.ID, row.LeaderID)

	w := suite.http.MakeAuthenticatedRequest(http.MethodGet, fmt.Sprintf("/api/teams/members?leaderId=%s", lee.ID), token, nil)
	var roster []struct {
		ID string `json:"id"`
	}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &roster)
	suite.Require().Len(roster, 1)
	suite.Equal(mia.ID.String(), roster[0].ID)

	w = suite.http.MakeAuthenticatedRequest(http.MethodGet, "/api/teams/members", token, nil)
	roster = nil
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &roster)
	suite.Empty(roster)
}

func (suite *RouterTestSuite) TestAdminManagesUsers() {
	admin := testutils.NewUserFactory().WithRole(models.RoleAdmin)
	suite.Require().NoError(suite.db.Create(admin).Error)
	token := suite.login(admin.Email)

	userID := suite.create(token, "/api/users", map[string]interface{}{
		"name": "Nora", "email": "nora@example.com", "password": "secret123", "role": "member",
	})

	w := suite.http.MakeAuthenticatedRequest(http.MethodPut, "/api/users/"+userID, token, map[string]interface{}{"active": false})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w = suite.http.MakeRequest(http.MethodPost, "/api/auth/login", map[string]string{"email": "nora@example.com", "password": "secret123"})
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.http.MakeAuthenticatedRequest(http.MethodDelete, "/api/users/"+admin.ID.String(), token, nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func TestAuthRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.AuthRateLimitRPS = 0.01
	cfg.AuthRateLimitBurst = 2

	router, err := routes.SetupRoutes(testutils.SetupSQLite(t), cfg)
	if err != nil {
		t.Fatal(err)
	}
	s := testutils.SetupHTTPTest()
	s.Router = router

	var last int
	for i := 0; i < 3; i++ {
		last = s.MakeRequest(http.MethodPost, "/api/auth/login", map[string]string{"email": "x@example.com", "password": "whatever"}).Code
	}
	if last != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after burst, got %d", last)
	}
}
