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

// UserHandlerTestSuite defines the test suite for UserHandler
type UserHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockUserServiceInterface
	handler     *handlers.UserHandler
	http        *testutils.HTTPTestSuite
	actor       access.Actor
}

// SetupTest sets up the test suite
func (suite *UserHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockUserServiceInterface(suite.ctrl)
	suite.handler = handlers.NewUserHandler(suite.mockService)
	suite.actor = newActor(models.RoleAdmin)
	suite.http = newHTTPSuite(&suite.actor)

	r := suite.http.Router.Group("/api/users")
	r.GET("", suite.handler.ListUsers)
	r.POST("", suite.handler.CreateUser)
	r.GET("/:id", suite.handler.GetUser)
	r.PUT("/:id", suite.handler.UpdateUser)
	r.DELETE("/:id", suite.handler.DeleteUser)
}

// TearDownTest cleans up after each test
func (suite *UserHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserHandlerTestSuite) TestCreateUser() {
	req := service.CreateUserRequest{Name: "Jane", Email: "jane@example.com", Password: "secret123", Role: models.RoleMember}

	suite.T().Run("Created", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any(), suite.actor, &req).
			Return(&service.UserResponse{ID: uuid.New(), Email: req.Email, Role: models.RoleMember, Active: true}, nil).
			Times(1)

		w := suite.http.MakeRequest(http.MethodPost, "/api/users", req)

		var got service.UserResponse
		testutils.AssertJSONResponse(t, w, http.StatusCreated, &got)
		suite.Equal("jane@example.com", got.Email)
		suite.NotContains(w.Body.String(), "password")
	})

	suite.T().Run("Duplicate email", func(t *testing.T) {
		suite.mockService.EXPECT().Create(gomock.Any(), suite.actor, gomock.Any()).Return(nil, apperrors.ErrUserExists).Times(1)

		w := suite.http.MakeRequest(http.MethodPost, "/api/users", req)
		testutils.AssertErrorResponse(t, w, http.StatusConflict, "user already exists")
	})

	suite.T().Run("Validation", func(t *testing.T) {
		suite.mockService.EXPECT().Create(gomock.Any(), suite.actor, gomock.Any()).Return(nil, apperrors.NewValidationError("email", "must be a valid email")).Times(1)

		w := suite.http.MakeRequest(http.MethodPost, "/api/users", service.CreateUserRequest{Name: "Jane"})
		testutils.AssertErrorResponse(t, w, http.StatusBadRequest, "email")
	})
}

func (suite *UserHandlerTestSuite) TestGetUserInvalidID() {
	w := suite.http.MakeRequest(http.MethodGet, "/api/users/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "invalid user ID")
}

func (suite *UserHandlerTestSuite) TestUpdateUserSelfDeactivate() {
	active := false
	suite.mockService.EXPECT().
		Update(gomock.Any(), suite.actor, suite.actor.ID, &service.UpdateUserRequest{Active: &active}).
		Return(nil, apperrors.NewInvalidStateError("you cannot deactivate your own account")).
		Times(1)

	w := suite.http.MakeRequest(http.MethodPut, fmt.Sprintf("/api/users/%s", suite.actor.ID), map[string]interface{}{"active": false})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "deactivate")
}

func (suite *UserHandlerTestSuite) TestDeleteUser() {
	id := uuid.New()

	suite.T().Run("Deleted", func(t *testing.T) {
		suite.mockService.EXPECT().Delete(gomock.Any(), suite.actor, id).Return(nil).Times(1)

		w := suite.http.MakeRequest(http.MethodDelete, fmt.Sprintf("/api/users/%s", id), nil)
		suite.Equal(http.StatusNoContent, w.Code)
	})

	suite.T().Run("Owns projects", func(t *testing.T) {
		suite.mockService.EXPECT().Delete(gomock.Any(), suite.actor, id).Return(apperrors.ErrUserOwnsProjects).Times(1)

		w := suite.http.MakeRequest(http.MethodDelete, fmt.Sprintf("/api/users/%s", id), nil)
		testutils.AssertErrorResponse(t, w, http.StatusBadRequest, "owns projects")
	})
}

func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
