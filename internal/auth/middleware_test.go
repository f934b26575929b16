package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"project-tracker-backend/internal/auth"
	"project-tracker-backend/internal/database/models"
	"project-tracker-backend/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func testConfig() *auth.AuthConfig {
	return &auth.AuthConfig{
		JWTSecret: "middleware-test-secret",
		TokenTTL:  time.Hour,
		Issuer:    "project-tracker-test",
	}
}

func TestRequireAuthUnknownUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepositoryInterface(ctrl)
	tokens := auth.NewTokenService(testConfig())
	mw := auth.NewAuthMiddleware(tokens, users)

	user := &models.User{Role: models.RoleMember}
	user.ID = uuid.New()
	token, _, err := tokens.GenerateJWT(user)
	require.NoError(t, err)

	users.EXPECT().GetByID(gomock.Any(), user.ID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("Authorization", "Bearer "+token)

	mw.RequireAuth()(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthSetsActor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepositoryInterface(ctrl)
	tokens := auth.NewTokenService(testConfig())
	mw := auth.NewAuthMiddleware(tokens, users)

	// Token says member; stored account was promoted to leader.
	user := &models.User{Role: models.RoleMember, Active: true}
	user.ID = uuid.New()
	token, _, err := tokens.GenerateJWT(user)
	require.NoError(t, err)

	stored := *user
	stored.Role = models.RoleLeader
	users.EXPECT().GetByID(gomock.Any(), user.ID).Return(&stored, nil).Times(1)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("Authorization", "Bearer "+token)

	mw.RequireAuth()(c)

	assert.False(t, c.IsAborted())
	actor, ok := auth.GetActor(c)
	require.True(t, ok)
	assert.Equal(t, user.ID, actor.ID)
	assert.Equal(t, models.RoleLeader, actor.Role)
	assert.True(t, actor.Active)

	role, ok := auth.GetRole(c)
	assert.True(t, ok)
	assert.Equal(t, models.RoleLeader, role)
}
