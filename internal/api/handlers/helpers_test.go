package handlers_test

import (
	"project-tracker-backend/internal/access"
	"project-tracker-backend/internal/auth"
	"project-tracker-backend/internal/database/models"
	"project-tracker-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func newActor(role models.Role) access.Actor {
	return access.Actor{ID: uuid.New(), Role: role, Active: true}
}

// newHTTPSuite returns a router that authenticates every request as actor.
// A nil actor leaves the request anonymous.
func newHTTPSuite(actor *access.Actor) *testutils.HTTPTestSuite {
	s := testutils.SetupHTTPTest()
	if actor != nil {
		a := *actor
		s.Router.Use(func(c *gin.Context) {
			auth.SetActor(c, a)
			c.Next()
		})
	}
	return s
}
