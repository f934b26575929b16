package auth

import (
	"errors"
	"net/http"
	"strings"

	"project-tracker-backend/internal/access"
	"project-tracker-backend/internal/database/models"
	"project-tracker-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const actorKey = "actor"

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	tokens   *TokenService
	userRepo UserRepository
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(tokens *TokenService, userRepo UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, userRepo: userRepo}
}

// RequireAuth validates the session token, reloads the account and sets the
// acting user on the context. Missing or deactivated accounts are rejected,
// so handlers never see an inactive actor.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := extractToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}

		// Validate token
		claims, err := m.tokens.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		user, err := m.userRepo.GetByID(c, claims.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "account no longer exists"})
				c.Abort()
				return
			}
			logger.WithContext(c).WithError(err).Error("failed to load authenticated user")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load user"})
			c.Abort()
			return
		}
		if !user.Active {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "account deactivated"})
			c.Abort()
			return
		}

		// Role comes from the stored account, not the token, so admin role
		// changes apply on the next request.
		c.Set(logger.UserIDKey, user.ID.String())
		c.Set(logger.RoleKey, string(user.Role))
		c.Set(actorKey, access.ActorFromUser(user))

		c.Next()
	}
}

func extractToken(c *gin.Context) (string, bool) {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return "", false
		}
		return tokenString, true
	}
	if cookie, err := c.Cookie(CookieName); err == nil && cookie != "" {
		return cookie, true
	}
	return "", false
}

// GetActor is a helper function to extract the acting user from context
func GetActor(c *gin.Context) (access.Actor, bool) {
	value, exists := c.Get(actorKey)
	if !exists {
		return access.Actor{}, false
	}

	actor, ok := value.(access.Actor)
	return actor, ok
}

// GetUserID is a helper function to extract user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	actor, ok := GetActor(c)
	if !ok {
		return uuid.Nil, false
	}
	return actor.ID, true
}

// GetRole is a helper function to extract the user's role from context
func GetRole(c *gin.Context) (models.Role, bool) {
	actor, ok := GetActor(c)
	if !ok {
		return "", false
	}
	return actor.Role, true
}

// SetActor places an actor on the context. Used by tests and tooling that
// bypass token validation.
func SetActor(c *gin.Context, actor access.Actor) {
	c.Set(logger.UserIDKey, actor.ID.String())
	c.Set(logger.RoleKey, string(actor.Role))
	c.Set(actorKey, actor)
}
