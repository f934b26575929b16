package auth

import (
	"fmt"
	"time"

	"project-tracker-backend/internal/config"
	"project-tracker-backend/internal/database/models"
)

// CookieName is the cookie carrying the session token
const CookieName = "token"

// AuthConfig holds all authentication configuration for the application
type AuthConfig struct {
	JWTSecret    string        `yaml:"jwt_secret" json:"jwt_secret"`
	TokenTTL     time.Duration `yaml:"token_ttl" json:"token_ttl"`
	Issuer       string        `yaml:"issuer" json:"issuer"`
	SecureCookie bool          `yaml:"secure_cookie" json:"secure_cookie"`
	SignupRole   models.Role   `yaml:"signup_role" json:"signup_role"`
}

// NewAuthConfig derives the authentication settings from the application config
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	return &AuthConfig{
		JWTSecret:    cfg.JWTSecret,
		TokenTTL:     time.Duration(cfg.JWTTTLHours) * time.Hour,
		Issuer:       "project-tracker-backend",
		SecureCookie: cfg.IsProduction(),
		SignupRole:   models.Role(cfg.DefaultSignupRole),
	}
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}
	if c.SignupRole == "" {
		c.SignupRole = models.RoleMember
	}
	if c.SignupRole != models.RoleMember && c.SignupRole != models.RoleLeader {
		return fmt.Errorf("signup role must be member or leader, got %q", c.SignupRole)
	}
	return nil
}
