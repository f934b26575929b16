package auth

import (
	"fmt"
	"time"

	"project-tracker-backend/internal/database/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID               uuid.UUID   `json:"user_id" swaggertype:"string" example:"3fa85f64-5717-4562-b3fc-2c963f66afa6"`
	Role                 models.Role `json:"role" example:"leader"`
	Name                 string      `json:"name" example:"Jane Doe"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// TokenService issues and verifies signed session tokens
type TokenService struct {
	config *AuthConfig
	now    func() time.Time
}

// NewTokenService creates a new token service
func NewTokenService(config *AuthConfig) *TokenService {
	return &TokenService{config: config, now: time.Now}
}

// GenerateJWT creates a JWT token for the user
func (s *TokenService) GenerateJWT(user *models.User) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.config.TokenTTL)
	claims := &AuthClaims{
		UserID: user.ID,
		Role:   user.Role,
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// ValidateJWT validates and parses a JWT token
func (s *TokenService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
