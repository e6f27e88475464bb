package service

import (
	"time"

	"github.com/google/uuid"
)

// Claims carries the identity information encoded into an access token.
type Claims struct {
	UserID uuid.UUID // The authenticated user's ID (the "sub" claim).
	Roles  []string  // The user's roles, used for stateless authorization.
	Type   string    // Token type: "access" or "refresh".
}

// TokenService defines the interface for generating and validating session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given user.
	GenerateTokens(userID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken checks a refresh token and returns its claims.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration

	// HashToken returns the hex-encoded SHA-256 digest of a token string.
	// Only the digest is ever persisted.
	HashToken(tokenString string) string
}
