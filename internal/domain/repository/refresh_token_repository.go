package repository

import (
	"context"
	"errors"

	"beantrade/internal/domain/entity"
)

// ErrRefreshTokenNotFound is returned when no refresh token matches the given hash.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines persistence operations for long-lived sessions.
type RefreshTokenRepository interface {
	// Create persists a new refresh token record.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByTokenHash retrieves a refresh token by its SHA-256 hash.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteByTokenHash removes a refresh token, revoking the session. Deleting a
	// token that no longer exists is not an error.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error
}
