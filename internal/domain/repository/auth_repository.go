package repository

import (
	"context"
	"errors"

	"beantrade/internal/domain/entity"
)

// ErrAuthNotFound is returned when no authentication record matches the lookup.
var ErrAuthNotFound = errors.New("authentication not found")

// AuthRepository defines persistence operations for authentication credentials.
type AuthRepository interface {
	// FindAuthentication retrieves a credential by provider and provider-scoped user ID.
	// For the "email" provider the providerUserID is the email address itself.
	FindAuthentication(ctx context.Context, provider, providerUserID string) (*entity.Authentication, error)

	// CreateAuthentication persists a new credential for a user.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error
}
