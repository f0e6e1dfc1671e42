// Package ports defines repository interfaces for the BaleConnect domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"baleconnect/internal/core/domain/model/kernel"
	"baleconnect/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Add persists a new user aggregate to storage.
	// The user must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.EntityID) (*user.User, error)

	// GetByEmail retrieves a user by email, regardless of account status.
	// Email is unique across all users, so at most one row matches.
	// Used by registration to detect duplicate emails.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
