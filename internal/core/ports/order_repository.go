package ports

import (
	"context"

	"baleconnect/internal/core/domain/model/kernel"
	"baleconnect/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Returns an object-not-found error when no row matches the order's
	// identifier, so lifecycle operations can report missing orders.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its current status and assignments.
	Get(ctx context.Context, id kernel.EntityID) (*order.Order, error)
}
