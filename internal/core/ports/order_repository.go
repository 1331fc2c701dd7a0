package ports

import (
	"context"

	"agrikart/internal/core/domain/model/kernel"
	"agrikart/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllPendingUnassigned retrieves every Pending order with no courier
	// assignment yet, oldest first. Used by the assignment sweep.
	GetAllPendingUnassigned(ctx context.Context) ([]*order.Order, error)
}
