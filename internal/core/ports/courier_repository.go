package ports

import (
	"context"

	"agrikart/internal/core/domain/model/courier"
	"agrikart/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for couriers and their
// order assignments.
type CourierRepository interface {
	// Add persists a new courier to storage.
	Add(ctx context.Context, aggregate *courier.Courier) error

	// Get retrieves a courier by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAll retrieves every registered courier in a stable order, so that
	// repeated dispatch runs over the same data pick the same courier.
	GetAll(ctx context.Context) ([]*courier.Courier, error)

	// AddAssignment persists a courier-to-order assignment. Storage enforces
	// at most one assignment per order; adding a second one fails.
	AddAssignment(ctx context.Context, assignment courier.Assignment) error

	// GetAssignment retrieves the assignment for the given order, or an
	// ObjectNotFoundError when the order is unassigned.
	GetAssignment(ctx context.Context, orderID kernel.UUID) (courier.Assignment, error)
}
