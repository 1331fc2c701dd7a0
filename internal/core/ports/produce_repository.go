package ports

import (
	"context"

	"agrikart/internal/core/domain/model/kernel"
	"agrikart/internal/core/domain/model/produce"
)

// ProduceRepository defines the persistence contract for the stock ledger.
type ProduceRepository interface {
	// Add persists a new produce listing to storage.
	Add(ctx context.Context, aggregate *produce.Produce) error

	// Update persists changes to an existing listing, including its
	// stock counter and active flag.
	Update(ctx context.Context, aggregate *produce.Produce) error

	// Get retrieves a listing by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*produce.Produce, error)

	// GetForUpdate retrieves a listing and takes a row-level write lock on it
	// for the duration of the surrounding transaction. Concurrent checkouts of
	// the same listing serialize on this lock so the stock counter can never
	// be decremented past zero.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*produce.Produce, error)
}
