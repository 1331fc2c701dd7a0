package ports

import (
	"context"

	"agrikart/internal/core/domain/model/cart"
	"agrikart/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for buyers' cart lines.
type CartRepository interface {
	// Upsert stores a cart line. When the buyer already has a line for the
	// same listing the quantities are added together.
	Upsert(ctx context.Context, item cart.CartItem) error

	// GetByBuyer retrieves the buyer's cart lines in insertion order.
	GetByBuyer(ctx context.Context, buyerID kernel.UUID) ([]cart.CartItem, error)

	// ClearByBuyer removes every cart line of the buyer. Called inside the
	// checkout transaction after the order is persisted.
	ClearByBuyer(ctx context.Context, buyerID kernel.UUID) error
}
