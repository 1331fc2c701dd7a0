package ports

import (
	"context"

	"agrikart/internal/core/domain/model/kernel"
	"agrikart/internal/core/domain/model/party"
)

// PartyRepository defines the persistence contract for buyer and farmer
// reference data.
type PartyRepository interface {
	// AddBuyer persists a new buyer.
	AddBuyer(ctx context.Context, buyer *party.Buyer) error

	// GetBuyer retrieves a buyer by its unique identifier.
	GetBuyer(ctx context.Context, id kernel.UUID) (*party.Buyer, error)

	// AddFarmer persists a new farmer.
	AddFarmer(ctx context.Context, farmer *party.Farmer) error

	// GetFarmer retrieves a farmer by its unique identifier.
	GetFarmer(ctx context.Context, id kernel.UUID) (*party.Farmer, error)
}
