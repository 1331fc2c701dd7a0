// Package cartrepo provides data transfer objects and mapping functions for
// buyers' cart lines. The composite primary key (buyer_id, produce_id)
// collapses repeated adds of the same listing into a single line.
package cartrepo

import (
	"time"

	"github.com/google/uuid"

	"agrikart/internal/core/domain/model/cart"
	"agrikart/internal/core/domain/model/kernel"
)

// CartItemDTO represents the database structure for persisting cart lines.
// CreatedAt pins the insertion order used for checkout, so the first farmer
// of the first line is stable across reads.
type CartItemDTO struct {
	BuyerID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProduceID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity  int
	CreatedAt time.Time
}

// TableName specifies the database table name for cart line entities.
func (CartItemDTO) TableName() string {
	return "cart_items"
}

// fromDomain converts a cart line to its database representation.
func fromDomain(item cart.CartItem) CartItemDTO {
	return CartItemDTO{
		BuyerID:   item.BuyerID().Bytes(),
		ProduceID: item.ProduceID().Bytes(),
		Quantity:  item.Quantity(),
	}
}

// toDomain converts a database DTO to a cart line.
func toDomain(dto CartItemDTO) (cart.CartItem, error) {
	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return cart.CartItem{}, err
	}

	produceID, err := kernel.UUIDFromBytes(dto.ProduceID[:])
	if err != nil {
		return cart.CartItem{}, err
	}

	return cart.NewCartItem(buyerID, produceID, dto.Quantity)
}
