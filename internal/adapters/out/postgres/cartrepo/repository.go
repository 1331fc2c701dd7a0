package cartrepo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"agrikart/internal/core/domain/model/cart"
	"agrikart/internal/core/domain/model/kernel"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// Upsert stores a cart line. When the buyer already has a line for the same
// listing the quantities are added together in a single statement.
func (r *GormCartRepository) Upsert(ctx context.Context, item cart.CartItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "buyer_id"}, {Name: "produce_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity": gorm.Expr("cart_items.quantity + EXCLUDED.quantity"),
			}),
		}).
		Create(&dto).Error
}

// GetByBuyer retrieves the buyer's cart lines in insertion order.
func (r *GormCartRepository) GetByBuyer(
	ctx context.Context,
	buyerID kernel.UUID,
) ([]cart.CartItem, error) {
	if err := buyerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CartItemDTO
	err := r.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID.Bytes()).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	items := make([]cart.CartItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// ClearByBuyer removes every cart line of the buyer.
func (r *GormCartRepository) ClearByBuyer(ctx context.Context, buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID.Bytes()).
		Delete(&CartItemDTO{}).Error
}
