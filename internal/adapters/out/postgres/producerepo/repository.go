package producerepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"agrikart/internal/core/domain/model/kernel"
	"agrikart/internal/core/domain/model/produce"
	"agrikart/internal/pkg/errs"
)

// GormProduceRepository implements ProduceRepository using GORM.
type GormProduceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProduceRepository creates a new GORM produce repository.
func NewGormProduceRepository(db *gorm.DB, tracker aggregateTracker) *GormProduceRepository {
	return &GormProduceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new produce listing to the database.
func (r *GormProduceRepository) Add(ctx context.Context, aggregate *produce.Produce) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update persists the listing's stock counter and active flag.
func (r *GormProduceRepository) Update(ctx context.Context, aggregate *produce.Produce) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ProduceDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Updates(map[string]any{
			"stock_quantity": aggregate.StockQuantity(),
			"active":         aggregate.IsActive(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a listing by ID without locking.
func (r *GormProduceRepository) Get(ctx context.Context, id kernel.UUID) (*produce.Produce, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a listing by ID with a SELECT ... FOR UPDATE row
// lock. Concurrent checkouts of the same listing block here until the
// holding transaction commits or rolls back, serializing stock decrements.
func (r *GormProduceRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*produce.Produce, error) {
	return r.get(ctx, id, true)
}

func (r *GormProduceRepository) get(
	ctx context.Context,
	id kernel.UUID,
	forUpdate bool,
) (*produce.Produce, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if forUpdate {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto ProduceDTO
	if err := tx.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("produce", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
