package courierrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"agrikart/internal/core/domain/model/courier"
	"agrikart/internal/core/domain/model/kernel"
	"agrikart/internal/pkg/errs"
)

// GormCourierRepository implements CourierRepository using GORM.
type GormCourierRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCourierRepository creates a new GORM courier repository.
func NewGormCourierRepository(db *gorm.DB, tracker aggregateTracker) *GormCourierRepository {
	return &GormCourierRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new courier to the database.
func (r *GormCourierRepository) Add(ctx context.Context, aggregate *courier.Courier) error {
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

// Get retrieves a courier by ID.
func (r *GormCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CourierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courier", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every courier ordered by id ascending. The fixed order
// makes first-fit dispatch deterministic for a given courier pool.
func (r *GormCourierRepository) GetAll(ctx context.Context) ([]*courier.Courier, error) {
	var dtos []CourierDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	couriers := make([]*courier.Courier, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		couriers = append(couriers, c)
	}

	return couriers, nil
}

// AddAssignment persists a courier-to-order assignment. The primary key on
// order_id makes a duplicate assignment fail at the database level.
func (r *GormCourierRepository) AddAssignment(ctx context.Context, assignment courier.Assignment) error {
	if err := assignment.Validate(); err != nil {
		return err
	}

	dto := assignmentFromDomain(assignment)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAssignment retrieves the assignment for the given order.
func (r *GormCourierRepository) GetAssignment(
	ctx context.Context,
	orderID kernel.UUID,
) (courier.Assignment, error) {
	if err := orderID.Validate(); err != nil {
		return courier.Assignment{}, err
	}

	var dto AssignmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return courier.Assignment{}, errs.NewObjectNotFoundError("assignment", orderID.String())
		}
		return courier.Assignment{}, err
	}

	return assignmentToDomain(dto)
}
