package partyrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"agrikart/internal/core/domain/model/kernel"
	"agrikart/internal/core/domain/model/party"
	"agrikart/internal/pkg/errs"
)

// GormPartyRepository implements PartyRepository using GORM.
type GormPartyRepository struct {
	db *gorm.DB
}

// NewGormPartyRepository creates a new GORM party repository.
func NewGormPartyRepository(db *gorm.DB) *GormPartyRepository {
	return &GormPartyRepository{db: db}
}

// AddBuyer saves a new buyer to the database.
func (r *GormPartyRepository) AddBuyer(ctx context.Context, buyer *party.Buyer) error {
	if err := buyer.Validate(); err != nil {
		return err
	}

	dto := buyerFromDomain(buyer)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetBuyer retrieves a buyer by ID.
func (r *GormPartyRepository) GetBuyer(ctx context.Context, id kernel.UUID) (*party.Buyer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BuyerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("buyer", id.String())
		}
		return nil, err
	}

	return buyerToDomain(dto)
}

// AddFarmer saves a new farmer to the database.
func (r *GormPartyRepository) AddFarmer(ctx context.Context, farmer *party.Farmer) error {
	if err := farmer.Validate(); err != nil {
		return err
	}

	dto := farmerFromDomain(farmer)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetFarmer retrieves a farmer by ID.
func (r *GormPartyRepository) GetFarmer(ctx context.Context, id kernel.UUID) (*party.Farmer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto FarmerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("farmer", id.String())
		}
		return nil, err
	}

	return farmerToDomain(dto)
}
