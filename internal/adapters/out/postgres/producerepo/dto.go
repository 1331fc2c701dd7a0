// Package producerepo provides data transfer objects and mapping functions
// for the stock ledger. The produce table holds the authoritative stock
// counter; all checkout decrements go through this repository under a row
// lock.
package producerepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"agrikart/internal/core/domain/model/kernel"
	"agrikart/internal/core/domain/model/produce"
)

// ProduceDTO represents the database structure for persisting produce listings.
type ProduceDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	FarmerID      uuid.UUID `gorm:"type:uuid;index"`
	Name          string
	UnitPrice     decimal.Decimal `gorm:"type:numeric(12,2)"`
	StockQuantity int
	Active        bool `gorm:"index"`
}

// TableName specifies the database table name for produce entities.
func (ProduceDTO) TableName() string {
	return "produce"
}

// fromDomain converts a produce domain aggregate to its database representation.
func fromDomain(aggregate *produce.Produce) ProduceDTO {
	return ProduceDTO{
		ID:            aggregate.ID().Bytes(),
		FarmerID:      aggregate.FarmerID().Bytes(),
		Name:          aggregate.Name(),
		UnitPrice:     aggregate.UnitPrice(),
		StockQuantity: aggregate.StockQuantity(),
		Active:        aggregate.IsActive(),
	}
}

// toDomain converts a database DTO to a produce domain aggregate using
// RestoreProduce.
func toDomain(dto ProduceDTO) (*produce.Produce, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	farmerID, err := kernel.UUIDFromBytes(dto.FarmerID[:])
	if err != nil {
		return nil, err
	}

	return produce.RestoreProduce(
		id, farmerID, dto.Name, dto.UnitPrice, dto.StockQuantity, dto.Active)
}
