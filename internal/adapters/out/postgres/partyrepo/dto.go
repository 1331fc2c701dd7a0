// Package partyrepo provides data transfer objects and mapping functions for
// buyer and farmer reference data. Coordinates are nullable column pairs: a
// party without a registered position stores NULL in both.
package partyrepo

import (
	"github.com/google/uuid"

	"agrikart/internal/core/domain/model/kernel"
	"agrikart/internal/core/domain/model/party"
)

// BuyerDTO represents the database structure for persisting buyers.
type BuyerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Phone     string
	Address   string
	Latitude  *float64
	Longitude *float64
}

// TableName specifies the database table name for buyer entities.
func (BuyerDTO) TableName() string {
	return "buyers"
}

// FarmerDTO represents the database structure for persisting farmers.
type FarmerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Phone     string
	Address   string
	Latitude  *float64
	Longitude *float64
}

// TableName specifies the database table name for farmer entities.
func (FarmerDTO) TableName() string {
	return "farmers"
}

// buyerFromDomain converts a buyer to its database representation.
func buyerFromDomain(buyer *party.Buyer) BuyerDTO {
	latitude, longitude := coordinateToColumns(buyer.Coordinate())
	return BuyerDTO{
		ID:        buyer.ID().Bytes(),
		Name:      buyer.Name(),
		Phone:     buyer.Phone(),
		Address:   buyer.Address(),
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// buyerToDomain converts a database DTO to a buyer.
func buyerToDomain(dto BuyerDTO) (*party.Buyer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	coordinate, err := coordinateFromColumns(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	return party.NewBuyer(id, dto.Name, dto.Phone, dto.Address, coordinate)
}

// farmerFromDomain converts a farmer to its database representation.
func farmerFromDomain(farmer *party.Farmer) FarmerDTO {
	latitude, longitude := coordinateToColumns(farmer.Coordinate())
	return FarmerDTO{
		ID:        farmer.ID().Bytes(),
		Name:      farmer.Name(),
		Phone:     farmer.Phone(),
		Address:   farmer.Address(),
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// farmerToDomain converts a database DTO to a farmer.
func farmerToDomain(dto FarmerDTO) (*party.Farmer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	coordinate, err := coordinateFromColumns(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	return party.NewFarmer(id, dto.Name, dto.Phone, dto.Address, coordinate)
}

func coordinateToColumns(coordinate *kernel.Coordinate) (*float64, *float64) {
	if coordinate == nil {
		//nolint:nilnil //both columns are NULL together
		return nil, nil
	}

	latitude := coordinate.Latitude()
	longitude := coordinate.Longitude()
	return &latitude, &longitude
}

func coordinateFromColumns(latitude, longitude *float64) (*kernel.Coordinate, error) {
	if latitude == nil || longitude == nil {
		//nolint:nilnil //a missing position is not an error
		return nil, nil
	}

	coordinate, err := kernel.NewCoordinate(*latitude, *longitude)
	if err != nil {
		return nil, err
	}

	return &coordinate, nil
}
