// Package courierrepo provides data transfer objects and mapping functions
// for courier and assignment persistence. The courier_assignments table
// carries a unique index on order_id: that index, not application logic, is
// what guarantees at most one courier per order.
package courierrepo

import (
	"time"

	"github.com/google/uuid"

	"agrikart/internal/core/domain/model/courier"
	"agrikart/internal/core/domain/model/kernel"
)

// CourierDTO represents the database structure for persisting couriers.
type CourierDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Phone     string
	Address   string
	Latitude  float64
	Longitude float64
}

// TableName specifies the database table name for courier entities.
func (CourierDTO) TableName() string {
	return "couriers"
}

// AssignmentDTO represents the database structure for courier-to-order
// assignments. OrderID is the primary key, so a second assignment for the
// same order fails on insert.
type AssignmentDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourierID  uuid.UUID `gorm:"type:uuid;index"`
	DistanceKm float64
	AssignedAt time.Time
}

// TableName specifies the database table name for assignment entities.
func (AssignmentDTO) TableName() string {
	return "courier_assignments"
}

// fromDomain converts a courier domain aggregate to its database representation.
func fromDomain(aggregate *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Phone:     aggregate.Phone(),
		Address:   aggregate.Address(),
		Latitude:  aggregate.Coordinate().Latitude(),
		Longitude: aggregate.Coordinate().Longitude(),
	}
}

// toDomain converts a database DTO to a courier domain aggregate.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	coordinate, err := kernel.NewCoordinate(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(id, dto.Name, dto.Phone, dto.Address, coordinate)
}

// assignmentFromDomain converts an assignment record to its database representation.
func assignmentFromDomain(assignment courier.Assignment) AssignmentDTO {
	return AssignmentDTO{
		OrderID:    assignment.OrderID().Bytes(),
		CourierID:  assignment.CourierID().Bytes(),
		DistanceKm: assignment.DistanceKm(),
		AssignedAt: assignment.AssignedAt(),
	}
}

// assignmentToDomain converts a database DTO to an assignment record.
func assignmentToDomain(dto AssignmentDTO) (courier.Assignment, error) {
	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return courier.Assignment{}, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return courier.Assignment{}, err
	}

	return courier.RestoreAssignment(courierID, orderID, dto.DistanceKm, dto.AssignedAt)
}
