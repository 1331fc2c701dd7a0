// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"agrikart/internal/core/domain/model/kernel"
	"agrikart/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The optional delivery and pickup positions are stored as nullable coordinate
// pairs; the pickup pair is what the assignment engine and the nearby-orders
// view measure against.
type OrderDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	BuyerID           uuid.UUID `gorm:"type:uuid;index"`
	Status            int       `gorm:"index"`
	CreatedAt         time.Time
	DeliveryLatitude  *float64
	DeliveryLongitude *float64
	PickupLatitude    *float64
	PickupLongitude   *float64
	Items             []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one order line: the produce snapshot captured at
// purchase time. The serial primary key preserves insertion order, which
// fixes which line is "first" for pickup derivation.
type OrderItemDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	ProduceID uuid.UUID `gorm:"type:uuid"`
	Name      string
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2)"`
	Quantity  int
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:        aggregate.ID().Bytes(),
		BuyerID:   aggregate.BuyerID().Bytes(),
		Status:    int(aggregate.Status()),
		CreatedAt: aggregate.CreatedAt(),
	}

	if c := aggregate.DeliveryCoordinate(); c != nil {
		lat, lon := c.Latitude(), c.Longitude()
		dto.DeliveryLatitude, dto.DeliveryLongitude = &lat, &lon
	}

	if c := aggregate.PickupCoordinate(); c != nil {
		lat, lon := c.Latitude(), c.Longitude()
		dto.PickupLatitude, dto.PickupLongitude = &lat, &lon
	}

	for _, item := range aggregate.Items() {
		dto.Items = append(dto.Items, OrderItemDTO{
			OrderID:   aggregate.ID().Bytes(),
			ProduceID: item.ProduceID().Bytes(),
			Name:      item.Name(),
			UnitPrice: item.UnitPrice(),
			Quantity:  item.Quantity(),
		})
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		produceID, itemErr := kernel.UUIDFromBytes(itemDTO.ProduceID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewItem(produceID, itemDTO.Name, itemDTO.UnitPrice, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	deliveryAt, err := coordinateFromColumns(dto.DeliveryLatitude, dto.DeliveryLongitude)
	if err != nil {
		return nil, err
	}

	pickupAt, err := coordinateFromColumns(dto.PickupLatitude, dto.PickupLongitude)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, buyerID, items, order.Status(dto.Status), dto.CreatedAt, deliveryAt, pickupAt)
}

func coordinateFromColumns(lat, lon *float64) (*kernel.Coordinate, error) {
	if lat == nil || lon == nil {
		return nil, nil //nolint:nilnil //absent pair means no coordinate
	}

	coordinate, err := kernel.NewCoordinate(*lat, *lon)
	if err != nil {
		return nil, err
	}

	return &coordinate, nil
}
