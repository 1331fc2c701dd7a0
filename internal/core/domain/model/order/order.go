package order

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"agrikart/internal/core/domain/model/kernel"
	"agrikart/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrItemsAreRequired is returned when attempting to create an order without lines.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
)

// Order represents a buyer's purchase. It is the aggregate root that carries
// the immutable item snapshots, the lifecycle status, and the coordinates the
// assignment engine works with.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and buyer identifier
//   - Must contain at least one item
//   - Status is always one of the known lifecycle values
//   - Can only be created through NewOrder or RestoreOrder
//
// The pickup coordinate is the position of the farmer behind the first item
// in the cart and may be absent when that farmer has no registered location;
// such orders are skipped by the assignment engine.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// buyerID identifies the buyer who placed the order
	buyerID kernel.UUID

	// items are the purchased lines, snapshotted at creation time
	items []Item

	// status is the current lifecycle state
	status Status

	// createdAt is the placement time in UTC
	createdAt time.Time

	// deliveryCoordinate is the buyer's position (nil if unregistered)
	deliveryCoordinate *kernel.Coordinate

	// pickupCoordinate is the farmer's position (nil if unregistered)
	pickupCoordinate *kernel.Coordinate

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a Pending order from validated item snapshots.
//
// Both coordinates are optional; when present they must be properly
// constructed. The creation time is recorded in UTC.
func NewOrder(
	id kernel.UUID,
	buyerID kernel.UUID,
	items []Item,
	deliveryCoordinate *kernel.Coordinate,
	pickupCoordinate *kernel.Coordinate,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setBuyerID(buyerID),
		order.setItems(items),
		order.setDeliveryCoordinate(deliveryCoordinate),
		order.setPickupCoordinate(pickupCoordinate),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistent storage, preserving the
// stored status and creation time.
//
// This should only be used by repository implementations when loading orders
// from the database.
func RestoreOrder(
	id kernel.UUID,
	buyerID kernel.UUID,
	items []Item,
	status Status,
	createdAt time.Time,
	deliveryCoordinate *kernel.Coordinate,
	pickupCoordinate *kernel.Coordinate,
) (*Order, error) {
	order, err := NewOrder(id, buyerID, items, deliveryCoordinate, pickupCoordinate)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	order.status = status
	order.createdAt = createdAt.UTC()
	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// BuyerID returns the identifier of the buyer who placed the order.
func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the placement time in UTC.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// DeliveryCoordinate returns the buyer's position, or nil when unknown.
func (o *Order) DeliveryCoordinate() *kernel.Coordinate {
	return o.deliveryCoordinate
}

// PickupCoordinate returns the farmer's position, or nil when unknown.
// Orders without a pickup coordinate are skipped by the assignment engine.
func (o *Order) PickupCoordinate() *kernel.Coordinate {
	return o.pickupCoordinate
}

// IsAssignable reports whether the assignment engine should consider the
// order: it must be Pending and carry a pickup coordinate.
func (o *Order) IsAssignable() bool {
	return o.status == Pending && o.pickupCoordinate != nil
}

// ChangeStatus moves the order to the given lifecycle status.
//
// Any valid status is accepted regardless of the current one; back-office
// tooling is allowed to correct the lifecycle freely. Invalid values are
// rejected with an InvalidStatusError.
func (o *Order) ChangeStatus(status Status) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	return nil
}

// Confirm moves the order to Confirmed.
func (o *Order) Confirm() error {
	return o.ChangeStatus(Confirmed)
}

// TotalPrice returns the sum of all line totals.
func (o *Order) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// setID sets the order identifier with validation.
// Note: private setters use pointer receivers to self-encapsulate validation
// during object construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setBuyerID sets the buyer identifier with validation.
func (o *Order) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}
	o.buyerID = buyerID
	return nil
}

// setItems sets the order lines with validation.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

// setDeliveryCoordinate sets the optional buyer position with validation.
func (o *Order) setDeliveryCoordinate(coordinate *kernel.Coordinate) error {
	if coordinate == nil {
		return nil
	}
	if err := coordinate.Validate(); err != nil {
		return err
	}
	o.deliveryCoordinate = coordinate
	return nil
}

// setPickupCoordinate sets the optional farmer position with validation.
func (o *Order) setPickupCoordinate(coordinate *kernel.Coordinate) error {
	if coordinate == nil {
		return nil
	}
	if err := coordinate.Validate(); err != nil {
		return err
	}
	o.pickupCoordinate = coordinate
	return nil
}
