package services

import (
	"errors"

	"agrikart/internal/core/domain/model/courier"
	"agrikart/internal/core/domain/model/order"
	"agrikart/internal/pkg/errs"
)

// AssignmentThresholdKm is the maximum courier-to-pickup distance, in
// kilometers, at which a courier may take an order.
const AssignmentThresholdKm = 15.0

var (
	// ErrNoCourierNearby is returned when no courier lies within
	// AssignmentThresholdKm of the order's pickup point. The order stays
	// unassigned and remains a candidate for later dispatch attempts.
	ErrNoCourierNearby = errors.New("no courier found within assignment threshold")

	// ErrPickupCoordinateIsMissing is returned when dispatching an order whose
	// pickup position is unknown. Callers should skip such orders instead.
	ErrPickupCoordinateIsMissing = errs.NewValueIsRequiredError("pickup coordinate")
)

// CourierDispatcher is a domain service that matches an order to a courier.
//
// Selection is first fit, not best fit: couriers are evaluated in the order
// given, and the first one within AssignmentThresholdKm of the pickup point
// wins. Callers control determinism by passing couriers in a stable order.
//
// Example usage:
//
//	dispatcher := NewCourierDispatcher()
//	assignment, err := dispatcher.Dispatch(order, couriers)
//	if errors.Is(err, ErrNoCourierNearby) {
//	    // leave the order unassigned
//	    return
//	}
type CourierDispatcher struct{}

// NewCourierDispatcher creates a new CourierDispatcher instance.
func NewCourierDispatcher() CourierDispatcher {
	return CourierDispatcher{}
}

// Dispatch evaluates couriers in the given order and returns an Assignment
// for the first one within AssignmentThresholdKm of the order's pickup point.
//
// The order must be valid and carry a pickup coordinate. Returns
// ErrNoCourierNearby when every courier is farther than the threshold.
func (d CourierDispatcher) Dispatch(
	o *order.Order,
	couriers []*courier.Courier,
) (courier.Assignment, error) {
	if err := o.Validate(); err != nil {
		return courier.Assignment{}, err
	}

	pickup := o.PickupCoordinate()
	if pickup == nil {
		return courier.Assignment{}, ErrPickupCoordinateIsMissing
	}

	for _, c := range couriers {
		if err := c.Validate(); err != nil {
			return courier.Assignment{}, err
		}

		distance, err := c.DistanceToKm(*pickup)
		if err != nil {
			return courier.Assignment{}, err
		}

		if distance <= AssignmentThresholdKm {
			return courier.NewAssignment(c.ID(), o.ID(), distance)
		}
	}

	return courier.Assignment{}, ErrNoCourierNearby
}
