package courier

import (
	"errors"
	"fmt"
	"time"

	"agrikart/internal/core/domain/model/kernel"
	"agrikart/internal/pkg/errs"
	"agrikart/internal/pkg/guard"
)

// ErrAssignmentIsNotConstructed is returned when using an improperly
// initialized Assignment.
var ErrAssignmentIsNotConstructed = errs.NewValueIsRequiredError(
	"assignment must be created via NewAssignment constructor")

// Assignment records that a courier was matched to an order, together with
// the pickup distance that satisfied the threshold at assignment time.
//
// An order carries at most one assignment; the storage layer enforces this
// with a unique constraint on the order identifier.
type Assignment struct {
	courierID  kernel.UUID
	orderID    kernel.UUID
	distanceKm float64
	assignedAt time.Time

	guard guard.ConstructorGuard
}

// NewAssignment records a match between a courier and an order at the given
// pickup distance. The assignment time is recorded in UTC.
func NewAssignment(
	courierID kernel.UUID,
	orderID kernel.UUID,
	distanceKm float64,
) (Assignment, error) {
	assignment := Assignment{
		assignedAt: time.Now().UTC(),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignment.setCourierID(courierID),
		assignment.setOrderID(orderID),
		assignment.setDistanceKm(distanceKm),
	); err != nil {
		return Assignment{}, err
	}

	return assignment, nil
}

// RestoreAssignment reconstructs an Assignment from persistent storage.
func RestoreAssignment(
	courierID kernel.UUID,
	orderID kernel.UUID,
	distanceKm float64,
	assignedAt time.Time,
) (Assignment, error) {
	assignment, err := NewAssignment(courierID, orderID, distanceKm)
	if err != nil {
		return Assignment{}, err
	}

	assignment.assignedAt = assignedAt.UTC()
	return assignment, nil
}

// Validate checks that the Assignment was built via NewAssignment.
func (a Assignment) Validate() error {
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

// CourierID returns the assigned courier's identifier.
func (a Assignment) CourierID() kernel.UUID {
	return a.courierID
}

// OrderID returns the assigned order's identifier.
func (a Assignment) OrderID() kernel.UUID {
	return a.orderID
}

// DistanceKm returns the courier-to-pickup distance at assignment time.
func (a Assignment) DistanceKm() float64 {
	return a.distanceKm
}

// AssignedAt returns the assignment time in UTC.
func (a Assignment) AssignedAt() time.Time {
	return a.assignedAt
}

// setCourierID sets the courier identifier with validation.
// Note: private setters self-encapsulate validation during construction.
func (a *Assignment) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	a.courierID = courierID
	return nil
}

// setOrderID sets the order identifier with validation.
func (a *Assignment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	a.orderID = orderID
	return nil
}

// setDistanceKm sets the pickup distance with validation.
func (a *Assignment) setDistanceKm(distanceKm float64) error {
	if distanceKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause("distanceKm",
			fmt.Errorf("%f is negative", distanceKm))
	}
	a.distanceKm = distanceKm
	return nil
}
