package courier

import (
	"errors"

	"agrikart/internal/core/domain/model/kernel"
	"agrikart/internal/pkg/errs"
)

var (
	// ErrCourierIsNotConstructed is returned when a Courier instance was not
	// created through the NewCourier factory method.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")

	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrPhoneIsRequired is returned when attempting to create a courier without a phone.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
)

// Courier represents a delivery rider registered with the platform.
//
// Every courier carries a mandatory position: the assignment engine measures
// the great-circle distance from this position to an order's pickup point, so
// a courier without coordinates could never receive work.
type Courier struct {
	// id is the unique identifier for the courier
	id kernel.UUID

	// name is the courier's display name
	name string

	// phone is the courier's contact number
	phone string

	// address is the courier's free-form base address
	address string

	// coordinate is the courier's registered position
	coordinate kernel.Coordinate

	// isConstructed ensures the courier was created via NewCourier
	isConstructed bool
}

// NewCourier creates a courier positioned at the given coordinate.
// The address is free-form and optional.
func NewCourier(
	id kernel.UUID,
	name string,
	phone string,
	address string,
	coordinate kernel.Coordinate,
) (*Courier, error) {
	courier := &Courier{
		address:       address,
		isConstructed: true,
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setName(name),
		courier.setPhone(phone),
		courier.setCoordinate(coordinate),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

// RestoreCourier reconstructs a Courier from persistent storage.
func RestoreCourier(
	id kernel.UUID,
	name string,
	phone string,
	address string,
	coordinate kernel.Coordinate,
) (*Courier, error) {
	return NewCourier(id, name, phone, address, coordinate)
}

// Validate ensures the Courier instance was properly constructed.
func (c *Courier) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCourierIsNotConstructed
	}

	return nil
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's display name.
func (c *Courier) Name() string {
	return c.name
}

// Phone returns the courier's contact number.
func (c *Courier) Phone() string {
	return c.phone
}

// Address returns the courier's base address.
func (c *Courier) Address() string {
	return c.address
}

// Coordinate returns the courier's registered position.
func (c *Courier) Coordinate() kernel.Coordinate {
	return c.coordinate
}

// DistanceToKm returns the great-circle distance in kilometers from the
// courier's position to the given point.
func (c *Courier) DistanceToKm(point kernel.Coordinate) (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}

	return c.coordinate.DistanceKm(point)
}

// setID sets the courier identifier with validation.
// Note: private setters self-encapsulate validation during construction.
func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

// setName sets the display name with validation.
func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

// setPhone sets the contact number with validation.
func (c *Courier) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	c.phone = phone
	return nil
}

// setCoordinate sets the registered position with validation.
func (c *Courier) setCoordinate(coordinate kernel.Coordinate) error {
	if err := coordinate.Validate(); err != nil {
		return err
	}
	c.coordinate = coordinate
	return nil
}
