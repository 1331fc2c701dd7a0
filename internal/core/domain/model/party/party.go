// Package party contains the buyer and farmer reference data the ordering
// flow reads: contact details and optional registered positions.
package party

import (
	"errors"

	"agrikart/internal/core/domain/model/kernel"
	"agrikart/internal/pkg/errs"
)

var (
	// ErrBuyerIsNotConstructed is returned when using an improperly initialized Buyer.
	ErrBuyerIsNotConstructed = errors.New("Buyer must be created via NewBuyer constructor")

	// ErrFarmerIsNotConstructed is returned when using an improperly initialized Farmer.
	ErrFarmerIsNotConstructed = errors.New("Farmer must be created via NewFarmer constructor")

	// ErrNameIsRequired is returned when attempting to create a party without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Buyer is a customer who places orders. The coordinate is nil until the
// buyer registers a position; orders placed before that carry no delivery
// coordinate and are excluded from distance-based reads.
type Buyer struct {
	id         kernel.UUID
	name       string
	phone      string
	address    string
	coordinate *kernel.Coordinate

	isConstructed bool
}

// NewBuyer creates a buyer. Phone, address and coordinate are optional.
func NewBuyer(
	id kernel.UUID,
	name string,
	phone string,
	address string,
	coordinate *kernel.Coordinate,
) (*Buyer, error) {
	if err := errors.Join(
		id.Validate(),
		validateName(name),
		validateOptionalCoordinate(coordinate),
	); err != nil {
		return nil, err
	}

	return &Buyer{
		id:            id,
		name:          name,
		phone:         phone,
		address:       address,
		coordinate:    coordinate,
		isConstructed: true,
	}, nil
}

// Validate ensures the Buyer instance was properly constructed.
func (b *Buyer) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBuyerIsNotConstructed
	}
	return nil
}

// ID returns the buyer's unique identifier.
func (b *Buyer) ID() kernel.UUID { return b.id }

// Name returns the buyer's display name.
func (b *Buyer) Name() string { return b.name }

// Phone returns the buyer's contact number.
func (b *Buyer) Phone() string { return b.phone }

// Address returns the buyer's free-form delivery address.
func (b *Buyer) Address() string { return b.address }

// Coordinate returns the buyer's registered position, or nil when unknown.
func (b *Buyer) Coordinate() *kernel.Coordinate { return b.coordinate }

// Farmer is a seller who lists produce. The coordinate is the farm's pickup
// position; listings of a farmer without one produce orders the assignment
// engine skips.
type Farmer struct {
	id         kernel.UUID
	name       string
	phone      string
	address    string
	coordinate *kernel.Coordinate

	isConstructed bool
}

// NewFarmer creates a farmer. Phone, address and coordinate are optional.
func NewFarmer(
	id kernel.UUID,
	name string,
	phone string,
	address string,
	coordinate *kernel.Coordinate,
) (*Farmer, error) {
	if err := errors.Join(
		id.Validate(),
		validateName(name),
		validateOptionalCoordinate(coordinate),
	); err != nil {
		return nil, err
	}

	return &Farmer{
		id:            id,
		name:          name,
		phone:         phone,
		address:       address,
		coordinate:    coordinate,
		isConstructed: true,
	}, nil
}

// Validate ensures the Farmer instance was properly constructed.
func (f *Farmer) Validate() error {
	if f == nil || !f.isConstructed {
		return ErrFarmerIsNotConstructed
	}
	return nil
}

// ID returns the farmer's unique identifier.
func (f *Farmer) ID() kernel.UUID { return f.id }

// Name returns the farmer's display name.
func (f *Farmer) Name() string { return f.name }

// Phone returns the farmer's contact number.
func (f *Farmer) Phone() string { return f.phone }

// Address returns the farm's free-form address.
func (f *Farmer) Address() string { return f.address }

// Coordinate returns the farm's pickup position, or nil when unknown.
func (f *Farmer) Coordinate() *kernel.Coordinate { return f.coordinate }

func validateName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	return nil
}

func validateOptionalCoordinate(coordinate *kernel.Coordinate) error {
	if coordinate == nil {
		return nil
	}
	return coordinate.Validate()
}
