package commands

import (
	"errors"

	"agrikart/internal/core/domain/model/kernel"
	"agrikart/internal/pkg/guard"
)

var (
	ErrCreateCourierCommandIsNotConstructed = errors.New(
		"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
	)
	ErrCourierNameIsRequired  = errors.New("name is required")
	ErrCourierPhoneIsRequired = errors.New("phone is required")
)

// CreateCourierCommand represents a request to register a new courier at a
// given position.
type CreateCourierCommand struct { //nolint:recvcheck //using for validation
	courierID  kernel.UUID
	name       string
	phone      string
	address    string
	coordinate kernel.Coordinate

	guard guard.ConstructorGuard
}

// NewCreateCourierCommand creates a command to register a courier.
// The position must already be a validated coordinate; the address is
// free-form and optional.
func NewCreateCourierCommand(
	courierID kernel.UUID,
	name string,
	phone string,
	address string,
	coordinate kernel.Coordinate,
) (CreateCourierCommand, error) {
	command := CreateCourierCommand{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCourierID(courierID),
		command.setName(name),
		command.setPhone(phone),
		command.setCoordinate(coordinate),
	); err != nil {
		return CreateCourierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

// CourierID returns the identifier for the new courier.
func (c CreateCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Name returns the courier's display name.
func (c CreateCourierCommand) Name() string {
	return c.name
}

// Phone returns the courier's contact number.
func (c CreateCourierCommand) Phone() string {
	return c.phone
}

// Address returns the courier's base address.
func (c CreateCourierCommand) Address() string {
	return c.address
}

// Coordinate returns the courier's registered position.
func (c CreateCourierCommand) Coordinate() kernel.Coordinate {
	return c.coordinate
}

func (c *CreateCourierCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *CreateCourierCommand) setName(name string) error {
	if name == "" {
		return ErrCourierNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateCourierCommand) setPhone(phone string) error {
	if phone == "" {
		return ErrCourierPhoneIsRequired
	}

	c.phone = phone
	return nil
}

func (c *CreateCourierCommand) setCoordinate(coordinate kernel.Coordinate) error {
	if err := coordinate.Validate(); err != nil {
		return err
	}

	c.coordinate = coordinate
	return nil
}
