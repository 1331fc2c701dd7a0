package commands

import (
	"errors"

	"agrikart/internal/core/domain/model/kernel"
	"agrikart/internal/core/domain/model/order"
	"agrikart/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
)

// UpdateOrderStatusCommand represents a request to move an order to a new
// lifecycle status. The status arrives as its wire name and is parsed during
// command construction, so a handler never sees an invalid one.
//
// Example:
//
//	cmd, err := NewUpdateOrderStatusCommand(orderID, "IN_TRANSIT")
//	if err != nil {
//	    // unknown status name, carries the accepted names
//	}
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to move the order to the
// status named by statusName. Returns an order.InvalidStatusError for
// unrecognized names.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	statusName string,
) (UpdateOrderStatusCommand, error) {
	command := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setStatus(statusName),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the parsed target status.
func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(statusName string) error {
	status, err := order.StatusFromString(statusName)
	if err != nil {
		return err
	}

	c.status = status
	return nil
}
