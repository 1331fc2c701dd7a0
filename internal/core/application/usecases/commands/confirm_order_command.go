package commands

import (
	"errors"

	"agrikart/internal/core/domain/model/kernel"
	"agrikart/internal/pkg/guard"
)

var (
	ErrConfirmOrderCommandIsNotConstructed = errors.New(
		"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
	)
)

// ConfirmOrderCommand represents a buyer's acknowledgement of an order.
// The buyer identifier is used for an ownership check: confirming someone
// else's order behaves exactly like confirming a missing one.
type ConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	buyerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmOrderCommand creates a command to confirm the given order on
// behalf of the given buyer.
func NewConfirmOrderCommand(orderID, buyerID kernel.UUID) (ConfirmOrderCommand, error) {
	command := ConfirmOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setBuyerID(buyerID),
	); err != nil {
		return ConfirmOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to confirm.
func (c ConfirmOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BuyerID returns the identifier of the buyer confirming the order.
func (c ConfirmOrderCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

func (c *ConfirmOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmOrderCommand) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}

	c.buyerID = buyerID
	return nil
}
