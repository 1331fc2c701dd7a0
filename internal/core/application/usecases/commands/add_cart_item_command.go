package commands

import (
	"errors"
	"fmt"

	"agrikart/internal/core/domain/model/kernel"
	"agrikart/internal/pkg/guard"
)

var (
	ErrAddCartItemCommandIsNotConstructed = errors.New(
		"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// AddCartItemCommand represents a request to put quantity units of a produce
// listing into the buyer's cart. Adding a listing already in the cart
// increases its quantity.
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	buyerID   kernel.UUID
	produceID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewAddCartItemCommand creates a command to add a cart line.
func NewAddCartItemCommand(
	buyerID, produceID kernel.UUID,
	quantity int,
) (AddCartItemCommand, error) {
	command := AddCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setBuyerID(buyerID),
		command.setProduceID(produceID),
		command.setQuantity(quantity),
	); err != nil {
		return AddCartItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

// BuyerID returns the identifier of the buyer adding to the cart.
func (c AddCartItemCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// ProduceID returns the identifier of the listing being added.
func (c AddCartItemCommand) ProduceID() kernel.UUID {
	return c.produceID
}

// Quantity returns the number of units to add.
func (c AddCartItemCommand) Quantity() int {
	return c.quantity
}

func (c *AddCartItemCommand) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}

	c.buyerID = buyerID
	return nil
}

func (c *AddCartItemCommand) setProduceID(produceID kernel.UUID) error {
	if err := produceID.Validate(); err != nil {
		return err
	}

	c.produceID = produceID
	return nil
}

func (c *AddCartItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: got %d", ErrQuantityIsInvalid, quantity)
	}

	c.quantity = quantity
	return nil
}
