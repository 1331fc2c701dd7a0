// Package cart contains the buyer's cart lines. A cart line pins a produce
// listing and a quantity until checkout turns the cart into an order.
package cart

import (
	"errors"
	"fmt"

	"agrikart/internal/core/domain/model/kernel"
	"agrikart/internal/pkg/errs"
	"agrikart/internal/pkg/guard"
)

// ErrCartItemIsNotConstructed is returned when using an improperly
// initialized CartItem.
var ErrCartItemIsNotConstructed = errs.NewValueIsRequiredError(
	"cart item must be created via NewCartItem constructor")

// CartItem is one line of a buyer's cart. A buyer has at most one line per
// produce listing; adding the same listing again increases the quantity.
type CartItem struct {
	buyerID   kernel.UUID
	produceID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewCartItem creates a cart line for quantity units of the given listing.
func NewCartItem(buyerID, produceID kernel.UUID, quantity int) (CartItem, error) {
	item := CartItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setBuyerID(buyerID),
		item.setProduceID(produceID),
		item.setQuantity(quantity),
	); err != nil {
		return CartItem{}, err
	}

	return item, nil
}

// Validate checks that the CartItem was built via NewCartItem.
func (i CartItem) Validate() error {
	return i.guard.Validate(ErrCartItemIsNotConstructed)
}

// BuyerID returns the owning buyer's identifier.
func (i CartItem) BuyerID() kernel.UUID {
	return i.buyerID
}

// ProduceID returns the pinned listing's identifier.
func (i CartItem) ProduceID() kernel.UUID {
	return i.produceID
}

// Quantity returns the number of units in the line.
func (i CartItem) Quantity() int {
	return i.quantity
}

// AddQuantity returns a copy of the line with delta more units.
func (i CartItem) AddQuantity(delta int) (CartItem, error) {
	if err := i.Validate(); err != nil {
		return CartItem{}, err
	}

	return NewCartItem(i.buyerID, i.produceID, i.quantity+delta)
}

func (i *CartItem) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}
	i.buyerID = buyerID
	return nil
}

func (i *CartItem) setProduceID(produceID kernel.UUID) error {
	if err := produceID.Validate(); err != nil {
		return err
	}
	i.produceID = produceID
	return nil
}

func (i *CartItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
