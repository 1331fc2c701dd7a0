package order

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"agrikart/internal/core/domain/model/kernel"
	"agrikart/internal/pkg/errs"
	"agrikart/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
var ErrItemIsNotConstructed = errs.NewValueIsRequiredError(
	"item must be created via NewItem constructor")

// Item is an order line: a snapshot of one produce listing at purchase time.
// The name and unit price are copied from the listing when the order is
// placed, so later changes to the listing never rewrite order history.
type Item struct {
	produceID kernel.UUID
	name      string
	unitPrice decimal.Decimal
	quantity  int

	guard guard.ConstructorGuard
}

// NewItem creates an order line for quantity units of the given produce.
func NewItem(
	produceID kernel.UUID,
	name string,
	unitPrice decimal.Decimal,
	quantity int,
) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProduceID(produceID),
		item.setName(name),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate checks that the Item was built via NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProduceID returns the identifier of the purchased listing.
func (i Item) ProduceID() kernel.UUID {
	return i.produceID
}

// Name returns the listing name captured at purchase time.
func (i Item) Name() string {
	return i.name
}

// UnitPrice returns the per-unit price captured at purchase time.
func (i Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Quantity returns the number of units purchased.
func (i Item) Quantity() int {
	return i.quantity
}

// LineTotal returns unit price multiplied by quantity.
func (i Item) LineTotal() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

// setProduceID sets the produce identifier with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, so that private setters can self-encapsulate validation
// during object construction.
func (i *Item) setProduceID(produceID kernel.UUID) error {
	if err := produceID.Validate(); err != nil {
		return err
	}
	i.produceID = produceID
	return nil
}

// setName sets the listing name with validation.
func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

// setUnitPrice sets the unit price with validation.
func (i *Item) setUnitPrice(unitPrice decimal.Decimal) error {
	if !unitPrice.IsPositive() {
		return errs.NewValueIsInvalidError("unit price must be greater than 0")
	}
	i.unitPrice = unitPrice
	return nil
}

// setQuantity sets the quantity with validation.
func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
