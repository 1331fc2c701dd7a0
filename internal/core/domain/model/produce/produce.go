package produce

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"agrikart/internal/core/domain/model/kernel"
	"agrikart/internal/pkg/errs"
	"agrikart/internal/pkg/guard"
)

// Domain errors for produce operations.
var (
	// ErrProduceIsNotConstructed is returned when using an improperly initialized Produce.
	ErrProduceIsNotConstructed = errors.New("Produce must be created via NewProduce constructor")
	// ErrNameIsRequired is returned when attempting to create produce without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrUnitPriceIsInvalid is returned when the unit price is not strictly positive.
	ErrUnitPriceIsInvalid = errs.NewValueIsInvalidError("unit price must be greater than 0")
	// ErrStockQuantityIsInvalid is returned when the stock quantity is negative.
	ErrStockQuantityIsInvalid = errs.NewValueIsInvalidError("stock quantity must not be negative")
	// ErrInsufficientStock classifies stock reservations that exceed availability.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError reports a reservation that requested more units than
// the ledger holds. It carries both quantities so callers can surface them.
type InsufficientStockError struct {
	Name      string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s (available: %d, requested: %d)",
		e.Name, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// Produce is the aggregate backing the stock ledger. It owns the authoritative
// stock counter for one farmer's produce listing.
//
// Invariants:
//   - unit price is strictly positive
//   - stock quantity never goes negative
//   - the listing deactivates itself when stock reaches zero
//
// The only mutation the core performs on Produce is Reserve, executed inside
// the order-creation transaction.
type Produce struct {
	id            kernel.UUID
	farmerID      kernel.UUID
	name          string
	unitPrice     decimal.Decimal
	stockQuantity int
	active        bool

	guard guard.ConstructorGuard
}

// NewProduce creates a produce listing with the given stock on hand.
// The listing starts active when stock is positive.
func NewProduce(
	id kernel.UUID,
	farmerID kernel.UUID,
	name string,
	unitPrice decimal.Decimal,
	stockQuantity int,
) (*Produce, error) {
	p := &Produce{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setFarmerID(farmerID),
		p.setName(name),
		p.setUnitPrice(unitPrice),
		p.setStockQuantity(stockQuantity),
	); err != nil {
		return nil, err
	}

	p.active = stockQuantity > 0
	return p, nil
}

// RestoreProduce reconstructs a Produce aggregate from persistent storage,
// preserving the stored active flag.
func RestoreProduce(
	id kernel.UUID,
	farmerID kernel.UUID,
	name string,
	unitPrice decimal.Decimal,
	stockQuantity int,
	active bool,
) (*Produce, error) {
	p, err := NewProduce(id, farmerID, name, unitPrice, stockQuantity)
	if err != nil {
		return nil, err
	}

	p.active = active
	return p, nil
}

// Validate ensures the Produce was built via its constructor.
func (p *Produce) Validate() error {
	if p == nil {
		return ErrProduceIsNotConstructed
	}
	return p.guard.Validate(ErrProduceIsNotConstructed)
}

// ID returns the produce identifier.
func (p *Produce) ID() kernel.UUID {
	return p.id
}

// FarmerID returns the identifier of the owning farmer.
func (p *Produce) FarmerID() kernel.UUID {
	return p.farmerID
}

// Name returns the listing name.
func (p *Produce) Name() string {
	return p.name
}

// UnitPrice returns the price per unit.
func (p *Produce) UnitPrice() decimal.Decimal {
	return p.unitPrice
}

// StockQuantity returns the units currently on hand.
func (p *Produce) StockQuantity() int {
	return p.stockQuantity
}

// IsActive reports whether the listing is visible to buyers.
func (p *Produce) IsActive() bool {
	return p.active
}

// Reserve decrements the stock ledger by quantity.
//
// Returns an InsufficientStockError when quantity exceeds the units on hand;
// the ledger is left untouched in that case. When the decrement empties the
// ledger the listing deactivates itself.
func (p *Produce) Reserve(quantity int) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	if quantity > p.stockQuantity {
		return &InsufficientStockError{
			Name:      p.name,
			Available: p.stockQuantity,
			Requested: quantity,
		}
	}

	p.stockQuantity -= quantity
	if p.stockQuantity <= 0 {
		p.active = false
	}

	return nil
}

func (p *Produce) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Produce) setFarmerID(farmerID kernel.UUID) error {
	if err := farmerID.Validate(); err != nil {
		return err
	}
	p.farmerID = farmerID
	return nil
}

func (p *Produce) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Produce) setUnitPrice(unitPrice decimal.Decimal) error {
	if !unitPrice.IsPositive() {
		return ErrUnitPriceIsInvalid
	}
	p.unitPrice = unitPrice
	return nil
}

func (p *Produce) setStockQuantity(stockQuantity int) error {
	if stockQuantity < 0 {
		return ErrStockQuantityIsInvalid
	}
	p.stockQuantity = stockQuantity
	return nil
}
