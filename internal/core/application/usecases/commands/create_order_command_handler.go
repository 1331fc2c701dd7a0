package commands

import (
	"context"
	"errors"

	"agrikart/internal/core/domain/model/cart"
	"agrikart/internal/core/domain/model/order"
	"agrikart/internal/core/domain/model/party"
	"agrikart/internal/core/domain/services"
	"agrikart/internal/core/ports"
)

// ErrEmptyCart is returned when checking out a buyer whose cart has no lines.
var ErrEmptyCart = errors.New("cart is empty")

// CreateOrderCommandHandler runs the checkout transaction: it reserves stock
// for every cart line, snapshots the lines into a Pending order, tries to
// assign a nearby courier, and clears the cart. Everything up to the commit
// is atomic; a failed stock reservation rolls the whole checkout back.
//
// Courier assignment is best-effort: when no courier is within range the
// order is created unassigned and picked up by a later assignment sweep.
//
// After a successful commit the affected farmers are notified about their
// sold lines. Notification is fire-and-forget and never fails the checkout.
type CreateOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	dispatcher services.CourierDispatcher
	notifier   ports.FarmerNotifier
}

// NewCreateOrderCommandHandler creates a handler for checkout operations.
func NewCreateOrderCommandHandler(
	uowFactory CheckoutUoWFactory,
	notifier ports.FarmerNotifier,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewCourierDispatcher(),
		notifier:   notifier,
	}
}

// farmerSale accumulates the lines sold by one farmer during a checkout.
type farmerSale struct {
	farmer *party.Farmer
	items  []ports.NotificationItem
}

// Handle processes the checkout command.
//
// Returns ErrEmptyCart when the buyer's cart has no lines and a
// produce.InsufficientStockError when any line exceeds the available stock;
// in both cases nothing is persisted.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	partyRepo := uow.PartyRepository()

	lines, err := cartRepo.GetByBuyer(ctx, command.BuyerID())
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return ErrEmptyCart
	}

	buyer, err := partyRepo.GetBuyer(ctx, command.BuyerID())
	if err != nil {
		return err
	}

	items, sales, farmerOrder, err := h.reserveStock(ctx, uow, lines)
	if err != nil {
		return err
	}

	// the pickup point is the farm behind the first cart line
	firstSale := sales[farmerOrder[0]]
	pickup := firstSale.farmer.Coordinate()

	newOrder, err := order.NewOrder(
		command.OrderID(), command.BuyerID(), items, buyer.Coordinate(), pickup)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	courierName, err := h.tryAssign(ctx, uow, newOrder)
	if err != nil {
		return err
	}

	if err = cartRepo.ClearByBuyer(ctx, command.BuyerID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, buildNotifications(newOrder, buyer, sales, farmerOrder, courierName))
	return nil
}

// reserveStock locks and decrements the ledger row behind each cart line and
// snapshots the lines into order items. Sales are grouped per farmer, with
// farmerOrder preserving first-seen order so the pickup farm stays the one
// behind the first line.
func (h CreateOrderCommandHandler) reserveStock(
	ctx context.Context,
	uow CheckoutUoW,
	lines []cart.CartItem,
) (items []order.Item, sales map[string]*farmerSale, farmerOrder []string, err error) {
	produceRepo := uow.ProduceRepository()
	partyRepo := uow.PartyRepository()

	sales = make(map[string]*farmerSale)

	for _, line := range lines {
		listing, err := produceRepo.GetForUpdate(ctx, line.ProduceID())
		if err != nil {
			return nil, nil, nil, err
		}

		if err = listing.Reserve(line.Quantity()); err != nil {
			return nil, nil, nil, err
		}

		if err = produceRepo.Update(ctx, listing); err != nil {
			return nil, nil, nil, err
		}

		item, err := order.NewItem(
			listing.ID(), listing.Name(), listing.UnitPrice(), line.Quantity())
		if err != nil {
			return nil, nil, nil, err
		}
		items = append(items, item)

		farmerKey := listing.FarmerID().String()
		sale, ok := sales[farmerKey]
		if !ok {
			farmer, err := partyRepo.GetFarmer(ctx, listing.FarmerID())
			if err != nil {
				return nil, nil, nil, err
			}
			sale = &farmerSale{farmer: farmer}
			sales[farmerKey] = sale
			farmerOrder = append(farmerOrder, farmerKey)
		}

		sale.items = append(sale.items, ports.NotificationItem{
			Produce:        listing.Name(),
			QuantityBought: line.Quantity(),
			RemainingStock: listing.StockQuantity(),
		})
	}

	return items, sales, farmerOrder, nil
}

// tryAssign dispatches the order to the first courier within range and
// records the assignment. A miss is not an error: the order simply stays
// unassigned.
func (h CreateOrderCommandHandler) tryAssign(
	ctx context.Context,
	uow CheckoutUoW,
	newOrder *order.Order,
) (courierName string, err error) {
	if !newOrder.IsAssignable() {
		return "", nil
	}

	courierRepo := uow.CourierRepository()
	couriers, err := courierRepo.GetAll(ctx)
	if err != nil {
		return "", err
	}

	assignment, err := h.dispatcher.Dispatch(newOrder, couriers)
	if errors.Is(err, services.ErrNoCourierNearby) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	if err = courierRepo.AddAssignment(ctx, assignment); err != nil {
		return "", err
	}

	for _, c := range couriers {
		if c.ID().IsEqual(assignment.CourierID()) {
			return c.Name(), nil
		}
	}
	return "", nil
}

// buildNotifications turns the per-farmer sales into notification payloads,
// skipping farmers without a phone number.
func buildNotifications(
	newOrder *order.Order,
	buyer *party.Buyer,
	sales map[string]*farmerSale,
	farmerOrder []string,
	courierName string,
) []ports.FarmerNotification {
	notifications := make([]ports.FarmerNotification, 0, len(farmerOrder))

	for _, farmerKey := range farmerOrder {
		sale := sales[farmerKey]
		if sale.farmer.Phone() == "" {
			continue
		}

		notifications = append(notifications, ports.FarmerNotification{
			FarmerPhone:  sale.farmer.Phone(),
			Items:        sale.items,
			OrderID:      newOrder.ID().String(),
			BuyerAddress: buyer.Address(),
			CourierName:  courierName,
		})
	}

	return notifications
}
