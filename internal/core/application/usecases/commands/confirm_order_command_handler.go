package commands

import (
	"context"

	"agrikart/internal/pkg/errs"
)

// ConfirmOrderCommandHandler moves an order to Confirmed on behalf of the
// buyer who placed it. Orders belonging to other buyers are reported as not
// found rather than forbidden, so the endpoint leaks no order existence.
type ConfirmOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation.
func NewConfirmOrderCommandHandler(uowFactory OrderUoWFactory) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation command.
// Loads the order, applies the Confirmed status and persists the change in
// a single transaction.
func (h ConfirmOrderCommandHandler) Handle(ctx context.Context, command ConfirmOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if !aggregate.BuyerID().IsEqual(command.BuyerID()) {
		return errs.NewObjectNotFoundError("orderID", command.OrderID().String())
	}

	if err = aggregate.Confirm(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
