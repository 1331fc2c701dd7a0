package commands

import (
	"context"

	"agrikart/internal/core/domain/model/cart"
	"agrikart/internal/pkg/errs"
)

// AddCartItemCommandHandler puts produce into a buyer's cart. Storage merges
// duplicate listings by adding the quantities together. The listing must
// exist and be active; delisted produce behaves as absent.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddCartItemCommandHandler creates a handler for cart additions.
func NewAddCartItemCommandHandler(uowFactory CartUoWFactory) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cart addition command.
func (h AddCartItemCommandHandler) Handle(ctx context.Context, command AddCartItemCommand) error {
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

	listing, err := uow.ProduceRepository().Get(ctx, command.ProduceID())
	if err != nil {
		return err
	}
	if !listing.IsActive() {
		return errs.NewObjectNotFoundError("produce", command.ProduceID())
	}

	line, err := cart.NewCartItem(command.BuyerID(), command.ProduceID(), command.Quantity())
	if err != nil {
		return err
	}

	if err = uow.CartRepository().Upsert(ctx, line); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
