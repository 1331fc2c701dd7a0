package commands

import (
	"context"

	"agrikart/internal/core/domain/model/courier"
)

// CreateCourierCommandHandler handles courier registration.
type CreateCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewCreateCourierCommandHandler creates a handler for courier registration.
func NewCreateCourierCommandHandler(uowFactory CourierUoWFactory) CreateCourierCommandHandler {
	return CreateCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the courier registration command.
func (h CreateCourierCommandHandler) Handle(ctx context.Context, command CreateCourierCommand) error {
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

	aggregate, err := courier.NewCourier(
		command.CourierID(),
		command.Name(),
		command.Phone(),
		command.Address(),
		command.Coordinate(),
	)
	if err != nil {
		return err
	}

	if err = uow.CourierRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
