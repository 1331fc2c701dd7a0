package commands

import (
	"context"
	"errors"

	"agrikart/internal/core/domain/services"
)

// AssignPendingOrdersCommandHandler sweeps the backlog of unassigned Pending
// orders and dispatches each to the first courier within range. Orders that
// lack a pickup coordinate, or for which no courier is close enough, are
// skipped and stay in the backlog.
//
// The whole sweep runs in one transaction; a storage failure rolls back every
// assignment made during the sweep.
type AssignPendingOrdersCommandHandler struct {
	uowFactory AssignmentUoWFactory
	dispatcher services.CourierDispatcher
}

// NewAssignPendingOrdersCommandHandler creates a handler for the assignment sweep.
func NewAssignPendingOrdersCommandHandler(
	uowFactory AssignmentUoWFactory,
) AssignPendingOrdersCommandHandler {
	return AssignPendingOrdersCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewCourierDispatcher(),
	}
}

// Handle processes the assignment sweep command.
// Returns the first storage or dispatch error; dispatch misses
// (services.ErrNoCourierNearby) are not errors.
func (h AssignPendingOrdersCommandHandler) Handle(
	ctx context.Context,
	command AssignPendingOrdersCommand,
) error {
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
	courierRepo := uow.CourierRepository()

	orders, err := orderRepo.GetAllPendingUnassigned(ctx)
	if err != nil {
		return err
	}

	couriers, err := courierRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	for _, o := range orders {
		if !o.IsAssignable() {
			continue
		}

		assignment, err := h.dispatcher.Dispatch(o, couriers)
		if errors.Is(err, services.ErrNoCourierNearby) {
			continue
		}
		if err != nil {
			return err
		}

		if err = courierRepo.AddAssignment(ctx, assignment); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
