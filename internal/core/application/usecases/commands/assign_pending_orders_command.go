package commands

import (
	"errors"

	"agrikart/internal/pkg/guard"
)

var (
	ErrAssignPendingOrdersCommandIsNotConstructed = errors.New(
		"AssignPendingOrdersCommand must be created via NewAssignPendingOrdersCommand constructor",
	)
)

// AssignPendingOrdersCommand triggers a sweep over all unassigned Pending
// orders, matching each to the first courier within range.
//
// Example:
//
//	cmd := NewAssignPendingOrdersCommand()
//	handler := NewAssignPendingOrdersCommandHandler(uowFactory)
//
//	// run periodically to pick up orders that missed assignment at checkout
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("assignment sweep failed: %v", err)
//	}
type AssignPendingOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignPendingOrdersCommand creates a command to run the assignment sweep.
// This is a parameterless command that processes all pending unassigned orders.
func NewAssignPendingOrdersCommand() AssignPendingOrdersCommand {
	return AssignPendingOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *AssignPendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAssignPendingOrdersCommandIsNotConstructed)
}
