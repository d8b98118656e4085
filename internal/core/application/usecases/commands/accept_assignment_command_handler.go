package commands

import (
	"context"
	"time"
)

// AcceptAssignmentCommandHandler handles a technician accepting their assignment.
// Only the technician stored in the order's assignment may accept; the domain
// enforces identity, the conditional write catches the accept-after-reassign race.
type AcceptAssignmentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAcceptAssignmentCommandHandler creates a handler for acceptance operations.
func NewAcceptAssignmentCommandHandler(uowFactory OrderUoWFactory) AcceptAssignmentCommandHandler {
	return AcceptAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the acceptance command.
func (h AcceptAssignmentCommandHandler) Handle(ctx context.Context, cmd AcceptAssignmentCommand) error {
	if err := cmd.Validate(); err != nil {
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

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	expectedStatus := aggregate.Status()

	if err = aggregate.Accept(cmd.Actor(), time.Now().UTC(), cmd.Notes(), cmd.Location()); err != nil {
		return err
	}

	if err = orderRepo.UpdateWhereStatus(ctx, aggregate, expectedStatus); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
