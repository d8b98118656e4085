package commands

import (
	"context"
	"time"

	"fieldops/internal/core/domain/model/order"
)

// AdvanceOrderCommandHandler handles field-progress transitions.
// When the order reaches Completed the handler synchronously recomputes the
// technician's performance snapshot and flips their availability toggle back
// on, all inside the same transaction as the conditional status write.
type AdvanceOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewAdvanceOrderCommandHandler creates a handler for field-progress operations.
func NewAdvanceOrderCommandHandler(uowFactory UoWFactory) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the advance command.
func (h AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

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

	err = aggregate.Advance(
		cmd.Target(), cmd.Actor(), now,
		cmd.FieldWorkPatch(), cmd.InstallationPatch(),
		cmd.Notes(), cmd.Location(),
	)
	if err != nil {
		return err
	}

	if err = orderRepo.UpdateWhereStatus(ctx, aggregate, expectedStatus); err != nil {
		return err
	}

	if aggregate.Status() == order.StatusCompleted {
		err = refreshTechnicianPerformance(
			ctx, orderRepo, uow.TechnicianRepository(),
			aggregate.Assignment().TechnicianID(), now, true,
		)
		if err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
