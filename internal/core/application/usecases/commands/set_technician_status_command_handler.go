package commands

import (
	"context"
	"time"

	"fieldops/internal/core/domain/model/order"
)

// SetTechnicianStatusCommandHandler handles the technician-status annotation.
// The annotation feeds the same transition table as every other status
// change: complete bridges to Completed, failed bridges to Failed, and a
// rejected bridge leaves the order untouched. When the bridge completes the
// order, the technician's performance is recomputed like any other completion.
type SetTechnicianStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewSetTechnicianStatusCommandHandler creates a handler for the annotation operation.
func NewSetTechnicianStatusCommandHandler(uowFactory UoWFactory) SetTechnicianStatusCommandHandler {
	return SetTechnicianStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the annotation command.
func (h SetTechnicianStatusCommandHandler) Handle(ctx context.Context, cmd SetTechnicianStatusCommand) error {
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

	if err = aggregate.SetTechnicianStatus(cmd.Value(), cmd.Reason(), cmd.Actor(), now, cmd.Location()); err != nil {
		return err
	}

	if err = orderRepo.UpdateWhereStatus(ctx, aggregate, expectedStatus); err != nil {
		return err
	}

	if aggregate.Status() == order.StatusCompleted && expectedStatus != order.StatusCompleted {
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
