package commands

import (
	"context"
	"time"

	"fieldops/internal/pkg/errs"
)

// AssignTechnicianCommandHandler handles explicit dispatcher-driven assignment
// of a technician to a Pending order.
//
// The availability check against the technician directory is read-only and
// happens before the write; the conditional status-guarded write is what
// protects against a concurrent dispatcher racing for the same order.
type AssignTechnicianCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignTechnicianCommandHandler creates a handler for explicit assignment operations.
func NewAssignTechnicianCommandHandler(uowFactory UoWFactory) AssignTechnicianCommandHandler {
	return AssignTechnicianCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
// Loads the order and the technician, verifies the technician passes the
// availability check, performs the domain transition and persists it through
// the conditional write keyed on the status read in this transaction.
func (h AssignTechnicianCommandHandler) Handle(ctx context.Context, cmd AssignTechnicianCommand) error {
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
	technicianRepo := uow.TechnicianRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	expectedStatus := aggregate.Status()

	tech, err := technicianRepo.Get(ctx, cmd.TechnicianID())
	if err != nil {
		return err
	}

	if !tech.IsAvailableForAssignment(now) {
		return errs.NewTechnicianUnavailableError(tech.ID(), "outside working hours or not available")
	}

	if err = aggregate.Assign(tech.ID(), tech.Name(), tech.Cluster(), cmd.Actor(), now, cmd.Notes()); err != nil {
		return err
	}

	if err = orderRepo.UpdateWhereStatus(ctx, aggregate, expectedStatus); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
