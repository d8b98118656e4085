package commands

import (
	"context"
	"time"

	"fieldops/internal/pkg/errs"
)

// ReassignTechnicianCommandHandler handles moving an in-flight order to a
// different technician. The replacement must pass the availability check; the
// previous technician's history entries and partial field work are retained.
type ReassignTechnicianCommandHandler struct {
	uowFactory UoWFactory
}

// NewReassignTechnicianCommandHandler creates a handler for reassignment operations.
func NewReassignTechnicianCommandHandler(uowFactory UoWFactory) ReassignTechnicianCommandHandler {
	return ReassignTechnicianCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reassignment command.
func (h ReassignTechnicianCommandHandler) Handle(ctx context.Context, cmd ReassignTechnicianCommand) error {
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

	tech, err := technicianRepo.Get(ctx, cmd.NewTechnicianID())
	if err != nil {
		return err
	}

	if !tech.IsAvailableForAssignment(now) {
		return errs.NewTechnicianUnavailableError(tech.ID(), "outside working hours or not available")
	}

	if err = aggregate.Reassign(tech.ID(), tech.Name(), tech.Cluster(), cmd.Actor(), now, cmd.Reason()); err != nil {
		return err
	}

	if err = orderRepo.UpdateWhereStatus(ctx, aggregate, expectedStatus); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
