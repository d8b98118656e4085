package commands

import (
	"context"

	"fieldops/internal/pkg/errs"
)

// SetTechnicianAvailabilityCommandHandler handles the availability toggle and
// the optional location report. Only the technician themselves or a
// dispatcher-class actor may perform the update.
type SetTechnicianAvailabilityCommandHandler struct {
	uowFactory TechnicianUoWFactory
}

// NewSetTechnicianAvailabilityCommandHandler creates a handler for availability updates.
func NewSetTechnicianAvailabilityCommandHandler(uowFactory TechnicianUoWFactory) SetTechnicianAvailabilityCommandHandler {
	return SetTechnicianAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the availability update command.
func (h SetTechnicianAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetTechnicianAvailabilityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor := cmd.Actor()
	if !actor.Role().IsDispatcher() && !actor.ID().IsEqual(cmd.TechnicianID()) {
		return errs.NewActorForbiddenError(actor.ID(), "only the technician or a dispatcher may change availability")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	technicianRepo := uow.TechnicianRepository()

	tech, err := technicianRepo.Get(ctx, cmd.TechnicianID())
	if err != nil {
		return err
	}

	tech.SetAvailability(cmd.Available())
	if location := cmd.Location(); location != nil {
		if err = tech.SetCurrentLocation(*location); err != nil {
			return err
		}
	}

	if err = technicianRepo.Update(ctx, tech); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
