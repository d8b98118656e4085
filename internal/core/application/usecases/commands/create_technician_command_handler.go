package commands

import (
	"context"

	"fieldops/internal/core/domain/model/technician"
)

// CreateTechnicianCommandHandler handles technician registration.
// The employee id is unique across the directory; the repository surfaces a
// validation error on duplicates.
type CreateTechnicianCommandHandler struct {
	uowFactory TechnicianUoWFactory
}

// NewCreateTechnicianCommandHandler creates a handler for technician registration.
func NewCreateTechnicianCommandHandler(uowFactory TechnicianUoWFactory) CreateTechnicianCommandHandler {
	return CreateTechnicianCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
func (h CreateTechnicianCommandHandler) Handle(ctx context.Context, cmd CreateTechnicianCommand) error {
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

	aggregate, err := technician.NewTechnician(
		cmd.TechnicianID(), cmd.AccountID(), cmd.EmployeeID(), cmd.Name(), cmd.Cluster(),
		cmd.Skills(), cmd.Territory(), cmd.WorkingHours(),
	)
	if err != nil {
		return err
	}

	if err = uow.TechnicianRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
