package commands

import (
	"context"
	"time"
)

// RefreshPerformanceCommandHandler recomputes a technician's performance
// snapshot on demand. Unlike the completion path it never touches the
// availability toggle.
type RefreshPerformanceCommandHandler struct {
	uowFactory UoWFactory
}

// NewRefreshPerformanceCommandHandler creates a handler for performance refresh operations.
func NewRefreshPerformanceCommandHandler(uowFactory UoWFactory) RefreshPerformanceCommandHandler {
	return RefreshPerformanceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the refresh command.
func (h RefreshPerformanceCommandHandler) Handle(ctx context.Context, cmd RefreshPerformanceCommand) error {
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

	err := refreshTechnicianPerformance(
		ctx, uow.OrderRepository(), uow.TechnicianRepository(),
		cmd.TechnicianID(), time.Now().UTC(), false,
	)
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
