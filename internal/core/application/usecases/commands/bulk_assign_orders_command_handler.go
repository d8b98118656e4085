package commands

import (
	"context"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/technician"
	"fieldops/internal/pkg/errs"
)

// BulkAssignResult reports the outcome of one order within a bulk assignment.
// Err is nil when the order was assigned.
type BulkAssignResult struct {
	OrderID kernel.UUID
	Err     error
}

// BulkAssignOrdersCommandHandler assigns one technician to many orders.
// Each order is processed in its own transaction with its own conditional
// write: a failure on one order never rolls back or blocks the others, and
// the per-order outcomes are reported back to the caller.
type BulkAssignOrdersCommandHandler struct {
	uowFactory UoWFactory
}

// NewBulkAssignOrdersCommandHandler creates a handler for bulk assignment operations.
func NewBulkAssignOrdersCommandHandler(uowFactory UoWFactory) BulkAssignOrdersCommandHandler {
	return BulkAssignOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the bulk assignment command.
// The availability check runs once up front; the per-order loop then performs
// independent conditional writes. Returns one result per requested order, in
// request order.
func (h BulkAssignOrdersCommandHandler) Handle(ctx context.Context, cmd BulkAssignOrdersCommand) ([]BulkAssignResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	tech, err := h.loadTechnician(ctx, cmd.TechnicianID())
	if err != nil {
		return nil, err
	}
	if !tech.IsAvailableForAssignment(now) {
		return nil, errs.NewTechnicianUnavailableError(tech.ID(), "outside working hours or not available")
	}

	results := make([]BulkAssignResult, 0, len(cmd.OrderIDs()))
	for _, orderID := range cmd.OrderIDs() {
		results = append(results, BulkAssignResult{
			OrderID: orderID,
			Err:     h.assignOne(ctx, orderID, tech, cmd.Actor(), now, cmd.Notes()),
		})
	}

	return results, nil
}

// loadTechnician reads the technician in a short read-only transaction.
func (h BulkAssignOrdersCommandHandler) loadTechnician(ctx context.Context, id kernel.UUID) (*technician.Technician, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.TechnicianRepository().Get(ctx, id)
}

// assignOne performs a single order assignment in its own transaction.
func (h BulkAssignOrdersCommandHandler) assignOne(
	ctx context.Context,
	orderID kernel.UUID,
	tech *technician.Technician,
	actor kernel.Actor,
	now time.Time,
	notes string,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}
	expectedStatus := aggregate.Status()

	if err = aggregate.Assign(tech.ID(), tech.Name(), tech.Cluster(), actor, now, notes); err != nil {
		return err
	}

	if err = orderRepo.UpdateWhereStatus(ctx, aggregate, expectedStatus); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
