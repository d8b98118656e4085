package commands

import (
	"context"
	"errors"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/services"
	"fieldops/internal/pkg/errs"
)

var (
	ErrNoAvailableTechnicians = errors.New("no available technicians found")
	ErrNoPendingOrderFound    = errors.New("no pending order found")
)

// DispatchPendingOrderCommandHandler orchestrates the automatic assignment process.
// Finds the oldest Pending order and matches it with the best available
// technician using the domain dispatcher. The conditional status write keeps
// concurrent job instances from double-assigning the same order.
//
// Example:
//
//	handler := NewDispatchPendingOrderCommandHandler(uowFactory, systemActor)
//	cmd := NewDispatchPendingOrderCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoPendingOrderFound):
//	    log.Println("No pending orders")
//	case errors.Is(err, ErrNoAvailableTechnicians):
//	    log.Println("All technicians are busy")
//	case err != nil:
//	    log.Printf("Dispatch failed: %v", err)
//	}
type DispatchPendingOrderCommandHandler struct {
	uowFactory UoWFactory
	actor      kernel.Actor
}

// NewDispatchPendingOrderCommandHandler creates a handler for automatic dispatch.
// The actor identifies the system principal recorded in appended history entries.
func NewDispatchPendingOrderCommandHandler(uowFactory UoWFactory, actor kernel.Actor) DispatchPendingOrderCommandHandler {
	return DispatchPendingOrderCommandHandler{
		uowFactory: uowFactory,
		actor:      actor,
	}
}

// Handle processes the automatic dispatch command.
// Returns ErrNoPendingOrderFound when the queue is empty and
// ErrNoAvailableTechnicians when nobody passes the availability check.
func (h DispatchPendingOrderCommandHandler) Handle(ctx context.Context, command DispatchPendingOrderCommand) error {
	if err := command.Validate(); err != nil {
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

	aggregate, err := orderRepo.GetFirstInPendingStatus(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoPendingOrderFound
	}
	if err != nil {
		return err
	}

	technicians, err := technicianRepo.GetAllActive(ctx)
	if err != nil {
		return err
	}
	if len(technicians) == 0 {
		return ErrNoAvailableTechnicians
	}

	_, err = services.NewTechnicianDispatcher().Dispatch(aggregate, technicians, h.actor, now, "auto-assigned")
	if errors.Is(err, services.ErrTechnicianNotFound) {
		return ErrNoAvailableTechnicians
	}
	if err != nil {
		return err
	}

	if err = orderRepo.UpdateWhereStatus(ctx, aggregate, order.StatusPending); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
