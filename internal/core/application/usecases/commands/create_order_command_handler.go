package commands

import (
	"context"
	"time"

	"fieldops/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for PSB order creation.
// Reserves the next order sequence number and persists the order in Pending
// status with its initial history entry.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Reserves a sequence number, builds the Pending order and persists it.
// Uses a transaction to ensure the order is properly persisted or rolled back on error.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	sequenceNumber, err := orderRepo.NextSequenceNumber(ctx)
	if err != nil {
		return err
	}

	customer, err := order.NewCustomer(cmd.CustomerName(), cmd.CustomerPhone(), cmd.CustomerAddress())
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(), sequenceNumber, customer,
		cmd.ServicePackage(), cmd.Cluster(), cmd.STO(), cmd.Priority(),
		cmd.Actor(), time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
