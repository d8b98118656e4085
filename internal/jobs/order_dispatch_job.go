package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fieldops/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderDispatchJob manages the scheduled assignment of pending orders.
// Runs every ten seconds to match the oldest pending order with the best
// available technician.
type OrderDispatchJob struct {
	handler commands.DispatchPendingOrderCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderDispatchJob creates a new job for dispatching pending orders.
// Uses DispatchPendingOrderCommandHandler to process one order per tick.
func NewOrderDispatchJob(handler commands.DispatchPendingOrderCommandHandler, logger *slog.Logger) *OrderDispatchJob {
	return &OrderDispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_dispatch_job"),
	}
}

// Start begins the order dispatch job to run every ten seconds.
func (j *OrderDispatchJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewDispatchPendingOrderCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoPendingOrderFound) && !errors.Is(err, commands.ErrNoAvailableTechnicians) {
				j.logger.ErrorContext(ctx, "Order dispatch job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order dispatch job started (running every ten seconds)")
	return nil
}

// Stop stops the order dispatch job.
func (j *OrderDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order dispatch job stopped")
}
