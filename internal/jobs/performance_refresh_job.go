package jobs

import (
	"context"
	"log/slog"

	"fieldops/internal/core/application/usecases/commands"
	"fieldops/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// PerformanceRefreshJob recomputes performance counters for every active
// technician. Runs nightly at 02:00 as a safety net behind the synchronous
// update that happens when an order completes.
type PerformanceRefreshJob struct {
	handler    commands.RefreshPerformanceCommandHandler
	uowFactory commands.TechnicianUoWFactory
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewPerformanceRefreshJob creates a new job for refreshing technician performance.
// The unit of work factory is used to enumerate active technicians each run.
func NewPerformanceRefreshJob(
	handler commands.RefreshPerformanceCommandHandler,
	uowFactory commands.TechnicianUoWFactory,
	logger *slog.Logger,
) *PerformanceRefreshJob {
	return &PerformanceRefreshJob{
		handler:    handler,
		uowFactory: uowFactory,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "performance_refresh_job"),
	}
}

// Start begins the performance refresh job to run nightly at 02:00.
func (j *PerformanceRefreshJob) Start() error {
	_, err := j.cron.AddFunc("0 0 2 * * *", func() {
		j.refreshAll(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Performance refresh job started (running nightly at 02:00)")
	return nil
}

// Stop stops the performance refresh job.
func (j *PerformanceRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Performance refresh job stopped")
}

func (j *PerformanceRefreshJob) refreshAll(ctx context.Context) {
	technicianIDs, err := j.listActiveTechnicianIDs(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Performance refresh job failed to list technicians", "error", err)
		return
	}

	for _, technicianID := range technicianIDs {
		cmd, err := commands.NewRefreshPerformanceCommand(technicianID)
		if err != nil {
			j.logger.ErrorContext(ctx, "Performance refresh job failed to build command",
				"technician_id", technicianID, "error", err)
			continue
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Performance refresh job failed for technician",
				"technician_id", technicianID, "error", err)
		}
	}
}

func (j *PerformanceRefreshJob) listActiveTechnicianIDs(ctx context.Context) ([]kernel.UUID, error) {
	uow := j.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	technicians, err := uow.TechnicianRepository().GetAllActive(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(technicians))
	for _, t := range technicians {
		ids = append(ids, t.ID())
	}

	return ids, nil
}
