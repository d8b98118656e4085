package commands

import (
	"context"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/services"
	"fieldops/internal/core/ports"
)

// refreshTechnicianPerformance recomputes a technician's performance snapshot
// from every order ever assigned to them and persists the result. When
// markAvailable is set the technician's availability toggle is flipped back
// on in the same write; the engine does this when an order completes.
func refreshTechnicianPerformance(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	technicianRepo ports.TechnicianRepository,
	technicianID kernel.UUID,
	now time.Time,
	markAvailable bool,
) error {
	tech, err := technicianRepo.Get(ctx, technicianID)
	if err != nil {
		return err
	}

	orders, err := orderRepo.GetAllByTechnician(ctx, technicianID)
	if err != nil {
		return err
	}

	snapshot, err := services.NewPerformanceAggregator().Aggregate(
		technicianID, orders, tech.Performance().CustomerRating(), now,
	)
	if err != nil {
		return err
	}

	tech.UpdatePerformance(snapshot)
	if markAvailable {
		tech.SetAvailability(true)
	}

	return technicianRepo.Update(ctx, tech)
}
