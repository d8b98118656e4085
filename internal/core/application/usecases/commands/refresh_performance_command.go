package commands

import (
	"errors"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/guard"
)

var ErrRefreshPerformanceCommandIsNotConstructed = errors.New(
	"RefreshPerformanceCommand must be created via NewRefreshPerformanceCommand constructor",
)

// RefreshPerformanceCommand triggers a recomputation of one technician's
// performance counters from the full set of orders ever assigned to them.
// The computation is idempotent; the nightly job runs it for every active
// technician as a safety net behind the synchronous completion-time update.
type RefreshPerformanceCommand struct { //nolint:recvcheck //using for validation
	technicianID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRefreshPerformanceCommand creates a command to refresh a technician's counters.
func NewRefreshPerformanceCommand(technicianID kernel.UUID) (RefreshPerformanceCommand, error) {
	command := RefreshPerformanceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setTechnicianID(technicianID); err != nil {
		return RefreshPerformanceCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RefreshPerformanceCommand) Validate() error {
	return c.guard.Validate(ErrRefreshPerformanceCommandIsNotConstructed)
}

// TechnicianID returns the identifier of the technician to recompute.
func (c RefreshPerformanceCommand) TechnicianID() kernel.UUID {
	return c.technicianID
}

func (c *RefreshPerformanceCommand) setTechnicianID(technicianID kernel.UUID) error {
	if err := technicianID.Validate(); err != nil {
		return err
	}

	c.technicianID = technicianID
	return nil
}
