package commands

import (
	"errors"

	"fieldops/internal/pkg/guard"
)

var ErrDispatchPendingOrderCommandIsNotConstructed = errors.New(
	"DispatchPendingOrderCommand must be created via NewDispatchPendingOrderCommand constructor",
)

// DispatchPendingOrderCommand triggers automatic assignment of the oldest
// Pending order to the best available technician. This is a parameterless
// command run on a schedule by the assignment job.
type DispatchPendingOrderCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchPendingOrderCommand creates a new command to trigger automatic dispatch.
func NewDispatchPendingOrderCommand() DispatchPendingOrderCommand {
	return DispatchPendingOrderCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *DispatchPendingOrderCommand) Validate() error {
	return c.guard.Validate(
		ErrDispatchPendingOrderCommandIsNotConstructed,
	)
}
