package commands

import (
	"errors"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/guard"
)

var ErrSetTechnicianAvailabilityCommandIsNotConstructed = errors.New(
	"SetTechnicianAvailabilityCommand must be created via NewSetTechnicianAvailabilityCommand constructor",
)

// SetTechnicianAvailabilityCommand represents a technician toggling their own
// availability, optionally reporting their current position at the same time.
// Admins and dispatchers may toggle on a technician's behalf.
type SetTechnicianAvailabilityCommand struct { //nolint:recvcheck //using for validation
	technicianID kernel.UUID
	available    bool
	actor        kernel.Actor
	location     *kernel.Geolocation

	guard guard.ConstructorGuard
}

// NewSetTechnicianAvailabilityCommand creates a command to toggle availability.
func NewSetTechnicianAvailabilityCommand(
	technicianID kernel.UUID,
	available bool,
	actor kernel.Actor,
	location *kernel.Geolocation,
) (SetTechnicianAvailabilityCommand, error) {
	command := SetTechnicianAvailabilityCommand{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTechnicianID(technicianID),
		command.setActor(actor),
		command.setLocation(location),
	); err != nil {
		return SetTechnicianAvailabilityCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetTechnicianAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetTechnicianAvailabilityCommandIsNotConstructed)
}

// TechnicianID returns the identifier of the technician to update.
func (c SetTechnicianAvailabilityCommand) TechnicianID() kernel.UUID {
	return c.technicianID
}

// Available returns the requested toggle state.
func (c SetTechnicianAvailabilityCommand) Available() bool {
	return c.available
}

// Actor returns the caller performing the update.
func (c SetTechnicianAvailabilityCommand) Actor() kernel.Actor {
	return c.actor
}

// Location returns the optionally reported position, or nil.
func (c SetTechnicianAvailabilityCommand) Location() *kernel.Geolocation {
	if c.location == nil {
		return nil
	}
	location := *c.location
	return &location
}

func (c *SetTechnicianAvailabilityCommand) setTechnicianID(technicianID kernel.UUID) error {
	if err := technicianID.Validate(); err != nil {
		return err
	}

	c.technicianID = technicianID
	return nil
}

func (c *SetTechnicianAvailabilityCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *SetTechnicianAvailabilityCommand) setLocation(location *kernel.Geolocation) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}

	value := *location
	c.location = &value
	return nil
}
