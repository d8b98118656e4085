package commands

import (
	"errors"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/guard"
)

var ErrAcceptAssignmentCommandIsNotConstructed = errors.New(
	"AcceptAssignmentCommand must be created via NewAcceptAssignmentCommand constructor",
)

// AcceptAssignmentCommand represents the assigned technician's confirmation
// that they take the order. An optional geolocation captures where the
// technician was when accepting.
type AcceptAssignmentCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	actor    kernel.Actor
	notes    string
	location *kernel.Geolocation

	guard guard.ConstructorGuard
}

// NewAcceptAssignmentCommand creates a command for a technician to accept an assignment.
func NewAcceptAssignmentCommand(
	orderID kernel.UUID,
	actor kernel.Actor,
	notes string,
	location *kernel.Geolocation,
) (AcceptAssignmentCommand, error) {
	command := AcceptAssignmentCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setActor(actor),
		command.setLocation(location),
	); err != nil {
		return AcceptAssignmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrAcceptAssignmentCommandIsNotConstructed)
}

// OrderID returns the identifier of the accepted order.
func (c AcceptAssignmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the technician accepting the assignment.
func (c AcceptAssignmentCommand) Actor() kernel.Actor {
	return c.actor
}

// Notes returns the optional free-text note for the history entry.
func (c AcceptAssignmentCommand) Notes() string {
	return c.notes
}

// Location returns where the technician was when accepting, or nil.
func (c AcceptAssignmentCommand) Location() *kernel.Geolocation {
	if c.location == nil {
		return nil
	}
	location := *c.location
	return &location
}

func (c *AcceptAssignmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AcceptAssignmentCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *AcceptAssignmentCommand) setLocation(location *kernel.Geolocation) error {
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
