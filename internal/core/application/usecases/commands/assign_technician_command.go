package commands

import (
	"errors"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/guard"
)

var ErrAssignTechnicianCommandIsNotConstructed = errors.New(
	"AssignTechnicianCommand must be created via NewAssignTechnicianCommand constructor",
)

// AssignTechnicianCommand represents a dispatcher's request to assign a
// specific technician to a specific Pending order.
type AssignTechnicianCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	technicianID kernel.UUID
	actor        kernel.Actor
	notes        string

	guard guard.ConstructorGuard
}

// NewAssignTechnicianCommand creates a command to assign a technician to an order.
// Notes are optional free text recorded in the appended history entry.
func NewAssignTechnicianCommand(
	orderID kernel.UUID,
	technicianID kernel.UUID,
	actor kernel.Actor,
	notes string,
) (AssignTechnicianCommand, error) {
	command := AssignTechnicianCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setTechnicianID(technicianID),
		command.setActor(actor),
	); err != nil {
		return AssignTechnicianCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignTechnicianCommand) Validate() error {
	return c.guard.Validate(ErrAssignTechnicianCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to assign.
func (c AssignTechnicianCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TechnicianID returns the identifier of the target technician.
func (c AssignTechnicianCommand) TechnicianID() kernel.UUID {
	return c.technicianID
}

// Actor returns the dispatcher performing the assignment.
func (c AssignTechnicianCommand) Actor() kernel.Actor {
	return c.actor
}

// Notes returns the optional free-text note for the history entry.
func (c AssignTechnicianCommand) Notes() string {
	return c.notes
}

func (c *AssignTechnicianCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignTechnicianCommand) setTechnicianID(technicianID kernel.UUID) error {
	if err := technicianID.Validate(); err != nil {
		return err
	}

	c.technicianID = technicianID
	return nil
}

func (c *AssignTechnicianCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
