package commands

import (
	"errors"
	"strings"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/guard"
)

var (
	ErrReassignTechnicianCommandIsNotConstructed = errors.New(
		"ReassignTechnicianCommand must be created via NewReassignTechnicianCommand constructor",
	)
	ErrReassignReasonIsRequired = errors.New("reassignment reason is required")
)

// ReassignTechnicianCommand represents a dispatcher's request to move an
// in-flight order to a different technician. The reason is mandatory and is
// recorded in the appended history entry.
type ReassignTechnicianCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	newTechnicianID kernel.UUID
	actor           kernel.Actor
	reason          string

	guard guard.ConstructorGuard
}

// NewReassignTechnicianCommand creates a command to reassign an order to a new technician.
func NewReassignTechnicianCommand(
	orderID kernel.UUID,
	newTechnicianID kernel.UUID,
	actor kernel.Actor,
	reason string,
) (ReassignTechnicianCommand, error) {
	command := ReassignTechnicianCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setNewTechnicianID(newTechnicianID),
		command.setActor(actor),
		command.setReason(reason),
	); err != nil {
		return ReassignTechnicianCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ReassignTechnicianCommand) Validate() error {
	return c.guard.Validate(ErrReassignTechnicianCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to reassign.
func (c ReassignTechnicianCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NewTechnicianID returns the identifier of the replacement technician.
func (c ReassignTechnicianCommand) NewTechnicianID() kernel.UUID {
	return c.newTechnicianID
}

// Actor returns the dispatcher performing the reassignment.
func (c ReassignTechnicianCommand) Actor() kernel.Actor {
	return c.actor
}

// Reason returns the mandatory reassignment reason.
func (c ReassignTechnicianCommand) Reason() string {
	return c.reason
}

func (c *ReassignTechnicianCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ReassignTechnicianCommand) setNewTechnicianID(technicianID kernel.UUID) error {
	if err := technicianID.Validate(); err != nil {
		return err
	}

	c.newTechnicianID = technicianID
	return nil
}

func (c *ReassignTechnicianCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *ReassignTechnicianCommand) setReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return ErrReassignReasonIsRequired
	}

	c.reason = reason
	return nil
}
