package commands

import (
	"errors"
	"slices"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/guard"
)

var (
	ErrBulkAssignOrdersCommandIsNotConstructed = errors.New(
		"BulkAssignOrdersCommand must be created via NewBulkAssignOrdersCommand constructor",
	)
	ErrOrderIDsAreRequired = errors.New("at least one order id is required")
)

// BulkAssignOrdersCommand represents a dispatcher's request to assign one
// technician to many Pending orders at once.
type BulkAssignOrdersCommand struct { //nolint:recvcheck //using for validation
	orderIDs     []kernel.UUID
	technicianID kernel.UUID
	actor        kernel.Actor
	notes        string

	guard guard.ConstructorGuard
}

// NewBulkAssignOrdersCommand creates a command to assign a technician to several orders.
func NewBulkAssignOrdersCommand(
	orderIDs []kernel.UUID,
	technicianID kernel.UUID,
	actor kernel.Actor,
	notes string,
) (BulkAssignOrdersCommand, error) {
	command := BulkAssignOrdersCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderIDs(orderIDs),
		command.setTechnicianID(technicianID),
		command.setActor(actor),
	); err != nil {
		return BulkAssignOrdersCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c BulkAssignOrdersCommand) Validate() error {
	return c.guard.Validate(ErrBulkAssignOrdersCommandIsNotConstructed)
}

// OrderIDs returns the identifiers of the orders to assign.
// The returned slice is a copy.
func (c BulkAssignOrdersCommand) OrderIDs() []kernel.UUID {
	return slices.Clone(c.orderIDs)
}

// TechnicianID returns the identifier of the target technician.
func (c BulkAssignOrdersCommand) TechnicianID() kernel.UUID {
	return c.technicianID
}

// Actor returns the dispatcher performing the bulk assignment.
func (c BulkAssignOrdersCommand) Actor() kernel.Actor {
	return c.actor
}

// Notes returns the optional free-text note recorded per order.
func (c BulkAssignOrdersCommand) Notes() string {
	return c.notes
}

func (c *BulkAssignOrdersCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	if len(orderIDs) == 0 {
		return ErrOrderIDsAreRequired
	}
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.orderIDs = slices.Clone(orderIDs)
	return nil
}

func (c *BulkAssignOrdersCommand) setTechnicianID(technicianID kernel.UUID) error {
	if err := technicianID.Validate(); err != nil {
		return err
	}

	c.technicianID = technicianID
	return nil
}

func (c *BulkAssignOrdersCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
