package commands

import (
	"errors"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/pkg/guard"
)

var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
	"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
)

// AdvanceOrderCommand represents a technician moving an order forward along
// the Accepted → Survey → Installation → Completed chain. Optional partial
// field-work and installation payloads are merged into the order's existing
// sub-records, never replacing them.
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID           kernel.UUID
	target            order.Status
	actor             kernel.Actor
	fieldWorkPatch    *order.FieldWorkPatch
	installationPatch *order.InstallationDetailsPatch
	notes             string
	location          *kernel.Geolocation

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates a command to advance an order to the target status.
func NewAdvanceOrderCommand(
	orderID kernel.UUID,
	target order.Status,
	actor kernel.Actor,
	fieldWorkPatch *order.FieldWorkPatch,
	installationPatch *order.InstallationDetailsPatch,
	notes string,
	location *kernel.Geolocation,
) (AdvanceOrderCommand, error) {
	command := AdvanceOrderCommand{
		fieldWorkPatch:    fieldWorkPatch,
		installationPatch: installationPatch,
		notes:             notes,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setTarget(target),
		command.setActor(actor),
		command.setLocation(location),
	); err != nil {
		return AdvanceOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to advance.
func (c AdvanceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested destination status.
func (c AdvanceOrderCommand) Target() order.Status {
	return c.target
}

// Actor returns the technician driving the transition.
func (c AdvanceOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// FieldWorkPatch returns the optional partial field-work payload.
func (c AdvanceOrderCommand) FieldWorkPatch() *order.FieldWorkPatch {
	return c.fieldWorkPatch
}

// InstallationPatch returns the optional partial installation payload.
func (c AdvanceOrderCommand) InstallationPatch() *order.InstallationDetailsPatch {
	return c.installationPatch
}

// Notes returns the optional free-text note for the history entry.
func (c AdvanceOrderCommand) Notes() string {
	return c.notes
}

// Location returns where the technician was at the transition, or nil.
func (c AdvanceOrderCommand) Location() *kernel.Geolocation {
	if c.location == nil {
		return nil
	}
	location := *c.location
	return &location
}

func (c *AdvanceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceOrderCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *AdvanceOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *AdvanceOrderCommand) setLocation(location *kernel.Geolocation) error {
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
