package commands

import (
	"errors"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/pkg/guard"
)

var ErrSetTechnicianStatusCommandIsNotConstructed = errors.New(
	"SetTechnicianStatusCommand must be created via NewSetTechnicianStatusCommand constructor",
)

// SetTechnicianStatusCommand represents the technician's side-channel signal
// about an order: pending, failed or complete. The reason is mandatory unless
// the value is complete; reason requirements are enforced by the domain.
type SetTechnicianStatusCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	value    order.TechnicianStatus
	reason   string
	actor    kernel.Actor
	location *kernel.Geolocation

	guard guard.ConstructorGuard
}

// NewSetTechnicianStatusCommand creates a command to set the technician-status annotation.
func NewSetTechnicianStatusCommand(
	orderID kernel.UUID,
	value order.TechnicianStatus,
	reason string,
	actor kernel.Actor,
	location *kernel.Geolocation,
) (SetTechnicianStatusCommand, error) {
	command := SetTechnicianStatusCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setValue(value),
		command.setActor(actor),
		command.setLocation(location),
	); err != nil {
		return SetTechnicianStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetTechnicianStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetTechnicianStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the annotated order.
func (c SetTechnicianStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Value returns the annotation value.
func (c SetTechnicianStatusCommand) Value() order.TechnicianStatus {
	return c.value
}

// Reason returns the free-text reason accompanying the annotation.
func (c SetTechnicianStatusCommand) Reason() string {
	return c.reason
}

// Actor returns the technician setting the annotation.
func (c SetTechnicianStatusCommand) Actor() kernel.Actor {
	return c.actor
}

// Location returns where the technician was, or nil.
func (c SetTechnicianStatusCommand) Location() *kernel.Geolocation {
	if c.location == nil {
		return nil
	}
	location := *c.location
	return &location
}

func (c *SetTechnicianStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SetTechnicianStatusCommand) setValue(value order.TechnicianStatus) error {
	if err := value.Validate(); err != nil {
		return err
	}

	c.value = value
	return nil
}

func (c *SetTechnicianStatusCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *SetTechnicianStatusCommand) setLocation(location *kernel.Geolocation) error {
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
