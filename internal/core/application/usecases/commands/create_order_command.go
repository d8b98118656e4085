package commands

import (
	"errors"
	"strings"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrServicePackageIsRequired = errors.New("service package is required")
	ErrClusterIsRequired        = errors.New("cluster is required")
	ErrSTOIsRequired            = errors.New("sto is required")
)

// CreateOrderCommand represents a request to register a new PSB order.
// Encapsulates the customer record, the subscribed service package and the
// network placement (cluster and STO) of the installation address.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerName    string
	customerPhone   string
	customerAddress string
	servicePackage  string
	cluster         string
	sto             string
	priority        order.Priority
	actor           kernel.Actor

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new PSB order.
// Validates identifiers, the customer record, the service package and the
// network placement. Returns an aggregated error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerName string,
	customerPhone string,
	customerAddress string,
	servicePackage string,
	cluster string,
	sto string,
	priority order.Priority,
	actor kernel.Actor,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCustomer(customerName, customerPhone, customerAddress),
		command.setServicePackage(servicePackage),
		command.setCluster(cluster),
		command.setSTO(sto),
		command.setPriority(priority),
		command.setActor(actor),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerName returns the subscriber's name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the subscriber's contact phone.
func (c CreateOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// CustomerAddress returns the installation address.
func (c CreateOrderCommand) CustomerAddress() string {
	return c.customerAddress
}

// ServicePackage returns the subscribed service package name.
func (c CreateOrderCommand) ServicePackage() string {
	return c.servicePackage
}

// Cluster returns the service cluster of the installation address.
func (c CreateOrderCommand) Cluster() string {
	return c.cluster
}

// STO returns the serving central office code.
func (c CreateOrderCommand) STO() string {
	return c.sto
}

// Priority returns the dispatch priority.
func (c CreateOrderCommand) Priority() order.Priority {
	return c.priority
}

// Actor returns the authenticated caller creating the order.
func (c CreateOrderCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomer(name, phone, address string) error {
	customer, err := order.NewCustomer(name, phone, address)
	if err != nil {
		return err
	}

	c.customerName = customer.Name()
	c.customerPhone = customer.Phone()
	c.customerAddress = customer.Address()
	return nil
}

func (c *CreateOrderCommand) setServicePackage(servicePackage string) error {
	if strings.TrimSpace(servicePackage) == "" {
		return ErrServicePackageIsRequired
	}

	c.servicePackage = servicePackage
	return nil
}

func (c *CreateOrderCommand) setCluster(cluster string) error {
	if strings.TrimSpace(cluster) == "" {
		return ErrClusterIsRequired
	}

	c.cluster = cluster
	return nil
}

func (c *CreateOrderCommand) setSTO(sto string) error {
	if strings.TrimSpace(sto) == "" {
		return ErrSTOIsRequired
	}

	c.sto = sto
	return nil
}

func (c *CreateOrderCommand) setPriority(priority order.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}

	c.priority = priority
	return nil
}

func (c *CreateOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
