package commands

import (
	"errors"
	"strings"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/technician"
	"fieldops/internal/pkg/guard"
)

var (
	ErrCreateTechnicianCommandIsNotConstructed = errors.New(
		"CreateTechnicianCommand must be created via NewCreateTechnicianCommand constructor",
	)
	ErrEmployeeIDIsRequired        = errors.New("employee id is required")
	ErrTechnicianNameIsRequired    = errors.New("technician name is required")
	ErrTechnicianClusterIsRequired = errors.New("technician cluster is required")
)

// CreateTechnicianCommand represents a request to register a new technician
// with their dispatch profile and weekly working-hours window.
type CreateTechnicianCommand struct { //nolint:recvcheck //using for validation
	technicianID kernel.UUID
	accountID    kernel.UUID
	employeeID   string
	name         string
	cluster      string
	skills       []string
	territory    []string
	workingHours technician.WorkingHours

	guard guard.ConstructorGuard
}

// NewCreateTechnicianCommand creates a command to register a new technician.
// The working-hours window is built from its raw parts so transport layers do
// not need to know the domain type.
func NewCreateTechnicianCommand(
	technicianID kernel.UUID,
	accountID kernel.UUID,
	employeeID string,
	name string,
	cluster string,
	skills []string,
	territory []string,
	workStart string,
	workEnd string,
	workingDays []time.Weekday,
) (CreateTechnicianCommand, error) {
	command := CreateTechnicianCommand{
		skills:    skills,
		territory: territory,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTechnicianID(technicianID),
		command.setAccountID(accountID),
		command.setEmployeeID(employeeID),
		command.setName(name),
		command.setCluster(cluster),
		command.setWorkingHours(workStart, workEnd, workingDays),
	); err != nil {
		return CreateTechnicianCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTechnicianCommand) Validate() error {
	return c.guard.Validate(ErrCreateTechnicianCommandIsNotConstructed)
}

// TechnicianID returns the unique identifier for the technician.
func (c CreateTechnicianCommand) TechnicianID() kernel.UUID {
	return c.technicianID
}

// AccountID returns the linked login account identifier.
func (c CreateTechnicianCommand) AccountID() kernel.UUID {
	return c.accountID
}

// EmployeeID returns the company-wide unique personnel number.
func (c CreateTechnicianCommand) EmployeeID() string {
	return c.employeeID
}

// Name returns the technician's name.
func (c CreateTechnicianCommand) Name() string {
	return c.name
}

// Cluster returns the technician's home service cluster.
func (c CreateTechnicianCommand) Cluster() string {
	return c.cluster
}

// Skills returns the certifications the technician holds.
func (c CreateTechnicianCommand) Skills() []string {
	return c.skills
}

// Territory returns the area codes the technician serves.
func (c CreateTechnicianCommand) Territory() []string {
	return c.territory
}

// WorkingHours returns the validated weekly window.
func (c CreateTechnicianCommand) WorkingHours() technician.WorkingHours {
	return c.workingHours
}

func (c *CreateTechnicianCommand) setTechnicianID(technicianID kernel.UUID) error {
	if err := technicianID.Validate(); err != nil {
		return err
	}

	c.technicianID = technicianID
	return nil
}

func (c *CreateTechnicianCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	c.accountID = accountID
	return nil
}

func (c *CreateTechnicianCommand) setEmployeeID(employeeID string) error {
	if strings.TrimSpace(employeeID) == "" {
		return ErrEmployeeIDIsRequired
	}

	c.employeeID = employeeID
	return nil
}

func (c *CreateTechnicianCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrTechnicianNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateTechnicianCommand) setCluster(cluster string) error {
	if strings.TrimSpace(cluster) == "" {
		return ErrTechnicianClusterIsRequired
	}

	c.cluster = cluster
	return nil
}

func (c *CreateTechnicianCommand) setWorkingHours(start, end string, days []time.Weekday) error {
	workingHours, err := technician.NewWorkingHours(start, end, days)
	if err != nil {
		return err
	}

	c.workingHours = workingHours
	return nil
}
