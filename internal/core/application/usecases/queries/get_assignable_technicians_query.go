// Package queries contains read-only operations over the field-service store.
// Query handlers bypass the domain repositories and read through raw SQL for
// optimal read performance in the CQRS pattern.
package queries

import (
	"errors"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/guard"
)

var ErrGetAssignableTechniciansQueryIsNotConstructed = errors.New(
	"GetAssignableTechniciansQuery must be created via NewGetAssignableTechniciansQuery constructor",
)

// GetAssignableTechniciansQuery retrieves the technicians that can receive a
// new assignment right now: active, toggled available, and inside their
// working-hours window. Optional cluster and territory filters narrow the
// candidate list.
type GetAssignableTechniciansQuery struct {
	cluster   string
	territory string

	guard guard.ConstructorGuard
}

// NewGetAssignableTechniciansQuery creates a query for assignable technicians.
// cluster and territory may be empty to consider the whole directory.
func NewGetAssignableTechniciansQuery(cluster string, territory string) GetAssignableTechniciansQuery {
	return GetAssignableTechniciansQuery{
		cluster:   cluster,
		territory: territory,
		guard:     guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetAssignableTechniciansQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignableTechniciansQueryIsNotConstructed)
}

// Cluster returns the optional cluster filter, empty for all clusters.
func (q GetAssignableTechniciansQuery) Cluster() string {
	return q.cluster
}

// Territory returns the optional territory area-code filter, empty for all territories.
func (q GetAssignableTechniciansQuery) Territory() string {
	return q.territory
}

// GetAssignableTechniciansQueryResponse is the read model of one assignable
// technician, trimmed to what a dispatch UI needs to pick a candidate.
type GetAssignableTechniciansQueryResponse struct {
	ID               kernel.UUID
	EmployeeID       string
	Name             string
	Cluster          string
	Skills           []string
	TotalAssignments int
}
