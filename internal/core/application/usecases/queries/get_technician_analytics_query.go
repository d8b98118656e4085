package queries

import (
	"errors"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/guard"
)

var ErrGetTechnicianAnalyticsQueryIsNotConstructed = errors.New(
	"GetTechnicianAnalyticsQuery must be created via NewGetTechnicianAnalyticsQuery constructor",
)

// GetTechnicianAnalyticsQuery retrieves one technician's performance snapshot
// together with live order counts.
type GetTechnicianAnalyticsQuery struct { //nolint:recvcheck //using for validation
	technicianID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTechnicianAnalyticsQuery creates a query for a technician's analytics.
func NewGetTechnicianAnalyticsQuery(technicianID kernel.UUID) (GetTechnicianAnalyticsQuery, error) {
	query := GetTechnicianAnalyticsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setTechnicianID(technicianID); err != nil {
		return GetTechnicianAnalyticsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTechnicianAnalyticsQuery) Validate() error {
	return q.guard.Validate(ErrGetTechnicianAnalyticsQueryIsNotConstructed)
}

// TechnicianID returns the identifier of the technician to inspect.
func (q GetTechnicianAnalyticsQuery) TechnicianID() kernel.UUID {
	return q.technicianID
}

func (q *GetTechnicianAnalyticsQuery) setTechnicianID(technicianID kernel.UUID) error {
	if err := technicianID.Validate(); err != nil {
		return err
	}

	q.technicianID = technicianID
	return nil
}

// GetTechnicianAnalyticsQueryResponse is the performance read model.
// Counts are computed live from the order store; the average completion time
// and customer rating come from the last aggregation run.
type GetTechnicianAnalyticsQueryResponse struct {
	TechnicianID               kernel.UUID
	EmployeeID                 string
	Name                       string
	TotalAssignments           int
	CompletedAssignments       int
	ActiveAssignments          int
	AverageCompletionTimeHours float64
	CustomerRating             float64
	LastUpdated                time.Time
}
