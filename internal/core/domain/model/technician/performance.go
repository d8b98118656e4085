package technician

import (
	"fmt"
	"time"

	"fieldops/internal/pkg/errs"
)

const (
	minCustomerRating = 0.0
	maxCustomerRating = 5.0
)

// Performance is a value object holding a technician's running workload
// counters as recomputed by the performance aggregation service.
//
// The counters are derived data: totalAssignments counts every order ever
// assigned to the technician, completedAssignments the subset that reached
// Completed, and averageCompletionTimeHours the mean hours between assignment
// and completion over completed orders only. customerRating is an externally
// sourced score in [0, 5].
//
// The zero value is valid and represents a technician with no history yet.
type Performance struct {
	totalAssignments           int
	completedAssignments       int
	averageCompletionTimeHours float64
	customerRating             float64
	lastUpdated                time.Time
}

// NewPerformance creates a validated Performance snapshot.
//
// Counters must be non-negative, completed assignments cannot exceed total
// assignments, and the customer rating must stay in [0, 5]. lastUpdated may
// be the zero time for a technician whose stats were never computed.
func NewPerformance(
	totalAssignments int,
	completedAssignments int,
	averageCompletionTimeHours float64,
	customerRating float64,
	lastUpdated time.Time,
) (Performance, error) {
	if totalAssignments < 0 {
		return Performance{}, errs.NewValueIsInvalidErrorWithCause(
			"totalAssignments", fmt.Errorf("%d is negative", totalAssignments),
		)
	}
	if completedAssignments < 0 || completedAssignments > totalAssignments {
		return Performance{}, errs.NewValueIsOutOfRangeError(
			"completedAssignments", completedAssignments, 0, totalAssignments,
		)
	}
	if averageCompletionTimeHours < 0 {
		return Performance{}, errs.NewValueIsInvalidErrorWithCause(
			"averageCompletionTimeHours", fmt.Errorf("%v is negative", averageCompletionTimeHours),
		)
	}
	if customerRating < minCustomerRating || customerRating > maxCustomerRating {
		return Performance{}, errs.NewValueIsOutOfRangeError(
			"customerRating", customerRating, minCustomerRating, maxCustomerRating,
		)
	}

	return Performance{
		totalAssignments:           totalAssignments,
		completedAssignments:       completedAssignments,
		averageCompletionTimeHours: averageCompletionTimeHours,
		customerRating:             customerRating,
		lastUpdated:                lastUpdated,
	}, nil
}

// TotalAssignments returns the count of orders ever assigned to the technician.
func (p Performance) TotalAssignments() int {
	return p.totalAssignments
}

// CompletedAssignments returns the count of assigned orders that reached Completed.
func (p Performance) CompletedAssignments() int {
	return p.completedAssignments
}

// AverageCompletionTimeHours returns the mean completion time over completed
// orders, in hours. Zero when no completed order carries usable timestamps.
func (p Performance) AverageCompletionTimeHours() float64 {
	return p.averageCompletionTimeHours
}

// CustomerRating returns the externally sourced rating in [0, 5].
func (p Performance) CustomerRating() float64 {
	return p.customerRating
}

// LastUpdated returns when the snapshot was last recomputed; zero if never.
func (p Performance) LastUpdated() time.Time {
	return p.lastUpdated
}

// IsEqual compares two snapshots field by field.
func (p Performance) IsEqual(other Performance) bool {
	return p == other
}
