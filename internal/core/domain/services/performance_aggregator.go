package services

import (
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/model/technician"
)

// PerformanceAggregator is a domain service that recomputes a technician's
// workload counters from the full set of orders ever assigned to them.
//
// The computation is a pure fold over the input orders, so running it twice
// against the same orders yields the same snapshot. Counters:
//   - totalAssignments: orders whose current assignment points at the technician
//   - completedAssignments: the subset whose status is Completed
//   - averageCompletionTimeHours: mean hours between assignedAt and the last
//     history entry over completed orders; orders missing either timestamp are
//     excluded from the mean, not counted as zero
//
// The customer rating is externally sourced and carried over unchanged.
type PerformanceAggregator struct{}

// NewPerformanceAggregator creates a new PerformanceAggregator instance.
func NewPerformanceAggregator() PerformanceAggregator {
	return PerformanceAggregator{}
}

// Aggregate computes a fresh performance snapshot for the technician from the
// given orders. Orders assigned to other technicians are ignored, so callers
// may pass a broader set than strictly necessary. previousRating is the
// technician's current customer rating, preserved in the new snapshot; now
// becomes the snapshot's lastUpdated timestamp.
func (a PerformanceAggregator) Aggregate(
	technicianID kernel.UUID,
	orders []*order.Order,
	previousRating float64,
	now time.Time,
) (technician.Performance, error) {
	var (
		total      int
		completed  int
		totalHours float64
		measured   int
	)

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return technician.Performance{}, err
		}
		if !o.IsAssignedTo(technicianID) {
			continue
		}
		total++

		if o.Status() != order.StatusCompleted {
			continue
		}
		completed++

		if hours, ok := completionHours(o); ok {
			totalHours += hours
			measured++
		}
	}

	average := 0.0
	if measured > 0 {
		average = totalHours / float64(measured)
	}

	return technician.NewPerformance(total, completed, average, previousRating, now)
}

// completionHours returns the hours between assignment and the last history
// entry of a completed order. The second return is false when either
// timestamp is missing or the interval is negative.
func completionHours(o *order.Order) (float64, bool) {
	assignment := o.Assignment()
	if assignment == nil || assignment.AssignedAt().IsZero() {
		return 0, false
	}

	history := o.History()
	if len(history) == 0 {
		return 0, false
	}
	completedAt := history[len(history)-1].Timestamp()
	if completedAt.IsZero() || completedAt.Before(assignment.AssignedAt()) {
		return 0, false
	}

	return completedAt.Sub(assignment.AssignedAt()).Hours(), true
}
