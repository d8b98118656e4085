package services

import (
	"errors"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/model/technician"
)

// ErrTechnicianNotFound is returned when no suitable technician is available
// for order dispatch. This occurs when either no technicians are provided or
// none of the provided technicians passes the availability check.
var ErrTechnicianNotFound = errors.New("technician not found")

// TechnicianDispatcher is a domain service responsible for finding and
// assigning the best available technician for a pending order.
//
// Key responsibilities:
//   - Validating the order and every candidate technician
//   - Filtering candidates through the availability check
//   - Selecting the best candidate and executing the assignment
//
// Selection algorithm:
//   - Only technicians passing IsAvailableForAssignment(now) are considered
//   - Technicians whose home cluster matches the order's cluster are
//     preferred over out-of-cluster candidates
//   - Within the same preference tier, the technician with the fewest total
//     assignments wins; the first candidate wins ties
type TechnicianDispatcher struct{}

// NewTechnicianDispatcher creates a new TechnicianDispatcher instance.
func NewTechnicianDispatcher() TechnicianDispatcher {
	return TechnicianDispatcher{}
}

// Dispatch selects the best available technician for the given order and
// assigns the order to them on behalf of the given actor.
//
// Returns ErrTechnicianNotFound when no candidate passes the availability
// check, or the assignment error when the order refuses the transition.
func (d TechnicianDispatcher) Dispatch(
	o *order.Order,
	technicians []*technician.Technician,
	actor kernel.Actor,
	now time.Time,
	notes string,
) (*technician.Technician, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	best, err := d.findBestTechnician(o, technicians, now)
	if err != nil {
		return nil, err
	}

	if err = o.Assign(best.ID(), best.Name(), best.Cluster(), actor, now, notes); err != nil {
		return nil, err
	}

	return best, nil
}

// findBestTechnician evaluates the candidates and returns the preferred one.
func (d TechnicianDispatcher) findBestTechnician(
	o *order.Order,
	technicians []*technician.Technician,
	now time.Time,
) (*technician.Technician, error) {
	var best *technician.Technician
	bestInCluster := false

	for _, candidate := range technicians {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}

		if !candidate.IsAvailableForAssignment(now) {
			continue
		}

		inCluster := candidate.Cluster() == o.Cluster()
		if best == nil || d.isBetter(candidate, inCluster, best, bestInCluster) {
			best = candidate
			bestInCluster = inCluster
		}
	}

	if best == nil {
		return nil, ErrTechnicianNotFound
	}

	return best, nil
}

// isBetter reports whether candidate should replace the current best:
// cluster match beats no match, then fewer total assignments wins.
func (d TechnicianDispatcher) isBetter(
	candidate *technician.Technician, candidateInCluster bool,
	best *technician.Technician, bestInCluster bool,
) bool {
	if candidateInCluster != bestInCluster {
		return candidateInCluster
	}
	return candidate.Performance().TotalAssignments() < best.Performance().TotalAssignments()
}
