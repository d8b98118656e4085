// Package services contains stateless domain services of the field-service
// domain: logic that spans more than one aggregate and therefore belongs to
// neither.
//
// TechnicianDispatcher selects the best available technician for a pending
// order and performs the assignment. PerformanceAggregator recomputes a
// technician's workload counters from the full set of orders ever assigned to
// them. Both services are pure domain logic; loading aggregates and
// persisting results is the calling use case's job.
package services
