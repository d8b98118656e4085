// Package technician contains the Technician aggregate of the field-service
// domain. A technician is the person who physically carries out survey and
// installation work on PSB orders.
//
// The aggregate owns the technician's profile (employee id, cluster, skills,
// territory), the weekly working-hours window, the manual availability toggle
// and the running performance counters. Its central behavior is availability
// evaluation: IsAvailableForAssignment combines the active flag, the manual
// toggle and the working-hours window into a single yes/no answer that the
// dispatch flow consults before every assignment.
//
// Performance counters are recomputed by the performance aggregation service
// and written back through UpdatePerformance; the aggregate never derives them
// itself.
package technician
