// Package order provides domain entities and business logic for PSB work-order
// management in the field operations system. It implements the Order aggregate
// root with lifecycle management, an append-only status history, and the
// declarative state machine that governs every transition.
//
// The package includes:
//   - Order: The aggregate root managing identity, customer data, assignment,
//     field-work progress, and lifecycle
//   - Status and Event: A single declarative transition table shared by every
//     operation, so the workflow rules are defined once
//   - HistoryEntry: An immutable audit record appended on every transition
//   - TechnicianAssignment: The current technician binding, replaced wholesale
//     on reassignment while the audit trail is preserved
//   - FieldWork and InstallationDetails: progressively merged sub-records
//     captured by the technician in the field
//
// Key business rules:
//   - Orders start in Pending and only move along edges of the transition table
//   - Completed, Cancelled, and Failed are terminal; no further transitions
//   - Every successful transition appends exactly one history entry, and the
//     last entry's status always equals the order's current status
//   - At most one active technician assignment exists at any time
//   - The technician-status annotation is a secondary signal that bridges into
//     the same transition table when it forces Completed or Failed
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
