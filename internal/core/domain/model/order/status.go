package order

import (
	"fmt"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"
)

// Status represents the lifecycle state of a PSB work order.
// It implements a state machine with a single declarative transition table
// so the workflow rules are defined once and reused by every operation.
//
// State transitions:
//
//	Pending ──> Assigned ──> Accepted ──> Survey ──> Installation ──> Completed
//	               ^ └──────────┴───────────┘
//	               └──────── (reassignment)
//
//	{Pending..Installation} ──> Cancelled
//	{Assigned..Installation} ──> Failed
//
// Completed, Cancelled, and Failed are terminal: once reached, the engine
// accepts no further transitions for the order.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status: the order awaits dispatch.
	StatusPending

	// StatusAssigned indicates a technician has been assigned but has not yet accepted.
	StatusAssigned

	// StatusAccepted indicates the assigned technician has accepted the order.
	StatusAccepted

	// StatusSurvey indicates the technician is performing the on-site survey.
	StatusSurvey

	// StatusInstallation indicates the technician is performing the installation.
	StatusInstallation

	// StatusCompleted is the terminal success state. Reaching it triggers
	// performance aggregation for the assigned technician.
	StatusCompleted

	// StatusCancelled is the terminal state for orders withdrawn by dispatch.
	StatusCancelled

	// StatusFailed is the terminal state for orders the technician could not complete.
	StatusFailed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:      "Unknown",
		StatusPending:      "Pending",
		StatusAssigned:     "Assigned",
		StatusAccepted:     "Accepted",
		StatusSurvey:       "Survey",
		StatusInstallation: "Installation",
		StatusCompleted:    "Completed",
		StatusCancelled:    "Cancelled",
		StatusFailed:       "Failed",
	}
}

// StatusFromString parses a status name as supplied by transport adapters.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != StatusUnknown && name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks that the Status is one of the defined workflow states.
// StatusUnknown and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable status name.
// Implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status accepts no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusFailed
}

// Event identifies a workflow operation fed into the transition table.
// The technician-status annotation bridges into the same events: the
// "complete" annotation feeds EventComplete and "failed" feeds EventFail,
// so the secondary signal obeys exactly the same rules as the primary
// state machine.
type Event int

const (
	// EventUnknown represents an invalid or undefined event.
	EventUnknown Event = iota

	// EventAssign assigns a technician to a pending order.
	EventAssign

	// EventAccept records the assigned technician's acceptance.
	EventAccept

	// EventStartSurvey moves an accepted order into the survey stage.
	EventStartSurvey

	// EventStartInstallation moves a surveyed order into the installation stage.
	EventStartInstallation

	// EventComplete closes the order successfully.
	EventComplete

	// EventReassign replaces the current technician and resets the order to Assigned.
	EventReassign

	// EventCancel withdraws the order.
	EventCancel

	// EventFail marks the order as not completable.
	EventFail
)

func getEventStrings() map[Event]string {
	return map[Event]string{
		EventUnknown:           "unknown",
		EventAssign:            "assign",
		EventAccept:            "accept",
		EventStartSurvey:       "start survey",
		EventStartInstallation: "start installation",
		EventComplete:          "complete",
		EventReassign:          "reassign",
		EventCancel:            "cancel",
		EventFail:              "fail",
	}
}

// String returns the event name. Implements fmt.Stringer.
func (e Event) String() string {
	if str, ok := getEventStrings()[e]; ok {
		return str
	}
	return "unknown"
}

// Target returns the status the event leads to, independent of the source state.
func (e Event) Target() Status {
	switch e {
	case EventAssign, EventReassign:
		return StatusAssigned
	case EventAccept:
		return StatusAccepted
	case EventStartSurvey:
		return StatusSurvey
	case EventStartInstallation:
		return StatusInstallation
	case EventComplete:
		return StatusCompleted
	case EventCancel:
		return StatusCancelled
	case EventFail:
		return StatusFailed
	default:
		return StatusUnknown
	}
}

// transitionKey is one edge of the workflow graph: a source state and the event
// requested against it.
type transitionKey struct {
	from  Status
	event Event
}

// transitionRule is the precondition attached to an edge. Either the actor must
// hold one of the listed roles, or (assignedOnly) the actor must be the order's
// currently assigned technician. requiresReason forces a non-empty reason that
// is recorded in the appended history entry.
type transitionRule struct {
	roles          []kernel.Role
	assignedOnly   bool
	requiresReason bool
}

// dispatcherRoles are the actors with dispatch powers. RoleSystem is included
// so scheduled jobs can drive automatic assignment through the same table.
func dispatcherRoles() []kernel.Role {
	return []kernel.Role{kernel.RoleDispatcher, kernel.RoleAdmin, kernel.RoleSystem}
}

// getTransitionTable returns the full workflow graph. Any (status, event) pair
// not present here is an invalid transition; there are no per-operation
// exceptions anywhere else in the engine.
func getTransitionTable() map[transitionKey]transitionRule {
	return map[transitionKey]transitionRule{
		{StatusPending, EventAssign}: {roles: dispatcherRoles()},

		{StatusAssigned, EventAccept}: {assignedOnly: true},

		{StatusAccepted, EventStartSurvey}:     {assignedOnly: true},
		{StatusSurvey, EventStartInstallation}: {assignedOnly: true},
		{StatusInstallation, EventComplete}:    {assignedOnly: true},

		{StatusAssigned, EventReassign}: {roles: dispatcherRoles(), requiresReason: true},
		{StatusAccepted, EventReassign}: {roles: dispatcherRoles(), requiresReason: true},
		{StatusSurvey, EventReassign}:   {roles: dispatcherRoles(), requiresReason: true},

		{StatusPending, EventCancel}:      {roles: dispatcherRoles(), requiresReason: true},
		{StatusAssigned, EventCancel}:     {roles: dispatcherRoles(), requiresReason: true},
		{StatusAccepted, EventCancel}:     {roles: dispatcherRoles(), requiresReason: true},
		{StatusSurvey, EventCancel}:       {roles: dispatcherRoles(), requiresReason: true},
		{StatusInstallation, EventCancel}: {roles: dispatcherRoles(), requiresReason: true},

		{StatusAssigned, EventFail}:     {assignedOnly: true, requiresReason: true},
		{StatusAccepted, EventFail}:     {assignedOnly: true, requiresReason: true},
		{StatusSurvey, EventFail}:       {assignedOnly: true, requiresReason: true},
		{StatusInstallation, EventFail}: {assignedOnly: true, requiresReason: true},
	}
}

// ruleFor resolves the transition rule for the requested edge.
// Returns a StatusTransitionError naming the rejected from -> to pair when the
// edge is absent from the table.
func ruleFor(from Status, event Event) (transitionRule, error) {
	rule, ok := getTransitionTable()[transitionKey{from: from, event: event}]
	if !ok {
		return transitionRule{}, errs.NewStatusTransitionError(from.String(), event.Target().String())
	}
	return rule, nil
}
