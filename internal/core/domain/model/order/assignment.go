package order

import (
	"strings"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"
	"fieldops/internal/pkg/guard"
)

// ErrAssignmentIsNotConstructed is returned when a TechnicianAssignment was not
// created through one of its constructors.
var ErrAssignmentIsNotConstructed = errs.NewValueIsRequiredError(
	"TechnicianAssignment must be created via NewTechnicianAssignment or RestoreTechnicianAssignment",
)

// TechnicianAssignment binds an order to exactly one technician. Assigning a new
// technician replaces the whole value; prior assignments survive only through
// the history entries they produced. AcceptedAt stays nil until the technician
// accepts.
type TechnicianAssignment struct {
	technicianID   kernel.UUID
	technicianName string
	territory      string
	assignedAt     time.Time
	acceptedAt     *time.Time

	guard guard.ConstructorGuard
}

// NewTechnicianAssignment creates a fresh, not-yet-accepted assignment.
func NewTechnicianAssignment(
	technicianID kernel.UUID,
	technicianName string,
	territory string,
	assignedAt time.Time,
) (TechnicianAssignment, error) {
	return RestoreTechnicianAssignment(technicianID, technicianName, territory, assignedAt, nil)
}

// RestoreTechnicianAssignment reconstructs an assignment from persistence,
// including the acceptance timestamp when the technician had already accepted.
func RestoreTechnicianAssignment(
	technicianID kernel.UUID,
	technicianName string,
	territory string,
	assignedAt time.Time,
	acceptedAt *time.Time,
) (TechnicianAssignment, error) {
	if err := technicianID.Validate(); err != nil {
		return TechnicianAssignment{}, err
	}
	if strings.TrimSpace(technicianName) == "" {
		return TechnicianAssignment{}, errs.NewValueIsRequiredError("technicianName")
	}
	if assignedAt.IsZero() {
		return TechnicianAssignment{}, errs.NewValueIsRequiredError("assignedAt")
	}

	return TechnicianAssignment{
		technicianID:   technicianID,
		technicianName: technicianName,
		territory:      territory,
		assignedAt:     assignedAt,
		acceptedAt:     acceptedAt,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the assignment was created via a constructor.
func (a TechnicianAssignment) Validate() error {
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

// TechnicianID returns the assigned technician's identity.
func (a TechnicianAssignment) TechnicianID() kernel.UUID {
	return a.technicianID
}

// TechnicianName returns the assigned technician's display name.
func (a TechnicianAssignment) TechnicianName() string {
	return a.technicianName
}

// Territory returns the territory code the assignment was made under.
func (a TechnicianAssignment) Territory() string {
	return a.territory
}

// AssignedAt returns when the technician was assigned.
func (a TechnicianAssignment) AssignedAt() time.Time {
	return a.assignedAt
}

// AcceptedAt returns when the technician accepted, or nil if not yet accepted.
func (a TechnicianAssignment) AcceptedAt() *time.Time {
	if a.acceptedAt == nil {
		return nil
	}
	at := *a.acceptedAt
	return &at
}

// markAccepted records the acceptance time. Called by the Order aggregate when
// the assigned technician accepts.
func (a *TechnicianAssignment) markAccepted(at time.Time) {
	a.acceptedAt = &at
}
