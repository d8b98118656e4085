package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"
	"fieldops/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods. This ensures all orders
// are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order represents a PSB work order. It is the aggregate root that manages the
// order lifecycle from creation through technician assignment and field work to
// one of the terminal states.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a positive sequence number
//   - Status only moves along edges of the declarative transition table
//   - Every successful transition appends exactly one history entry, and the
//     last entry's status always equals the current status
//   - At most one active technician assignment exists at any time; assigning
//     replaces the previous assignment wholesale
//   - Once a terminal status is reached the content becomes immutable
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods. Persistence-level atomicity of a
// transition (status, assignment, and history together) is the responsibility
// of the repository's conditional write.
type Order struct {
	// id is the opaque, immutable identifier for the order
	id kernel.UUID

	// sequenceNumber is assigned once at creation and never reused
	sequenceNumber int64

	// customer holds subscriber contact details
	customer Customer

	// servicePackage, cluster, sto, and priority are descriptive dispatch data
	servicePackage string
	cluster        string
	sto            string
	priority       Priority

	// status is the single source of truth for workflow position
	status Status

	// assignment is the active technician binding (nil while Pending)
	assignment *TechnicianAssignment

	// history is the append-only audit trail, never mutated in place
	history []HistoryEntry

	// fieldWork accumulates technician-captured progress across stages
	fieldWork FieldWork

	// installation holds terminal-stage data written while completing
	installation InstallationDetails

	// technicianStatus is the technician's secondary annotation plus its reason
	technicianStatus       TechnicianStatus
	technicianStatusReason string

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Pending status with its first history entry.
//
// Parameters:
//   - id: Unique identifier for the order (must be a valid UUID)
//   - sequenceNumber: Monotonically increasing number issued by the order store
//   - customer: Validated subscriber contact details
//   - servicePackage, cluster, sto: Descriptive dispatch fields (package required)
//   - priority: Dispatch urgency
//   - createdBy: The actor registering the order
//   - now: Creation timestamp, recorded in the first history entry
//
// Returns the created order, or a validation error if any parameter is invalid.
func NewOrder(
	id kernel.UUID,
	sequenceNumber int64,
	customer Customer,
	servicePackage string,
	cluster string,
	sto string,
	priority Priority,
	createdBy kernel.Actor,
	now time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		validateSequenceNumber(sequenceNumber),
		customer.Validate(),
		validateServicePackage(servicePackage),
		priority.Validate(),
		createdBy.Validate(),
	); err != nil {
		return nil, err
	}
	if now.IsZero() {
		return nil, errs.NewValueIsRequiredError("now")
	}

	entry, err := NewHistoryEntry(StatusPending, createdBy.ID(), now, "order created", nil)
	if err != nil {
		return nil, err
	}

	return &Order{
		id:             id,
		sequenceNumber: sequenceNumber,
		customer:       customer,
		servicePackage: servicePackage,
		cluster:        cluster,
		sto:            sto,
		priority:       priority,
		status:         StatusPending,
		history:        []HistoryEntry{entry},
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder, it restores the order to its previously persisted state,
// including assignment, history, field work, and the technician annotation.
//
// The history must be non-empty and its last entry's status must equal the
// restored status; statuses at or past Assigned require an assignment, while
// Pending forbids one. A restored order behaves identically to one that reached
// the same state through normal domain operations.
func RestoreOrder(
	id kernel.UUID,
	sequenceNumber int64,
	customer Customer,
	servicePackage string,
	cluster string,
	sto string,
	priority Priority,
	status Status,
	assignment *TechnicianAssignment,
	history []HistoryEntry,
	fieldWork FieldWork,
	installation InstallationDetails,
	technicianStatus TechnicianStatus,
	technicianStatusReason string,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		validateSequenceNumber(sequenceNumber),
		customer.Validate(),
		validateServicePackage(servicePackage),
		priority.Validate(),
		status.Validate(),
		technicianStatus.Validate(),
	); err != nil {
		return nil, err
	}

	if len(history) == 0 {
		return nil, errs.NewValueIsRequiredError("statusHistory")
	}
	for _, entry := range history {
		if err := entry.Validate(); err != nil {
			return nil, err
		}
	}
	if last := history[len(history)-1].Status(); last != status {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"statusHistory",
			fmt.Errorf("last history status %s does not match order status %s", last, status),
		)
	}

	if err := validateAssignmentForStatus(status, assignment); err != nil {
		return nil, err
	}

	return &Order{
		id:                     id,
		sequenceNumber:         sequenceNumber,
		customer:               customer,
		servicePackage:         servicePackage,
		cluster:                cluster,
		sto:                    sto,
		priority:               priority,
		status:                 status,
		assignment:             assignment,
		history:                slices.Clone(history),
		fieldWork:              fieldWork,
		installation:           installation,
		technicianStatus:       technicianStatus,
		technicianStatusReason: technicianStatusReason,
		guard:                  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// SequenceNumber returns the number issued at creation. Never reused, even
// after cancellation.
func (o *Order) SequenceNumber() int64 {
	return o.sequenceNumber
}

// Customer returns the subscriber contact details.
func (o *Order) Customer() Customer {
	return o.customer
}

// ServicePackage returns the subscribed service package name.
func (o *Order) ServicePackage() string {
	return o.servicePackage
}

// Cluster returns the operational cluster the order belongs to.
func (o *Order) Cluster() string {
	return o.cluster
}

// STO returns the serving central-office code.
func (o *Order) STO() string {
	return o.sto
}

// Priority returns the dispatch urgency.
func (o *Order) Priority() Priority {
	return o.priority
}

// Status returns the current workflow status.
func (o *Order) Status() Status {
	return o.status
}

// Assignment returns a copy of the active technician assignment, or nil while
// the order is unassigned.
func (o *Order) Assignment() *TechnicianAssignment {
	if o.assignment == nil {
		return nil
	}
	assignment := *o.assignment
	return &assignment
}

// History returns a copy of the append-only audit trail, oldest first.
// Entries are immutable value objects; mutating the returned slice does not
// affect the order.
func (o *Order) History() []HistoryEntry {
	return slices.Clone(o.history)
}

// FieldWork returns the accumulated technician-captured progress.
func (o *Order) FieldWork() FieldWork {
	return o.fieldWork
}

// InstallationDetails returns the terminal-stage installation data.
func (o *Order) InstallationDetails() InstallationDetails {
	return o.installation
}

// TechnicianStatus returns the technician's secondary annotation.
func (o *Order) TechnicianStatus() TechnicianStatus {
	return o.technicianStatus
}

// TechnicianStatusReason returns the free-text reason attached to the annotation.
func (o *Order) TechnicianStatusReason() string {
	return o.technicianStatusReason
}

// IsAssignedTo reports whether the given technician currently holds the assignment.
func (o *Order) IsAssignedTo(technicianID kernel.UUID) bool {
	return o.assignment != nil && o.assignment.TechnicianID().IsEqual(technicianID)
}

// Assign binds a technician to a pending order and moves it to Assigned.
// Availability of the technician is the caller's precondition; the aggregate
// enforces the transition table and the actor's dispatch role.
//
// Parameters:
//   - technicianID, technicianName, territory: the technician being assigned
//   - actor: the dispatcher or admin performing the assignment
//   - now: assignment timestamp
//   - notes: optional notes recorded in the history entry
func (o *Order) Assign(
	technicianID kernel.UUID,
	technicianName string,
	territory string,
	actor kernel.Actor,
	now time.Time,
	notes string,
) error {
	if err := o.ensureTransition(EventAssign, actor, ""); err != nil {
		return err
	}

	assignment, err := NewTechnicianAssignment(technicianID, technicianName, territory, now)
	if err != nil {
		return err
	}

	entry, err := NewHistoryEntry(StatusAssigned, actor.ID(), now, notes, nil)
	if err != nil {
		return err
	}

	o.assignment = &assignment
	o.commit(StatusAssigned, entry)
	return nil
}

// Accept records the assigned technician's acceptance and moves the order to
// Accepted. Fails with an ActorForbiddenError when the caller is not the
// technician named in the current assignment — including the race where the
// order was reassigned after the technician last read it.
func (o *Order) Accept(actor kernel.Actor, now time.Time, notes string, location *kernel.Geolocation) error {
	if err := o.ensureTransition(EventAccept, actor, ""); err != nil {
		return err
	}

	entry, err := NewHistoryEntry(StatusAccepted, actor.ID(), now, notes, location)
	if err != nil {
		return err
	}

	o.assignment.markAccepted(now)
	o.commit(StatusAccepted, entry)
	return nil
}

// Advance moves the order along the field-work chain
// Accepted -> Survey -> Installation -> Completed. Each call supplies the
// target status plus optional partial payloads that are merged, not replaced,
// into the existing sub-records.
//
// Only the assigned technician can advance an order. On reaching Completed it
// is the caller's responsibility to run performance aggregation for the
// technician; the aggregate only enforces workflow rules.
func (o *Order) Advance(
	target Status,
	actor kernel.Actor,
	now time.Time,
	fieldWorkPatch *FieldWorkPatch,
	installationPatch *InstallationDetailsPatch,
	notes string,
	location *kernel.Geolocation,
) error {
	event, err := advanceEventFor(o.status, target)
	if err != nil {
		return err
	}

	if err = o.ensureTransition(event, actor, ""); err != nil {
		return err
	}

	if installationPatch != nil {
		if err = installationPatch.Validate(); err != nil {
			return err
		}
	}

	entry, err := NewHistoryEntry(target, actor.ID(), now, notes, location)
	if err != nil {
		return err
	}

	if fieldWorkPatch != nil {
		o.fieldWork = o.fieldWork.Merge(*fieldWorkPatch)
	}
	if installationPatch != nil {
		o.installation = o.installation.Merge(*installationPatch)
	}

	o.commit(target, entry)
	return nil
}

// Reassign replaces the current technician and resets the order to Assigned.
// Allowed only while the order is in Assigned, Accepted, or Survey. The reason
// is mandatory and recorded in the appended history entry; the previous
// technician's history entries and partial field work are retained untouched.
func (o *Order) Reassign(
	technicianID kernel.UUID,
	technicianName string,
	territory string,
	actor kernel.Actor,
	now time.Time,
	reason string,
) error {
	if err := o.ensureTransition(EventReassign, actor, reason); err != nil {
		return err
	}

	assignment, err := NewTechnicianAssignment(technicianID, technicianName, territory, now)
	if err != nil {
		return err
	}

	entry, err := NewHistoryEntry(StatusAssigned, actor.ID(), now, reason, nil)
	if err != nil {
		return err
	}

	o.assignment = &assignment
	o.commit(StatusAssigned, entry)
	return nil
}

// Cancel withdraws the order. Dispatcher or admin only, mandatory reason,
// allowed from any non-terminal status.
func (o *Order) Cancel(actor kernel.Actor, now time.Time, reason string) error {
	if err := o.ensureTransition(EventCancel, actor, reason); err != nil {
		return err
	}

	entry, err := NewHistoryEntry(StatusCancelled, actor.ID(), now, reason, nil)
	if err != nil {
		return err
	}

	o.commit(StatusCancelled, entry)
	return nil
}

// SetTechnicianStatus records the technician's secondary annotation. A reason
// is required unless the value is "complete". Setting "complete" or "failed"
// bridges into the primary state machine through the same transition table, so
// an annotation that would force an illegal primary transition is rejected and
// the order is left unchanged.
func (o *Order) SetTechnicianStatus(
	value TechnicianStatus,
	reason string,
	actor kernel.Actor,
	now time.Time,
	location *kernel.Geolocation,
) error {
	if err := value.Validate(); err != nil {
		return err
	}
	if value != TechnicianStatusComplete && strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	if err := o.ensureAssignedTechnician(actor); err != nil {
		return err
	}

	switch value {
	case TechnicianStatusComplete:
		if err := o.ensureTransition(EventComplete, actor, reason); err != nil {
			return err
		}
		entry, err := NewHistoryEntry(StatusCompleted, actor.ID(), now, reason, location)
		if err != nil {
			return err
		}
		o.commit(StatusCompleted, entry)
	case TechnicianStatusFailed:
		if err := o.ensureTransition(EventFail, actor, reason); err != nil {
			return err
		}
		entry, err := NewHistoryEntry(StatusFailed, actor.ID(), now, reason, location)
		if err != nil {
			return err
		}
		o.commit(StatusFailed, entry)
	case TechnicianStatusPending:
		// Annotation only; the primary state machine is not involved.
	}

	o.technicianStatus = value
	o.technicianStatusReason = strings.TrimSpace(reason)
	return nil
}

// ensureTransition checks the transition table and the actor precondition for
// the requested event without mutating the order.
func (o *Order) ensureTransition(event Event, actor kernel.Actor, reason string) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	rule, err := ruleFor(o.status, event)
	if err != nil {
		return err
	}

	if rule.assignedOnly {
		if err := o.ensureAssignedTechnician(actor); err != nil {
			return err
		}
	} else if !slices.Contains(rule.roles, actor.Role()) {
		return errs.NewActorForbiddenError(
			actor.ID().String(),
			fmt.Sprintf("role %s may not %s an order", actor.Role(), event),
		)
	}

	if rule.requiresReason && strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	return nil
}

// ensureAssignedTechnician verifies the actor is the technician named in the
// current assignment.
func (o *Order) ensureAssignedTechnician(actor kernel.Actor) error {
	if actor.Role() != kernel.RoleTechnician {
		return errs.NewActorForbiddenError(
			actor.ID().String(),
			fmt.Sprintf("role %s may not act as the assigned technician", actor.Role()),
		)
	}
	if o.assignment == nil || !o.assignment.TechnicianID().IsEqual(actor.ID()) {
		return errs.NewActorForbiddenError(
			actor.ID().String(),
			"order is assigned to another technician",
		)
	}
	return nil
}

// commit applies a checked transition: status update plus exactly one history
// append. Callers must have validated the transition and built the entry first.
func (o *Order) commit(target Status, entry HistoryEntry) {
	o.status = target
	o.history = append(o.history, entry)
}

// advanceEventFor maps an advance target onto a table event. Targets outside
// the field-work chain are rejected as invalid transitions from the current
// status.
func advanceEventFor(from Status, target Status) (Event, error) {
	switch target {
	case StatusSurvey:
		return EventStartSurvey, nil
	case StatusInstallation:
		return EventStartInstallation, nil
	case StatusCompleted:
		return EventComplete, nil
	default:
		return EventUnknown, errs.NewStatusTransitionError(from.String(), target.String())
	}
}

func validateSequenceNumber(sequenceNumber int64) error {
	if sequenceNumber <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"sequenceNumber",
			fmt.Errorf("%d is not greater than 0", sequenceNumber),
		)
	}
	return nil
}

// validateAssignmentForStatus enforces consistency between workflow position
// and assignment presence. Pending orders must be unassigned; every status the
// technician works in requires an assignment. Cancelled orders may or may not
// carry one, depending on how far they got before withdrawal.
func validateAssignmentForStatus(status Status, assignment *TechnicianAssignment) error {
	if assignment != nil {
		if err := assignment.Validate(); err != nil {
			return err
		}
	}

	switch status {
	case StatusPending:
		if assignment != nil {
			return errs.NewValueIsInvalidErrorWithCause(
				"technicianAssignment",
				fmt.Errorf("%s order must not have an assignment", status),
			)
		}
	case StatusAssigned, StatusAccepted, StatusSurvey, StatusInstallation, StatusCompleted, StatusFailed:
		if assignment == nil {
			return errs.NewValueIsRequiredErrorWithCause(
				"technicianAssignment",
				fmt.Errorf("%s order must have an assignment", status),
			)
		}
	case StatusCancelled, StatusUnknown:
	}

	return nil
}

func validateServicePackage(servicePackage string) error {
	if strings.TrimSpace(servicePackage) == "" {
		return errs.NewValueIsRequiredError("servicePackage")
	}
	return nil
}
