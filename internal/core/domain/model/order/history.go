package order

import (
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"
	"fieldops/internal/pkg/guard"
)

// ErrHistoryEntryIsNotConstructed is returned when a HistoryEntry was not created
// through the NewHistoryEntry constructor.
var ErrHistoryEntryIsNotConstructed = errs.NewValueIsRequiredError(
	"HistoryEntry must be created via NewHistoryEntry constructor",
)

// HistoryEntry is one immutable record of the order's audit trail: the status
// reached, who caused it, when, and any caller-supplied notes and capture
// location. Entries are append-only; nothing in the engine mutates or reorders
// them once created.
type HistoryEntry struct {
	status      Status
	actorID     kernel.UUID
	timestamp   time.Time
	notes       string
	geolocation *kernel.Geolocation

	guard guard.ConstructorGuard
}

// NewHistoryEntry creates an audit record for a transition into the given status.
// The status and actor must be valid and the timestamp must not be zero;
// notes and geolocation are optional.
func NewHistoryEntry(
	status Status,
	actorID kernel.UUID,
	timestamp time.Time,
	notes string,
	geolocation *kernel.Geolocation,
) (HistoryEntry, error) {
	if err := status.Validate(); err != nil {
		return HistoryEntry{}, err
	}
	if err := actorID.Validate(); err != nil {
		return HistoryEntry{}, err
	}
	if timestamp.IsZero() {
		return HistoryEntry{}, errs.NewValueIsRequiredError("timestamp")
	}

	return HistoryEntry{
		status:      status,
		actorID:     actorID,
		timestamp:   timestamp,
		notes:       notes,
		geolocation: geolocation,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the entry was created via NewHistoryEntry.
func (h HistoryEntry) Validate() error {
	return h.guard.Validate(ErrHistoryEntryIsNotConstructed)
}

// Status returns the status this entry recorded.
func (h HistoryEntry) Status() Status {
	return h.status
}

// ActorID returns the identity of the actor who caused the transition.
func (h HistoryEntry) ActorID() kernel.UUID {
	return h.actorID
}

// Timestamp returns when the transition was recorded.
func (h HistoryEntry) Timestamp() time.Time {
	return h.timestamp
}

// Notes returns the caller-supplied notes, possibly empty.
func (h HistoryEntry) Notes() string {
	return h.notes
}

// Geolocation returns the capture location, or nil when none was supplied.
func (h HistoryEntry) Geolocation() *kernel.Geolocation {
	if h.geolocation == nil {
		return nil
	}
	geo := *h.geolocation
	return &geo
}
