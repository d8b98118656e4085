// Package ports defines repository interfaces for the field-service domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and assignment state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// UpdateWhereStatus persists changes to an existing order aggregate, but
	// only if the stored status still equals expectedStatus. The whole write
	// is rejected when another caller changed the status in the meantime:
	// no field is updated, no history entry is appended, and the error
	// unwraps to errs.ErrConcurrencyConflict. Returns a not-found error when
	// the order does not exist at all.
	//
	// This conditional write is the only way to persist a state transition;
	// it is what keeps two dispatchers from assigning the same Pending order.
	UpdateWhereStatus(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) error

	// Get retrieves an order aggregate by its unique identifier, including
	// the full status history.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetFirstInPendingStatus retrieves the oldest order still in Pending
	// status. Used by the automatic assignment flow to pick the next order
	// to dispatch.
	GetFirstInPendingStatus(ctx context.Context) (*order.Order, error)

	// GetAllActive retrieves all orders that have not reached a terminal
	// status, oldest first.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// GetAllByTechnician retrieves every order whose current assignment
	// points at the given technician, regardless of status. Used by the
	// performance aggregation flow.
	GetAllByTechnician(ctx context.Context, technicianID kernel.UUID) ([]*order.Order, error)

	// NextSequenceNumber reserves and returns the next order sequence number.
	NextSequenceNumber(ctx context.Context) (int64, error)
}
