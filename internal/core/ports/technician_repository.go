package ports

import (
	"context"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/technician"
)

// TechnicianRepository defines the persistence contract for technician aggregates.
type TechnicianRepository interface {
	// Add persists a new technician aggregate to storage. Fails with a
	// validation error when the employee id is already taken.
	Add(ctx context.Context, aggregate *technician.Technician) error

	// Update persists changes to an existing technician aggregate.
	Update(ctx context.Context, aggregate *technician.Technician) error

	// Get retrieves a technician aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*technician.Technician, error)

	// GetAllActive retrieves all active technicians. The availability check
	// against working hours is domain logic and happens in the caller.
	GetAllActive(ctx context.Context) ([]*technician.Technician, error)

	// GetAllActiveByCluster retrieves all active technicians whose home
	// cluster matches. Used by dispatch UIs to narrow candidate lists.
	GetAllActiveByCluster(ctx context.Context, cluster string) ([]*technician.Technician, error)
}
