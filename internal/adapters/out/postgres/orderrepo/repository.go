package orderrepo

import (
	"context"
	"errors"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order to the database, including its initial history entry.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// UpdateWhereStatus saves an existing order, but only if the stored status
// still equals expectedStatus. The UPDATE carries the status predicate in its
// WHERE clause, so two concurrent transitions from the same snapshot cannot
// both succeed: the loser matches zero rows and gets a concurrency conflict
// error. History rows past the already persisted tail are appended afterwards;
// history is never rewritten.
func (r *GormOrderRepository) UpdateWhereStatus(
	ctx context.Context,
	aggregate *order.Order,
	expectedStatus order.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := expectedStatus.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	history := dto.History
	dto.History = nil

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, expectedStatus.String()).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.classifyConflict(ctx, aggregate, expectedStatus)
	}

	return r.appendHistory(ctx, dto.ID, history)
}

// classifyConflict distinguishes a missing order from a lost race after a
// conditional update matched zero rows.
func (r *GormOrderRepository) classifyConflict(
	ctx context.Context,
	aggregate *order.Order,
	expectedStatus order.Status,
) error {
	var current OrderDTO
	err := r.db.WithContext(ctx).
		Select("status").
		First(&current, "id = ?", aggregate.ID().Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}
	if err != nil {
		return err
	}

	return errs.NewConcurrencyConflictError(
		"order",
		aggregate.ID().String(),
		expectedStatus.String(),
		current.Status,
	)
}

// appendHistory inserts history rows the database does not have yet. Seq
// numbers are positions in the aggregate's history, so the persisted row
// count is exactly the first new row's seq.
func (r *GormOrderRepository) appendHistory(
	ctx context.Context,
	orderID any,
	history []HistoryEntryDTO,
) error {
	var persisted int64
	err := r.db.WithContext(ctx).
		Model(&HistoryEntryDTO{}).
		Where("order_id = ?", orderID).
		Count(&persisted).Error
	if err != nil {
		return err
	}

	if int(persisted) >= len(history) {
		return nil
	}

	return r.db.WithContext(ctx).Create(history[persisted:]).Error
}

// Get retrieves an order by ID with its full status history.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("History", orderedBySeq).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetFirstInPendingStatus retrieves the oldest order in Pending status.
func (r *GormOrderRepository) GetFirstInPendingStatus(ctx context.Context) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("History", orderedBySeq).
		Where("status = ?", order.StatusPending.String()).
		Order("sequence_number").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", "first in pending status")
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves all orders that have not reached a terminal status,
// oldest first.
func (r *GormOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("History", orderedBySeq).
		Where("status NOT IN ?", terminalStatusNames()).
		Order("sequence_number").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllByTechnician retrieves every order currently assigned to the given
// technician, regardless of status.
func (r *GormOrderRepository) GetAllByTechnician(
	ctx context.Context,
	technicianID kernel.UUID,
) ([]*order.Order, error) {
	if err := technicianID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("History", orderedBySeq).
		Where("technician_id = ?", technicianID.Bytes()).
		Order("sequence_number").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// NextSequenceNumber reserves and returns the next order sequence number from
// the database sequence.
func (r *GormOrderRepository) NextSequenceNumber(ctx context.Context) (int64, error) {
	var next int64
	err := r.db.WithContext(ctx).
		Raw("SELECT nextval('order_sequence_numbers')").
		Scan(&next).Error
	if err != nil {
		return 0, err
	}

	return next, nil
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func orderedBySeq(db *gorm.DB) *gorm.DB {
	return db.Order("seq")
}

func terminalStatusNames() []string {
	return []string{
		order.StatusCompleted.String(),
		order.StatusCancelled.String(),
		order.StatusFailed.String(),
	}
}
