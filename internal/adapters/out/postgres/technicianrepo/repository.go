package technicianrepo

import (
	"context"
	"errors"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/technician"
	"fieldops/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// uniqueViolation is the Postgres error code for unique constraint violations.
const uniqueViolation = "23505"

// GormTechnicianRepository implements TechnicianRepository using GORM.
type GormTechnicianRepository struct {
	db *gorm.DB
}

// NewGormTechnicianRepository creates a new GORM technician repository.
func NewGormTechnicianRepository(db *gorm.DB) *GormTechnicianRepository {
	return &GormTechnicianRepository{db: db}
}

// Add saves a new technician to the database. A duplicate employee id is
// reported as a validation error rather than a raw database failure.
func (r *GormTechnicianRepository) Add(ctx context.Context, aggregate *technician.Technician) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return errs.NewValueIsInvalidErrorWithCause("employeeID", err)
		}
		return err
	}

	return nil
}

// Update saves an existing technician to the database.
func (r *GormTechnicianRepository) Update(ctx context.Context, aggregate *technician.Technician) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&TechnicianDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("technician", aggregate.ID().String())
	}

	return nil
}

// Get retrieves a technician by ID.
func (r *GormTechnicianRepository) Get(ctx context.Context, id kernel.UUID) (*technician.Technician, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TechnicianDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("technician", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves all active technicians ordered by name. Availability
// against working hours is domain logic and stays with the caller.
func (r *GormTechnicianRepository) GetAllActive(ctx context.Context) ([]*technician.Technician, error) {
	var dtos []TechnicianDTO
	err := r.db.WithContext(ctx).
		Where("is_active").
		Order("name").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllActiveByCluster retrieves all active technicians whose home cluster
// matches, ordered by name.
func (r *GormTechnicianRepository) GetAllActiveByCluster(
	ctx context.Context,
	cluster string,
) ([]*technician.Technician, error) {
	var dtos []TechnicianDTO
	err := r.db.WithContext(ctx).
		Where("is_active AND cluster = ?", cluster).
		Order("name").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []TechnicianDTO) ([]*technician.Technician, error) {
	technicians := make([]*technician.Technician, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		technicians = append(technicians, t)
	}

	return technicians, nil
}
