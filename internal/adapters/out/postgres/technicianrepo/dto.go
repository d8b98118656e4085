// Package technicianrepo provides data transfer objects and mapping functions
// for technician persistence. This package implements the repository pattern
// for the technician domain aggregate, handling the conversion between domain
// entities and database representations.
package technicianrepo

import (
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/technician"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// TechnicianDTO represents the database structure for persisting technician
// aggregates. The performance snapshot is denormalized into the same row so
// dispatch queries can rank candidates without joins.
type TechnicianDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID  uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeID string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Cluster    string    `gorm:"type:varchar(64);not null;index"`

	Skills    pq.StringArray `gorm:"type:text[]"`
	Territory pq.StringArray `gorm:"type:text[]"`

	IsActive    bool `gorm:"not null"`
	IsAvailable bool `gorm:"not null"`

	WorkStart   string        `gorm:"type:varchar(5);not null"`
	WorkEnd     string        `gorm:"type:varchar(5);not null"`
	WorkingDays pq.Int64Array `gorm:"type:smallint[]"`

	TotalAssignments     int     `gorm:"not null"`
	CompletedAssignments int     `gorm:"not null"`
	AvgCompletionHours   float64 `gorm:"not null"`
	CustomerRating       float64 `gorm:"not null"`
	PerformanceUpdatedAt *time.Time

	LocationLatitude  *float64
	LocationLongitude *float64
	LocationAccuracy  *float64
}

// TableName specifies the database table name for technician entities.
// Overrides GORM's default naming convention to use "technicians".
func (TechnicianDTO) TableName() string {
	return "technicians"
}

// fromDomain converts a technician domain aggregate to its database representation.
func fromDomain(aggregate *technician.Technician) TechnicianDTO {
	workingDays := aggregate.WorkingHours().WorkingDays()
	days := make(pq.Int64Array, 0, len(workingDays))
	for _, day := range workingDays {
		days = append(days, int64(day))
	}

	dto := TechnicianDTO{
		ID:         aggregate.ID().Bytes(),
		AccountID:  aggregate.AccountID().Bytes(),
		EmployeeID: aggregate.EmployeeID(),
		Name:       aggregate.Name(),
		Cluster:    aggregate.Cluster(),

		Skills:    pq.StringArray(aggregate.Skills()),
		Territory: pq.StringArray(aggregate.Territory()),

		IsActive:    aggregate.IsActive(),
		IsAvailable: aggregate.IsAvailable(),

		WorkStart:   aggregate.WorkingHours().Start(),
		WorkEnd:     aggregate.WorkingHours().End(),
		WorkingDays: days,

		TotalAssignments:     aggregate.Performance().TotalAssignments(),
		CompletedAssignments: aggregate.Performance().CompletedAssignments(),
		AvgCompletionHours:   aggregate.Performance().AverageCompletionTimeHours(),
		CustomerRating:       aggregate.Performance().CustomerRating(),
	}

	if updatedAt := aggregate.Performance().LastUpdated(); !updatedAt.IsZero() {
		dto.PerformanceUpdatedAt = &updatedAt
	}

	if location := aggregate.CurrentLocation(); location != nil {
		latitude := location.Latitude()
		longitude := location.Longitude()
		accuracy := location.Accuracy()
		dto.LocationLatitude = &latitude
		dto.LocationLongitude = &longitude
		dto.LocationAccuracy = &accuracy
	}

	return dto
}

// toDomain converts a database DTO to a technician domain aggregate using
// RestoreTechnician.
func toDomain(dto TechnicianDTO) (*technician.Technician, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	accountID, err := kernel.UUIDFromBytes(dto.AccountID[:])
	if err != nil {
		return nil, err
	}

	days := make([]time.Weekday, 0, len(dto.WorkingDays))
	for _, day := range dto.WorkingDays {
		days = append(days, time.Weekday(day))
	}

	workingHours, err := technician.NewWorkingHours(dto.WorkStart, dto.WorkEnd, days)
	if err != nil {
		return nil, err
	}

	var performanceUpdatedAt time.Time
	if dto.PerformanceUpdatedAt != nil {
		performanceUpdatedAt = *dto.PerformanceUpdatedAt
	}

	performance, err := technician.NewPerformance(
		dto.TotalAssignments,
		dto.CompletedAssignments,
		dto.AvgCompletionHours,
		dto.CustomerRating,
		performanceUpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	var location *kernel.Geolocation
	if dto.LocationLatitude != nil && dto.LocationLongitude != nil {
		var accuracy float64
		if dto.LocationAccuracy != nil {
			accuracy = *dto.LocationAccuracy
		}

		geo, geoErr := kernel.NewGeolocation(*dto.LocationLatitude, *dto.LocationLongitude, accuracy)
		if geoErr != nil {
			return nil, geoErr
		}
		location = &geo
	}

	return technician.RestoreTechnician(
		id,
		accountID,
		dto.EmployeeID,
		dto.Name,
		dto.Cluster,
		[]string(dto.Skills),
		[]string(dto.Territory),
		dto.IsActive,
		dto.IsAvailable,
		workingHours,
		performance,
		location,
	)
}
