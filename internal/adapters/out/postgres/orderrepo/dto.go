// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and technician assignment. The status history
// lives in a separate table linked by foreign key.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	SequenceNumber  int64     `gorm:"uniqueIndex;not null"`
	CustomerName    string    `gorm:"type:varchar(255);not null"`
	CustomerPhone   string    `gorm:"type:varchar(64);not null"`
	CustomerAddress string    `gorm:"type:varchar(512);not null"`
	ServicePackage  string    `gorm:"type:varchar(255);not null"`
	Cluster         string    `gorm:"type:varchar(64);index"`
	STO             string    `gorm:"column:sto;type:varchar(64)"`
	Priority        string    `gorm:"type:varchar(16);not null"`
	Status          string    `gorm:"type:varchar(32);not null;index"`

	TechnicianID        *uuid.UUID `gorm:"type:uuid;index"`
	TechnicianName      string     `gorm:"type:varchar(255)"`
	TechnicianTerritory string     `gorm:"type:varchar(64)"`
	AssignedAt          *time.Time
	AcceptedAt          *time.Time

	SurveyCompleted       bool `gorm:"not null"`
	SurveyCompletedAt     *time.Time
	SurveyPhotos          pq.StringArray `gorm:"type:text[]"`
	InstallationStarted   bool           `gorm:"not null"`
	InstallationStartedAt *time.Time
	InstallationPhotos    pq.StringArray `gorm:"type:text[]"`
	CustomerSignature     string         `gorm:"type:text"`

	ONTSerialNumber   string   `gorm:"column:ont_serial_number;type:varchar(64)"`
	SignalStrengthDBm *float64 `gorm:"column:signal_strength_dbm"`
	TestResult        string   `gorm:"type:varchar(64)"`
	QualityScore      *int

	TechnicianStatus       string `gorm:"type:varchar(16);not null"`
	TechnicianStatusReason string `gorm:"type:varchar(512)"`

	History []HistoryEntryDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// HistoryEntryDTO represents one row of an order's append-only status history.
// Rows are keyed by (order_id, seq) where seq is the zero-based position of the
// entry within the order's history.
type HistoryEntryDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq        int       `gorm:"primaryKey;autoIncrement:false"`
	Status     string    `gorm:"type:varchar(32);not null"`
	ActorID    uuid.UUID `gorm:"type:uuid;not null"`
	OccurredAt time.Time `gorm:"not null"`
	Notes      string    `gorm:"type:text"`
	Latitude   *float64
	Longitude  *float64
	Accuracy   *float64
}

// TableName specifies the database table name for history entries.
// Overrides GORM's default naming convention to use "order_history".
func (HistoryEntryDTO) TableName() string {
	return "order_history"
}

// fromDomain converts an order domain aggregate to its database representation,
// including the full status history.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	dto := OrderDTO{
		ID:              orderID,
		SequenceNumber:  aggregate.SequenceNumber(),
		CustomerName:    aggregate.Customer().Name(),
		CustomerPhone:   aggregate.Customer().Phone(),
		CustomerAddress: aggregate.Customer().Address(),
		ServicePackage:  aggregate.ServicePackage(),
		Cluster:         aggregate.Cluster(),
		STO:             aggregate.STO(),
		Priority:        aggregate.Priority().String(),
		Status:          aggregate.Status().String(),

		SurveyCompleted:       aggregate.FieldWork().SurveyCompleted,
		SurveyCompletedAt:     aggregate.FieldWork().SurveyCompletedAt,
		SurveyPhotos:          pq.StringArray(aggregate.FieldWork().SurveyPhotos),
		InstallationStarted:   aggregate.FieldWork().InstallationStarted,
		InstallationStartedAt: aggregate.FieldWork().InstallationStartedAt,
		InstallationPhotos:    pq.StringArray(aggregate.FieldWork().InstallationPhotos),
		CustomerSignature:     aggregate.FieldWork().CustomerSignature,

		ONTSerialNumber:   aggregate.InstallationDetails().ONTSerialNumber,
		SignalStrengthDBm: aggregate.InstallationDetails().SignalStrengthDBm,
		TestResult:        aggregate.InstallationDetails().TestResult,
		QualityScore:      aggregate.InstallationDetails().QualityScore,

		TechnicianStatus:       aggregate.TechnicianStatus().String(),
		TechnicianStatusReason: aggregate.TechnicianStatusReason(),
	}

	if assignment := aggregate.Assignment(); assignment != nil {
		technicianID := assignment.TechnicianID().Bytes()
		assignedAt := assignment.AssignedAt()

		dto.TechnicianID = &technicianID
		dto.TechnicianName = assignment.TechnicianName()
		dto.TechnicianTerritory = assignment.Territory()
		dto.AssignedAt = &assignedAt
		dto.AcceptedAt = assignment.AcceptedAt()
	}

	history := aggregate.History()
	dto.History = make([]HistoryEntryDTO, 0, len(history))
	for seq, entry := range history {
		dto.History = append(dto.History, historyFromDomain(orderID, seq, entry))
	}

	return dto
}

func historyFromDomain(orderID uuid.UUID, seq int, entry order.HistoryEntry) HistoryEntryDTO {
	row := HistoryEntryDTO{
		OrderID:    orderID,
		Seq:        seq,
		Status:     entry.Status().String(),
		ActorID:    entry.ActorID().Bytes(),
		OccurredAt: entry.Timestamp(),
		Notes:      entry.Notes(),
	}

	if geo := entry.Geolocation(); geo != nil {
		latitude := geo.Latitude()
		longitude := geo.Longitude()
		accuracy := geo.Accuracy()
		row.Latitude = &latitude
		row.Longitude = &longitude
		row.Accuracy = &accuracy
	}

	return row
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including assignment, history, field
// work, and the technician annotation using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(dto.CustomerName, dto.CustomerPhone, dto.CustomerAddress)
	if err != nil {
		return nil, err
	}

	priority, err := order.PriorityFromString(dto.Priority)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	technicianStatus, err := order.TechnicianStatusFromString(dto.TechnicianStatus)
	if err != nil {
		return nil, err
	}

	var assignment *order.TechnicianAssignment
	if dto.TechnicianID != nil {
		technicianID, idErr := kernel.UUIDFromBytes((*dto.TechnicianID)[:])
		if idErr != nil {
			return nil, idErr
		}

		var assignedAt time.Time
		if dto.AssignedAt != nil {
			assignedAt = *dto.AssignedAt
		}

		restored, assignErr := order.RestoreTechnicianAssignment(
			technicianID,
			dto.TechnicianName,
			dto.TechnicianTerritory,
			assignedAt,
			dto.AcceptedAt,
		)
		if assignErr != nil {
			return nil, assignErr
		}
		assignment = &restored
	}

	history := make([]order.HistoryEntry, 0, len(dto.History))
	for _, row := range dto.History {
		entry, historyErr := historyToDomain(row)
		if historyErr != nil {
			return nil, historyErr
		}
		history = append(history, entry)
	}

	fieldWork := order.FieldWork{
		SurveyCompleted:       dto.SurveyCompleted,
		SurveyCompletedAt:     dto.SurveyCompletedAt,
		SurveyPhotos:          []string(dto.SurveyPhotos),
		InstallationStarted:   dto.InstallationStarted,
		InstallationStartedAt: dto.InstallationStartedAt,
		InstallationPhotos:    []string(dto.InstallationPhotos),
		CustomerSignature:     dto.CustomerSignature,
	}

	installation := order.InstallationDetails{
		ONTSerialNumber:   dto.ONTSerialNumber,
		SignalStrengthDBm: dto.SignalStrengthDBm,
		TestResult:        dto.TestResult,
		QualityScore:      dto.QualityScore,
	}

	return order.RestoreOrder(
		id,
		dto.SequenceNumber,
		customer,
		dto.ServicePackage,
		dto.Cluster,
		dto.STO,
		priority,
		status,
		assignment,
		history,
		fieldWork,
		installation,
		technicianStatus,
		dto.TechnicianStatusReason,
	)
}

func historyToDomain(row HistoryEntryDTO) (order.HistoryEntry, error) {
	status, err := order.StatusFromString(row.Status)
	if err != nil {
		return order.HistoryEntry{}, err
	}

	actorID, err := kernel.UUIDFromBytes(row.ActorID[:])
	if err != nil {
		return order.HistoryEntry{}, err
	}

	var geolocation *kernel.Geolocation
	if row.Latitude != nil && row.Longitude != nil {
		var accuracy float64
		if row.Accuracy != nil {
			accuracy = *row.Accuracy
		}

		geo, geoErr := kernel.NewGeolocation(*row.Latitude, *row.Longitude, accuracy)
		if geoErr != nil {
			return order.HistoryEntry{}, geoErr
		}
		geolocation = &geo
	}

	return order.NewHistoryEntry(status, actorID, row.OccurredAt, row.Notes, geolocation)
}
