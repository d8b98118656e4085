package queries

import (
	"context"
	"database/sql"
	"errors"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler loads a single order read model.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order together with its status history, oldest entry
// first. Returns errs.ErrObjectNotFound when no order has the given id.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sequence_number,
			customer_name,
			customer_phone,
			customer_address,
			service_package,
			cluster,
			sto,
			priority,
			status,
			technician_id,
			technician_name,
			assigned_at,
			accepted_at,
			technician_status,
			technician_status_reason
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	var (
		resp             GetOrderQueryResponse
		id               uuid.UUID
		technicianID     uuid.NullUUID
		technicianName   sql.NullString
		assignedAt       sql.NullTime
		acceptedAt       sql.NullTime
		techStatus       sql.NullString
		techStatusReason sql.NullString
	)

	err := row.Scan(
		&id,
		&resp.SequenceNumber,
		&resp.CustomerName,
		&resp.CustomerPhone,
		&resp.CustomerAddress,
		&resp.ServicePackage,
		&resp.Cluster,
		&resp.STO,
		&resp.Priority,
		&resp.Status,
		&technicianID,
		&technicianName,
		&assignedAt,
		&acceptedAt,
		&techStatus,
		&techStatusReason,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError(
				"orderID", query.OrderID())
		}
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.ID = orderID

	if technicianID.Valid {
		techID, idErr := kernel.UUIDFromBytes(technicianID.UUID[:])
		if idErr != nil {
			return GetOrderQueryResponse{}, idErr
		}
		resp.TechnicianID = &techID
	}
	if technicianName.Valid {
		resp.TechnicianName = technicianName.String
	}
	if assignedAt.Valid {
		at := assignedAt.Time
		resp.AssignedAt = &at
	}
	if acceptedAt.Valid {
		at := acceptedAt.Time
		resp.AcceptedAt = &at
	}
	if techStatus.Valid {
		resp.TechnicianStatus = techStatus.String
	}
	if techStatusReason.Valid {
		resp.TechnicianStatusReason = techStatusReason.String
	}

	history, err := h.loadHistory(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.History = history

	return resp, nil
}

func (h GetOrderQueryHandler) loadHistory(
	ctx context.Context,
	orderID kernel.UUID,
) ([]GetOrderHistoryEntryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			actor_id,
			occurred_at,
			notes
		FROM order_history
		WHERE order_id = ?
		ORDER BY seq
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]GetOrderHistoryEntryResponse, 0)

	for rows.Next() {
		var (
			entry   GetOrderHistoryEntryResponse
			actorID uuid.UUID
			notes   sql.NullString
		)

		err = rows.Scan(&entry.Status, &actorID, &entry.Timestamp, &notes)
		if err != nil {
			return nil, err
		}

		actor, idErr := kernel.UUIDFromBytes(actorID[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.ActorID = actor
		if notes.Valid {
			entry.Notes = notes.String
		}
		history = append(history, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
