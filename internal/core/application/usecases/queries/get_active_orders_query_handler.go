package queries

import (
	"context"
	"database/sql"

	"fieldops/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves the in-flight order workload.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders are returned oldest first by sequence
// number so the dispatch board surfaces the longest-waiting work on top.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sequence_number,
			customer_name,
			customer_address,
			cluster,
			sto,
			priority,
			status,
			technician_name,
			assigned_at
		FROM orders
		WHERE status NOT IN ('Completed', 'Cancelled', 'Failed')
		ORDER BY sequence_number
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp           GetActiveOrdersQueryResponse
			id             uuid.UUID
			technicianName sql.NullString
			assignedAt     sql.NullTime
		)

		err = rows.Scan(
			&id,
			&resp.SequenceNumber,
			&resp.CustomerName,
			&resp.CustomerAddress,
			&resp.Cluster,
			&resp.STO,
			&resp.Priority,
			&resp.Status,
			&technicianName,
			&assignedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		if technicianName.Valid {
			resp.TechnicianName = technicianName.String
		}
		if assignedAt.Valid {
			at := assignedAt.Time
			resp.AssignedAt = &at
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
