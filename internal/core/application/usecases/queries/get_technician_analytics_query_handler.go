package queries

import (
	"context"
	"database/sql"
	"errors"

	"fieldops/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetTechnicianAnalyticsQueryHandler reads a technician's performance snapshot.
// Assignment counts are recomputed live against the order store so the read
// reflects work completed since the last aggregation run; the average
// completion time and customer rating come from the stored snapshot.
type GetTechnicianAnalyticsQueryHandler struct {
	db *gorm.DB
}

// NewGetTechnicianAnalyticsQueryHandler creates a handler for technician analytics queries.
// Requires a GORM database connection for query execution.
func NewGetTechnicianAnalyticsQueryHandler(db *gorm.DB) GetTechnicianAnalyticsQueryHandler {
	return GetTechnicianAnalyticsQueryHandler{db: db}
}

// Handle executes the analytics query.
// Returns a not-found error when the technician id does not resolve.
func (h GetTechnicianAnalyticsQueryHandler) Handle(
	ctx context.Context,
	query GetTechnicianAnalyticsQuery,
) (GetTechnicianAnalyticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTechnicianAnalyticsQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			t.employee_id,
			t.name,
			t.avg_completion_hours,
			t.customer_rating,
			t.performance_updated_at,
			COUNT(o.id) AS total_assignments,
			COUNT(o.id) FILTER (WHERE o.status = 'Completed') AS completed_assignments,
			COUNT(o.id) FILTER (WHERE o.status NOT IN ('Completed', 'Cancelled', 'Failed')) AS active_assignments
		FROM technicians t
		LEFT JOIN orders o ON o.technician_id = t.id
		WHERE t.id = ?
		GROUP BY t.id, t.employee_id, t.name, t.avg_completion_hours, t.customer_rating, t.performance_updated_at
	`, query.TechnicianID().String()).Row()

	resp := GetTechnicianAnalyticsQueryResponse{
		TechnicianID: query.TechnicianID(),
	}
	var lastUpdated sql.NullTime

	err := row.Scan(
		&resp.EmployeeID,
		&resp.Name,
		&resp.AverageCompletionTimeHours,
		&resp.CustomerRating,
		&lastUpdated,
		&resp.TotalAssignments,
		&resp.CompletedAssignments,
		&resp.ActiveAssignments,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetTechnicianAnalyticsQueryResponse{}, errs.NewObjectNotFoundError("technicianID", query.TechnicianID())
	}
	if err != nil {
		return GetTechnicianAnalyticsQueryResponse{}, err
	}

	if lastUpdated.Valid {
		resp.LastUpdated = lastUpdated.Time
	}

	return resp, nil
}
