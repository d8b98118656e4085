package queries

import (
	"context"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/technician"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetAssignableTechniciansQueryHandler retrieves assignable technicians.
// The active and availability flags are filtered in SQL; the working-hours
// window is evaluated in the domain so the inclusive-bounds rule lives in
// exactly one place.
type GetAssignableTechniciansQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignableTechniciansQueryHandler creates a handler for assignable-technician queries.
// Requires a GORM database connection for query execution.
func NewGetAssignableTechniciansQueryHandler(db *gorm.DB) GetAssignableTechniciansQueryHandler {
	return GetAssignableTechniciansQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by name.
func (h GetAssignableTechniciansQueryHandler) Handle(
	ctx context.Context,
	query GetAssignableTechniciansQuery,
) ([]GetAssignableTechniciansQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			employee_id,
			name,
			cluster,
			skills,
			work_start,
			work_end,
			working_days,
			total_assignments
		FROM technicians
		WHERE is_active AND is_available
	`
	args := make([]any, 0, 2)
	if query.Cluster() != "" {
		sql += ` AND cluster = ?`
		args = append(args, query.Cluster())
	}
	if query.Territory() != "" {
		sql += ` AND ? = ANY(territory)`
		args = append(args, query.Territory())
	}
	sql += ` ORDER BY name`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	now := time.Now().UTC()
	technicians := make([]GetAssignableTechniciansQueryResponse, 0)

	for rows.Next() {
		var (
			resp        GetAssignableTechniciansQueryResponse
			id          uuid.UUID
			skills      pq.StringArray
			workStart   string
			workEnd     string
			workingDays pq.Int64Array
		)

		err = rows.Scan(
			&id,
			&resp.EmployeeID,
			&resp.Name,
			&resp.Cluster,
			&skills,
			&workStart,
			&workEnd,
			&workingDays,
			&resp.TotalAssignments,
		)
		if err != nil {
			return nil, err
		}

		days := make([]time.Weekday, 0, len(workingDays))
		for _, day := range workingDays {
			days = append(days, time.Weekday(day))
		}
		window, whErr := technician.NewWorkingHours(workStart, workEnd, days)
		if whErr != nil {
			return nil, whErr
		}
		if !window.Covers(now) {
			continue
		}

		technicianID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = technicianID
		resp.Skills = skills
		technicians = append(technicians, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return technicians, nil
}
