package queries

import (
	"errors"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order together with its full status history.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	query := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// GetOrderHistoryEntryResponse is one audit-trail entry of an order.
type GetOrderHistoryEntryResponse struct {
	Status    string
	ActorID   kernel.UUID
	Timestamp time.Time
	Notes     string
}

// GetOrderQueryResponse is the full read model of one order, including the
// append-only status history in chronological order.
type GetOrderQueryResponse struct {
	ID                     kernel.UUID
	SequenceNumber         int64
	CustomerName           string
	CustomerPhone          string
	CustomerAddress        string
	ServicePackage         string
	Cluster                string
	STO                    string
	Priority               string
	Status                 string
	TechnicianID           *kernel.UUID
	TechnicianName         string
	AssignedAt             *time.Time
	AcceptedAt             *time.Time
	TechnicianStatus       string
	TechnicianStatusReason string
	History                []GetOrderHistoryEntryResponse
}
