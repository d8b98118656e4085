// Package http exposes the order lifecycle and technician directory over a
// REST API. Handlers translate JSON payloads into commands and queries; all
// authorization input comes from the identity headers resolved upstream.
package http

import (
	"errors"
	"net/http"
	"time"

	"fieldops/internal/core/application/usecases/commands"
	"fieldops/internal/core/application/usecases/queries"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Identity headers filled in by the authenticating proxy.
const (
	HeaderActorID   = "X-Actor-Id"
	HeaderActorRole = "X-Actor-Role"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrder       commands.CreateOrderCommandHandler
	assignTechnician  commands.AssignTechnicianCommandHandler
	acceptAssignment  commands.AcceptAssignmentCommandHandler
	advanceOrder      commands.AdvanceOrderCommandHandler
	reassign          commands.ReassignTechnicianCommandHandler
	setTechStatus     commands.SetTechnicianStatusCommandHandler
	cancelOrder       commands.CancelOrderCommandHandler
	bulkAssign        commands.BulkAssignOrdersCommandHandler
	createTechnician  commands.CreateTechnicianCommandHandler
	setAvailability   commands.SetTechnicianAvailabilityCommandHandler
	getOrder          queries.GetOrderQueryHandler
	getActiveOrders   queries.GetActiveOrdersQueryHandler
	getAssignable     queries.GetAssignableTechniciansQueryHandler
	getTechAnalytics  queries.GetTechnicianAnalyticsQueryHandler
}

// NewServer creates an HTTP server wired to the given command and query handlers.
func NewServer(
	createOrder commands.CreateOrderCommandHandler,
	assignTechnician commands.AssignTechnicianCommandHandler,
	acceptAssignment commands.AcceptAssignmentCommandHandler,
	advanceOrder commands.AdvanceOrderCommandHandler,
	reassign commands.ReassignTechnicianCommandHandler,
	setTechStatus commands.SetTechnicianStatusCommandHandler,
	cancelOrder commands.CancelOrderCommandHandler,
	bulkAssign commands.BulkAssignOrdersCommandHandler,
	createTechnician commands.CreateTechnicianCommandHandler,
	setAvailability commands.SetTechnicianAvailabilityCommandHandler,
	getOrder queries.GetOrderQueryHandler,
	getActiveOrders queries.GetActiveOrdersQueryHandler,
	getAssignable queries.GetAssignableTechniciansQueryHandler,
	getTechAnalytics queries.GetTechnicianAnalyticsQueryHandler,
) *Server {
	return &Server{
		createOrder:      createOrder,
		assignTechnician: assignTechnician,
		acceptAssignment: acceptAssignment,
		advanceOrder:     advanceOrder,
		reassign:         reassign,
		setTechStatus:    setTechStatus,
		cancelOrder:      cancelOrder,
		bulkAssign:       bulkAssign,
		createTechnician: createTechnician,
		setAvailability:  setAvailability,
		getOrder:         getOrder,
		getActiveOrders:  getActiveOrders,
		getAssignable:    getAssignable,
		getTechAnalytics: getTechAnalytics,
	}
}

// RegisterRoutes attaches all endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/:orderID", s.GetOrder)
	api.POST("/orders/bulk-assign", s.BulkAssignOrders)
	api.POST("/orders/:orderID/assign", s.AssignTechnician)
	api.POST("/orders/:orderID/accept", s.AcceptAssignment)
	api.POST("/orders/:orderID/status", s.AdvanceOrder)
	api.POST("/orders/:orderID/reassign", s.ReassignTechnician)
	api.POST("/orders/:orderID/technician-status", s.SetTechnicianStatus)
	api.POST("/orders/:orderID/cancel", s.CancelOrder)

	api.POST("/technicians", s.CreateTechnician)
	api.GET("/technicians/assignable", s.GetAssignableTechnicians)
	api.GET("/technicians/:technicianID/analytics", s.GetTechnicianAnalytics)
	api.POST("/technicians/:technicianID/availability", s.SetTechnicianAvailability)
}

// actorFromHeaders resolves the acting identity from the request headers.
func actorFromHeaders(ctx echo.Context) (kernel.Actor, error) {
	id, err := kernel.UUIDFromString(ctx.Request().Header.Get(HeaderActorID))
	if err != nil {
		return kernel.Actor{}, err
	}

	role, err := kernel.RoleFromString(ctx.Request().Header.Get(HeaderActorRole))
	if err != nil {
		return kernel.Actor{}, err
	}

	return kernel.NewActor(id, role)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func unauthorized(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, Error{
		Code:    http.StatusUnauthorized,
		Message: "missing or invalid identity headers",
	})
}

// writeDomainError maps domain failures onto HTTP statuses.
func writeDomainError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrActorForbidden):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrConcurrencyConflict), errors.Is(err, errs.ErrInvalidTransition):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrTechnicianUnavailable):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	var request CreateOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	priority := order.PriorityNormal
	if request.Priority != "" {
		priority, err = order.PriorityFromString(request.Priority)
		if err != nil {
			return badRequest(ctx, err.Error())
		}
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		request.CustomerName,
		request.CustomerPhone,
		request.CustomerAddress,
		request.ServicePackage,
		request.Cluster,
		request.STO,
		priority,
		actor,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.createOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:orderID.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.getOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromReadModel(result))
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	result, err := s.getActiveOrders.Handle(ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, activeOrdersResponse(result))
}

// AssignTechnician handles POST /api/v1/orders/:orderID/assign.
func (s *Server) AssignTechnician(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var request AssignTechnicianRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	technicianID, err := kernel.UUIDFromString(request.TechnicianID)
	if err != nil {
		return badRequest(ctx, "invalid technician id")
	}

	cmd, err := commands.NewAssignTechnicianCommand(orderID, technicianID, actor, request.Notes)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.assignTechnician.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AcceptAssignment handles POST /api/v1/orders/:orderID/accept.
func (s *Server) AcceptAssignment(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var request AcceptAssignmentRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	location, err := request.Location.toDomain()
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAcceptAssignmentCommand(orderID, actor, request.Notes, location)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.acceptAssignment.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceOrder handles POST /api/v1/orders/:orderID/status.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var request AdvanceOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	target, err := order.StatusFromString(request.Status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	location, err := request.Location.toDomain()
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAdvanceOrderCommand(
		orderID,
		target,
		actor,
		request.FieldWork.toDomain(),
		request.Installation.toDomain(),
		request.Notes,
		location,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.advanceOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReassignTechnician handles POST /api/v1/orders/:orderID/reassign.
func (s *Server) ReassignTechnician(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var request ReassignTechnicianRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	technicianID, err := kernel.UUIDFromString(request.TechnicianID)
	if err != nil {
		return badRequest(ctx, "invalid technician id")
	}

	cmd, err := commands.NewReassignTechnicianCommand(orderID, technicianID, actor, request.Reason)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.reassign.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetTechnicianStatus handles POST /api/v1/orders/:orderID/technician-status.
func (s *Server) SetTechnicianStatus(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var request SetTechnicianStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	value, err := order.TechnicianStatusFromString(request.Status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	location, err := request.Location.toDomain()
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewSetTechnicianStatusCommand(orderID, value, request.Reason, actor, location)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.setTechStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var request CancelOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actor, request.Reason)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.cancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// BulkAssignOrders handles POST /api/v1/orders/bulk-assign.
func (s *Server) BulkAssignOrders(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	var request BulkAssignRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderIDs := make([]kernel.UUID, 0, len(request.OrderIDs))
	for _, raw := range request.OrderIDs {
		orderID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return badRequest(ctx, "invalid order id: "+raw)
		}
		orderIDs = append(orderIDs, orderID)
	}

	technicianID, err := kernel.UUIDFromString(request.TechnicianID)
	if err != nil {
		return badRequest(ctx, "invalid technician id")
	}

	cmd, err := commands.NewBulkAssignOrdersCommand(orderIDs, technicianID, actor, request.Notes)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	results, err := s.bulkAssign.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, bulkAssignResponse(results))
}

// CreateTechnician handles POST /api/v1/technicians.
func (s *Server) CreateTechnician(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return unauthorized(ctx)
	}
	if !actor.Role().IsDispatcher() {
		return writeDomainError(ctx, errs.NewActorForbiddenError(
			actor.ID().String(), "only dispatch staff may register technicians"))
	}

	var request CreateTechnicianRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	accountID, err := kernel.UUIDFromString(request.AccountID)
	if err != nil {
		return badRequest(ctx, "invalid account id")
	}

	workingDays := make([]time.Weekday, 0, len(request.WorkingDays))
	for _, day := range request.WorkingDays {
		workingDays = append(workingDays, time.Weekday(day))
	}

	technicianID := kernel.NewUUID()
	cmd, err := commands.NewCreateTechnicianCommand(
		technicianID,
		accountID,
		request.EmployeeID,
		request.Name,
		request.Cluster,
		request.Skills,
		request.Territory,
		request.WorkStart,
		request.WorkEnd,
		workingDays,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.createTechnician.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: technicianID.String()})
}

// GetAssignableTechnicians handles GET /api/v1/technicians/assignable.
func (s *Server) GetAssignableTechnicians(ctx echo.Context) error {
	query := queries.NewGetAssignableTechniciansQuery(ctx.QueryParam("cluster"), ctx.QueryParam("territory"))

	result, err := s.getAssignable.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, assignableTechniciansResponse(result))
}

// GetTechnicianAnalytics handles GET /api/v1/technicians/:technicianID/analytics.
func (s *Server) GetTechnicianAnalytics(ctx echo.Context) error {
	technicianID, err := kernel.UUIDFromString(ctx.Param("technicianID"))
	if err != nil {
		return badRequest(ctx, "invalid technician id")
	}

	query, err := queries.NewGetTechnicianAnalyticsQuery(technicianID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.getTechAnalytics.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, technicianAnalyticsResponse(result))
}

// SetTechnicianAvailability handles POST /api/v1/technicians/:technicianID/availability.
func (s *Server) SetTechnicianAvailability(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	technicianID, err := kernel.UUIDFromString(ctx.Param("technicianID"))
	if err != nil {
		return badRequest(ctx, "invalid technician id")
	}

	var request SetAvailabilityRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	location, err := request.Location.toDomain()
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewSetTechnicianAvailabilityCommand(technicianID, request.Available, actor, location)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.setAvailability.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
