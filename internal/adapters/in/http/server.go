// Package http exposes the order lifecycle over a REST API. One route per
// transition; the caller's identity arrives in the X-User-Id header and the
// admin flag in X-User-Role, both resolved upstream by the gateway.
package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/agent"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	headerUserID   = "X-User-Id"
	headerUserRole = "X-User-Role"
	roleAdmin      = "admin"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler     commands.CreateOrderCommandHandler
	confirmOrderHandler    commands.ConfirmOrderCommandHandler
	pickUpOrderHandler     commands.PickUpOrderCommandHandler
	startTransitHandler    commands.StartTransitCommandHandler
	deliverOrderHandler    commands.DeliverOrderCommandHandler
	signOrderHandler       commands.SignOrderCommandHandler
	cancelOrderHandler     commands.CancelOrderCommandHandler
	markAbnormalHandler    commands.MarkAbnormalCommandHandler
	setAvailabilityHandler commands.SetAgentAvailabilityCommandHandler

	getOrderHandler        queries.GetOrderQueryHandler
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler
	getAgentStatsHandler   queries.GetAgentStatsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	pickUpOrderHandler commands.PickUpOrderCommandHandler,
	startTransitHandler commands.StartTransitCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	signOrderHandler commands.SignOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	markAbnormalHandler commands.MarkAbnormalCommandHandler,
	setAvailabilityHandler commands.SetAgentAvailabilityCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler,
	getAgentStatsHandler queries.GetAgentStatsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		confirmOrderHandler:    confirmOrderHandler,
		pickUpOrderHandler:     pickUpOrderHandler,
		startTransitHandler:    startTransitHandler,
		deliverOrderHandler:    deliverOrderHandler,
		signOrderHandler:       signOrderHandler,
		cancelOrderHandler:     cancelOrderHandler,
		markAbnormalHandler:    markAbnormalHandler,
		setAvailabilityHandler: setAvailabilityHandler,
		getOrderHandler:        getOrderHandler,
		getOrderHistoryHandler: getOrderHistoryHandler,
		getAgentStatsHandler:   getAgentStatsHandler,
	}
}

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.GET("/orders/:id/history", s.GetOrderHistory)
	api.POST("/orders/:id/confirm", s.ConfirmOrder)
	api.POST("/orders/:id/pickup", s.PickUpOrder)
	api.POST("/orders/:id/transit", s.StartTransit)
	api.POST("/orders/:id/deliver", s.DeliverOrder)
	api.POST("/orders/:id/sign", s.SignOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/abnormal", s.MarkAbnormal)

	api.GET("/agents/:id/stats", s.GetAgentStats)
	api.PUT("/agents/:id/status", s.SetAgentStatus)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	callerID, err := callerID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req CreateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		callerID, productID, req.Quantity,
		req.ShippingAddress, req.ReceiverName, req.ReceiverPhone, req.Remark)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderFromDomain(created))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromQuery(resp))
}

// GetOrderHistory handles GET /api/v1/orders/:id/history.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderHistoryQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	entries, err := s.getOrderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]HistoryEntryResponse, len(entries))
	for i, entry := range entries {
		response[i] = HistoryEntryResponse{
			ID:         entry.ID.String(),
			OperatorID: entry.OperatorID.String(),
			Action:     entry.Action,
			Detail:     entry.Detail,
			FromStatus: entry.FromStatus,
			ToStatus:   entry.ToStatus,
			CreatedAt:  entry.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ConfirmOrder handles POST /api/v1/orders/:id/confirm. The caller is the
// merchant; assignment happens inside the confirmation when an agent is free.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	callerID, orderID, err := callerAndOrder(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewConfirmOrderCommand(callerID, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	confirmed, err := s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(confirmed))
}

// PickUpOrder handles POST /api/v1/orders/:id/pickup.
func (s *Server) PickUpOrder(ctx echo.Context) error {
	callerID, orderID, err := callerAndOrder(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewPickUpOrderCommand(callerID, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.pickUpOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(updated))
}

// StartTransit handles POST /api/v1/orders/:id/transit.
func (s *Server) StartTransit(ctx echo.Context) error {
	callerID, orderID, err := callerAndOrder(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewStartTransitCommand(callerID, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.startTransitHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(updated))
}

// DeliverOrder handles POST /api/v1/orders/:id/deliver.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	callerID, orderID, err := callerAndOrder(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeliverOrderCommand(callerID, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(updated))
}

// SignOrder handles POST /api/v1/orders/:id/sign.
func (s *Server) SignOrder(ctx echo.Context) error {
	callerID, orderID, err := callerAndOrder(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSignOrderCommand(callerID, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	signed, err := s.signOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(signed))
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	callerID, orderID, err := callerAndOrder(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(callerID, orderID, isAdmin(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(cancelled))
}

// MarkAbnormal handles POST /api/v1/orders/:id/abnormal.
func (s *Server) MarkAbnormal(ctx echo.Context) error {
	callerID, orderID, err := callerAndOrder(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req MarkAbnormalRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewMarkAbnormalCommand(callerID, orderID, req.Reason, isAdmin(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	flagged, err := s.markAbnormalHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(flagged))
}

// GetAgentStats handles GET /api/v1/agents/:id/stats.
func (s *Server) GetAgentStats(ctx echo.Context) error {
	agentID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetAgentStatsQuery(agentID)
	if err != nil {
		return writeError(ctx, err)
	}

	stats, err := s.getAgentStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, stats)
}

// SetAgentStatus handles PUT /api/v1/agents/:id/status. Agents change their
// own status; the path ID must match the caller.
func (s *Server) SetAgentStatus(ctx echo.Context) error {
	callerID, err := callerID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	agentID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	if !callerID.IsEqual(agentID) {
		return writeError(ctx, errs.NewForbiddenError("set agent status", callerID.String()))
	}

	var req SetAgentStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	availability, err := agent.AvailabilityFromString(req.Availability)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSetAgentAvailabilityCommand(agentID, availability)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.setAvailabilityHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AgentStatusResponse{
		ID:           updated.ID().String(),
		Name:         updated.Name(),
		Availability: updated.Availability().String(),
	})
}

func callerID(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(headerUserID)
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(headerUserID + " header")
	}
	return kernel.UUIDFromString(raw)
}

func isAdmin(ctx echo.Context) bool {
	return ctx.Request().Header.Get(headerUserRole) == roleAdmin
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

func callerAndOrder(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	caller, err := callerID(ctx)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	return caller, orderID, nil
}

// writeError maps domain errors to HTTP statuses. Transition and concurrency
// rejections are both conflicts from the API consumer's point of view.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition), errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrInsufficientStock):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
