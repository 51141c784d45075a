// Package http exposes the service's REST surface on top of echo.
package http

import (
	"net/http"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	processOrdersHandler commands.ProcessUserOrdersCommandHandler
	getOrdersHandler     queries.GetProcessedOrdersQueryHandler
}

// Error is the JSON error envelope of every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Order is the JSON representation of one processed order.
type Order struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"`
	Amount   float64 `json:"amount"`
	Flag     bool    `json:"flag"`
	Status   string  `json:"status"`
	Priority string  `json:"priority"`
}

// ProcessResult reports the outcome of one processing run.
type ProcessResult struct {
	Processed int     `json:"processed"`
	Orders    []Order `json:"orders"`
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	processOrdersHandler commands.ProcessUserOrdersCommandHandler,
	getOrdersHandler queries.GetProcessedOrdersQueryHandler,
) *Server {
	return &Server{
		processOrdersHandler: processOrdersHandler,
		getOrdersHandler:     getOrdersHandler,
	}
}

// RegisterRoutes attaches the server's routes to an echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/users/:userID/orders/process", s.ProcessOrders)
	e.GET("/api/v1/users/:userID/orders", s.GetOrders)
	e.GET("/health", s.Health)
}

// ProcessOrders handles POST /api/v1/users/:userID/orders/process - runs
// the order processor for one user's pending orders.
func (s *Server) ProcessOrders(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid user ID",
		})
	}

	command, err := commands.NewProcessUserOrdersCommand(userID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid user ID",
		})
	}

	orders, err := s.processOrdersHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to process orders",
		})
	}

	result := ProcessResult{
		Processed: len(orders),
		Orders:    make([]Order, len(orders)),
	}
	for i, o := range orders {
		result.Orders[i] = Order{
			ID:       o.ID().String(),
			Type:     o.Type().String(),
			Amount:   o.Amount(),
			Flag:     o.Flag(),
			Status:   o.Status().String(),
			Priority: o.Priority().String(),
		}
	}
	return ctx.JSON(http.StatusOK, result)
}

// GetOrders handles GET /api/v1/users/:userID/orders - retrieves the
// user's processed orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid user ID",
		})
	}

	query, err := queries.NewGetProcessedOrdersQuery(userID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid user ID",
		})
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = Order{
			ID:       o.ID.String(),
			Type:     o.Type,
			Amount:   o.Amount,
			Flag:     o.Flag,
			Status:   o.Status,
			Priority: o.Priority,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}
