// Package http exposes the workshop use cases as a JSON API on echo.
//
// Every mutating endpoint on service orders takes the acting user from the
// X-User-ID header.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/catalog"
	"workshop/internal/core/domain/model/customer"
	"workshop/internal/core/domain/model/part"
	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/core/domain/model/vehicle"

	"github.com/labstack/echo/v4"
)

// HeaderUserID carries the acting user for audit fields.
const HeaderUserID = "X-User-ID"

// Handler is the shape shared by command and query handlers.
type Handler[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

type DeactivateCustomerHandler interface {
	Handle(ctx context.Context, cmd commands.DeactivateCustomerCommand) error
}

type Handlers struct {
	CreateCustomer     Handler[commands.CreateCustomerCommand, customer.Snapshot]
	UpdateCustomer     Handler[commands.UpdateCustomerCommand, customer.Snapshot]
	DeactivateCustomer DeactivateCustomerHandler
	GetCustomer        Handler[queries.GetCustomerQuery, customer.Snapshot]
	ListCustomers      Handler[queries.ListCustomersQuery, queries.ListCustomersQueryResponse]

	CreateVehicle Handler[commands.CreateVehicleCommand, vehicle.Snapshot]

	CreateService     Handler[commands.CreateServiceCommand, catalog.Snapshot]
	CreatePart        Handler[commands.CreatePartCommand, part.Snapshot]
	RestockPart       Handler[commands.RestockPartCommand, part.Snapshot]
	ListLowStockParts Handler[queries.ListLowStockPartsQuery, []queries.LowStockPart]

	CreateServiceOrder        Handler[commands.CreateServiceOrderCommand, serviceorder.Snapshot]
	UpdateServiceOrderStatus  Handler[commands.UpdateServiceOrderStatusCommand, serviceorder.Snapshot]
	ApproveServiceOrder       Handler[commands.ApproveServiceOrderCommand, serviceorder.Snapshot]
	UpdateServiceOrderDetails Handler[commands.UpdateServiceOrderDetailsCommand, serviceorder.Snapshot]
	GetServiceOrder           Handler[queries.GetServiceOrderQuery, serviceorder.Snapshot]
	ListServiceOrders         Handler[queries.ListServiceOrdersQuery, queries.ListServiceOrdersQueryResponse]
	AverageExecutionTime      Handler[queries.GetAverageExecutionTimeQuery, queries.AverageExecutionTime]

	// HealthCheck is optional; when set, /health reports 503 on its error.
	HealthCheck func(ctx context.Context) error
}

type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http"),
	}
}

// Register mounts /health and the /api/v1 routes on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/customers", s.CreateCustomer)
	api.GET("/customers", s.ListCustomers)
	api.GET("/customers/:id", s.GetCustomer)
	api.PUT("/customers/:id", s.UpdateCustomer)
	api.DELETE("/customers/:id", s.DeactivateCustomer)

	api.POST("/vehicles", s.CreateVehicle)

	api.POST("/services", s.CreateService)
	api.POST("/parts", s.CreatePart)
	api.GET("/parts/low-stock", s.ListLowStockParts)
	api.POST("/parts/:id/restock", s.RestockPart)

	api.POST("/service-orders", s.CreateServiceOrder)
	api.GET("/service-orders", s.ListServiceOrders)
	api.GET("/service-orders/metrics/average-execution-time", s.GetAverageExecutionTime)
	api.GET("/service-orders/:id", s.GetServiceOrder)
	api.PATCH("/service-orders/:id", s.UpdateServiceOrderDetails)
	api.PATCH("/service-orders/:id/status", s.UpdateServiceOrderStatus)
	api.POST("/service-orders/:id/approve", s.ApproveServiceOrder)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	if s.handlers.HealthCheck != nil {
		if err := s.handlers.HealthCheck(c.Request().Context()); err != nil {
			s.logger.WarnContext(c.Request().Context(), "health check failed", "error", err)
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "unavailable"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
