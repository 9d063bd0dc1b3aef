package http

import (
	"fmt"
	"net/http"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateServiceOrder handles POST /api/v1/service-orders.
func (s *Server) CreateServiceOrder(c echo.Context) error {
	createdBy, err := actor(c)
	if err != nil {
		return s.fail(c, err)
	}

	var req CreateServiceOrderRequest
	if err = bindRequest(c, &req); err != nil {
		return s.fail(c, err)
	}

	customerID, err := parseUUID(req.CustomerID)
	if err != nil {
		return s.fail(c, err)
	}
	vehicleID, err := parseUUID(req.VehicleID)
	if err != nil {
		return s.fail(c, err)
	}

	services := make([]commands.OrderLine, 0, len(req.Services))
	for i, line := range req.Services {
		id, parseErr := parseUUID(line.ServiceID)
		if parseErr != nil {
			return s.fail(c, fmt.Errorf("services[%d]: %w", i, parseErr))
		}
		services = append(services, commands.OrderLine{CatalogID: id, Quantity: line.Quantity})
	}
	parts := make([]commands.OrderLine, 0, len(req.Parts))
	for i, line := range req.Parts {
		id, parseErr := parseUUID(line.PartID)
		if parseErr != nil {
			return s.fail(c, fmt.Errorf("parts[%d]: %w", i, parseErr))
		}
		parts = append(parts, commands.OrderLine{CatalogID: id, Quantity: line.Quantity})
	}

	cmd, err := commands.NewCreateServiceOrderCommand(
		customerID, vehicleID, req.Description, req.Priority, createdBy, services, parts, req.EstimatedCompletion,
	)
	if err != nil {
		return s.fail(c, err)
	}

	snapshot, err := s.handlers.CreateServiceOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, snapshot)
}

// ListServiceOrders handles GET /api/v1/service-orders?status=&customerId=&page=&limit=.
func (s *Server) ListServiceOrders(c echo.Context) error {
	var page, limit int
	if err := echo.QueryParamsBinder(c).
		Int("page", &page).
		Int("limit", &limit).
		BindError(); err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("pagination", err))
	}

	query, err := queries.NewListServiceOrdersQuery(c.QueryParam("status"), c.QueryParam("customerId"), page, limit)
	if err != nil {
		return s.fail(c, err)
	}

	response, err := s.handlers.ListServiceOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, response)
}

// GetServiceOrder handles GET /api/v1/service-orders/:id, where :id is the
// order UUID or its number.
func (s *Server) GetServiceOrder(c echo.Context) error {
	query, err := queries.NewGetServiceOrderQuery(c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}

	snapshot, err := s.handlers.GetServiceOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, snapshot)
}

// UpdateServiceOrderStatus handles PATCH /api/v1/service-orders/:id/status.
func (s *Server) UpdateServiceOrderStatus(c echo.Context) error {
	changedBy, err := actor(c)
	if err != nil {
		return s.fail(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	var req UpdateServiceOrderStatusRequest
	if err = bindRequest(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewUpdateServiceOrderStatusCommand(id, req.Status, changedBy, req.Reason)
	if err != nil {
		return s.fail(c, err)
	}

	snapshot, err := s.handlers.UpdateServiceOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, snapshot)
}

// ApproveServiceOrder handles POST /api/v1/service-orders/:id/approve. An
// absent approvedAmount approves the current total.
func (s *Server) ApproveServiceOrder(c echo.Context) error {
	approvedBy, err := actor(c)
	if err != nil {
		return s.fail(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	var req ApproveServiceOrderRequest
	if err = bindRequest(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewApproveServiceOrderCommand(id, approvedBy, req.ApprovedAmount)
	if err != nil {
		return s.fail(c, err)
	}

	snapshot, err := s.handlers.ApproveServiceOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, snapshot)
}

// UpdateServiceOrderDetails handles PATCH /api/v1/service-orders/:id.
func (s *Server) UpdateServiceOrderDetails(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	var req UpdateServiceOrderDetailsRequest
	if err = bindRequest(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewUpdateServiceOrderDetailsCommand(id, commands.ServiceOrderDetails{
		Diagnosis:           req.Diagnosis,
		Observation:         req.Observation,
		Priority:            req.Priority,
		EstimatedCompletion: req.EstimatedCompletion,
		AssignedTo:          req.AssignedTo,
	})
	if err != nil {
		return s.fail(c, err)
	}

	snapshot, err := s.handlers.UpdateServiceOrderDetails.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, snapshot)
}

// GetAverageExecutionTime handles GET /api/v1/service-orders/metrics/average-execution-time.
func (s *Server) GetAverageExecutionTime(c echo.Context) error {
	average, err := s.handlers.AverageExecutionTime.Handle(
		c.Request().Context(),
		queries.NewGetAverageExecutionTimeQuery(),
	)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, average)
}
