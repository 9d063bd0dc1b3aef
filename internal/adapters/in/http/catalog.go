package http

import (
	"net/http"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/part"

	"github.com/labstack/echo/v4"
)

// CreateService handles POST /api/v1/services.
func (s *Server) CreateService(c echo.Context) error {
	var req CreateServiceRequest
	if err := bindRequest(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateServiceCommand(
		req.Name, req.Description, req.EstimatedDuration, req.Price, req.Category,
	)
	if err != nil {
		return s.fail(c, err)
	}

	snapshot, err := s.handlers.CreateService.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, snapshot)
}

// CreatePart handles POST /api/v1/parts.
func (s *Server) CreatePart(c echo.Context) error {
	var req CreatePartRequest
	if err := bindRequest(c, &req); err != nil {
		return s.fail(c, err)
	}

	details := part.Details{
		Description:  req.Description,
		Manufacturer: req.Manufacturer,
		Unit:         req.Unit,
	}
	cmd, err := commands.NewCreatePartCommand(
		req.Name, req.PartNumber, details, req.Price, req.StockQuantity, req.MinStockLevel,
	)
	if err != nil {
		return s.fail(c, err)
	}

	snapshot, err := s.handlers.CreatePart.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, snapshot)
}

// RestockPart handles POST /api/v1/parts/:id/restock.
func (s *Server) RestockPart(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	var req RestockPartRequest
	if err = bindRequest(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewRestockPartCommand(id, req.Quantity)
	if err != nil {
		return s.fail(c, err)
	}

	snapshot, err := s.handlers.RestockPart.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, snapshot)
}

// ListLowStockParts handles GET /api/v1/parts/low-stock.
func (s *Server) ListLowStockParts(c echo.Context) error {
	parts, err := s.handlers.ListLowStockParts.Handle(c.Request().Context(), queries.NewListLowStockPartsQuery())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"parts": parts})
}
