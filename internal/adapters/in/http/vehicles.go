package http

import (
	"net/http"

	"workshop/internal/core/application/usecases/commands"

	"github.com/labstack/echo/v4"
)

// CreateVehicle handles POST /api/v1/vehicles.
func (s *Server) CreateVehicle(c echo.Context) error {
	var req CreateVehicleRequest
	if err := bindRequest(c, &req); err != nil {
		return s.fail(c, err)
	}

	customerID, err := parseUUID(req.CustomerID)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateVehicleCommand(
		customerID, req.LicensePlate, req.Brand, req.Model, req.Year, req.Color, req.ChassisNumber,
	)
	if err != nil {
		return s.fail(c, err)
	}

	snapshot, err := s.handlers.CreateVehicle.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, snapshot)
}
