package http

import (
	"net/http"
	"strconv"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/customer"
	"workshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(c echo.Context) error {
	var req CreateCustomerRequest
	if err := bindRequest(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateCustomerCommand(
		req.Name, req.DocumentType, req.Document, req.Email, req.Phone, req.Address.toDomain(),
	)
	if err != nil {
		return s.fail(c, err)
	}

	snapshot, err := s.handlers.CreateCustomer.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, snapshot)
}

// ListCustomers handles GET /api/v1/customers?active=&page=&limit=. Without
// active, inactive customers are listed too.
func (s *Server) ListCustomers(c echo.Context) error {
	var page, limit int
	if err := echo.QueryParamsBinder(c).
		Int("page", &page).
		Int("limit", &limit).
		BindError(); err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("pagination", err))
	}

	var active *bool
	if raw := c.QueryParam("active"); raw != "" {
		flag, err := strconv.ParseBool(raw)
		if err != nil {
			return s.fail(c, errs.NewValueIsInvalidErrorWithCause("active", err))
		}
		active = &flag
	}

	query, err := queries.NewListCustomersQuery(active, page, limit)
	if err != nil {
		return s.fail(c, err)
	}

	response, err := s.handlers.ListCustomers.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, response)
}

// GetCustomer handles GET /api/v1/customers/:id.
func (s *Server) GetCustomer(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetCustomerQuery(id)
	if err != nil {
		return s.fail(c, err)
	}

	snapshot, err := s.handlers.GetCustomer.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, snapshot)
}

// UpdateCustomer handles PUT /api/v1/customers/:id. Omitted fields keep
// their current value.
func (s *Server) UpdateCustomer(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	var req UpdateCustomerRequest
	if err = bindRequest(c, &req); err != nil {
		return s.fail(c, err)
	}

	var address *customer.Address
	if req.Address != nil {
		a := req.Address.toDomain()
		address = &a
	}

	cmd, err := commands.NewUpdateCustomerCommand(id, req.Name, req.Email, req.Phone, address)
	if err != nil {
		return s.fail(c, err)
	}

	snapshot, err := s.handlers.UpdateCustomer.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, snapshot)
}

// DeactivateCustomer handles DELETE /api/v1/customers/:id. The customer is
// kept and marked inactive.
func (s *Server) DeactivateCustomer(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewDeactivateCustomerCommand(id)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.handlers.DeactivateCustomer.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
