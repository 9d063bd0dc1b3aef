package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/part"
	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/core/domain/services"
	"workshop/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const internalErrMessage = "Internal server error"

var (
	errMalformedBody = errors.New("invalid request body")
	errMissingActor  = errs.NewValueIsRequiredError(HeaderUserID + " header")
)

type ErrorResponse struct {
	Code    int                 `json:"code"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// StatusFor maps an application error onto an HTTP status code.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	case errors.Is(err, serviceorder.ErrInvalidTransition),
		errors.Is(err, serviceorder.ErrIllegalApproval),
		errors.Is(err, part.ErrInsufficientStock),
		errors.Is(err, services.ErrInactiveService),
		errors.Is(err, services.ErrInactivePart),
		errors.Is(err, services.ErrVehicleCustomerMismatch):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrNothingToUpdate),
		errors.Is(err, errMalformedBody):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an ErrorResponse. Server errors are logged and their
// details kept out of the body.
func (s *Server) fail(c echo.Context, err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return c.JSON(http.StatusBadRequest, fromValidationErrors(validationErrs))
	}

	code := StatusFor(err)
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
		return c.JSON(code, ErrorResponse{Code: code, Message: internalErrMessage})
	}

	return c.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}

func fromValidationErrors(validationErrs validator.ValidationErrors) ErrorResponse {
	problems := make(map[string][]string, len(validationErrs))
	for _, fe := range validationErrs {
		// Namespace is Request.field[.nested]; the request type name is dropped.
		_, field, _ := strings.Cut(fe.Namespace(), ".")

		var problem string
		switch fe.Tag() {
		case "required":
			problem = "This field is required"
		case "min":
			problem = "Value is too short, min: " + fe.Param()
		case "max":
			problem = "Value is too long, max: " + fe.Param()
		case "len":
			problem = "Value must have length " + fe.Param()
		case "email":
			problem = "Value must be a valid email address"
		case "uuid":
			problem = "Value must be a valid UUID"
		case "oneof":
			problem = "Value must be one of: " + fe.Param()
		case "gt", "gte":
			problem = fmt.Sprintf("Value must be %s %s", comparison(fe.Tag()), fe.Param())
		default:
			problem = "Invalid value provided"
		}
		problems[field] = append(problems[field], problem)
	}

	return ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: "Request validation failed",
		Errors:  problems,
	}
}

func comparison(tag string) string {
	if tag == "gt" {
		return "greater than"
	}
	return "at least"
}
