package http

import (
	"strings"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

func bindRequest(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errMalformedBody
	}
	return c.Validate(req)
}

func pathID(c echo.Context) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return id, nil
}

func actor(c echo.Context) (string, error) {
	user := strings.TrimSpace(c.Request().Header.Get(HeaderUserID))
	if user == "" {
		return "", errMissingActor
	}
	return user, nil
}

// parseUUID converts a string already checked by the uuid validator tag.
func parseUUID(s string) (kernel.UUID, error) {
	return kernel.UUIDFromString(s)
}
