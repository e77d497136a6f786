package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the request into req and runs the echo validator.
// Both failures become 400 responses.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
