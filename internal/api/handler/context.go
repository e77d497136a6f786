package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lightbnb/lightbnb-api/internal/api/middleware"
)

// ctxUserID returns the caller id injected by the Auth middleware. A missing
// id means the route was mounted without Auth.
func ctxUserID(c echo.Context) (int64, error) {
	id, _ := c.Get(middleware.ContextUserID).(int64)
	if id <= 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
