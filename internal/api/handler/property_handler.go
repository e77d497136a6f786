package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lightbnb/lightbnb-api/internal/core/ports"
	"github.com/lightbnb/lightbnb-api/internal/metrics"
)

// PropertyHandler serves property listing and creation.
type PropertyHandler struct {
	properties ports.PropertyService
	// writeStore labels created-property metrics with the configured store.
	writeStore string
}

func NewPropertyHandler(properties ports.PropertyService, writeStore string) *PropertyHandler {
	return &PropertyHandler{properties: properties, writeStore: writeStore}
}

// List handles GET /properties.
//
// @Summary      List properties
// @Description  Returns up to limit properties (default 10). Filter parameters are accepted but not applied.
// @Tags         properties
// @Produce      json
// @Param        limit                    query     int     false  "Maximum rows (default 10, max 100)"
// @Param        city                     query     string  false  "City"
// @Param        owner_id                 query     int     false  "Owner id"
// @Param        minimum_price_per_night  query     int     false  "Minimum price per night"
// @Param        maximum_price_per_night  query     int     false  "Maximum price per night"
// @Param        minimum_rating           query     number  false  "Minimum rating"
// @Success      200                      {object}  propertiesResponse
// @Failure      400                      {object}  map[string]string
// @Failure      500                      {object}  map[string]string
// @Router       /properties [get]
func (h *PropertyHandler) List(c echo.Context) error {
	var q listPropertiesQuery
	if err := bindAndValidate(c, &q); err != nil {
		return err
	}

	properties, err := h.properties.List(c.Request().Context(), q.filter(), q.Limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, propertiesResponse{Properties: properties})
}

// Create handles POST /properties. The caller becomes the owner.
//
// @Summary      Add a property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string                 false  "Client-chosen key; repeats are rejected with 409"
// @Param        body             body      createPropertyRequest  true   "Property details"
// @Success      201              {object}  domain.Property
// @Failure      400              {object}  map[string]string
// @Failure      401              {object}  map[string]string
// @Failure      409              {object}  map[string]string
// @Failure      500              {object}  map[string]string
// @Router       /properties [post]
func (h *PropertyHandler) Create(c echo.Context) error {
	ownerID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createPropertyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	created, err := h.properties.Add(c.Request().Context(), req.toDomain(ownerID))
	if err != nil {
		return err
	}

	metrics.PropertiesCreatedTotal.WithLabelValues(h.writeStore).Inc()
	return c.JSON(http.StatusCreated, created)
}
