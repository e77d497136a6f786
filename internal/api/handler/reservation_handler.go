package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lightbnb/lightbnb-api/internal/core/ports"
)

type ReservationHandler struct {
	reservations ports.ReservationService
}

func NewReservationHandler(reservations ports.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservations: reservations}
}

// List handles GET /reservations for the authenticated guest.
//
// @Summary      List my reservations
// @Tags         reservations
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum rows (default 10, max 100)"
// @Success      200    {object}  reservationsResponse
// @Failure      401    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /reservations [get]
func (h *ReservationHandler) List(c echo.Context) error {
	guestID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var q listReservationsQuery
	if err := bindAndValidate(c, &q); err != nil {
		return err
	}

	reservations, err := h.reservations.ListForGuest(c.Request().Context(), guestID, q.Limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, reservationsResponse{Reservations: reservations})
}
