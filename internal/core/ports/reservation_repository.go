package ports

import (
	"context"

	"github.com/lightbnb/lightbnb-api/internal/core/domain"
)

type ReservationRepository interface {
	ListByGuest(ctx context.Context, guestID int64, limit int) ([]domain.Reservation, error)
}
