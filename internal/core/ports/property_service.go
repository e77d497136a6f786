package ports

import (
	"context"

	"github.com/lightbnb/lightbnb-api/internal/core/domain"
)

type PropertyService interface {
	List(ctx context.Context, filter domain.PropertyFilter, limit int) ([]domain.Property, error)
	Add(ctx context.Context, property *domain.Property) (*domain.Property, error)
}

type ReservationService interface {
	ListForGuest(ctx context.Context, guestID int64, limit int) ([]domain.Reservation, error)
}
