package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/lightbnb/lightbnb-api/internal/core/domain"
	"github.com/lightbnb/lightbnb-api/internal/core/ports"
)

type ReservationService struct {
	repo   ports.ReservationRepository
	logger zerolog.Logger
}

func NewReservationService(repo ports.ReservationRepository, logger zerolog.Logger) *ReservationService {
	return &ReservationService{repo: repo, logger: logger}
}

// ListForGuest returns the guest's reservations, earliest first.
func (s *ReservationService) ListForGuest(ctx context.Context, guestID int64, limit int) ([]domain.Reservation, error) {
	limit = domain.NormalizeLimit(limit)
	reservations, err := s.repo.ListByGuest(ctx, guestID, limit)
	if err != nil {
		s.logger.Error().Err(err).Int64("guest_id", guestID).Msg("list reservations failed")
		return nil, err
	}

	s.logger.Debug().Int64("guest_id", guestID).Int("count", len(reservations)).Msg("reservations listed")
	return reservations, nil
}
