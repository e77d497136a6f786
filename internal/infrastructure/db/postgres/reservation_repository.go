package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/lightbnb/lightbnb-api/internal/core/domain"
)

// A reservation appears only when its property has at least one review.
// Every non-aggregated column is listed in GROUP BY.
const listReservationsByGuestQuery = `
	SELECT reservations.id AS id,
		properties.title,
		properties.cost_per_night,
		reservations.start_date,
		avg(property_reviews.rating)::float8 AS average_rating,
		properties.number_of_bedrooms,
		properties.number_of_bathrooms,
		properties.parking_spaces,
		properties.thumbnail_photo_url
	FROM reservations
	JOIN properties ON reservations.property_id = properties.id
	JOIN property_reviews ON property_reviews.property_id = properties.id
	WHERE reservations.guest_id = $1
	GROUP BY reservations.id,
		properties.title,
		properties.cost_per_night,
		reservations.start_date,
		properties.number_of_bedrooms,
		properties.number_of_bathrooms,
		properties.parking_spaces,
		properties.thumbnail_photo_url
	ORDER BY reservations.start_date
	LIMIT $2`

type ReservationRepository struct {
	db      *sqlx.DB
	timeout time.Duration
}

func NewReservationRepository(db *sqlx.DB, timeout time.Duration) *ReservationRepository {
	return &ReservationRepository{db: db, timeout: queryTimeout(timeout)}
}

// ListByGuest returns up to limit reservations made by the guest, earliest
// start date first.
func (r *ReservationRepository) ListByGuest(ctx context.Context, guestID int64, limit int) (_ []domain.Reservation, err error) {
	defer observe("reservation_list_by_guest", time.Now(), &err)

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	reservations := make([]domain.Reservation, 0)
	if err := r.db.SelectContext(ctx, &reservations, listReservationsByGuestQuery, guestID, domain.NormalizeLimit(limit)); err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	return reservations, nil
}
