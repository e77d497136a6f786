package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/lightbnb/lightbnb-api/internal/core/domain"
)

var reservationCols = []string{
	"id", "title", "cost_per_night", "start_date", "average_rating",
	"number_of_bedrooms", "number_of_bathrooms", "parking_spaces", "thumbnail_photo_url",
}

func TestReservationRepository_ListByGuest(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewReservationRepository(db, 0)

	first := time.Date(2018, 9, 11, 0, 0, 0, 0, time.UTC)
	second := time.Date(2019, 1, 4, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE reservations.guest_id = $1 GROUP BY reservations.id`)).
		WithArgs(int64(1), 2).
		WillReturnRows(sqlmock.NewRows(reservationCols).
			AddRow(1, "Speed lamp", 93061, first, 4.1, 6, 4, 6, "https://example.com/1.jpg").
			AddRow(2, "Blank corner", 85234, second, 3.8, 2, 1, 0, "https://example.com/2.jpg"))

	got, err := r.ListByGuest(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "Speed lamp", got[0].Title)
	require.InDelta(t, 4.1, got[0].AverageRating, 0.0001)
	require.False(t, got[1].StartDate.Before(got[0].StartDate))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepository_ListByGuest_DefaultLimit(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewReservationRepository(db, 0)

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY reservations.start_date LIMIT $2`)).
		WithArgs(int64(3), domain.DefaultListLimit).
		WillReturnRows(sqlmock.NewRows(reservationCols))

	got, err := r.ListByGuest(context.Background(), 3, 0)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepository_ListByGuest_Failure(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewReservationRepository(db, 0)

	boom := errors.New("relation \"reservations\" does not exist")
	mock.ExpectQuery(regexp.QuoteMeta(`FROM reservations`)).WillReturnError(boom)

	_, err := r.ListByGuest(context.Background(), 1, 10)
	require.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}
