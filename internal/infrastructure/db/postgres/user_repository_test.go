package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/lightbnb/lightbnb-api/internal/core/domain"
)

var userCols = []string{"id", "name", "email", "password"}

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestUserRepository_FindByEmail_Success(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewUserRepository(db, 0)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, email, password FROM users WHERE email = $1`)).
		WithArgs("tristanjacobs@gmail.com").
		WillReturnRows(sqlmock.NewRows(userCols).AddRow(1, "Devin Sanders", "tristanjacobs@gmail.com", "$2a$10$hash"))

	u, err := r.FindByEmail(context.Background(), "tristanjacobs@gmail.com")
	require.NoError(t, err)
	require.Equal(t, int64(1), u.ID)
	require.Equal(t, "tristanjacobs@gmail.com", u.Email)
	require.Equal(t, "$2a$10$hash", u.Password)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewUserRepository(db, 0)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE email = $1`)).
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows(userCols))

	u, err := r.FindByEmail(context.Background(), "nobody@example.com")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
	require.Nil(t, u)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail_Failure(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewUserRepository(db, 0)

	boom := errors.New("connection reset")
	mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE email = $1`)).
		WithArgs("a@b.com").
		WillReturnError(boom)

	_, err := r.FindByEmail(context.Background(), "a@b.com")
	require.ErrorIs(t, err, boom)
	require.NotErrorIs(t, err, domain.ErrUserNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByID(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewUserRepository(db, 0)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, email, password FROM users WHERE id = $1`)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(userCols).AddRow(7, "Eva Stanley", "sebastianguerra@ymail.com", "hash"))

	u, err := r.FindByID(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, int64(7), u.ID)
	require.Equal(t, "Eva Stanley", u.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewUserRepository(db, 0)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE id = $1`)).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(userCols))

	_, err := r.FindByID(context.Background(), 99)
	require.ErrorIs(t, err, domain.ErrUserNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewUserRepository(db, 0)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (name, password, email) VALUES ($1, $2, $3) RETURNING id, name, email, password`)).
		WithArgs("Name", "hash", "a@b.com").
		WillReturnRows(sqlmock.NewRows(userCols).AddRow(12, "Name", "a@b.com", "hash"))

	u, err := r.Create(context.Background(), &domain.User{Name: "Name", Email: "a@b.com", Password: "hash"})
	require.NoError(t, err)
	require.Equal(t, int64(12), u.ID)
	require.Equal(t, "a@b.com", u.Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewUserRepository(db, 0)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
		WithArgs("Name", "hash", "a@b.com").
		WillReturnError(&pgconn.PgError{Code: uniqueViolation, Message: "duplicate key value violates unique constraint"})

	_, err := r.Create(context.Background(), &domain.User{Name: "Name", Email: "a@b.com", Password: "hash"})
	require.ErrorIs(t, err, domain.ErrUserExists)
	require.NoError(t, mock.ExpectationsWereMet())
}
