package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/lightbnb/lightbnb-api/internal/core/domain"
)

const (
	findUserByEmailQuery = `SELECT id, name, email, password FROM users WHERE email = $1`
	findUserByIDQuery    = `SELECT id, name, email, password FROM users WHERE id = $1`
	insertUserQuery      = `INSERT INTO users (name, password, email) VALUES ($1, $2, $3) RETURNING id, name, email, password`
)

type UserRepository struct {
	db      *sqlx.DB
	timeout time.Duration
}

func NewUserRepository(db *sqlx.DB, timeout time.Duration) *UserRepository {
	return &UserRepository{db: db, timeout: queryTimeout(timeout)}
}

// FindByEmail returns the user whose email matches exactly.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (_ *domain.User, err error) {
	defer observe("user_find_by_email", time.Now(), &err)
	return r.findOne(ctx, findUserByEmailQuery, email)
}

// FindByID returns the user with the given id.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (_ *domain.User, err error) {
	defer observe("user_find_by_id", time.Now(), &err)
	return r.findOne(ctx, findUserByIDQuery, id)
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var u domain.User
	if err := r.db.GetContext(ctx, &u, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

// Create inserts the user and returns the stored row. The password must
// already be hashed.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (_ *domain.User, err error) {
	defer observe("user_create", time.Now(), &err)

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var created domain.User
	err = r.db.QueryRowxContext(ctx, insertUserQuery, user.Name, user.Password, user.Email).StructScan(&created)
	if err != nil {
		if pgCode(err) == uniqueViolation {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &created, nil
}
