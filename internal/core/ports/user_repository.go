package ports

import (
	"context"

	"github.com/lightbnb/lightbnb-api/internal/core/domain"
)

// UserRepository defines persistence for user accounts. Lookups return
// domain.ErrUserNotFound when no row matches; any other error is a store failure.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
