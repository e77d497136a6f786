package ports

import (
	"context"

	"github.com/lightbnb/lightbnb-api/internal/core/domain"
)

// PropertyReader lists properties. Implementations return at most limit rows.
type PropertyReader interface {
	List(ctx context.Context, filter domain.PropertyFilter, limit int) ([]domain.Property, error)
}

// PropertyWriter stores a new property and returns it with its assigned id.
type PropertyWriter interface {
	Create(ctx context.Context, property *domain.Property) (*domain.Property, error)
}
