package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/lightbnb/lightbnb-api/internal/core/domain"
)

const propertyColumns = `id, COALESCE(owner_id, 0) AS owner_id, title, COALESCE(description, '') AS description,
	thumbnail_photo_url, cover_photo_url, cost_per_night, parking_spaces, number_of_bathrooms,
	number_of_bedrooms, country, street, city, province, post_code, active`

const (
	listPropertiesQuery = `SELECT ` + propertyColumns + ` FROM properties LIMIT $1`

	propertyExistsQuery = `SELECT EXISTS (SELECT 1 FROM properties WHERE COALESCE(owner_id, 0) = $1 AND title = $2)`

	insertPropertyQuery = `INSERT INTO properties (owner_id, title, description, thumbnail_photo_url,
	cover_photo_url, cost_per_night, parking_spaces, number_of_bathrooms, number_of_bedrooms,
	country, street, city, province, post_code, active)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	RETURNING ` + propertyColumns
)

type PropertyRepository struct {
	db      *sqlx.DB
	timeout time.Duration
}

func NewPropertyRepository(db *sqlx.DB, timeout time.Duration) *PropertyRepository {
	return &PropertyRepository{db: db, timeout: queryTimeout(timeout)}
}

// List returns up to limit properties. The filter is accepted for API
// compatibility and does not narrow the result.
func (r *PropertyRepository) List(ctx context.Context, _ domain.PropertyFilter, limit int) (_ []domain.Property, err error) {
	defer observe("property_list", time.Now(), &err)

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	properties := make([]domain.Property, 0)
	if err := r.db.SelectContext(ctx, &properties, listPropertiesQuery, domain.NormalizeLimit(limit)); err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	return properties, nil
}

// Exists reports whether the owner already has a property with this title.
func (r *PropertyRepository) Exists(ctx context.Context, ownerID int64, title string) (_ bool, err error) {
	defer observe("property_exists", time.Now(), &err)

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var exists bool
	if err := r.db.GetContext(ctx, &exists, propertyExistsQuery, ownerID, title); err != nil {
		return false, fmt.Errorf("check property: %w", err)
	}
	return exists, nil
}

// Create inserts the property and returns the stored row.
func (r *PropertyRepository) Create(ctx context.Context, p *domain.Property) (_ *domain.Property, err error) {
	defer observe("property_create", time.Now(), &err)

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var created domain.Property
	err = r.db.QueryRowxContext(ctx, insertPropertyQuery,
		p.OwnerID, p.Title, p.Description, p.ThumbnailPhotoURL,
		p.CoverPhotoURL, p.CostPerNight, p.ParkingSpaces, p.NumberOfBathrooms, p.NumberOfBedrooms,
		p.Country, p.Street, p.City, p.Province, p.PostCode, p.Active,
	).StructScan(&created)
	if err != nil {
		if pgCode(err) == foreignKeyViolation {
			return nil, fmt.Errorf("%w: owner %d does not exist", domain.ErrInvalidInput, p.OwnerID)
		}
		return nil, fmt.Errorf("insert property: %w", err)
	}
	return &created, nil
}
