package handler

import "github.com/lightbnb/lightbnb-api/internal/core/domain"

// --- Users ---

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user"`
}

// --- Properties ---

type listPropertiesQuery struct {
	Limit                int     `query:"limit"                   validate:"gte=0"`
	City                 string  `query:"city"`
	OwnerID              int64   `query:"owner_id"                validate:"gte=0"`
	MinimumPricePerNight int64   `query:"minimum_price_per_night" validate:"gte=0"`
	MaximumPricePerNight int64   `query:"maximum_price_per_night" validate:"gte=0"`
	MinimumRating        float64 `query:"minimum_rating"          validate:"gte=0,lte=5"`
}

type createPropertyRequest struct {
	Title             string `json:"title"               validate:"required"`
	Description       string `json:"description"`
	ThumbnailPhotoURL string `json:"thumbnail_photo_url" validate:"required,url"`
	CoverPhotoURL     string `json:"cover_photo_url"     validate:"required,url"`
	CostPerNight      int64  `json:"cost_per_night"      validate:"gte=0"`
	ParkingSpaces     int    `json:"parking_spaces"      validate:"gte=0"`
	NumberOfBathrooms int    `json:"number_of_bathrooms" validate:"gte=0"`
	NumberOfBedrooms  int    `json:"number_of_bedrooms"  validate:"gte=0"`
	Country           string `json:"country"             validate:"required"`
	Street            string `json:"street"              validate:"required"`
	City              string `json:"city"                validate:"required"`
	Province          string `json:"province"            validate:"required"`
	PostCode          string `json:"post_code"           validate:"required"`
}

type propertiesResponse struct {
	Properties []domain.Property `json:"properties"`
}

// --- Reservations ---

type listReservationsQuery struct {
	Limit int `query:"limit" validate:"gte=0"`
}

type reservationsResponse struct {
	Reservations []domain.Reservation `json:"reservations"`
}

func (q listPropertiesQuery) filter() domain.PropertyFilter {
	return domain.PropertyFilter{
		City:                 q.City,
		OwnerID:              q.OwnerID,
		MinimumPricePerNight: q.MinimumPricePerNight,
		MaximumPricePerNight: q.MaximumPricePerNight,
		MinimumRating:        q.MinimumRating,
	}
}

func (r createPropertyRequest) toDomain(ownerID int64) *domain.Property {
	return &domain.Property{
		OwnerID:           ownerID,
		Title:             r.Title,
		Description:       r.Description,
		ThumbnailPhotoURL: r.ThumbnailPhotoURL,
		CoverPhotoURL:     r.CoverPhotoURL,
		CostPerNight:      r.CostPerNight,
		ParkingSpaces:     r.ParkingSpaces,
		NumberOfBathrooms: r.NumberOfBathrooms,
		NumberOfBedrooms:  r.NumberOfBedrooms,
		Country:           r.Country,
		Street:            r.Street,
		City:              r.City,
		Province:          r.Province,
		PostCode:          r.PostCode,
		Active:            true,
	}
}
