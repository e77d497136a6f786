package domain

import "time"

// Reservation is the guest-facing view of a booking: the reserved property's
// headline fields plus the average review rating of that property.
type Reservation struct {
	ID                int64     `db:"id" json:"id"`
	Title             string    `db:"title" json:"title"`
	CostPerNight      int64     `db:"cost_per_night" json:"cost_per_night"`
	StartDate         time.Time `db:"start_date" json:"start_date"`
	AverageRating     float64   `db:"average_rating" json:"average_rating"`
	NumberOfBedrooms  int       `db:"number_of_bedrooms" json:"number_of_bedrooms"`
	NumberOfBathrooms int       `db:"number_of_bathrooms" json:"number_of_bathrooms"`
	ParkingSpaces     int       `db:"parking_spaces" json:"parking_spaces"`
	ThumbnailPhotoURL string    `db:"thumbnail_photo_url" json:"thumbnail_photo_url"`
}
