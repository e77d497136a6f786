package domain

// Property is a rental listing.
type Property struct {
	ID                int64  `db:"id" json:"id"`
	OwnerID           int64  `db:"owner_id" json:"owner_id"`
	Title             string `db:"title" json:"title"`
	Description       string `db:"description" json:"description"`
	ThumbnailPhotoURL string `db:"thumbnail_photo_url" json:"thumbnail_photo_url"`
	CoverPhotoURL     string `db:"cover_photo_url" json:"cover_photo_url"`
	CostPerNight      int64  `db:"cost_per_night" json:"cost_per_night"`
	ParkingSpaces     int    `db:"parking_spaces" json:"parking_spaces"`
	NumberOfBathrooms int    `db:"number_of_bathrooms" json:"number_of_bathrooms"`
	NumberOfBedrooms  int    `db:"number_of_bedrooms" json:"number_of_bedrooms"`
	Country           string `db:"country" json:"country"`
	Street            string `db:"street" json:"street"`
	City              string `db:"city" json:"city"`
	Province          string `db:"province" json:"province"`
	PostCode          string `db:"post_code" json:"post_code"`
	Active            bool   `db:"active" json:"active"`
}

// PropertyFilter carries the search options accepted by property listing.
// The stores accept it but do not narrow results by it yet.
type PropertyFilter struct {
	City                 string
	OwnerID              int64
	MinimumPricePerNight int64
	MaximumPricePerNight int64
	MinimumRating        float64
}
