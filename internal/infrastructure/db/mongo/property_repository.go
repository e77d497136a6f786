package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lightbnb/lightbnb-api/internal/core/domain"
)

const (
	propertyCollection = "properties"
	counterCollection  = "counters"
	propertyCounterKey = "properties"
)

// PropertyRepository persists created properties in MongoDB. Ids come from a
// counter document so they stay sequential across restarts and replicas.
type PropertyRepository struct {
	coll     *mongo.Collection
	counters *mongo.Collection
}

func NewPropertyRepository(db *mongo.Database) *PropertyRepository {
	return &PropertyRepository{
		coll:     db.Collection(propertyCollection),
		counters: db.Collection(counterCollection),
	}
}

type mongoProperty struct {
	PropertyID        int64  `bson:"property_id"`
	OwnerID           int64  `bson:"owner_id"`
	Title             string `bson:"title"`
	Description       string `bson:"description,omitempty"`
	ThumbnailPhotoURL string `bson:"thumbnail_photo_url"`
	CoverPhotoURL     string `bson:"cover_photo_url"`
	CostPerNight      int64  `bson:"cost_per_night"`
	ParkingSpaces     int    `bson:"parking_spaces"`
	NumberOfBathrooms int    `bson:"number_of_bathrooms"`
	NumberOfBedrooms  int    `bson:"number_of_bedrooms"`
	Country           string `bson:"country"`
	Street            string `bson:"street"`
	City              string `bson:"city"`
	Province          string `bson:"province"`
	PostCode          string `bson:"post_code"`
	Active            bool   `bson:"active"`
	CreatedAt         int64  `bson:"created_at"`
}

type counter struct {
	Seq int64 `bson:"seq"`
}

func (r *PropertyRepository) Create(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	id, err := r.nextID(ctx)
	if err != nil {
		return nil, err
	}

	doc := mongoProperty{
		PropertyID:        id,
		OwnerID:           p.OwnerID,
		Title:             p.Title,
		Description:       p.Description,
		ThumbnailPhotoURL: p.ThumbnailPhotoURL,
		CoverPhotoURL:     p.CoverPhotoURL,
		CostPerNight:      p.CostPerNight,
		ParkingSpaces:     p.ParkingSpaces,
		NumberOfBathrooms: p.NumberOfBathrooms,
		NumberOfBedrooms:  p.NumberOfBedrooms,
		Country:           p.Country,
		Street:            p.Street,
		City:              p.City,
		Province:          p.Province,
		PostCode:          p.PostCode,
		Active:            p.Active,
		CreatedAt:         time.Now().UTC().Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert property: %w", err)
	}

	created := *p
	created.ID = id
	return &created, nil
}

func (r *PropertyRepository) nextID(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var c counter
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": propertyCounterKey},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&c)
	if err != nil {
		return 0, fmt.Errorf("allocate property id: %w", err)
	}
	return c.Seq, nil
}
