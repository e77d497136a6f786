package memory

import (
	"context"
	"sync"

	"github.com/lightbnb/lightbnb-api/internal/core/domain"
)

// PropertyRepository keeps properties in process memory. Writes here are not
// visible to the Postgres-backed listing.
type PropertyRepository struct {
	mu         sync.Mutex
	properties map[int64]domain.Property
	highestID  int64
}

// NewPropertyRepository seeds the store, usually from Snapshot.Properties.
func NewPropertyRepository(seed map[int64]domain.Property) *PropertyRepository {
	r := &PropertyRepository{properties: make(map[int64]domain.Property, len(seed))}
	for id, p := range seed {
		r.properties[id] = p
		if id > r.highestID {
			r.highestID = id
		}
	}
	return r
}

// Create assigns the next id (record count + 1, moved past any higher seeded
// id), stores a copy and returns the property with its id set.
func (r *PropertyRepository) Create(_ context.Context, p *domain.Property) (*domain.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := int64(len(r.properties)) + 1
	if id <= r.highestID {
		id = r.highestID + 1
	}
	r.highestID = id

	p.ID = id
	r.properties[id] = *p
	return p, nil
}

// Get returns the stored property with the given id.
func (r *PropertyRepository) Get(id int64) (domain.Property, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.properties[id]
	return p, ok
}

func (r *PropertyRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.properties)
}
