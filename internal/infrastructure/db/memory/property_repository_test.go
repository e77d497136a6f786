package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/lightbnb/lightbnb-api/internal/core/domain"
)

func TestPropertyRepository_Create_SequentialIDs(t *testing.T) {
	repo := NewPropertyRepository(map[int64]domain.Property{
		1: {ID: 1, Title: "a"},
		2: {ID: 2, Title: "b"},
	})

	first, err := repo.Create(context.Background(), &domain.Property{Title: "c"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	second, err := repo.Create(context.Background(), &domain.Property{Title: "d"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if first.ID != 3 || second.ID != 4 {
		t.Fatalf("expected ids 3 and 4, got %d and %d", first.ID, second.ID)
	}
	if repo.Len() != 4 {
		t.Fatalf("expected 4 stored properties, got %d", repo.Len())
	}
	stored, ok := repo.Get(3)
	if !ok || stored.Title != "c" {
		t.Fatalf("unexpected stored property: %+v (found=%v)", stored, ok)
	}
}

func TestPropertyRepository_Create_MutatesInput(t *testing.T) {
	repo := NewPropertyRepository(nil)

	in := &domain.Property{Title: "first"}
	out, _ := repo.Create(context.Background(), in)
	if out != in || in.ID != 1 {
		t.Fatalf("expected input to be returned with id 1, got %+v", out)
	}
}

func TestPropertyRepository_Create_SparseSeed(t *testing.T) {
	repo := NewPropertyRepository(map[int64]domain.Property{
		1: {ID: 1},
		5: {ID: 5},
	})

	p, _ := repo.Create(context.Background(), &domain.Property{Title: "x"})
	if p.ID != 6 {
		t.Fatalf("expected id 6 past the highest seeded id, got %d", p.ID)
	}
	if original, _ := repo.Get(5); original.ID != 5 {
		t.Fatalf("seeded property overwritten: %+v", original)
	}
}

func TestPropertyRepository_Create_ConcurrentIDsAreUnique(t *testing.T) {
	repo := NewPropertyRepository(nil)

	const n = 64
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := repo.Create(context.Background(), &domain.Property{Title: "concurrent"})
			if err != nil {
				t.Errorf("Create returned error: %v", err)
				return
			}
			ids <- p.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, n)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
	if len(seen) != n || repo.Len() != n {
		t.Fatalf("expected %d unique ids, got %d (len %d)", n, len(seen), repo.Len())
	}
}
