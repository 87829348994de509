package memory

import (
	"context"
	"sort"
	"sync"

	"livestock-records/internal/domain/breeds"
)

type breedRepo struct {
	mu   sync.RWMutex
	byID map[int]breeds.Breed
}

// NewBreedRepo arranca con el catálogo de razas sembrado: el cliente lo
// trata como solo lectura.
func NewBreedRepo() breeds.Repository {
	r := &breedRepo{byID: make(map[int]breeds.Breed)}
	for _, b := range breeds.DefaultCatalog() {
		r.byID[b.ID] = b
	}
	return r
}

func (r *breedRepo) List(ctx context.Context) ([]breeds.Breed, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]breeds.Breed, 0, len(r.byID))
	for _, b := range r.byID {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *breedRepo) GetByID(ctx context.Context, id int) (breeds.Breed, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.byID[id]
	if !ok {
		return breeds.Breed{}, ErrNotFound
	}
	return b, nil
}
