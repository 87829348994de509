package memory

import (
	"context"
	"sort"
	"sync"

	"livestock-records/internal/domain/scoring"
)

type templateRepo struct {
	mu      sync.RWMutex
	byBreed map[int]scoring.Template
}

// NewTemplateRepo arranca con las rúbricas sembradas por raza.
func NewTemplateRepo() scoring.TemplateRepository {
	return &templateRepo{byBreed: scoring.SeedTemplates()}
}

func (r *templateRepo) TemplateByBreed(ctx context.Context, breedID int) (scoring.Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tpl, ok := r.byBreed[breedID]
	if !ok {
		return scoring.Template{}, ErrNotFound
	}
	return tpl, nil
}

type scoreKey struct {
	animalID         string
	caracteristicaID int
	fecha            string // YYYY-MM-DD
}

type scoreRepo struct {
	mu    sync.RWMutex
	byKey map[scoreKey]scoring.Calificacion
}

func NewScoreRepo() scoring.ScoreRepository {
	return &scoreRepo{byKey: make(map[scoreKey]scoring.Calificacion)}
}

// Upsert reemplaza la calificación de la misma (ejemplar, característica,
// fecha), igual que la restricción de unicidad del backend real.
func (r *scoreRepo) Upsert(ctx context.Context, c scoring.Calificacion) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := scoreKey{
		animalID:         c.AnimalID,
		caracteristicaID: c.CaracteristicaID,
		fecha:            c.FechaCalificacion.Format("2006-01-02"),
	}
	if prev, exists := r.byKey[key]; exists {
		c.ID = prev.ID
	}
	r.byKey[key] = c
	return nil
}

func (r *scoreRepo) ListByAnimal(ctx context.Context, animalID string) ([]scoring.Calificacion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]scoring.Calificacion, 0)
	for _, c := range r.byKey {
		if c.AnimalID == animalID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].FechaCalificacion.Equal(out[j].FechaCalificacion) {
			return out[i].FechaCalificacion.Before(out[j].FechaCalificacion)
		}
		return out[i].CaracteristicaID < out[j].CaracteristicaID
	})
	return out, nil
}
