package scoring

import (
	"context"
	"time"
)

// Calificacion es una puntuación individual persistida. Una por
// (ejemplar, característica, fecha): recalificar el mismo día reemplaza.
type Calificacion struct {
	ID                 string
	AnimalID           string
	CaracteristicaID   int
	PuntuacionObtenida float64
	FechaCalificacion  time.Time // solo fecha
	Evaluador          string    // username, puede ser vacío
}

type TemplateRepository interface {
	TemplateByBreed(ctx context.Context, breedID int) (Template, error)
}

type ScoreRepository interface {
	Upsert(ctx context.Context, c Calificacion) error
	ListByAnimal(ctx context.Context, animalID string) ([]Calificacion, error)
}
