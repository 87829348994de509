package scoring

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTemplateNotFound      = errors.New("score template not found")
	ErrUnknownCharacteristic = errors.New("unknown characteristic")
	ErrEmptySubmission       = errors.New("empty submission")
)

type Service struct {
	templates TemplateRepository
	scores    ScoreRepository
	now       func() time.Time
}

func NewService(templates TemplateRepository, scores ScoreRepository) *Service {
	return &Service{
		templates: templates,
		scores:    scores,
		now:       time.Now,
	}
}

func (s *Service) TemplateByBreed(ctx context.Context, breedID int) (Template, error) {
	return s.templates.TemplateByBreed(ctx, breedID)
}

// Submit persiste el lote de calificaciones de una sesión y devuelve el
// score normalizado (0-100) que queda como score_total del ejemplar.
// Recalificar el mismo día reemplaza las puntuaciones de esa fecha.
func (s *Service) Submit(ctx context.Context, animalID string, breedID int, evaluador string, items []ScoreItem) (float64, error) {
	if len(items) == 0 {
		return 0, ErrEmptySubmission
	}

	tpl, err := s.templates.TemplateByBreed(ctx, breedID)
	if err != nil {
		return 0, ErrTemplateNotFound
	}

	idx, err := BuildIndex(tpl)
	if err != nil {
		return 0, err
	}

	entries := make(Entries, len(items))
	for _, it := range items {
		if _, ok := idx.Characteristic(it.CaracteristicaID); !ok {
			return 0, fmt.Errorf("%w: id=%d", ErrUnknownCharacteristic, it.CaracteristicaID)
		}
		entries[it.CaracteristicaID] = it.PuntuacionObtenida
	}

	today := s.now().Truncate(24 * time.Hour)
	for _, it := range items {
		c := Calificacion{
			ID:                 uuid.NewString(),
			AnimalID:           animalID,
			CaracteristicaID:   it.CaracteristicaID,
			PuntuacionObtenida: it.PuntuacionObtenida,
			FechaCalificacion:  today,
			Evaluador:          evaluador,
		}
		if err := s.scores.Upsert(ctx, c); err != nil {
			return 0, err
		}
	}

	return NormalizedScore(tpl, entries), nil
}

// History devuelve las calificaciones persistidas de un ejemplar.
func (s *Service) History(ctx context.Context, animalID string) ([]Calificacion, error) {
	return s.scores.ListByAnimal(ctx, animalID)
}
