package scoring

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"
)

type testTemplateRepo struct {
	byBreed map[int]Template
}

func (r *testTemplateRepo) TemplateByBreed(ctx context.Context, breedID int) (Template, error) {
	tpl, ok := r.byBreed[breedID]
	if !ok {
		return Template{}, errors.New("repo: not found")
	}
	return tpl, nil
}

type testScoreRepo struct {
	byKey map[string]Calificacion
}

func newTestScoreRepo() *testScoreRepo {
	return &testScoreRepo{byKey: map[string]Calificacion{}}
}

func scoreKey(c Calificacion) string {
	return c.AnimalID + "|" + c.FechaCalificacion.Format("2006-01-02") + "|" + strconv.Itoa(c.CaracteristicaID)
}

func (r *testScoreRepo) Upsert(ctx context.Context, c Calificacion) error {
	r.byKey[scoreKey(c)] = c
	return nil
}

func (r *testScoreRepo) ListByAnimal(ctx context.Context, animalID string) ([]Calificacion, error) {
	out := make([]Calificacion, 0)
	for _, c := range r.byKey {
		if c.AnimalID == animalID {
			out = append(out, c)
		}
	}
	return out, nil
}

func simpleTemplate() Template {
	return Template{
		BreedID: 1,
		Categories: []Category{
			{ID: 1, Nombre: "Conformación", Ponderacion: 60},
			{ID: 2, Nombre: "Ubre", Ponderacion: 40},
		},
		Characteristics: []Characteristic{
			{ID: 10, CategoriaID: 1, Nombre: "Altura", PuntajeIdeal: 10, RangoAceptadoMin: 5, RangoAceptadoMax: 10},
			{ID: 11, CategoriaID: 2, Nombre: "Inserción", PuntajeIdeal: 8, RangoAceptadoMin: 4, RangoAceptadoMax: 8},
		},
	}
}

func newSubmitService(scores *testScoreRepo) *Service {
	svc := NewService(&testTemplateRepo{byBreed: map[int]Template{1: simpleTemplate()}}, scores)
	svc.now = func() time.Time { return time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC) }
	return svc
}

func TestSubmitPerfectScores(t *testing.T) {
	scores := newTestScoreRepo()
	svc := newSubmitService(scores)

	got, err := svc.Submit(context.Background(), "animal-1", 1, "evaluador1", []ScoreItem{
		{CaracteristicaID: 10, PuntuacionObtenida: 10},
		{CaracteristicaID: 11, PuntuacionObtenida: 8},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if got != 100 {
		t.Fatalf("score = %v, want 100 for all-ideal submission", got)
	}

	saved, _ := scores.ListByAnimal(context.Background(), "animal-1")
	if len(saved) != 2 {
		t.Fatalf("persisted %d calificaciones, want 2", len(saved))
	}
	for _, c := range saved {
		if c.Evaluador != "evaluador1" {
			t.Fatalf("evaluador = %q, want evaluador1", c.Evaluador)
		}
		if !c.FechaCalificacion.Equal(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("fecha = %v, want truncated to day", c.FechaCalificacion)
		}
	}
}

func TestSubmitSameDayReplaces(t *testing.T) {
	scores := newTestScoreRepo()
	svc := newSubmitService(scores)

	_, _ = svc.Submit(context.Background(), "animal-1", 1, "e", []ScoreItem{
		{CaracteristicaID: 10, PuntuacionObtenida: 5},
	})
	_, err := svc.Submit(context.Background(), "animal-1", 1, "e", []ScoreItem{
		{CaracteristicaID: 10, PuntuacionObtenida: 9},
	})
	if err != nil {
		t.Fatalf("second Submit: %v", err)
	}

	saved, _ := scores.ListByAnimal(context.Background(), "animal-1")
	if len(saved) != 1 {
		t.Fatalf("persisted %d calificaciones, want 1 (same-day upsert)", len(saved))
	}
	if saved[0].PuntuacionObtenida != 9 {
		t.Fatalf("puntuacion = %v, want the latest value 9", saved[0].PuntuacionObtenida)
	}
}

func TestSubmitUnknownCharacteristic(t *testing.T) {
	svc := newSubmitService(newTestScoreRepo())

	_, err := svc.Submit(context.Background(), "animal-1", 1, "e", []ScoreItem{
		{CaracteristicaID: 999, PuntuacionObtenida: 5},
	})
	if !errors.Is(err, ErrUnknownCharacteristic) {
		t.Fatalf("expected ErrUnknownCharacteristic, got %v", err)
	}
}

func TestSubmitEmpty(t *testing.T) {
	svc := newSubmitService(newTestScoreRepo())
	if _, err := svc.Submit(context.Background(), "animal-1", 1, "e", nil); !errors.Is(err, ErrEmptySubmission) {
		t.Fatalf("expected ErrEmptySubmission, got %v", err)
	}
}

func TestSubmitUnknownBreed(t *testing.T) {
	svc := newSubmitService(newTestScoreRepo())
	_, err := svc.Submit(context.Background(), "animal-1", 99, "e", []ScoreItem{
		{CaracteristicaID: 10, PuntuacionObtenida: 5},
	})
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
}
