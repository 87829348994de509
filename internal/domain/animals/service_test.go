package animals

import (
	"context"
	"errors"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID map[string]Animal
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Animal{}}
}

func (r *testRepo) Create(ctx context.Context, a Animal) error {
	if a.ID == "" {
		return errors.New("repo: id required")
	}
	if _, ok := r.byID[a.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) Update(ctx context.Context, a Animal) error {
	if _, ok := r.byID[a.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return errRepoNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Animal, error) {
	a, ok := r.byID[id]
	if !ok {
		return Animal{}, errRepoNotFound
	}
	return a, nil
}

func (r *testRepo) GetByIdentifier(ctx context.Context, identifier string) (Animal, error) {
	for _, a := range r.byID {
		if a.Identifier == identifier {
			return a, nil
		}
	}
	return Animal{}, errRepoNotFound
}

func (r *testRepo) List(ctx context.Context) ([]Animal, error) {
	out := make([]Animal, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	return out, nil
}

// -------------------------
// Helpers
// -------------------------

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestService(repo Repository) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func validCreate() CreateInput {
	return CreateInput{
		Identifier: "BOV-001",
		Name:       "Lola",
		BreedID:    1,
		BirthDate:  time.Date(2023, 3, 10, 0, 0, 0, 0, time.UTC),
	}
}

// -------------------------
// Tests
// -------------------------

func TestCreateOK(t *testing.T) {
	svc := newTestService(newTestRepo())

	a, err := svc.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.ID == "" {
		t.Fatal("expected generated id")
	}
	if !a.CreatedAt.Equal(fixedNow) || !a.UpdatedAt.Equal(fixedNow) {
		t.Fatalf("timestamps not pinned: created=%v updated=%v", a.CreatedAt, a.UpdatedAt)
	}
	if a.ScoreTotal != nil {
		t.Fatal("new animal must start without score")
	}
}

func TestCreateTrimsFields(t *testing.T) {
	svc := newTestService(newTestRepo())

	in := validCreate()
	in.Identifier = "  BOV-002  "
	in.Name = "  Nube "

	a, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.Identifier != "BOV-002" || a.Name != "Nube" {
		t.Fatalf("fields not trimmed: %+v", a)
	}
}

func TestCreateValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateInput)
	}{
		{"empty identifier", func(in *CreateInput) { in.Identifier = "  " }},
		{"missing breed", func(in *CreateInput) { in.BreedID = 0 }},
		{"zero birth date", func(in *CreateInput) { in.BirthDate = time.Time{} }},
		{"future birth date", func(in *CreateInput) { in.BirthDate = fixedNow.AddDate(1, 0, 0) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService(newTestRepo())
			in := validCreate()
			tc.mutate(&in)

			if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestCreateDuplicateIdentifier(t *testing.T) {
	svc := newTestService(newTestRepo())

	if _, err := svc.Create(context.Background(), validCreate()); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	if _, err := svc.Create(context.Background(), validCreate()); !errors.Is(err, ErrDuplicateIdentifier) {
		t.Fatalf("expected ErrDuplicateIdentifier, got %v", err)
	}
}

func TestUpdatePartial(t *testing.T) {
	svc := newTestService(newTestRepo())
	a, _ := svc.Create(context.Background(), validCreate())

	peso := 560.0
	updated, err := svc.Update(context.Background(), a.ID, UpdateInput{Weight: &peso})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	// Solo cambió el peso; lo demás queda igual.
	if updated.Weight == nil || *updated.Weight != 560.0 {
		t.Fatalf("weight = %v, want 560", updated.Weight)
	}
	if updated.Identifier != a.Identifier || updated.Name != a.Name || updated.BreedID != a.BreedID {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestUpdateDuplicateIdentifier(t *testing.T) {
	svc := newTestService(newTestRepo())
	_, _ = svc.Create(context.Background(), validCreate())

	in2 := validCreate()
	in2.Identifier = "BOV-002"
	b, _ := svc.Create(context.Background(), in2)

	taken := "BOV-001"
	if _, err := svc.Update(context.Background(), b.ID, UpdateInput{Identifier: &taken}); !errors.Is(err, ErrDuplicateIdentifier) {
		t.Fatalf("expected ErrDuplicateIdentifier, got %v", err)
	}

	// Mandar el identificador propio no es conflicto.
	own := "BOV-002"
	if _, err := svc.Update(context.Background(), b.ID, UpdateInput{Identifier: &own}); err != nil {
		t.Fatalf("own identifier should not conflict: %v", err)
	}
}

func TestUpdateNotFound(t *testing.T) {
	svc := newTestService(newTestRepo())
	if _, err := svc.Update(context.Background(), "no-such-id", UpdateInput{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSetScore(t *testing.T) {
	svc := newTestService(newTestRepo())
	a, _ := svc.Create(context.Background(), validCreate())

	scoreDate := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	updated, err := svc.SetScore(context.Background(), a.ID, 87.5, scoreDate)
	if err != nil {
		t.Fatalf("SetScore: %v", err)
	}
	if updated.ScoreTotal == nil || *updated.ScoreTotal != 87.5 {
		t.Fatalf("score = %v, want 87.5", updated.ScoreTotal)
	}
	if updated.LastScoreDate == nil || !updated.LastScoreDate.Equal(scoreDate) {
		t.Fatalf("last score date = %v, want %v", updated.LastScoreDate, scoreDate)
	}
}

func TestDelete(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)
	a, _ := svc.Create(context.Background(), validCreate())

	if err := svc.Delete(context.Background(), a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), a.ID); err == nil {
		t.Fatal("expected animal gone after Delete")
	}
}
