package animals

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrDuplicateIdentifier = errors.New("identifier already registered")
	ErrNotFound            = errors.New("animal not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Identifier string
	Name       string
	BreedID    int
	BirthDate  time.Time
	Weight     *float64
	Height     *float64
	PhotoPath  string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Animal, error) {
	if strings.TrimSpace(in.Identifier) == "" {
		return Animal{}, ErrInvalidInput
	}
	if in.BreedID <= 0 {
		return Animal{}, ErrInvalidInput
	}
	if in.BirthDate.IsZero() {
		return Animal{}, ErrInvalidInput
	}
	if in.BirthDate.After(s.now()) {
		return Animal{}, ErrInvalidInput
	}

	// El identificador de arete es único en el sistema.
	if _, err := s.repo.GetByIdentifier(ctx, strings.TrimSpace(in.Identifier)); err == nil {
		return Animal{}, ErrDuplicateIdentifier
	}

	now := s.now()
	a := Animal{
		ID:         uuid.NewString(),
		Identifier: strings.TrimSpace(in.Identifier),
		Name:       strings.TrimSpace(in.Name),
		BreedID:    in.BreedID,
		BirthDate:  in.BirthDate,
		Weight:     in.Weight,
		Height:     in.Height,
		PhotoPath:  strings.TrimSpace(in.PhotoPath),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

type UpdateInput struct {
	// Punteros para update parcial: nil = no tocar.
	Identifier *string
	Name       *string
	BreedID    *int
	BirthDate  *time.Time
	Weight     *float64
	Height     *float64
	PhotoPath  *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Animal{}, ErrInvalidInput
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Animal{}, ErrNotFound
	}

	if in.Identifier != nil {
		v := strings.TrimSpace(*in.Identifier)
		if v == "" {
			return Animal{}, ErrInvalidInput
		}
		if v != current.Identifier {
			if other, err := s.repo.GetByIdentifier(ctx, v); err == nil && other.ID != id {
				return Animal{}, ErrDuplicateIdentifier
			}
		}
		current.Identifier = v
	}
	if in.Name != nil {
		current.Name = strings.TrimSpace(*in.Name)
	}
	if in.BreedID != nil {
		if *in.BreedID <= 0 {
			return Animal{}, ErrInvalidInput
		}
		current.BreedID = *in.BreedID
	}
	if in.BirthDate != nil {
		if in.BirthDate.IsZero() || in.BirthDate.After(s.now()) {
			return Animal{}, ErrInvalidInput
		}
		current.BirthDate = *in.BirthDate
	}
	if in.Weight != nil {
		current.Weight = in.Weight
	}
	if in.Height != nil {
		current.Height = in.Height
	}
	if in.PhotoPath != nil {
		current.PhotoPath = strings.TrimSpace(*in.PhotoPath)
	}

	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		return Animal{}, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (Animal, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Animal, error) {
	return s.repo.List(ctx)
}

// SetScore registra el resultado de la última sesión de calificación.
func (s *Service) SetScore(ctx context.Context, id string, score float64, date time.Time) (Animal, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Animal{}, ErrNotFound
	}

	current.ScoreTotal = &score
	current.LastScoreDate = &date
	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		return Animal{}, err
	}
	return current, nil
}
