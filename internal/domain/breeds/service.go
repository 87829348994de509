package breeds

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("breed not found")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Breed, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int) (Breed, error) {
	return s.repo.GetByID(ctx, id)
}
