package breeds

import "context"

type Repository interface {
	List(ctx context.Context) ([]Breed, error)
	GetByID(ctx context.Context, id int) (Breed, error)
}
