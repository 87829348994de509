package animals

import "context"

type Repository interface {
	Create(ctx context.Context, a Animal) error
	Update(ctx context.Context, a Animal) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Animal, error)
	GetByIdentifier(ctx context.Context, identifier string) (Animal, error)
	List(ctx context.Context) ([]Animal, error)
}
