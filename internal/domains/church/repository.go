package church

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	List(ctx context.Context, filter Filter) ([]Church, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Church, error)
	Create(ctx context.Context, ch *Church) error
	Update(ctx context.Context, ch *Church) error
	Delete(ctx context.Context, id uuid.UUID) error
}
