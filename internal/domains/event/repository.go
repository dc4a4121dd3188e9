package event

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	List(ctx context.Context, filter Filter) ([]Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	Create(ctx context.Context, ev *Event) error
	Update(ctx context.Context, ev *Event) error
	Delete(ctx context.Context, id uuid.UUID) error
}
