package church

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	ListChurches(ctx context.Context, filter Filter) ([]Church, error)
	GetChurch(ctx context.Context, id uuid.UUID) (*Church, error)
	CreateChurch(ctx context.Context, req *CreateChurchRequest) (*Church, error)
	UpdateChurch(ctx context.Context, id uuid.UUID, req *UpdateChurchRequest) (*Church, error)
	DeleteChurch(ctx context.Context, id uuid.UUID) error
}
