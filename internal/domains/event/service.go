package event

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	// ListUpcoming returns published events starting now or later,
	// optionally narrowed to a region.
	ListUpcoming(ctx context.Context, regionCode string) ([]Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)

	ListAll(ctx context.Context) ([]Event, error)
	CreateEvent(ctx context.Context, req *CreateEventRequest) (*Event, error)
	UpdateEvent(ctx context.Context, id uuid.UUID, req *UpdateEventRequest) (*Event, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) error
	SetCover(ctx context.Context, id uuid.UUID, coverURL string) (*Event, error)
}
