package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"caminodevida-backend/internal/domains/event"
	"caminodevida-backend/internal/shared/utils"
	"caminodevida-backend/pkg/logger"
)

type eventService struct {
	repo event.Repository
}

func NewEventService(repo event.Repository) event.Service {
	return &eventService{repo: repo}
}

func (s *eventService) ListUpcoming(ctx context.Context, regionCode string) ([]event.Event, error) {
	return s.repo.List(ctx, event.Filter{
		RegionCode:    strings.ToUpper(strings.TrimSpace(regionCode)),
		UpcomingOnly:  true,
		PublishedOnly: true,
	})
}

func (s *eventService) GetBySlug(ctx context.Context, slug string) (*event.Event, error) {
	ev, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !ev.Published {
		return nil, event.ErrEventNotFound
	}
	return ev, nil
}

func (s *eventService) ListAll(ctx context.Context) ([]event.Event, error) {
	return s.repo.List(ctx, event.Filter{})
}

func (s *eventService) CreateEvent(ctx context.Context, req *event.CreateEventRequest) (*event.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", event.ErrValidation, err)
	}

	fee, err := parseFee(req.Fee)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", event.ErrValidation, err)
	}

	ev := &event.Event{
		ID:          uuid.New(),
		Title:       req.Title,
		Slug:        utils.GenerateSlug(req.Title),
		Description: req.Description,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		RegionCode:  strings.ToUpper(req.RegionCode),
		City:        req.City,
		Venue:       req.Venue,
		Fee:         fee,
		Currency:    strings.ToUpper(req.Currency),
		Published:   req.Published,
	}

	err = s.repo.Create(ctx, ev)
	if errors.Is(err, event.ErrDuplicateSlug) {
		// Same title as an existing event. Disambiguate with a short id
		// suffix instead of failing the create.
		ev.Slug = fmt.Sprintf("%s-%s", ev.Slug, ev.ID.String()[:8])
		err = s.repo.Create(ctx, ev)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("Event created", map[string]interface{}{
		"event_id": ev.ID.String(),
		"slug":     ev.Slug,
		"region":   ev.RegionCode,
	})
	return ev, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id uuid.UUID, req *event.UpdateEventRequest) (*event.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", event.ErrValidation, err)
	}

	fee, err := parseFee(req.Fee)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", event.ErrValidation, err)
	}

	ev, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// The slug is stable across edits so published links keep working.
	ev.Title = req.Title
	ev.Description = req.Description
	ev.StartsAt = req.StartsAt
	ev.EndsAt = req.EndsAt
	ev.RegionCode = strings.ToUpper(req.RegionCode)
	ev.City = req.City
	ev.Venue = req.Venue
	ev.Fee = fee
	ev.Currency = strings.ToUpper(req.Currency)
	ev.Published = req.Published

	if err := s.repo.Update(ctx, ev); err != nil {
		return nil, err
	}
	return ev, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *eventService) SetCover(ctx context.Context, id uuid.UUID, coverURL string) (*event.Event, error) {
	ev, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ev.CoverURL = coverURL
	if err := s.repo.Update(ctx, ev); err != nil {
		return nil, err
	}
	return ev, nil
}

func parseFee(raw string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	fee, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("fee must be a decimal amount: %v", err)
	}
	if fee.IsNegative() {
		return nil, errors.New("fee must not be negative")
	}
	return &fee, nil
}
