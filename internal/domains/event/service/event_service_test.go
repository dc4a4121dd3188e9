package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"caminodevida-backend/internal/domains/event"
)

type stubRepo struct {
	events  map[string]*event.Event // keyed by slug
	byID    map[uuid.UUID]*event.Event
	listErr error
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		events: map[string]*event.Event{},
		byID:   map[uuid.UUID]*event.Event{},
	}
}

func (s *stubRepo) List(ctx context.Context, filter event.Filter) ([]event.Event, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []event.Event
	for _, ev := range s.events {
		out = append(out, *ev)
	}
	return out, nil
}

func (s *stubRepo) GetByID(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	ev, ok := s.byID[id]
	if !ok {
		return nil, event.ErrEventNotFound
	}
	copied := *ev
	return &copied, nil
}

func (s *stubRepo) GetBySlug(ctx context.Context, slug string) (*event.Event, error) {
	ev, ok := s.events[slug]
	if !ok {
		return nil, event.ErrEventNotFound
	}
	copied := *ev
	return &copied, nil
}

func (s *stubRepo) Create(ctx context.Context, ev *event.Event) error {
	if _, exists := s.events[ev.Slug]; exists {
		return event.ErrDuplicateSlug
	}
	copied := *ev
	s.events[ev.Slug] = &copied
	s.byID[ev.ID] = &copied
	return nil
}

func (s *stubRepo) Update(ctx context.Context, ev *event.Event) error {
	if _, ok := s.byID[ev.ID]; !ok {
		return event.ErrEventNotFound
	}
	copied := *ev
	s.byID[ev.ID] = &copied
	s.events[ev.Slug] = &copied
	return nil
}

func (s *stubRepo) Delete(ctx context.Context, id uuid.UUID) error {
	ev, ok := s.byID[id]
	if !ok {
		return event.ErrEventNotFound
	}
	delete(s.events, ev.Slug)
	delete(s.byID, id)
	return nil
}

func validRequest() *event.CreateEventRequest {
	return &event.CreateEventRequest{
		Title:      "Noche de Oración",
		StartsAt:   time.Now().Add(48 * time.Hour),
		RegionCode: "mx",
		City:       "Guadalajara",
		Venue:      "Auditorio Central",
		Published:  true,
	}
}

func TestCreateEventGeneratesSlug(t *testing.T) {
	repo := newStubRepo()
	svc := NewEventService(repo)

	ev, err := svc.CreateEvent(context.Background(), validRequest())
	require.NoError(t, err)
	require.Equal(t, "noche-de-oracion", ev.Slug)
	require.Equal(t, "MX", ev.RegionCode)
	require.Nil(t, ev.Fee)
}

func TestCreateEventDuplicateTitleGetsSuffix(t *testing.T) {
	repo := newStubRepo()
	svc := NewEventService(repo)

	first, err := svc.CreateEvent(context.Background(), validRequest())
	require.NoError(t, err)

	second, err := svc.CreateEvent(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotEqual(t, first.Slug, second.Slug)
	require.Equal(t, "noche-de-oracion-"+second.ID.String()[:8], second.Slug)
}

func TestCreateEventFeeParsing(t *testing.T) {
	repo := newStubRepo()
	svc := NewEventService(repo)

	req := validRequest()
	req.Fee = "25.50"
	req.Currency = "MXN"

	ev, err := svc.CreateEvent(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, ev.Fee)
	require.Equal(t, "25.5", ev.Fee.String())
	require.Equal(t, "MXN", ev.Currency)
}

func TestCreateEventRejectsBadFee(t *testing.T) {
	repo := newStubRepo()
	svc := NewEventService(repo)

	req := validRequest()
	req.Fee = "-10"
	req.Currency = "MXN"
	_, err := svc.CreateEvent(context.Background(), req)
	require.ErrorIs(t, err, event.ErrValidation)

	req.Fee = "veinte"
	_, err = svc.CreateEvent(context.Background(), req)
	require.ErrorIs(t, err, event.ErrValidation)
}

func TestCreateEventValidation(t *testing.T) {
	repo := newStubRepo()
	svc := NewEventService(repo)

	req := validRequest()
	req.Title = ""
	_, err := svc.CreateEvent(context.Background(), req)
	require.ErrorIs(t, err, event.ErrValidation)

	req = validRequest()
	req.Fee = "10.00"
	req.Currency = ""
	_, err = svc.CreateEvent(context.Background(), req)
	require.ErrorIs(t, err, event.ErrValidation)
}

func TestUpdateEventKeepsSlug(t *testing.T) {
	repo := newStubRepo()
	svc := NewEventService(repo)

	ev, err := svc.CreateEvent(context.Background(), validRequest())
	require.NoError(t, err)

	upd := &event.UpdateEventRequest{CreateEventRequest: *validRequest()}
	upd.Title = "Vigilia de Oración 2026"

	updated, err := svc.UpdateEvent(context.Background(), ev.ID, upd)
	require.NoError(t, err)
	require.Equal(t, "Vigilia de Oración 2026", updated.Title)
	require.Equal(t, ev.Slug, updated.Slug)
}

func TestGetBySlugHidesUnpublished(t *testing.T) {
	repo := newStubRepo()
	svc := NewEventService(repo)

	req := validRequest()
	req.Published = false
	ev, err := svc.CreateEvent(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.GetBySlug(context.Background(), ev.Slug)
	require.ErrorIs(t, err, event.ErrEventNotFound)
}

func TestSetCover(t *testing.T) {
	repo := newStubRepo()
	svc := NewEventService(repo)

	ev, err := svc.CreateEvent(context.Background(), validRequest())
	require.NoError(t, err)

	updated, err := svc.SetCover(context.Background(), ev.ID, "https://cdn.example.com/events/cover.jpg")
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.com/events/cover.jpg", updated.CoverURL)

	_, err = svc.SetCover(context.Background(), uuid.New(), "x")
	require.ErrorIs(t, err, event.ErrEventNotFound)
}
