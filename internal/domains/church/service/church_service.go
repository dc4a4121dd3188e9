package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"caminodevida-backend/internal/domains/church"
	"caminodevida-backend/pkg/logger"
)

type churchService struct {
	repo church.Repository
}

func NewChurchService(repo church.Repository) church.Service {
	return &churchService{repo: repo}
}

func (s *churchService) ListChurches(ctx context.Context, filter church.Filter) ([]church.Church, error) {
	filter.RegionCode = strings.ToUpper(strings.TrimSpace(filter.RegionCode))
	filter.City = strings.TrimSpace(filter.City)
	return s.repo.List(ctx, filter)
}

func (s *churchService) GetChurch(ctx context.Context, id uuid.UUID) (*church.Church, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *churchService) CreateChurch(ctx context.Context, req *church.CreateChurchRequest) (*church.Church, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", church.ErrValidation, err)
	}

	ch := &church.Church{
		ID:           uuid.New(),
		Name:         req.Name,
		RegionCode:   strings.ToUpper(req.RegionCode),
		City:         req.City,
		Address:      req.Address,
		Pastor:       req.Pastor,
		Email:        req.Email,
		Phone:        req.Phone,
		Website:      req.Website,
		ServiceTimes: req.ServiceTimes,
	}
	if ch.ServiceTimes == nil {
		ch.ServiceTimes = []string{}
	}

	if err := s.repo.Create(ctx, ch); err != nil {
		return nil, err
	}

	logger.Info("Church created", map[string]interface{}{
		"church_id": ch.ID.String(),
		"region":    ch.RegionCode,
	})
	return ch, nil
}

func (s *churchService) UpdateChurch(ctx context.Context, id uuid.UUID, req *church.UpdateChurchRequest) (*church.Church, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", church.ErrValidation, err)
	}

	ch, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ch.Name = req.Name
	ch.RegionCode = strings.ToUpper(req.RegionCode)
	ch.City = req.City
	ch.Address = req.Address
	ch.Pastor = req.Pastor
	ch.Email = req.Email
	ch.Phone = req.Phone
	ch.Website = req.Website
	ch.ServiceTimes = req.ServiceTimes
	if ch.ServiceTimes == nil {
		ch.ServiceTimes = []string{}
	}

	if err := s.repo.Update(ctx, ch); err != nil {
		return nil, err
	}
	return ch, nil
}

func (s *churchService) DeleteChurch(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
