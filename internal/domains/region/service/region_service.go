package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"caminodevida-backend/internal/config"
	"caminodevida-backend/internal/domains/region"
	"caminodevida-backend/pkg/logger"
)

type regionService struct {
	repo region.Repository
	cfg  config.RegionConfig
}

func NewRegionService(repo region.Repository, cfg config.RegionConfig) region.Service {
	return &regionService{repo: repo, cfg: cfg}
}

// DeriveCountryFromHeaders returns the first usable value in the fixed
// header priority order, upper-cased. "unknown" and "XX" placeholders
// count as absent.
func (s *regionService) DeriveCountryFromHeaders(headers http.Header) (string, bool) {
	for _, name := range region.GeoHeaders {
		value := strings.TrimSpace(headers.Get(name))
		if value == "" {
			continue
		}
		upper := strings.ToUpper(value)
		if upper == "UNKNOWN" || upper == "XX" {
			continue
		}
		return upper, true
	}
	return "", false
}

// IsValidCountryCode checks the live region list, and silently degrades to
// the hardcoded fallback list when the store is unreachable. That policy
// is deliberate: a marketing page must render with a stale list rather
// than fail.
func (s *regionService) IsValidCountryCode(ctx context.Context, code string) bool {
	valid, _ := s.validCountry(ctx, code)
	return valid
}

func (s *regionService) validCountry(ctx context.Context, code string) (valid, usedFallback bool) {
	if len(code) != 2 {
		return false, false
	}
	code = strings.ToUpper(code)

	codes, err := s.repo.ListCodes(ctx)
	if err != nil {
		logger.Warn("region: live region list unavailable, using fallback list",
			map[string]interface{}{"error": err.Error()})
		return containsCode(region.FallbackCountryCodes, code), true
	}
	return containsCode(codes, code), false
}

// LocaleFor maps a country to the UI locale: the single secondary-locale
// country gets the secondary locale, everything else the primary.
func (s *regionService) LocaleFor(countryCode string) string {
	if strings.EqualFold(countryCode, s.cfg.SecondaryCountry) {
		return s.cfg.SecondaryLocale
	}
	return s.cfg.PrimaryLocale
}

// Resolve implements the country/locale assignment policy. An existing
// cookie is trusted verbatim, without re-validation.
func (s *regionService) Resolve(ctx context.Context, cookieCountry string, headers http.Header) region.Resolution {
	if cookieCountry != "" {
		code := strings.ToUpper(strings.TrimSpace(cookieCountry))
		return region.Resolution{
			CountryCode: code,
			Locale:      s.LocaleFor(code),
		}
	}

	derived, found := s.DeriveCountryFromHeaders(headers)
	if found {
		valid, usedFallback := s.validCountry(ctx, derived)
		if valid {
			return region.Resolution{
				CountryCode: derived,
				Locale:      s.LocaleFor(derived),
				Degraded:    usedFallback,
			}
		}
	}

	return region.Resolution{
		CountryCode: s.cfg.DefaultCountry,
		Locale:      s.LocaleFor(s.cfg.DefaultCountry),
		Degraded:    true,
	}
}

// ===================================
// Admin CRUD
// ===================================

func (s *regionService) ListRegions(ctx context.Context) ([]region.Region, error) {
	return s.repo.ListRegions(ctx)
}

func (s *regionService) UpsertRegion(ctx context.Context, req *region.UpsertRegionRequest) (*region.Region, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", region.ErrValidation, err)
	}

	r := &region.Region{
		Code:      strings.ToUpper(req.Code),
		Name:      req.Name,
		Locale:    req.Locale,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.repo.UpsertRegion(ctx, r); err != nil {
		return nil, fmt.Errorf("upsert region: %w", err)
	}
	return r, nil
}

func (s *regionService) DeleteRegion(ctx context.Context, code string) error {
	return s.repo.DeleteRegion(ctx, strings.ToUpper(code))
}

func (s *regionService) ListCities(ctx context.Context, regionCode string) ([]region.City, error) {
	return s.repo.ListCities(ctx, strings.ToUpper(regionCode))
}

func (s *regionService) CreateCity(ctx context.Context, req *region.CreateCityRequest) (*region.City, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", region.ErrValidation, err)
	}

	city := &region.City{
		RegionCode: strings.ToUpper(req.RegionCode),
		Name:       req.Name,
		CreatedAt:  time.Now().UTC(),
	}
	return s.repo.CreateCity(ctx, city)
}

func (s *regionService) DeleteCity(ctx context.Context, id int64) error {
	return s.repo.DeleteCity(ctx, id)
}

func containsCode(codes []string, code string) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
