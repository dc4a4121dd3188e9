package region

import (
	"context"
	"net/http"
)

// Service resolves visitor countries and locales and exposes the admin
// surface over the region reference data.
type Service interface {
	// DeriveCountryFromHeaders checks the geolocation headers in their
	// fixed priority order. Returns false when no usable value exists.
	DeriveCountryFromHeaders(headers http.Header) (string, bool)

	// IsValidCountryCode reports whether code is a known two-letter region
	// code. Store failures degrade to the hardcoded fallback list.
	IsValidCountryCode(ctx context.Context, code string) bool

	// Resolve applies the full policy: trust an existing cookie verbatim,
	// else derive from headers and validate, else use the default country.
	Resolve(ctx context.Context, cookieCountry string, headers http.Header) Resolution

	// LocaleFor maps a country code to the UI locale.
	LocaleFor(countryCode string) string

	ListRegions(ctx context.Context) ([]Region, error)
	UpsertRegion(ctx context.Context, req *UpsertRegionRequest) (*Region, error)
	DeleteRegion(ctx context.Context, code string) error

	ListCities(ctx context.Context, regionCode string) ([]City, error)
	CreateCity(ctx context.Context, req *CreateCityRequest) (*City, error)
	DeleteCity(ctx context.Context, id int64) error
}
