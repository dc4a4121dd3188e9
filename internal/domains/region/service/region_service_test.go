package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"caminodevida-backend/internal/config"
	"caminodevida-backend/internal/domains/region"
)

type stubRepo struct {
	region.Repository
	codes []string
	err   error
}

func (s *stubRepo) ListCodes(ctx context.Context) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.codes, nil
}

func testConfig() config.RegionConfig {
	return config.RegionConfig{
		DefaultCountry:   "ES",
		SecondaryCountry: "BR",
		PrimaryLocale:    "es",
		SecondaryLocale:  "pt",
	}
}

func newService(repo region.Repository) region.Service {
	return NewRegionService(repo, testConfig())
}

func TestDeriveCountryHeaderPriority(t *testing.T) {
	svc := newService(&stubRepo{})

	headers := http.Header{}
	headers.Set("CF-IPCountry", "MX")
	headers.Set("X-Vercel-IP-Country", "pe")

	code, ok := svc.DeriveCountryFromHeaders(headers)
	require.True(t, ok)
	// The Vercel header wins and the value is upper-cased.
	require.Equal(t, "PE", code)
}

func TestDeriveCountrySkipsPlaceholders(t *testing.T) {
	svc := newService(&stubRepo{})

	headers := http.Header{}
	headers.Set("X-Vercel-IP-Country", "unknown")
	headers.Set("CF-IPCountry", "XX")
	headers.Set("X-Country-Code", "AR")

	code, ok := svc.DeriveCountryFromHeaders(headers)
	require.True(t, ok)
	require.Equal(t, "AR", code)
}

func TestDeriveCountryNoUsableHeader(t *testing.T) {
	svc := newService(&stubRepo{})

	_, ok := svc.DeriveCountryFromHeaders(http.Header{})
	require.False(t, ok)

	headers := http.Header{}
	headers.Set("CF-IPCountry", "unknown")
	_, ok = svc.DeriveCountryFromHeaders(headers)
	require.False(t, ok)
}

func TestResolveCookieTrustedVerbatim(t *testing.T) {
	// The repo would reject ZZ, but a cookie skips validation entirely.
	svc := newService(&stubRepo{codes: []string{"ES"}})

	headers := http.Header{}
	headers.Set("X-Vercel-IP-Country", "MX")

	res := svc.Resolve(context.Background(), "zz", headers)
	require.Equal(t, "ZZ", res.CountryCode)
	require.Equal(t, "es", res.Locale)
	require.False(t, res.Degraded)
}

func TestResolveFromHeaders(t *testing.T) {
	svc := newService(&stubRepo{codes: []string{"ES", "MX", "BR"}})

	headers := http.Header{}
	headers.Set("X-Vercel-IP-Country", "MX")

	res := svc.Resolve(context.Background(), "", headers)
	require.Equal(t, "MX", res.CountryCode)
	require.Equal(t, "es", res.Locale)
	require.False(t, res.Degraded)
}

func TestResolveSecondaryLocaleCountry(t *testing.T) {
	svc := newService(&stubRepo{codes: []string{"ES", "BR"}})

	headers := http.Header{}
	headers.Set("CF-IPCountry", "BR")

	res := svc.Resolve(context.Background(), "", headers)
	require.Equal(t, "BR", res.CountryCode)
	require.Equal(t, "pt", res.Locale)
}

func TestResolveUnknownCountryFallsBackToDefault(t *testing.T) {
	svc := newService(&stubRepo{codes: []string{"ES", "MX"}})

	headers := http.Header{}
	headers.Set("X-Vercel-IP-Country", "JP")

	res := svc.Resolve(context.Background(), "", headers)
	require.Equal(t, "ES", res.CountryCode)
	require.Equal(t, "es", res.Locale)
	require.True(t, res.Degraded)
}

func TestResolveNoHeadersDefaults(t *testing.T) {
	svc := newService(&stubRepo{codes: []string{"ES"}})

	res := svc.Resolve(context.Background(), "", http.Header{})
	require.Equal(t, "ES", res.CountryCode)
	require.Equal(t, "es", res.Locale)
	require.True(t, res.Degraded)
}

func TestResolveStoreDownUsesFallbackList(t *testing.T) {
	svc := newService(&stubRepo{err: errors.New("connection refused")})

	headers := http.Header{}
	headers.Set("X-Vercel-IP-Country", "PE")

	// PE is in the hardcoded fallback list, so resolution succeeds but
	// is marked degraded.
	res := svc.Resolve(context.Background(), "", headers)
	require.Equal(t, "PE", res.CountryCode)
	require.True(t, res.Degraded)

	// JP is not in the fallback list either, so the default applies.
	headers.Set("X-Vercel-IP-Country", "JP")
	res = svc.Resolve(context.Background(), "", headers)
	require.Equal(t, "ES", res.CountryCode)
	require.True(t, res.Degraded)
}

func TestIsValidCountryCodeLength(t *testing.T) {
	svc := newService(&stubRepo{codes: []string{"ES"}})

	require.True(t, svc.IsValidCountryCode(context.Background(), "es"))
	require.False(t, svc.IsValidCountryCode(context.Background(), "ESP"))
	require.False(t, svc.IsValidCountryCode(context.Background(), ""))
}

func TestLocaleFor(t *testing.T) {
	svc := newService(&stubRepo{})

	require.Equal(t, "pt", svc.LocaleFor("BR"))
	require.Equal(t, "pt", svc.LocaleFor("br"))
	require.Equal(t, "es", svc.LocaleFor("PT"))
	require.Equal(t, "es", svc.LocaleFor("MX"))
}
