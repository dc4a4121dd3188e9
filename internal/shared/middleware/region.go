package middleware

import (
	"context"
	"net/http"

	"caminodevida-backend/internal/domains/region"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ===================================
// INTERFACES
// ===================================

// RegionResolver is the minimal contract the middleware needs from the
// region service; injected to avoid a handler/service import cycle.
type RegionResolver interface {
	Resolve(ctx context.Context, cookieCountry string, headers http.Header) region.Resolution
}

// ===================================
// CONSTANTS
// ===================================

const (
	CountryCookieName = "cc"
	LocaleCookieName  = "NEXT_LOCALE"
	VisitorCookieName = "visitor_id"

	CountryCookieMaxAge = 60 * 60 * 24 * 30  // 30 days in seconds
	LocaleCookieMaxAge  = 60 * 60 * 24 * 365 // 1 year
	VisitorCookieMaxAge = 60 * 60 * 24 * 365 // 1 year

	ContextKeyCountryCode = "country_code"
	ContextKeyLocale      = "locale"
	ContextKeyVisitorID   = "visitor_id"
)

// RegionMiddlewareConfig holds cookie settings for the region middleware.
type RegionMiddlewareConfig struct {
	Resolver       RegionResolver
	CookieDomain   string
	CookiePath     string
	CookieSecure   bool // true for HTTPS-only (production)
	CookieSameSite http.SameSite
}

// DefaultRegionMiddlewareConfig returns production defaults; set
// CookieSecure=false for localhost development.
func DefaultRegionMiddlewareConfig(resolver RegionResolver) RegionMiddlewareConfig {
	return RegionMiddlewareConfig{
		Resolver:       resolver,
		CookieDomain:   "",
		CookiePath:     "/",
		CookieSecure:   true,
		CookieSameSite: http.SameSiteLaxMode,
	}
}

// RegionMiddleware assigns a durable country code and derived UI locale
// to every visitor.
//
// Flow:
//  1. An existing cc cookie is trusted verbatim (no re-validation).
//  2. Otherwise the country is derived from geo headers and validated;
//     invalid or absent values fall back to the default country, and the
//     result is written to the cc cookie (30 days).
//  3. The locale cookie (1 year) is written only when it differs from the
//     one already present.
//  4. An anonymous visitor id cookie (1 year) is assigned when absent.
//
// All three cookies are non-HTTP-only and lax same-site: the frontend
// reads them directly.
func RegionMiddleware(config RegionMiddlewareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookieCountry, _ := c.Cookie(CountryCookieName)

		res := config.Resolver.Resolve(c.Request.Context(), cookieCountry, c.Request.Header)

		if cookieCountry == "" {
			setCookie(c, config, CountryCookieName, res.CountryCode, CountryCookieMaxAge)
		}

		existingLocale, _ := c.Cookie(LocaleCookieName)
		if existingLocale != res.Locale {
			setCookie(c, config, LocaleCookieName, res.Locale, LocaleCookieMaxAge)
		}

		visitorID, _ := c.Cookie(VisitorCookieName)
		if visitorID == "" {
			visitorID = uuid.New().String()
			setCookie(c, config, VisitorCookieName, visitorID, VisitorCookieMaxAge)
		}

		c.Set(ContextKeyCountryCode, res.CountryCode)
		c.Set(ContextKeyLocale, res.Locale)
		c.Set(ContextKeyVisitorID, visitorID)

		c.Next()
	}
}

func setCookie(c *gin.Context, config RegionMiddlewareConfig, name, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		MaxAge:   maxAge,
		Path:     config.CookiePath,
		Domain:   config.CookieDomain,
		Secure:   config.CookieSecure,
		HttpOnly: false, // the frontend reads these
		SameSite: config.CookieSameSite,
	})
}

// GetCountryCode returns the country resolved for this request, empty
// string if the middleware did not run.
func GetCountryCode(c *gin.Context) string {
	return c.GetString(ContextKeyCountryCode)
}

// GetLocale returns the locale resolved for this request.
func GetLocale(c *gin.Context) string {
	return c.GetString(ContextKeyLocale)
}

// GetVisitorID returns the anonymous visitor identifier for this request.
func GetVisitorID(c *gin.Context) string {
	return c.GetString(ContextKeyVisitorID)
}
