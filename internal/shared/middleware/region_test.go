package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"caminodevida-backend/internal/domains/region"
)

type fakeResolver struct {
	resolution region.Resolution
	gotCookie  string
}

func (f *fakeResolver) Resolve(ctx context.Context, cookieCountry string, headers http.Header) region.Resolution {
	f.gotCookie = cookieCountry
	return f.resolution
}

func setupRouter(resolver *fakeResolver) (*gin.Engine, *map[string]string) {
	gin.SetMode(gin.TestMode)

	cfg := DefaultRegionMiddlewareConfig(resolver)
	cfg.CookieSecure = false

	captured := map[string]string{}
	r := gin.New()
	r.Use(RegionMiddleware(cfg))
	r.GET("/", func(c *gin.Context) {
		captured["country"] = GetCountryCode(c)
		captured["locale"] = GetLocale(c)
		captured["visitor"] = GetVisitorID(c)
		c.Status(http.StatusOK)
	})
	return r, &captured
}

func cookieByName(t *testing.T, cookies []*http.Cookie, name string) *http.Cookie {
	t.Helper()
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestRegionMiddlewareFirstVisit(t *testing.T) {
	resolver := &fakeResolver{resolution: region.Resolution{CountryCode: "MX", Locale: "es"}}
	router, captured := setupRouter(resolver)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	cookies := rec.Result().Cookies()

	cc := cookieByName(t, cookies, CountryCookieName)
	require.NotNil(t, cc)
	require.Equal(t, "MX", cc.Value)
	require.Equal(t, CountryCookieMaxAge, cc.MaxAge)
	require.False(t, cc.HttpOnly)

	locale := cookieByName(t, cookies, LocaleCookieName)
	require.NotNil(t, locale)
	require.Equal(t, "es", locale.Value)

	visitor := cookieByName(t, cookies, VisitorCookieName)
	require.NotNil(t, visitor)
	_, err := uuid.Parse(visitor.Value)
	require.NoError(t, err)

	require.Equal(t, "MX", (*captured)["country"])
	require.Equal(t, "es", (*captured)["locale"])
	require.Equal(t, visitor.Value, (*captured)["visitor"])
}

func TestRegionMiddlewareReturningVisitor(t *testing.T) {
	resolver := &fakeResolver{resolution: region.Resolution{CountryCode: "BR", Locale: "pt"}}
	router, captured := setupRouter(resolver)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CountryCookieName, Value: "BR"})
	req.AddCookie(&http.Cookie{Name: LocaleCookieName, Value: "pt"})
	req.AddCookie(&http.Cookie{Name: VisitorCookieName, Value: "existing-visitor"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// Everything already set and consistent, so nothing is rewritten.
	require.Empty(t, rec.Result().Cookies())
	require.Equal(t, "BR", resolver.gotCookie)
	require.Equal(t, "existing-visitor", (*captured)["visitor"])
}

func TestRegionMiddlewareRewritesLocaleWhenChanged(t *testing.T) {
	resolver := &fakeResolver{resolution: region.Resolution{CountryCode: "BR", Locale: "pt"}}
	router, _ := setupRouter(resolver)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CountryCookieName, Value: "BR"})
	req.AddCookie(&http.Cookie{Name: LocaleCookieName, Value: "es"})
	req.AddCookie(&http.Cookie{Name: VisitorCookieName, Value: "v"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	cookies := rec.Result().Cookies()
	require.Nil(t, cookieByName(t, cookies, CountryCookieName))

	locale := cookieByName(t, cookies, LocaleCookieName)
	require.NotNil(t, locale)
	require.Equal(t, "pt", locale.Value)
	require.Equal(t, LocaleCookieMaxAge, locale.MaxAge)
}
