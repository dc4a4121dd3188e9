package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"caminodevida-backend/internal/domains/flags"
)

type recordingRepo struct {
	deletedKey     string
	deletedCountry string
	deleteErr      error
}

func (r *recordingRepo) FetchFlags(ctx context.Context, countryCode string) ([]flags.FeatureFlag, error) {
	return nil, nil
}

func (r *recordingRepo) ListAll(ctx context.Context) ([]flags.FeatureFlag, error) {
	return nil, nil
}

func (r *recordingRepo) Upsert(ctx context.Context, flag *flags.FeatureFlag) error {
	return nil
}

func (r *recordingRepo) Delete(ctx context.Context, key string, countryCode string) error {
	r.deletedKey = key
	r.deletedCountry = countryCode
	return r.deleteErr
}

// setupFlagsRouter registers the handler under the same patterns the api
// router uses.
func setupFlagsRouter(repo *recordingRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewFlagsHandler(flags.NewCache(repo, 300), repo)

	r := gin.New()
	r.GET("/flags/:key", h.IsEnabled)
	r.DELETE("/admin/flags/:key", h.Delete)
	return r
}

func TestDeleteRoutePassesNamedKey(t *testing.T) {
	repo := &recordingRepo{}
	router := setupFlagsRouter(repo)

	req := httptest.NewRequest(http.MethodDelete, "/admin/flags/chat?country=mx", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "chat", repo.deletedKey)
	require.Equal(t, "MX", repo.deletedCountry)
}

func TestDeleteMissingFlagReturnsNotFound(t *testing.T) {
	repo := &recordingRepo{deleteErr: flags.ErrFlagNotFound}
	router := setupFlagsRouter(repo)

	req := httptest.NewRequest(http.MethodDelete, "/admin/flags/no-such-flag", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "no-such-flag", repo.deletedKey)
}

func TestIsEnabledRouteBindsKeyParam(t *testing.T) {
	repo := &recordingRepo{}
	router := setupFlagsRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/flags/events", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"key":"events"`)
}
