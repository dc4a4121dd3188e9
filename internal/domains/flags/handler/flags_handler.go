package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"caminodevida-backend/internal/domains/flags"
	"caminodevida-backend/internal/shared/middleware"
	"caminodevida-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FlagsHandler struct {
	cache *flags.Cache
	repo  flags.Repository
}

func NewFlagsHandler(cache *flags.Cache, repo flags.Repository) *FlagsHandler {
	return &FlagsHandler{cache: cache, repo: repo}
}

// requestCountry prefers an explicit ?country= override, then the country
// the region middleware resolved.
func requestCountry(c *gin.Context) string {
	if country := c.Query("country"); country != "" {
		return country
	}
	return middleware.GetCountryCode(c)
}

// GetFlags - GET /flags?country=
func (h *FlagsHandler) GetFlags(c *gin.Context) {
	res := h.cache.GetFlags(c.Request.Context(), requestCountry(c))
	response.Success(c, http.StatusOK, res)
}

// IsEnabled - GET /flags/:key?country=
func (h *FlagsHandler) IsEnabled(c *gin.Context) {
	enabled := h.cache.IsEnabled(c.Request.Context(), c.Param("key"), requestCountry(c))
	response.Success(c, http.StatusOK, gin.H{
		"key":     c.Param("key"),
		"enabled": enabled,
	})
}

// ListAll - GET /admin/flags
// Unlike the public endpoint this bypasses the cache and shows every row.
func (h *FlagsHandler) ListAll(c *gin.Context) {
	all, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	response.Success(c, http.StatusOK, all)
}

// Upsert - PUT /admin/flags
func (h *FlagsHandler) Upsert(c *gin.Context) {
	var req flags.UpsertFlagRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "FLAGS_ERROR",
			fmt.Sprintf("%v: %v", flags.ErrValidation, err))
		return
	}

	flag := &flags.FeatureFlag{
		ID:        uuid.New(),
		Key:       req.Key,
		Enabled:   req.Enabled,
		Notes:     req.Notes,
		UpdatedAt: time.Now().UTC(),
	}
	if code := strings.ToUpper(strings.TrimSpace(req.CountryCode)); code != "" {
		flag.CountryCode = &code
	}

	if err := h.repo.Upsert(c.Request.Context(), flag); err != nil {
		response.ErrorResponse(c, flags.GetHTTPStatusCode(err), "FLAGS_ERROR", err.Error())
		return
	}

	// Administered rows should show up without waiting out the TTL.
	h.cache.Clear(req.CountryCode)

	response.Success(c, http.StatusOK, flag)
}

// Delete - DELETE /admin/flags/:key?country=
func (h *FlagsHandler) Delete(c *gin.Context) {
	country := strings.ToUpper(strings.TrimSpace(c.Query("country")))

	if err := h.repo.Delete(c.Request.Context(), c.Param("key"), country); err != nil {
		response.ErrorResponse(c, flags.GetHTTPStatusCode(err), "FLAGS_ERROR", err.Error())
		return
	}

	h.cache.Clear(country)
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// ClearCache - POST /admin/flags/cache/clear?country=
func (h *FlagsHandler) ClearCache(c *gin.Context) {
	h.cache.Clear(c.Query("country"))
	response.Success(c, http.StatusOK, gin.H{"cleared": true})
}
