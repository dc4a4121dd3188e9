package handler

import (
	"net/http"
	"strconv"

	"caminodevida-backend/internal/domains/region"
	"caminodevida-backend/internal/shared/middleware"
	"caminodevida-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type RegionHandler struct {
	service region.Service
}

func NewRegionHandler(svc region.Service) *RegionHandler {
	return &RegionHandler{service: svc}
}

// Current - GET /region
// Returns the country/locale resolved for this request by the middleware.
func (h *RegionHandler) Current(c *gin.Context) {
	response.Success(c, http.StatusOK, region.Resolution{
		CountryCode: middleware.GetCountryCode(c),
		Locale:      middleware.GetLocale(c),
	})
}

// List - GET /regions
func (h *RegionHandler) List(c *gin.Context) {
	regions, err := h.service.ListRegions(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	response.Success(c, http.StatusOK, regions)
}

// Upsert - PUT /admin/regions
func (h *RegionHandler) Upsert(c *gin.Context) {
	var req region.UpsertRegionRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	reg, err := h.service.UpsertRegion(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, region.GetHTTPStatusCode(err), "REGION_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, reg)
}

// Delete - DELETE /admin/regions/:code
func (h *RegionHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteRegion(c.Request.Context(), c.Param("code")); err != nil {
		response.ErrorResponse(c, region.GetHTTPStatusCode(err), "REGION_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// ListCities - GET /cities?region=
func (h *RegionHandler) ListCities(c *gin.Context) {
	cities, err := h.service.ListCities(c.Request.Context(), c.Query("region"))
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	response.Success(c, http.StatusOK, cities)
}

// CreateCity - POST /admin/cities
func (h *RegionHandler) CreateCity(c *gin.Context) {
	var req region.CreateCityRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	city, err := h.service.CreateCity(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, region.GetHTTPStatusCode(err), "REGION_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, city)
}

// DeleteCity - DELETE /admin/cities/:id
func (h *RegionHandler) DeleteCity(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid city id")
		return
	}

	if err := h.service.DeleteCity(c.Request.Context(), id); err != nil {
		response.ErrorResponse(c, region.GetHTTPStatusCode(err), "REGION_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
