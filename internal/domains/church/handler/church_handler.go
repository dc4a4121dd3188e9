package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"caminodevida-backend/internal/domains/church"
	"caminodevida-backend/internal/shared/middleware"
	"caminodevida-backend/internal/shared/response"
)

type ChurchHandler struct {
	service church.Service
}

func NewChurchHandler(svc church.Service) *ChurchHandler {
	return &ChurchHandler{service: svc}
}

// List - GET /churches?region=&city=
// Defaults the region filter to the visitor's resolved country.
func (h *ChurchHandler) List(c *gin.Context) {
	filter := church.Filter{
		RegionCode: c.Query("region"),
		City:       c.Query("city"),
	}
	if filter.RegionCode == "" {
		filter.RegionCode = middleware.GetCountryCode(c)
	}

	churches, err := h.service.ListChurches(c.Request.Context(), filter)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	response.Success(c, http.StatusOK, churches)
}

// Get - GET /churches/:id
func (h *ChurchHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid church id")
		return
	}

	ch, err := h.service.GetChurch(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, church.GetHTTPStatusCode(err), "CHURCH_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, ch)
}

// Create - POST /admin/churches
func (h *ChurchHandler) Create(c *gin.Context) {
	var req church.CreateChurchRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ch, err := h.service.CreateChurch(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, church.GetHTTPStatusCode(err), "CHURCH_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, ch)
}

// Update - PUT /admin/churches/:id
func (h *ChurchHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid church id")
		return
	}

	var req church.UpdateChurchRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ch, err := h.service.UpdateChurch(c.Request.Context(), id, &req)
	if err != nil {
		response.ErrorResponse(c, church.GetHTTPStatusCode(err), "CHURCH_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, ch)
}

// Delete - DELETE /admin/churches/:id
func (h *ChurchHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid church id")
		return
	}

	if err := h.service.DeleteChurch(c.Request.Context(), id); err != nil {
		response.ErrorResponse(c, church.GetHTTPStatusCode(err), "CHURCH_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
