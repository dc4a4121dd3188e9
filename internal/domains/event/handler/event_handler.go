package handler

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"caminodevida-backend/internal/domains/event"
	"caminodevida-backend/internal/infrastructure/storage"
	"caminodevida-backend/internal/shared/middleware"
	"caminodevida-backend/internal/shared/response"
)

// Cover images are bounded so a bad upload cannot exhaust memory.
const maxCoverSize = 5 << 20 // 5 MiB

type EventHandler struct {
	service event.Service
	storage *storage.MinIOStorage
}

func NewEventHandler(svc event.Service, store *storage.MinIOStorage) *EventHandler {
	return &EventHandler{service: svc, storage: store}
}

// ListUpcoming - GET /events?region=
// Defaults the region filter to the visitor's resolved country.
func (h *EventHandler) ListUpcoming(c *gin.Context) {
	regionCode := c.Query("region")
	if regionCode == "" {
		regionCode = middleware.GetCountryCode(c)
	}

	events, err := h.service.ListUpcoming(c.Request.Context(), regionCode)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	response.Success(c, http.StatusOK, events)
}

// GetBySlug - GET /events/:slug
func (h *EventHandler) GetBySlug(c *gin.Context) {
	ev, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.ErrorResponse(c, event.GetHTTPStatusCode(err), "EVENT_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, ev)
}

// ListAll - GET /admin/events
func (h *EventHandler) ListAll(c *gin.Context) {
	events, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	response.Success(c, http.StatusOK, events)
}

// Create - POST /admin/events
func (h *EventHandler) Create(c *gin.Context) {
	var req event.CreateEventRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ev, err := h.service.CreateEvent(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, event.GetHTTPStatusCode(err), "EVENT_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, ev)
}

// Update - PUT /admin/events/:id
func (h *EventHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid event id")
		return
	}

	var req event.UpdateEventRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ev, err := h.service.UpdateEvent(c.Request.Context(), id, &req)
	if err != nil {
		response.ErrorResponse(c, event.GetHTTPStatusCode(err), "EVENT_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, ev)
}

// Delete - DELETE /admin/events/:id
func (h *EventHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid event id")
		return
	}

	if err := h.service.DeleteEvent(c.Request.Context(), id); err != nil {
		response.ErrorResponse(c, event.GetHTTPStatusCode(err), "EVENT_ERROR", err.Error())
		return
	}

	// Media cleanup is best effort; a stray object is harmless.
	_ = h.storage.DeleteByPrefix(c.Request.Context(), fmt.Sprintf("events/%s/", id))

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// UploadCover - POST /admin/events/:id/cover
// Accepts a multipart "file" field, stores it in MinIO and records the
// public URL on the event.
func (h *EventHandler) UploadCover(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid event id")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file field is required")
		return
	}
	if fileHeader.Size > maxCoverSize {
		response.BadRequest(c, "cover image exceeds 5 MiB")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxCoverSize+1))
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := fmt.Sprintf("events/%s/cover%s", id, filepath.Ext(fileHeader.Filename))
	url, err := h.storage.Upload(c.Request.Context(), key, data, contentType)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	ev, err := h.service.SetCover(c.Request.Context(), id, url)
	if err != nil {
		response.ErrorResponse(c, event.GetHTTPStatusCode(err), "EVENT_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, ev)
}
