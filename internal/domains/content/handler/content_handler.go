package handler

import (
	"net/http"

	"caminodevida-backend/internal/domains/content"
	"caminodevida-backend/internal/shared/middleware"
	"caminodevida-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	resolver *content.Resolver
}

func NewContentHandler(resolver *content.Resolver) *ContentHandler {
	return &ContentHandler{resolver: resolver}
}

// requestLocale prefers an explicit ?locale= override, then the locale the
// region middleware resolved for this visitor.
func requestLocale(c *gin.Context) string {
	if locale := c.Query("locale"); locale != "" {
		return locale
	}
	return middleware.GetLocale(c)
}

// List - GET /content/:type?tag=&locale=
func (h *ContentHandler) List(c *gin.Context) {
	contentType, ok := content.ParseType(c.Param("type"))
	if !ok {
		response.BadRequest(c, "unknown content type")
		return
	}

	locale := requestLocale(c)

	var items []content.Item
	if tag := c.Query("tag"); tag != "" {
		items = h.resolver.ListByTag(contentType, tag, locale)
	} else {
		items = h.resolver.List(contentType, locale)
	}

	response.SuccessWithMeta(c, http.StatusOK, items, &response.Meta{Total: len(items)})
}

// Get - GET /content/:type/:slug?locale=
func (h *ContentHandler) Get(c *gin.Context) {
	contentType, ok := content.ParseType(c.Param("type"))
	if !ok {
		response.BadRequest(c, "unknown content type")
		return
	}

	item := h.resolver.Get(contentType, c.Param("slug"), requestLocale(c))
	if item == nil {
		response.NotFound(c, "content not found")
		return
	}

	response.Success(c, http.StatusOK, item)
}

// GetStudy - GET /studies/:study?locale=
func (h *ContentHandler) GetStudy(c *gin.Context) {
	meta := h.resolver.GetStudyMetadata(c.Param("study"), requestLocale(c))
	if meta == nil {
		response.NotFound(c, "study not found")
		return
	}

	response.Success(c, http.StatusOK, meta)
}

// ListStudyLessons - GET /studies/:study/lessons?locale=
func (h *ContentHandler) ListStudyLessons(c *gin.Context) {
	lessons := h.resolver.ListStudyLessons(c.Param("study"), requestLocale(c))
	response.SuccessWithMeta(c, http.StatusOK, lessons, &response.Meta{Total: len(lessons)})
}
