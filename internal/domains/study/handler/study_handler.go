package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"caminodevida-backend/internal/domains/study"
	"caminodevida-backend/internal/shared/middleware"
	"caminodevida-backend/internal/shared/response"
)

type StudyHandler struct {
	service study.Service
}

func NewStudyHandler(svc study.Service) *StudyHandler {
	return &StudyHandler{service: svc}
}

// RecordProgress - POST /studies/:study/progress
// The visitor is identified by the visitor_id cookie set by the region
// middleware.
func (h *StudyHandler) RecordProgress(c *gin.Context) {
	var req study.RecordProgressRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	p, err := h.service.RecordProgress(c.Request.Context(), middleware.GetVisitorID(c), c.Param("study"), req)
	if err != nil {
		response.ErrorResponse(c, study.GetHTTPStatusCode(err), "STUDY_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, p)
}

// GetProgress - GET /studies/:study/progress
func (h *StudyHandler) GetProgress(c *gin.Context) {
	sp, err := h.service.GetProgress(c.Request.Context(), middleware.GetVisitorID(c), c.Param("study"))
	if err != nil {
		response.ErrorResponse(c, study.GetHTTPStatusCode(err), "STUDY_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, sp)
}
