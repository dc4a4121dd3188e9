package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"caminodevida-backend/internal/domains/contact"
	"caminodevida-backend/internal/shared/middleware"
	"caminodevida-backend/internal/shared/response"
)

type ContactHandler struct {
	service contact.Service
}

func NewContactHandler(svc contact.Service) *ContactHandler {
	return &ContactHandler{service: svc}
}

func submissionContext(c *gin.Context) contact.SubmissionContext {
	return contact.SubmissionContext{
		CountryCode: middleware.GetCountryCode(c),
		Locale:      middleware.GetLocale(c),
		VisitorID:   middleware.GetVisitorID(c),
	}
}

// SubmitMessage - POST /contact
func (h *ContactHandler) SubmitMessage(c *gin.Context) {
	var req contact.CreateMessageRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	m, err := h.service.SubmitMessage(c.Request.Context(), req, submissionContext(c))
	if err != nil {
		response.ErrorResponse(c, contact.GetHTTPStatusCode(err), "CONTACT_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, m)
}

// SubmitDecision - POST /decisions
func (h *ContactHandler) SubmitDecision(c *gin.Context) {
	var req contact.CreateDecisionRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	d, err := h.service.SubmitDecision(c.Request.Context(), req, submissionContext(c))
	if err != nil {
		response.ErrorResponse(c, contact.GetHTTPStatusCode(err), "CONTACT_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, d)
}

// ListMessages - GET /admin/contact/messages?page=&limit=
func (h *ContactHandler) ListMessages(c *gin.Context) {
	page, limit := pagination(c)

	messages, total, err := h.service.ListMessages(c.Request.Context(), limit, (page-1)*limit)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, messages, &response.Meta{
		Page:  page,
		Limit: limit,
		Total: int(total),
	})
}

// ListDecisions - GET /admin/contact/decisions?kind=&page=&limit=
func (h *ContactHandler) ListDecisions(c *gin.Context) {
	page, limit := pagination(c)

	decisions, total, err := h.service.ListDecisions(c.Request.Context(), c.Query("kind"), limit, (page-1)*limit)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, decisions, &response.Meta{
		Page:  page,
		Limit: limit,
		Total: int(total),
	})
}

// ExportDecisions - GET /admin/contact/decisions/export?kind=
// Streams an .xlsx workbook for the followup team.
func (h *ContactHandler) ExportDecisions(c *gin.Context) {
	f, err := h.service.ExportDecisionsToExcel(c.Request.Context(), c.Query("kind"))
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	filename := fmt.Sprintf("decisions_%s.xlsx", time.Now().UTC().Format("20060102_150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	if err := f.Write(c.Writer); err != nil {
		response.InternalServerError(c, err.Error())
	}
}

func pagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
