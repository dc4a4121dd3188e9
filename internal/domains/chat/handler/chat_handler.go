package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"caminodevida-backend/internal/domains/chat"
	"caminodevida-backend/internal/shared/middleware"
	"caminodevida-backend/internal/shared/response"
)

type ChatHandler struct {
	service chat.Service
}

func NewChatHandler(svc chat.Service) *ChatHandler {
	return &ChatHandler{service: svc}
}

// Send - POST /chat
func (h *ChatHandler) Send(c *gin.Context) {
	var req chat.SendMessageRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	reply, err := h.service.Send(
		c.Request.Context(),
		middleware.GetVisitorID(c),
		middleware.GetCountryCode(c),
		middleware.GetLocale(c),
		req,
	)
	if err != nil {
		response.ErrorResponse(c, chat.GetHTTPStatusCode(err), "CHAT_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, reply)
}

// History - GET /chat/history
func (h *ChatHandler) History(c *gin.Context) {
	session, err := h.service.History(c.Request.Context(), middleware.GetVisitorID(c))
	if err != nil {
		response.ErrorResponse(c, chat.GetHTTPStatusCode(err), "CHAT_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, session)
}

// Reset - DELETE /chat/history
func (h *ChatHandler) Reset(c *gin.Context) {
	if err := h.service.Reset(c.Request.Context(), middleware.GetVisitorID(c)); err != nil {
		response.ErrorResponse(c, chat.GetHTTPStatusCode(err), "CHAT_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reset": true})
}

// GospelSteps - GET /gospel/steps
func (h *ChatHandler) GospelSteps(c *gin.Context) {
	response.Success(c, http.StatusOK, chat.GospelSteps(middleware.GetLocale(c)))
}

// GospelStep - GET /gospel/steps/:index
func (h *ChatHandler) GospelStep(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.BadRequest(c, "index must be a number")
		return
	}

	step, err := chat.GospelStepAt(middleware.GetLocale(c), index)
	if err != nil {
		response.ErrorResponse(c, chat.GetHTTPStatusCode(err), "CHAT_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, step)
}
