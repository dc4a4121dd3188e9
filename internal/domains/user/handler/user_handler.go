package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"caminodevida-backend/internal/domains/user"
	"caminodevida-backend/internal/shared/response"
)

type UserHandler struct {
	service user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{service: svc}
}

// Login - POST /admin/auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.ErrorResponse(c, user.GetHTTPStatusCode(err), "AUTH_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, resp)
}

// Refresh - POST /admin/auth/refresh
func (h *UserHandler) Refresh(c *gin.Context) {
	var req user.RefreshRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Refresh(c.Request.Context(), req)
	if err != nil {
		response.ErrorResponse(c, user.GetHTTPStatusCode(err), "AUTH_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, resp)
}

// Me - GET /admin/auth/me
func (h *UserHandler) Me(c *gin.Context) {
	idStr := c.GetString("user_id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		response.Unauthorized(c, "invalid token subject")
		return
	}

	u, err := h.service.GetProfile(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, user.GetHTTPStatusCode(err), "AUTH_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, u)
}

// Create - POST /admin/users
func (h *UserHandler) Create(c *gin.Context) {
	var req user.CreateUserRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	u, err := h.service.CreateUser(c.Request.Context(), req)
	if err != nil {
		response.ErrorResponse(c, user.GetHTTPStatusCode(err), "USER_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, u)
}

// List - GET /admin/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	response.Success(c, http.StatusOK, users)
}

// Delete - DELETE /admin/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), id); err != nil {
		response.ErrorResponse(c, user.GetHTTPStatusCode(err), "USER_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
