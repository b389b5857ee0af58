package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"photoblog-backend/internal/core/authz"
	user "photoblog-backend/internal/domains/user"
	"photoblog-backend/internal/shared/middleware"
	"photoblog-backend/internal/shared/response"
	"photoblog-backend/internal/shared/utils"
)

type UserHandler struct {
	service user.Service
}

func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// Register handles POST /auth/register
func (h *UserHandler) Register(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		response.BadRequest(c, "cannot read request body")
		return
	}

	dto, err := h.service.Register(c.Request.Context(), middleware.ActorFrom(c), payload)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, dto)
}

// Login handles POST /auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Refresh handles POST /auth/refresh
func (h *UserHandler) Refresh(c *gin.Context) {
	var req user.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Get handles GET /users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id := utils.ParseStringToUUID(c.Param("id"))
	if id == uuid.Nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	dto, err := h.service.Get(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dto)
}

// Update handles PATCH /users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id := utils.ParseStringToUUID(c.Param("id"))
	if id == uuid.Nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	payload, err := c.GetRawData()
	if err != nil {
		response.BadRequest(c, "cannot read request body")
		return
	}

	dto, err := h.service.Update(c.Request.Context(), middleware.ActorFrom(c), id, payload)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dto)
}

// Delete handles DELETE /users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id := utils.ParseStringToUUID(c.Param("id"))
	if id == uuid.Nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.ActorFrom(c), id); err != nil {
		h.respondError(c, err)
		return
	}

	response.NoContent(c)
}

// ChangePassword handles POST /users/password
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req user.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), middleware.ActorFrom(c), req); err != nil {
		h.respondError(c, err)
		return
	}

	response.NoContent(c)
}

// GetProfile handles GET /users/:id/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	id := utils.ParseStringToUUID(c.Param("id"))
	if id == uuid.Nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	dto, err := h.service.GetProfile(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dto)
}

// UpdateProfile handles PATCH /users/:id/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	id := utils.ParseStringToUUID(c.Param("id"))
	if id == uuid.Nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	payload, err := c.GetRawData()
	if err != nil {
		response.BadRequest(c, "cannot read request body")
		return
	}

	dto, err := h.service.UpdateProfile(c.Request.Context(), middleware.ActorFrom(c), id, payload)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dto)
}

func (h *UserHandler) respondError(c *gin.Context, err error) {
	if response.MappingError(c, err) {
		return
	}

	switch {
	case user.IsNotFound(err):
		response.NotFound(c, err.Error())
	case errors.Is(err, user.ErrDuplicateUsername), errors.Is(err, user.ErrDuplicateEmail):
		response.Conflict(c, err.Error())
	case errors.Is(err, user.ErrInvalidCredentials):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, user.ErrPasswordMismatch):
		response.BadRequest(c, err.Error())
	case errors.Is(err, user.ErrForbidden):
		response.Forbidden(c, err.Error())
	case errors.Is(err, authz.ErrUnsupportedVote):
		response.InternalServerError(c, "internal error")
	default:
		// ozzo validation errors from the request DTOs land here as 400.
		var vErrs validation.Errors
		if errors.As(err, &vErrs) {
			response.BadRequest(c, vErrs.Error())
			return
		}
		response.InternalServerError(c, "internal error")
	}
}
