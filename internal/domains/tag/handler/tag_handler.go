package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"photoblog-backend/internal/core/authz"
	tag "photoblog-backend/internal/domains/tag"
	"photoblog-backend/internal/shared/middleware"
	"photoblog-backend/internal/shared/response"
	"photoblog-backend/internal/shared/utils"
)

type TagHandler struct {
	service tag.Service
}

func NewTagHandler(service tag.Service) *TagHandler {
	return &TagHandler{service: service}
}

// Create handles POST /tags
func (h *TagHandler) Create(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		response.BadRequest(c, "cannot read request body")
		return
	}

	dto, err := h.service.Create(c.Request.Context(), middleware.ActorFrom(c), payload)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, dto)
}

// Get handles GET /tags/:id
func (h *TagHandler) Get(c *gin.Context) {
	id := utils.ParseStringToUUID(c.Param("id"))
	if id == uuid.Nil {
		response.BadRequest(c, "invalid tag id")
		return
	}

	dto, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dto)
}

// GetBySlug handles GET /tags/slug/:slug
func (h *TagHandler) GetBySlug(c *gin.Context) {
	dto, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dto)
}

// List handles GET /tags
func (h *TagHandler) List(c *gin.Context) {
	dtos, err := h.service.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dtos)
}

// Membership handles GET /tags/:id/membership
func (h *TagHandler) Membership(c *gin.Context) {
	id := utils.ParseStringToUUID(c.Param("id"))
	if id == uuid.Nil {
		response.BadRequest(c, "invalid tag id")
		return
	}

	dto, err := h.service.Membership(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dto)
}

// Update handles PATCH /tags/:id
func (h *TagHandler) Update(c *gin.Context) {
	id := utils.ParseStringToUUID(c.Param("id"))
	if id == uuid.Nil {
		response.BadRequest(c, "invalid tag id")
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

// Delete handles DELETE /tags/:id
func (h *TagHandler) Delete(c *gin.Context) {
	id := utils.ParseStringToUUID(c.Param("id"))
	if id == uuid.Nil {
		response.BadRequest(c, "invalid tag id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.ActorFrom(c), id); err != nil {
		h.respondError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *TagHandler) respondError(c *gin.Context, err error) {
	if response.MappingError(c, err) {
		return
	}

	switch {
	case tag.IsNotFound(err):
		response.NotFound(c, err.Error())
	case errors.Is(err, tag.ErrDuplicateSlug):
		response.Conflict(c, err.Error())
	case errors.Is(err, tag.ErrForbidden):
		response.Forbidden(c, err.Error())
	case errors.Is(err, authz.ErrUnsupportedVote):
		response.InternalServerError(c, "internal error")
	default:
		response.InternalServerError(c, "internal error")
	}
}
