package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"photoblog-backend/internal/core/authz"
	category "photoblog-backend/internal/domains/category"
	"photoblog-backend/internal/shared/middleware"
	"photoblog-backend/internal/shared/response"
	"photoblog-backend/internal/shared/utils"
)

type CategoryHandler struct {
	service category.Service
}

func NewCategoryHandler(service category.Service) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// Create handles POST /categories/:kind
func (h *CategoryHandler) Create(c *gin.Context) {
	kind := category.Kind(c.Param("kind"))

	payload, err := c.GetRawData()
	if err != nil {
		response.BadRequest(c, "cannot read request body")
		return
	}

	dto, err := h.service.Create(c.Request.Context(), middleware.ActorFrom(c), kind, payload)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, dto)
}

// Get handles GET /categories/:kind/:id
func (h *CategoryHandler) Get(c *gin.Context) {
	id := utils.ParseStringToUUID(c.Param("id"))
	if id == uuid.Nil {
		response.BadRequest(c, "invalid category id")
		return
	}

	dto, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dto)
}

// List handles GET /categories/:kind
func (h *CategoryHandler) List(c *gin.Context) {
	kind := category.Kind(c.Param("kind"))

	dtos, err := h.service.ListByKind(c.Request.Context(), kind)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dtos)
}

// Update handles PATCH /categories/:kind/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	id := utils.ParseStringToUUID(c.Param("id"))
	if id == uuid.Nil {
		response.BadRequest(c, "invalid category id")
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

// Delete handles DELETE /categories/:kind/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	id := utils.ParseStringToUUID(c.Param("id"))
	if id == uuid.Nil {
		response.BadRequest(c, "invalid category id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.ActorFrom(c), id); err != nil {
		h.respondError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *CategoryHandler) respondError(c *gin.Context, err error) {
	if response.MappingError(c, err) {
		return
	}

	switch {
	case category.IsNotFound(err):
		response.NotFound(c, err.Error())
	case errors.Is(err, category.ErrInvalidKind):
		response.BadRequest(c, err.Error())
	case errors.Is(err, category.ErrDuplicateSlug):
		response.Conflict(c, err.Error())
	case errors.Is(err, category.ErrForbidden):
		response.Forbidden(c, err.Error())
	case errors.Is(err, authz.ErrUnsupportedVote):
		response.InternalServerError(c, "internal error")
	default:
		response.InternalServerError(c, "internal error")
	}
}
