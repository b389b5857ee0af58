package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"photoblog-backend/internal/core/authz"
	post "photoblog-backend/internal/domains/post"
	"photoblog-backend/internal/shared/middleware"
	"photoblog-backend/internal/shared/response"
	"photoblog-backend/internal/shared/utils"
)

type PostHandler struct {
	service post.Service
}

func NewPostHandler(service post.Service) *PostHandler {
	return &PostHandler{service: service}
}

// Create handles POST /posts
func (h *PostHandler) Create(c *gin.Context) {
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

// Get handles GET /posts/:id
func (h *PostHandler) Get(c *gin.Context) {
	id := utils.ParseStringToUUID(c.Param("id"))
	if id == uuid.Nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	dto, err := h.service.Get(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dto)
}

// GetBySlug handles GET /posts/slug/:slug
func (h *PostHandler) GetBySlug(c *gin.Context) {
	dto, err := h.service.GetBySlug(c.Request.Context(), middleware.ActorFrom(c), c.Param("slug"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dto)
}

// List handles GET /posts
func (h *PostHandler) List(c *gin.Context) {
	filter := post.ListFilter{}
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	filter.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	if raw := c.Query("category"); raw != "" {
		if id := utils.ParseStringToUUID(raw); id != uuid.Nil {
			filter.CategoryID = &id
		}
	}
	if raw := c.Query("tag"); raw != "" {
		if id := utils.ParseStringToUUID(raw); id != uuid.Nil {
			filter.TagID = &id
		}
	}

	result, err := h.service.List(c.Request.Context(), middleware.ActorFrom(c), filter)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, result.Posts, &response.Meta{
		Limit:   filter.Limit,
		Offset:  filter.Offset,
		Total:   result.Total,
		HasMore: int64(filter.Offset+len(result.Posts)) < result.Total,
	})
}

// Export handles GET /posts/export. Streams the current listing as an XLSX
// workbook; administrator-only.
func (h *PostHandler) Export(c *gin.Context) {
	filter := post.ListFilter{}
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "100"))
	filter.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	if raw := c.Query("category"); raw != "" {
		if id := utils.ParseStringToUUID(raw); id != uuid.Nil {
			filter.CategoryID = &id
		}
	}
	if raw := c.Query("tag"); raw != "" {
		if id := utils.ParseStringToUUID(raw); id != uuid.Nil {
			filter.TagID = &id
		}
	}

	f, err := h.service.ExportToExcel(c.Request.Context(), middleware.ActorFrom(c), filter)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="posts.xlsx"`)
	if err := f.Write(c.Writer); err != nil {
		response.InternalServerError(c, "failed to write export")
	}
}

// Update handles PATCH /posts/:id
func (h *PostHandler) Update(c *gin.Context) {
	id := utils.ParseStringToUUID(c.Param("id"))
	if id == uuid.Nil {
		response.BadRequest(c, "invalid post id")
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

// Publish handles POST /posts/:id/publish
func (h *PostHandler) Publish(c *gin.Context) {
	h.lifecycle(c, h.service.Publish)
}

// Unpublish handles POST /posts/:id/unpublish
func (h *PostHandler) Unpublish(c *gin.Context) {
	h.lifecycle(c, h.service.Unpublish)
}

// Trash handles POST /posts/:id/trash
func (h *PostHandler) Trash(c *gin.Context) {
	h.lifecycle(c, h.service.Trash)
}

// Restore handles POST /posts/:id/restore
func (h *PostHandler) Restore(c *gin.Context) {
	h.lifecycle(c, h.service.Restore)
}

// Destroy handles DELETE /posts/:id
func (h *PostHandler) Destroy(c *gin.Context) {
	id := utils.ParseStringToUUID(c.Param("id"))
	if id == uuid.Nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	if err := h.service.Destroy(c.Request.Context(), middleware.ActorFrom(c), id); err != nil {
		h.respondError(c, err)
		return
	}

	response.NoContent(c)
}

// Like handles POST /posts/:id/like
func (h *PostHandler) Like(c *gin.Context) {
	h.lifecycle(c, h.service.Like)
}

// Unlike handles DELETE /posts/:id/like
func (h *PostHandler) Unlike(c *gin.Context) {
	h.lifecycle(c, h.service.Unlike)
}

type lifecycleFunc func(ctx context.Context, actor *authz.Actor, id uuid.UUID) (*post.PostDTO, error)

func (h *PostHandler) lifecycle(c *gin.Context, fn lifecycleFunc) {
	id := utils.ParseStringToUUID(c.Param("id"))
	if id == uuid.Nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	dto, err := fn(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dto)
}

func (h *PostHandler) respondError(c *gin.Context, err error) {
	if response.MappingError(c, err) {
		return
	}

	switch {
	case post.IsNotFound(err):
		response.NotFound(c, err.Error())
	case errors.Is(err, post.ErrNotTrashed), errors.Is(err, post.ErrForbidden):
		response.Forbidden(c, err.Error())
	case errors.Is(err, authz.ErrUnsupportedVote):
		response.InternalServerError(c, "internal error")
	default:
		response.InternalServerError(c, "internal error")
	}
}
