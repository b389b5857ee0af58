package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"photoblog-backend/internal/core/authz"
	comment "photoblog-backend/internal/domains/comment"
	"photoblog-backend/internal/shared/middleware"
	"photoblog-backend/internal/shared/response"
	"photoblog-backend/internal/shared/utils"
)

type CommentHandler struct {
	service comment.Service
}

func NewCommentHandler(service comment.Service) *CommentHandler {
	return &CommentHandler{service: service}
}

// CreateOnPost handles POST /posts/comments
func (h *CommentHandler) CreateOnPost(c *gin.Context) {
	h.create(c, comment.KindPost)
}

// CreateOnImage handles POST /images/comments
func (h *CommentHandler) CreateOnImage(c *gin.Context) {
	h.create(c, comment.KindImage)
}

func (h *CommentHandler) create(c *gin.Context, kind comment.Kind) {
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

// Get handles GET /comments/:id
func (h *CommentHandler) Get(c *gin.Context) {
	id := utils.ParseStringToUUID(c.Param("id"))
	if id == uuid.Nil {
		response.BadRequest(c, "invalid comment id")
		return
	}

	dto, err := h.service.Get(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dto)
}

// ListOnPost handles GET /posts/:id/comments
func (h *CommentHandler) ListOnPost(c *gin.Context) {
	h.list(c, comment.KindPost)
}

// ListOnImage handles GET /images/:id/comments
func (h *CommentHandler) ListOnImage(c *gin.Context) {
	h.list(c, comment.KindImage)
}

func (h *CommentHandler) list(c *gin.Context, kind comment.Kind) {
	subjectID := utils.ParseStringToUUID(c.Param("id"))
	if subjectID == uuid.Nil {
		response.BadRequest(c, "invalid subject id")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	result, err := h.service.ListBySubject(c.Request.Context(), kind, subjectID, limit, offset)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, result.Comments, &response.Meta{
		Limit:   limit,
		Offset:  offset,
		Total:   result.Total,
		HasMore: int64(offset+len(result.Comments)) < result.Total,
	})
}

// Update handles PATCH /comments/:id
func (h *CommentHandler) Update(c *gin.Context) {
	id := utils.ParseStringToUUID(c.Param("id"))
	if id == uuid.Nil {
		response.BadRequest(c, "invalid comment id")
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

// Delete handles DELETE /comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	id := utils.ParseStringToUUID(c.Param("id"))
	if id == uuid.Nil {
		response.BadRequest(c, "invalid comment id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.ActorFrom(c), id); err != nil {
		h.respondError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *CommentHandler) respondError(c *gin.Context, err error) {
	if response.MappingError(c, err) {
		return
	}

	switch {
	case comment.IsNotFound(err):
		response.NotFound(c, err.Error())
	case errors.Is(err, comment.ErrInvalidKind):
		response.BadRequest(c, err.Error())
	case errors.Is(err, comment.ErrForbidden):
		response.Forbidden(c, err.Error())
	case errors.Is(err, authz.ErrUnsupportedVote):
		response.InternalServerError(c, "internal error")
	default:
		response.InternalServerError(c, "internal error")
	}
}
