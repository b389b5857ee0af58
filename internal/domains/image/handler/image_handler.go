package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"photoblog-backend/internal/core/authz"
	image "photoblog-backend/internal/domains/image"
	"photoblog-backend/internal/shared/middleware"
	"photoblog-backend/internal/shared/response"
	"photoblog-backend/internal/shared/utils"
)

type ImageHandler struct {
	service image.Service
}

func NewImageHandler(service image.Service) *ImageHandler {
	return &ImageHandler{service: service}
}

// Upload handles POST /images. Multipart form: "file" is the image, "meta"
// is the JSON metadata payload (title, description, category, tags, EXIF).
func (h *ImageHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "cannot open uploaded file")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		response.BadRequest(c, "cannot read uploaded file")
		return
	}

	meta := c.PostForm("meta")
	if meta == "" {
		response.BadRequest(c, "meta is required")
		return
	}

	dto, err := h.service.Upload(c.Request.Context(), middleware.ActorFrom(c), image.Upload{
		Filename: fileHeader.Filename,
		Data:     data,
		Meta:     []byte(meta),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, dto)
}

// Get handles GET /images/:id
func (h *ImageHandler) Get(c *gin.Context) {
	id := utils.ParseStringToUUID(c.Param("id"))
	if id == uuid.Nil {
		response.BadRequest(c, "invalid image id")
		return
	}

	dto, err := h.service.Get(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dto)
}

// List handles GET /images
func (h *ImageHandler) List(c *gin.Context) {
	filter := image.ListFilter{}
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

	response.SuccessWithMeta(c, http.StatusOK, result.Images, &response.Meta{
		Limit:   filter.Limit,
		Offset:  filter.Offset,
		Total:   result.Total,
		HasMore: int64(filter.Offset+len(result.Images)) < result.Total,
	})
}

// Update handles PATCH /images/:id
func (h *ImageHandler) Update(c *gin.Context) {
	id := utils.ParseStringToUUID(c.Param("id"))
	if id == uuid.Nil {
		response.BadRequest(c, "invalid image id")
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

// Publish handles POST /images/:id/publish
func (h *ImageHandler) Publish(c *gin.Context) {
	h.lifecycle(c, h.service.Publish)
}

// Unpublish handles POST /images/:id/unpublish
func (h *ImageHandler) Unpublish(c *gin.Context) {
	h.lifecycle(c, h.service.Unpublish)
}

// Trash handles POST /images/:id/trash
func (h *ImageHandler) Trash(c *gin.Context) {
	h.lifecycle(c, h.service.Trash)
}

// Restore handles POST /images/:id/restore
func (h *ImageHandler) Restore(c *gin.Context) {
	h.lifecycle(c, h.service.Restore)
}

// Destroy handles DELETE /images/:id
func (h *ImageHandler) Destroy(c *gin.Context) {
	id := utils.ParseStringToUUID(c.Param("id"))
	if id == uuid.Nil {
		response.BadRequest(c, "invalid image id")
		return
	}

	if err := h.service.Destroy(c.Request.Context(), middleware.ActorFrom(c), id); err != nil {
		h.respondError(c, err)
		return
	}

	response.NoContent(c)
}

// Like handles POST /images/:id/like
func (h *ImageHandler) Like(c *gin.Context) {
	h.lifecycle(c, h.service.Like)
}

// Unlike handles DELETE /images/:id/like
func (h *ImageHandler) Unlike(c *gin.Context) {
	h.lifecycle(c, h.service.Unlike)
}

type lifecycleFunc func(ctx context.Context, actor *authz.Actor, id uuid.UUID) (*image.ImageDTO, error)

func (h *ImageHandler) lifecycle(c *gin.Context, fn lifecycleFunc) {
	id := utils.ParseStringToUUID(c.Param("id"))
	if id == uuid.Nil {
		response.BadRequest(c, "invalid image id")
		return
	}

	dto, err := fn(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dto)
}

func (h *ImageHandler) respondError(c *gin.Context, err error) {
	if response.MappingError(c, err) {
		return
	}

	switch {
	case image.IsNotFound(err):
		response.NotFound(c, err.Error())
	case errors.Is(err, image.ErrInvalidUpload):
		response.BadRequest(c, err.Error())
	case errors.Is(err, image.ErrNotTrashed), errors.Is(err, image.ErrForbidden):
		response.Forbidden(c, err.Error())
	case errors.Is(err, authz.ErrUnsupportedVote):
		response.InternalServerError(c, "internal error")
	default:
		response.InternalServerError(c, "internal error")
	}
}
