package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"photoblog-backend/internal/core/authz"
	"photoblog-backend/internal/core/mapping"
	image "photoblog-backend/internal/domains/image"
	"photoblog-backend/internal/infrastructure/storage"
	"photoblog-backend/internal/shared/entity"
	"photoblog-backend/internal/shared/utils"
	"photoblog-backend/pkg/logger"
)

type imageService struct {
	repo       image.Repository
	authorizer *authz.Authorizer
	processor  *storage.ImageProcessor
	storage    storage.ObjectStorage
	gen        entity.IDGenerator
	now        func() time.Time

	config mapping.Config[image.Image]
}

func NewImageService(
	repo image.Repository,
	authorizer *authz.Authorizer,
	processor *storage.ImageProcessor,
	objectStorage storage.ObjectStorage,
	gen entity.IDGenerator,
	now func() time.Time,
) image.Service {
	return &imageService{
		repo:       repo,
		authorizer: authorizer,
		processor:  processor,
		storage:    objectStorage,
		gen:        gen,
		now:        now,
		config:     image.NewImageConfig(gen, now),
	}
}

// Upload runs the full ingest pipeline: validate the file, derive the half
// and thumbnail variants, store all three, then map the metadata payload
// onto a new entity whose URL fields point at the stored objects.
func (s *imageService) Upload(ctx context.Context, actor *authz.Actor, up image.Upload) (*image.ImageDTO, error) {
	// ========== STEP 1: PERMISSION CHECK ==========
	allowed, err := s.authorizer.Allow(authz.ActionCreate, &image.Image{}, actor)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, image.ErrForbidden
	}

	// ========== STEP 2: VALIDATE FILE ==========
	if err := s.processor.ValidateImage(up.Data); err != nil {
		return nil, fmt.Errorf("%w: %s", image.ErrInvalidUpload, err)
	}

	// ========== STEP 3: DERIVE VARIANTS ==========
	variants, err := s.processor.ProcessImage(up.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", image.ErrInvalidUpload, err)
	}

	// ========== STEP 4: STORE VARIANTS ==========
	uploadID := s.gen.NewID()
	urls := make(map[string]string, len(variants))
	for name, data := range variants {
		contentType := "image/jpeg"
		if name == storage.VariantOriginal {
			contentType = http.DetectContentType(data)
		}

		key := fmt.Sprintf("images/%s/%s.jpg", uploadID, name)
		u, err := s.storage.Upload(ctx, key, data, contentType)
		if err != nil {
			return nil, fmt.Errorf("store %s variant: %w", name, err)
		}
		urls[name] = u
	}

	// ========== STEP 5: MAP METADATA ==========
	payload, err := mapping.Decode(up.Meta)
	if err != nil {
		return nil, err
	}
	payload["original"] = urls[storage.VariantOriginal]
	payload["half"] = urls[storage.VariantHalf]
	payload["thumbnail"] = urls[storage.VariantThumbnail]

	i, err := mapping.Create(payload, s.config)
	if err != nil {
		return nil, err
	}
	i.AuthorID = actor.ID

	// ========== STEP 6: PERSIST ==========
	if err := s.repo.Create(ctx, i); err != nil {
		return nil, err
	}

	dto := i.ToDTO()
	return &dto, nil
}

func (s *imageService) Get(ctx context.Context, actor *authz.Actor, id uuid.UUID) (*image.ImageDTO, error) {
	i, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	allowed, err := s.authorizer.Allow(authz.ActionView, i, actor)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, image.ErrForbidden
	}

	dto := i.ToDTO()
	return &dto, nil
}

func (s *imageService) Update(ctx context.Context, actor *authz.Actor, id uuid.UUID, payload []byte) (*image.ImageDTO, error) {
	i, err := s.authorized(ctx, authz.ActionEdit, id, actor)
	if err != nil {
		return nil, err
	}

	if err := mapping.Update(payload, i, s.config); err != nil {
		return nil, err
	}

	return s.save(ctx, i)
}

func (s *imageService) List(ctx context.Context, actor *authz.Actor, filter image.ListFilter) (*image.ListResult, error) {
	filter.PublishedOnly = !actor.IsAdmin()
	filter.Limit, filter.Offset = utils.ClampPagination(filter.Limit, filter.Offset)

	images, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	dtos := make([]image.ImageDTO, 0, len(images))
	for _, i := range images {
		dtos = append(dtos, i.ToDTO())
	}

	return &image.ListResult{Images: dtos, Total: total}, nil
}

// ========================================
// LIFECYCLE
// ========================================

func (s *imageService) Publish(ctx context.Context, actor *authz.Actor, id uuid.UUID) (*image.ImageDTO, error) {
	i, err := s.authorized(ctx, authz.ActionPublish, id, actor)
	if err != nil {
		return nil, err
	}

	i.Publish(s.now())
	return s.save(ctx, i)
}

func (s *imageService) Unpublish(ctx context.Context, actor *authz.Actor, id uuid.UUID) (*image.ImageDTO, error) {
	i, err := s.authorized(ctx, authz.ActionPublish, id, actor)
	if err != nil {
		return nil, err
	}

	i.Unpublish()
	return s.save(ctx, i)
}

func (s *imageService) Trash(ctx context.Context, actor *authz.Actor, id uuid.UUID) (*image.ImageDTO, error) {
	i, err := s.authorized(ctx, authz.ActionTrash, id, actor)
	if err != nil {
		return nil, err
	}

	i.Trash(s.now())
	return s.save(ctx, i)
}

func (s *imageService) Restore(ctx context.Context, actor *authz.Actor, id uuid.UUID) (*image.ImageDTO, error) {
	i, err := s.authorized(ctx, authz.ActionRestore, id, actor)
	if err != nil {
		return nil, err
	}

	i.Restore()
	return s.save(ctx, i)
}

// Destroy hard-deletes a trashed image and removes its stored variants.
// Destroying a live image is rejected before anything is touched.
func (s *imageService) Destroy(ctx context.Context, actor *authz.Actor, id uuid.UUID) error {
	i, err := s.authorized(ctx, authz.ActionDelete, id, actor)
	if err != nil {
		return err
	}

	if !i.IsTrashed() {
		return image.ErrNotTrashed
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	// Object removal is best effort; an orphaned file is not worth failing
	// an already-committed delete.
	for _, u := range []string{i.Original, i.Half, i.Thumbnail} {
		if key := objectKey(u); key != "" {
			if err := s.storage.Remove(ctx, key); err != nil {
				logger.Error("remove image variant failed", err)
			}
		}
	}

	return nil
}

// ========================================
// LIKES
// ========================================

func (s *imageService) Like(ctx context.Context, actor *authz.Actor, id uuid.UUID) (*image.ImageDTO, error) {
	i, err := s.likeable(ctx, id, actor)
	if err != nil {
		return nil, err
	}

	i.AddLike(actor.ID)
	return s.save(ctx, i)
}

func (s *imageService) Unlike(ctx context.Context, actor *authz.Actor, id uuid.UUID) (*image.ImageDTO, error) {
	i, err := s.likeable(ctx, id, actor)
	if err != nil {
		return nil, err
	}

	i.RemoveLike(actor.ID)
	return s.save(ctx, i)
}

// ========================================
// HELPERS
// ========================================

func (s *imageService) authorized(ctx context.Context, action authz.Action, id uuid.UUID, actor *authz.Actor) (*image.Image, error) {
	i, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	allowed, err := s.authorizer.Allow(action, i, actor)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, image.ErrForbidden
	}

	return i, nil
}

func (s *imageService) likeable(ctx context.Context, id uuid.UUID, actor *authz.Actor) (*image.Image, error) {
	if !actor.IsFullyAuthenticated() {
		return nil, image.ErrForbidden
	}
	return s.authorized(ctx, authz.ActionView, id, actor)
}

func (s *imageService) save(ctx context.Context, i *image.Image) (*image.ImageDTO, error) {
	i.Touch(s.now())
	if err := s.repo.Update(ctx, i); err != nil {
		return nil, err
	}

	dto := i.ToDTO()
	return &dto, nil
}

// objectKey extracts the storage key from a variant URL. URLs look like
// http://host/bucket/images/<id>/<variant>.jpg; the key is the part after
// the bucket segment.
func objectKey(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	parts := strings.SplitN(strings.TrimPrefix(u.Path, "/"), "/", 2)
	if len(parts) != 2 {
		return ""
	}
	return parts[1]
}
