package category

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"photoblog-backend/internal/core/mapping"
	"photoblog-backend/internal/shared/entity"
	"photoblog-backend/internal/shared/sanitize"
	"photoblog-backend/internal/shared/utils"
)

const (
	titleMinLen = 3
	titleMaxLen = 60
)

// NewPostCategoryConfig builds the field map for post categories.
func NewPostCategoryConfig(gen entity.IDGenerator, now func() time.Time) mapping.Config[Category] {
	return categoryConfig("post_category", KindPost, gen, now)
}

// NewImageCategoryConfig builds the field map for image categories.
func NewImageCategoryConfig(gen entity.IDGenerator, now func() time.Time) mapping.Config[Category] {
	return categoryConfig("image_category", KindImage, gen, now)
}

func categoryConfig(entityName string, kind Kind, gen entity.IDGenerator, now func() time.Time) mapping.Config[Category] {
	return mapping.Config[Category]{
		Entity: entityName,
		New: func() *Category {
			c := &Category{
				ID:   gen.NewID(),
				Kind: kind,
			}
			c.InitTimestamps(now())
			return c
		},
		Fields: []mapping.Field[Category]{
			{
				Name: "title",
				Callbacks: []mapping.Callback{
					mapping.StringFunc(sanitize.PlainText),
					mapping.StringFunc(strings.TrimSpace),
				},
				Rules: []validation.Rule{
					validation.Required.Error("title is required"),
					validation.Length(titleMinLen, titleMaxLen).Error("title must be 3-60 characters"),
				},
				Assign: func(c *Category, v interface{}) error {
					s, err := mapping.AsString(v)
					if err != nil {
						return err
					}
					c.Title = s
					c.Slug = utils.GenerateSlug(s)
					return nil
				},
			},
			{
				Name:     "description",
				Optional: true,
				Callbacks: []mapping.Callback{
					mapping.StringFunc(sanitize.PlainText),
					mapping.StringFunc(strings.TrimSpace),
				},
				Rules: []validation.Rule{
					validation.Length(0, 500).Error("description must be at most 500 characters"),
				},
				Assign: func(c *Category, v interface{}) error {
					s, err := mapping.AsString(v)
					if err != nil {
						return err
					}
					c.Description = s
					return nil
				},
			},
		},
	}
}
