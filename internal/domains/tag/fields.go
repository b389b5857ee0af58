package tag

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
	titleMinLen = 2
	titleMaxLen = 50
)

// NewTagConfig builds the tag field map: a single sanitized title from which
// the slug is derived.
func NewTagConfig(gen entity.IDGenerator, now func() time.Time) mapping.Config[Tag] {
	return mapping.Config[Tag]{
		Entity: "tag",
		New: func() *Tag {
			t := &Tag{ID: gen.NewID()}
			t.InitTimestamps(now())
			return t
		},
		Fields: []mapping.Field[Tag]{
			{
				Name: "title",
				Callbacks: []mapping.Callback{
					mapping.StringFunc(sanitize.PlainText),
					mapping.StringFunc(strings.TrimSpace),
				},
				Rules: []validation.Rule{
					validation.Required.Error("title is required"),
					validation.Length(titleMinLen, titleMaxLen).Error("title must be 2-50 characters"),
				},
				Assign: func(t *Tag, v interface{}) error {
					s, err := mapping.AsString(v)
					if err != nil {
						return err
					}
					t.Title = s
					t.Slug = utils.GenerateSlug(s)
					return nil
				},
			},
		},
	}
}
