package post

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
	titleMinLen = 15
	titleMaxLen = 120
	bodyMinLen  = 30
)

// NewPostConfig builds the post field map. The constructor publishes the post
// immediately; drafts are made by unpublishing afterwards.
func NewPostConfig(gen entity.IDGenerator, now func() time.Time) mapping.Config[Post] {
	return mapping.Config[Post]{
		Entity: "post",
		New: func() *Post {
			p := &Post{ID: gen.NewID()}
			p.InitTimestamps(now())
			p.Publish(now())
			return p
		},
		Fields: []mapping.Field[Post]{
			{
				Name: "title",
				Callbacks: []mapping.Callback{
					mapping.StringFunc(sanitize.PlainText),
					mapping.StringFunc(strings.TrimSpace),
				},
				Rules: []validation.Rule{
					validation.Required.Error("title is required"),
					validation.Length(titleMinLen, titleMaxLen).Error("title must be 15-120 characters"),
				},
				Assign: func(p *Post, v interface{}) error {
					s, err := mapping.AsString(v)
					if err != nil {
						return err
					}
					p.Title = s
					p.Slug = utils.GenerateSlug(s)
					return nil
				},
			},
			{
				Name: "body",
				Callbacks: []mapping.Callback{
					mapping.StringFunc(sanitize.RichText),
				},
				Rules: []validation.Rule{
					validation.Required.Error("body is required"),
					validation.Length(bodyMinLen, 0).Error("body must be at least 30 characters"),
				},
				Assign: func(p *Post, v interface{}) error {
					s, err := mapping.AsString(v)
					if err != nil {
						return err
					}
					p.Body = s
					return nil
				},
			},
			{
				Name:     "category",
				Optional: true,
				Assign: func(p *Post, v interface{}) error {
					id, err := mapping.AsUUID(v)
					if err != nil {
						return err
					}
					p.CategoryID = &id
					return nil
				},
			},
			{
				Name:     "tags",
				Optional: true,
				Assign: func(p *Post, v interface{}) error {
					ids, err := mapping.AsUUIDSlice(v)
					if err != nil {
						return err
					}
					p.TagIDs = ids
					return nil
				},
			},
		},
	}
}
