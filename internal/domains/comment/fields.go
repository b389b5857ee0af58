package comment

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"photoblog-backend/internal/core/mapping"
	"photoblog-backend/internal/shared/entity"
	"photoblog-backend/internal/shared/sanitize"
)

const (
	bodyMinLen = 2
	bodyMaxLen = 500
)

// NewPostCommentConfig builds the field map for comments on posts.
func NewPostCommentConfig(gen entity.IDGenerator, now func() time.Time) mapping.Config[Comment] {
	return commentConfig("post_comment", "post", KindPost, gen, now)
}

// NewImageCommentConfig builds the field map for comments on images.
func NewImageCommentConfig(gen entity.IDGenerator, now func() time.Time) mapping.Config[Comment] {
	return commentConfig("image_comment", "image", KindImage, gen, now)
}

// commentConfig is shared between the two comment kinds; only the entity
// name, the subject payload key and the Kind stamped by the constructor
// differ.
func commentConfig(entityName, subjectField string, kind Kind, gen entity.IDGenerator, now func() time.Time) mapping.Config[Comment] {
	return mapping.Config[Comment]{
		Entity: entityName,
		New: func() *Comment {
			c := &Comment{
				ID:   gen.NewID(),
				Kind: kind,
			}
			c.InitTimestamps(now())
			return c
		},
		Fields: []mapping.Field[Comment]{
			{
				Name: "body",
				Callbacks: []mapping.Callback{
					mapping.StringFunc(sanitize.PlainText),
					mapping.StringFunc(strings.TrimSpace),
				},
				Rules: []validation.Rule{
					validation.Required.Error("body is required"),
					validation.Length(bodyMinLen, bodyMaxLen).Error("body must be 2-500 characters"),
				},
				Assign: func(c *Comment, v interface{}) error {
					s, err := mapping.AsString(v)
					if err != nil {
						return err
					}
					c.Body = s
					return nil
				},
			},
			{
				Name: subjectField,
				Rules: []validation.Rule{
					validation.Required.Error(subjectField + " reference is required"),
				},
				Assign: func(c *Comment, v interface{}) error {
					id, err := mapping.AsUUID(v)
					if err != nil {
						return err
					}
					c.SubjectID = id
					return nil
				},
			},
		},
	}
}
