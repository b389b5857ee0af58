package image

import (
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/shopspring/decimal"

	"photoblog-backend/internal/core/mapping"
	"photoblog-backend/internal/shared/entity"
	"photoblog-backend/internal/shared/sanitize"
	"photoblog-backend/internal/shared/utils"
)

const (
	titleMinLen = 3
	titleMaxLen = 80
)

// NewImageConfig builds the image field map. Like posts, images publish
// immediately on construction. The three variant URLs are required and must
// be URL-shaped; EXIF fields are optional.
func NewImageConfig(gen entity.IDGenerator, now func() time.Time) mapping.Config[Image] {
	urlField := func(name string, assign func(i *Image, s string)) mapping.Field[Image] {
		return mapping.Field[Image]{
			Name: name,
			Rules: []validation.Rule{
				validation.Required.Error(name + " is required"),
				is.URL.Error(name + " must be a valid URL"),
			},
			Assign: func(i *Image, v interface{}) error {
				s, err := mapping.AsString(v)
				if err != nil {
					return err
				}
				assign(i, s)
				return nil
			},
		}
	}

	decimalField := func(name string, assign func(i *Image, d decimal.Decimal)) mapping.Field[Image] {
		return mapping.Field[Image]{
			Name:     name,
			Optional: true,
			Assign: func(i *Image, v interface{}) error {
				d, err := asDecimal(v)
				if err != nil {
					return err
				}
				assign(i, d)
				return nil
			},
		}
	}

	return mapping.Config[Image]{
		Entity: "image",
		New: func() *Image {
			i := &Image{ID: gen.NewID()}
			i.InitTimestamps(now())
			i.Publish(now())
			return i
		},
		Fields: []mapping.Field[Image]{
			{
				Name: "title",
				Callbacks: []mapping.Callback{
					mapping.StringFunc(sanitize.PlainText),
					mapping.StringFunc(strings.TrimSpace),
				},
				Rules: []validation.Rule{
					validation.Required.Error("title is required"),
					validation.Length(titleMinLen, titleMaxLen).Error("title must be 3-80 characters"),
				},
				Assign: func(i *Image, v interface{}) error {
					s, err := mapping.AsString(v)
					if err != nil {
						return err
					}
					i.Title = s
					i.Slug = utils.GenerateSlug(s)
					return nil
				},
			},
			{
				Name:     "description",
				Optional: true,
				Callbacks: []mapping.Callback{
					mapping.StringFunc(sanitize.RichText),
				},
				Rules: []validation.Rule{
					validation.Length(0, 2000).Error("description must be at most 2000 characters"),
				},
				Assign: func(i *Image, v interface{}) error {
					s, err := mapping.AsString(v)
					if err != nil {
						return err
					}
					i.Description = s
					return nil
				},
			},
			urlField("original", func(i *Image, s string) { i.Original = s }),
			urlField("half", func(i *Image, s string) { i.Half = s }),
			urlField("thumbnail", func(i *Image, s string) { i.Thumbnail = s }),
			{
				Name:     "category",
				Optional: true,
				Assign: func(i *Image, v interface{}) error {
					id, err := mapping.AsUUID(v)
					if err != nil {
						return err
					}
					i.CategoryID = &id
					return nil
				},
			},
			{
				Name:     "tags",
				Optional: true,
				Assign: func(i *Image, v interface{}) error {
					ids, err := mapping.AsUUIDSlice(v)
					if err != nil {
						return err
					}
					i.TagIDs = ids
					return nil
				},
			},
			decimalField("aperture", func(i *Image, d decimal.Decimal) {
				i.Aperture = decimal.NewNullDecimal(d)
			}),
			decimalField("focal_length", func(i *Image, d decimal.Decimal) {
				i.FocalLength = decimal.NewNullDecimal(d)
			}),
			{
				Name:     "iso",
				Optional: true,
				Assign: func(i *Image, v interface{}) error {
					n, ok := v.(float64)
					if !ok || n != float64(int(n)) || n <= 0 {
						return fmt.Errorf("must be a positive integer")
					}
					iso := int(n)
					i.ISO = &iso
					return nil
				},
			},
		},
	}
}

// asDecimal accepts JSON numbers and numeric strings, keeping the exact
// textual value when given a string.
func asDecimal(v interface{}) (decimal.Decimal, error) {
	switch t := v.(type) {
	case float64:
		return decimal.NewFromFloat(t), nil
	case string:
		d, err := decimal.NewFromString(t)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("must be a decimal number")
		}
		return d, nil
	default:
		return decimal.Decimal{}, fmt.Errorf("must be a decimal number")
	}
}
