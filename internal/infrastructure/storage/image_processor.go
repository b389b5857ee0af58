package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	"github.com/disintegration/imaging"
)

// Variant names follow the URL fields on the image entity.
const (
	VariantOriginal  = "original"
	VariantHalf      = "half"
	VariantThumbnail = "thumbnail"
)

type ImageProcessor struct {
	MaxSize int64 // bytes
}

func NewImageProcessor() *ImageProcessor {
	return &ImageProcessor{MaxSize: 5 * 1024 * 1024} // 5MB
}

// ValidateImage accepts JPEG/PNG up to MaxSize.
func (p *ImageProcessor) ValidateImage(data []byte) error {
	if int64(len(data)) > p.MaxSize {
		return fmt.Errorf("image exceeds %dMB", p.MaxSize/(1024*1024))
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("not an image: %w", err)
	}
	switch format {
	case "jpeg", "png":
		return nil
	default:
		return fmt.Errorf("image format %s not allowed (only jpeg/png)", format)
	}
}

// ProcessImage produces the original/half/thumbnail variants, re-encoded as
// JPEG quality 90. "half" is bounded to 1200px, thumbnails to 300px.
func (p *ImageProcessor) ProcessImage(data []byte) (map[string][]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}

	variants := map[string][]byte{VariantOriginal: data}
	sizes := map[string]int{VariantHalf: 1200, VariantThumbnail: 300}
	for name, size := range sizes {
		resized := imaging.Fit(img, size, size, imaging.Lanczos)
		b := new(bytes.Buffer)
		if err := jpeg.Encode(b, resized, &jpeg.Options{Quality: 90}); err != nil {
			return nil, fmt.Errorf("cannot encode %s: %w", name, err)
		}
		variants[name] = b.Bytes()
	}
	return variants, nil
}
