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

type ImageProcessor struct {
	MaxSize int64
}

func NewImageProcessor() *ImageProcessor {
	return &ImageProcessor{MaxSize: 5 * 1024 * 1024}
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

// ProcessImage re-encodes the field photo as a bounded JPEG so listing
// pages stay light regardless of what the admin uploaded.
func (p *ImageProcessor) ProcessImage(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}

	resized := imaging.Fit(img, 1200, 1200, imaging.Lanczos)
	b := new(bytes.Buffer)
	if err := jpeg.Encode(b, resized, &jpeg.Options{Quality: 90}); err != nil {
		return nil, fmt.Errorf("cannot encode image: %w", err)
	}
	return b.Bytes(), nil
}
