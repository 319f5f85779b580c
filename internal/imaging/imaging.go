// Package imaging shrinks images before they are sent to the model.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	// JPEGQuality is used when a downscaled photo is re-encoded.
	JPEGQuality = 90

	// MaxPixels bounds the canvas Normalize will decode. A 10MB upload can
	// declare far larger dimensions than it stores.
	MaxPixels = 40_000_000
)

// ErrTooManyPixels is returned for images whose declared canvas exceeds MaxPixels.
var ErrTooManyPixels = errors.New("image canvas exceeds pixel budget")

// Image is an encoded image and its MIME type.
type Image struct {
	Data []byte
	MIME string
}

// Normalize downscales img so neither side exceeds maxDim. Images that are
// already small enough, formats Go cannot decode (HEIC/HEIF) and maxDim <= 0
// return the input unchanged. Canvases above MaxPixels are rejected before
// decoding. PNG stays PNG so transparency survives; every other format is
// re-encoded as JPEG.
func Normalize(img Image, maxDim int) (Image, error) {
	if maxDim <= 0 {
		return img, nil
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(img.Data))
	if err != nil {
		return img, nil
	}
	if cfg.Width <= maxDim && cfg.Height <= maxDim {
		return img, nil
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return Image{}, fmt.Errorf("%w: %dx%d", ErrTooManyPixels, cfg.Width, cfg.Height)
	}

	decoded, _, err := image.Decode(bytes.NewReader(img.Data))
	if err != nil {
		return Image{}, fmt.Errorf("decoding %s image: %w", format, err)
	}
	scaled := downscale(decoded, maxDim)

	var buf bytes.Buffer
	if format == "png" {
		if err := png.Encode(&buf, scaled); err != nil {
			return Image{}, fmt.Errorf("encoding PNG: %w", err)
		}
		return Image{Data: buf.Bytes(), MIME: "image/png"}, nil
	}
	if err := jpeg.Encode(&buf, scaled, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return Image{}, fmt.Errorf("encoding JPEG: %w", err)
	}
	return Image{Data: buf.Bytes(), MIME: "image/jpeg"}, nil
}

func downscale(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	newW, newH := maxDim, maxDim
	if w > h {
		newH = h * maxDim / w
	} else {
		newW = w * maxDim / h
	}
	newW = max(newW, 1)
	newH = max(newH, 1)

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
