package imaging

import (
	"errors"
	"fmt"
	"image"
)

// ErrInvalidInput reports caller misuse: nil or zero-sized images,
// multi-channel input where a single channel is required, or a region
// outside the source bounds.
var ErrInvalidInput = errors.New("invalid input image")

// Grayscale converts an image to a single-channel representation using
// ITU-R BT.601 luminance weights:
//
//	Y = 0.299*R + 0.587*G + 0.114*B
//
// If the input already is an *image.Gray it is returned unchanged. The
// conversion formula is fixed; it must not vary by platform or build, so
// thresholding results stay reproducible.
func Grayscale(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}

	bounds := img.Bounds()
	gray := image.NewGray(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			// 16-bit components scaled down to 8-bit before weighting.
			lum := 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
			gray.Pix[gray.PixOffset(x, y)] = uint8(lum)
		}
	}

	return gray
}

// ValidateGray checks that g is a usable non-empty single-channel image.
// It is the shared input gate for every operation that consumes a binary or
// grayscale image.
func ValidateGray(g *image.Gray) error {
	_, err := requireGray(g)
	return err
}

// requireGray validates that img is a non-empty single-channel image.
func requireGray(img image.Image) (*image.Gray, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidInput)
	}
	g, ok := img.(*image.Gray)
	if !ok {
		return nil, fmt.Errorf("%w: expected a single-channel image, got %T", ErrInvalidInput, img)
	}
	if g == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidInput)
	}
	b := g.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: image has zero dimension (%dx%d)", ErrInvalidInput, b.Dx(), b.Dy())
	}
	return g, nil
}
