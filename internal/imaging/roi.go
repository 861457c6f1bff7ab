package imaging

import (
	"fmt"
	"image"
)

// ExtractROI returns a copy of the sub-grid of g covered by r. The result
// shares no pixel storage with the source, so callers may hold it past the
// source image's lifetime. The rectangle must be non-empty and lie fully
// inside the source bounds.
func ExtractROI(g *image.Gray, r image.Rectangle) (*image.Gray, error) {
	if _, err := requireGray(g); err != nil {
		return nil, err
	}
	if r.Empty() {
		return nil, fmt.Errorf("%w: empty region %v", ErrInvalidInput, r)
	}
	if !r.In(g.Bounds()) {
		return nil, fmt.Errorf("%w: region %v outside image bounds %v", ErrInvalidInput, r, g.Bounds())
	}

	w, h := r.Dx(), r.Dy()
	out := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		srcOff := g.PixOffset(r.Min.X, r.Min.Y+y)
		copy(out.Pix[y*out.Stride:y*out.Stride+w], g.Pix[srcOff:srcOff+w])
	}

	return out, nil
}

// EmbedROI writes roi into dst with its top-left corner at (x, y). Re-embedding
// an extracted region at its original position reproduces the source pixels
// exactly. Only dst is mutated.
func EmbedROI(dst, roi *image.Gray, x, y int) error {
	if _, err := requireGray(dst); err != nil {
		return err
	}
	if _, err := requireGray(roi); err != nil {
		return err
	}

	rb := roi.Bounds()
	target := image.Rect(x, y, x+rb.Dx(), y+rb.Dy())
	if !target.In(dst.Bounds()) {
		return fmt.Errorf("%w: region %v outside destination bounds %v", ErrInvalidInput, target, dst.Bounds())
	}

	for row := 0; row < rb.Dy(); row++ {
		srcOff := roi.PixOffset(rb.Min.X, rb.Min.Y+row)
		dstOff := dst.PixOffset(x, y+row)
		copy(dst.Pix[dstOff:dstOff+rb.Dx()], roi.Pix[srcOff:srcOff+rb.Dx()])
	}

	return nil
}

// Invert returns a copy of g with every pixel value v replaced by 255-v.
// On a binary image this swaps foreground and background, which the digit
// pipeline uses to turn dark characters on a light plate into foreground.
func Invert(g *image.Gray) *image.Gray {
	bounds := g.Bounds()
	out := image.NewGray(bounds)
	w := bounds.Dx()
	for y := 0; y < bounds.Dy(); y++ {
		srcOff := g.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		dstOff := out.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		src := g.Pix[srcOff : srcOff+w]
		dst := out.Pix[dstOff : dstOff+w]
		for x, v := range src {
			dst[x] = 255 - v
		}
	}
	return out
}
