package imaging

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/clone"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultBoxColor is the annotation color used when no hex color is supplied.
const DefaultBoxColor = "#00FF00"

// DrawBoundingBoxes returns a copy of img with each rectangle outlined in the
// given hex color ("#RRGGBB") at the given stroke thickness. This is a
// presentation helper for visual inspection; it plays no part in detection.
//
// An unparseable or empty color string falls back to DefaultBoxColor. Box
// edges are clipped to the image bounds.
func DrawBoundingBoxes(img image.Image, boxes []image.Rectangle, hexColor string, thickness int) *image.RGBA {
	c, err := colorful.Hex(hexColor)
	if err != nil {
		c, _ = colorful.Hex(DefaultBoxColor)
	}
	r, g, b := c.RGB255()
	stroke := color.RGBA{R: r, G: g, B: b, A: 255}

	if thickness < 1 {
		thickness = 1
	}

	out := clone.AsRGBA(img)
	for _, box := range boxes {
		for t := 0; t < thickness; t++ {
			drawRectOutline(out, box.Inset(-t), stroke)
		}
	}
	return out
}

// drawRectOutline draws a one-pixel rectangle outline clipped to img bounds.
func drawRectOutline(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	clipped := r.Intersect(img.Bounds())
	if clipped.Empty() {
		return
	}

	for x := clipped.Min.X; x < clipped.Max.X; x++ {
		if r.Min.Y >= img.Bounds().Min.Y && r.Min.Y < img.Bounds().Max.Y {
			img.SetRGBA(x, r.Min.Y, c)
		}
		if r.Max.Y-1 >= img.Bounds().Min.Y && r.Max.Y-1 < img.Bounds().Max.Y {
			img.SetRGBA(x, r.Max.Y-1, c)
		}
	}
	for y := clipped.Min.Y; y < clipped.Max.Y; y++ {
		if r.Min.X >= img.Bounds().Min.X && r.Min.X < img.Bounds().Max.X {
			img.SetRGBA(r.Min.X, y, c)
		}
		if r.Max.X-1 >= img.Bounds().Min.X && r.Max.X-1 < img.Bounds().Max.X {
			img.SetRGBA(r.Max.X-1, y, c)
		}
	}
}
