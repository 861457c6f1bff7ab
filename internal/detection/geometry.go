package detection

import "image"

// BoundingBox is an axis-aligned rectangle in pixel coordinates with origin
// at the top-left of the image. Boxes produced by component labeling always
// have Width > 0 and Height > 0.
type BoundingBox struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Area returns Width * Height in square pixels.
func (b BoundingBox) Area() int {
	return b.Width * b.Height
}

// AspectRatio returns Width / Height, or 0 when Height is zero.
func (b BoundingBox) AspectRatio() float64 {
	if b.Height == 0 {
		return 0
	}
	return float64(b.Width) / float64(b.Height)
}

// Rect converts the box to a standard image.Rectangle.
func (b BoundingBox) Rect() image.Rectangle {
	return image.Rect(b.X, b.Y, b.X+b.Width, b.Y+b.Height)
}

// GeometricFilter rejects candidate regions whose bounding-box shape or
// relative size is implausible for a license plate.
type GeometricFilter struct {
	// Aspect ratio (width/height) acceptance bounds.
	MinAspectRatio float64
	MaxAspectRatio float64

	// Inverse area ratio (total image area / box area) acceptance bounds.
	MinAreaRatio float64
	MaxAreaRatio float64
}

// AcceptAspect reports whether the box's aspect ratio lies within bounds.
func (f GeometricFilter) AcceptAspect(b BoundingBox) bool {
	ratio := b.AspectRatio()
	return ratio >= f.MinAspectRatio && ratio <= f.MaxAspectRatio
}

// AcceptArea reports whether totalArea/boxArea lies within bounds. The ratio
// is inverse: a larger component yields a smaller ratio, so the lower bound
// rejects implausibly large components and the upper bound rejects components
// too small relative to the frame.
func (f GeometricFilter) AcceptArea(b BoundingBox, totalArea int) bool {
	area := b.Area()
	if area == 0 {
		return false
	}
	ratio := float64(totalArea) / float64(area)
	return ratio >= f.MinAreaRatio && ratio <= f.MaxAreaRatio
}

// Accept reports whether the box passes both predicates.
func (f GeometricFilter) Accept(b BoundingBox, totalArea int) bool {
	return f.AcceptAspect(b) && f.AcceptArea(b, totalArea)
}
