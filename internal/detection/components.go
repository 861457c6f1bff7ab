package detection

import (
	"image"

	"github.com/ironsheep/plate-detect/internal/imaging"
)

// foregroundCutoff separates binary foreground (255) from background (0)
// while tolerating non-strict binary input.
const foregroundCutoff = 128

// Component is one maximal 8-connected foreground region of a binary image.
type Component struct {
	// Label is the region's id, assigned in row-major scan order starting
	// at 1. Label 0 (background) is never returned.
	Label int `json:"label"`

	// PixelCount is the number of foreground pixels in the region.
	PixelCount int `json:"pixel_count"`

	// Box is the region's axis-aligned bounding box.
	Box BoundingBox `json:"box"`
}

// FindComponents labels the maximal 8-connected foreground regions of a
// binary image and returns one Component per region, ordered by label.
//
// Labels are assigned in a fixed scan order (row-major, top to bottom, left
// to right from each region's first-encountered pixel), so results are
// reproducible across runs on identical input. The flood fill is iterative,
// so deeply nested regions cannot overflow the stack.
func FindComponents(binary *image.Gray) ([]Component, error) {
	if err := imaging.ValidateGray(binary); err != nil {
		return nil, err
	}

	bounds := binary.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	labels := make([]int32, w*h)
	stack := make([]int, 0, 64)
	components := make([]Component, 0)

	at := func(x, y int) uint8 {
		return binary.Pix[binary.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)]
	}

	next := int32(1)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			if labels[idx] != 0 || at(x, y) < foregroundCutoff {
				continue
			}

			comp := Component{Label: int(next)}
			minX, minY, maxX, maxY := x, y, x, y

			labels[idx] = next
			stack = append(stack[:0], idx)

			for len(stack) > 0 {
				cur := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				cx, cy := cur%w, cur/w

				comp.PixelCount++
				if cx < minX {
					minX = cx
				}
				if cx > maxX {
					maxX = cx
				}
				if cy < minY {
					minY = cy
				}
				if cy > maxY {
					maxY = cy
				}

				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						nx, ny := cx+dx, cy+dy
						if nx < 0 || nx >= w || ny < 0 || ny >= h {
							continue
						}
						nidx := ny*w + nx
						if labels[nidx] != 0 || at(nx, ny) < foregroundCutoff {
							continue
						}
						labels[nidx] = next
						stack = append(stack, nidx)
					}
				}
			}

			comp.Box = BoundingBox{
				X:      minX + bounds.Min.X,
				Y:      minY + bounds.Min.Y,
				Width:  maxX - minX + 1,
				Height: maxY - minY + 1,
			}
			components = append(components, comp)
			next++
		}
	}

	return components, nil
}
