package detection

import (
	"image"
	"math"
)

// transitionScale converts a flip count into the calibrated normalized range:
// one foreground/background flip is weighted as a full intensity swing, so
// typical plate text lands in the tens after width normalization.
const transitionScale = 255.0

// defaultProportions are the vertical cross-section positions sampled when
// none are configured.
var defaultProportions = []float64{0.25, 0.5, 0.75}

// TransitionFilter measures the high-frequency texture of a candidate region
// by counting foreground/background flips along fixed horizontal
// cross-sections. Plate text crosses each sampled row several times; blank or
// uniform regions barely flip at all.
type TransitionFilter struct {
	// Proportions are the vertical positions (0.0-1.0) of the sampled rows.
	Proportions []float64
}

// NewTransitionFilter creates a filter sampling the given vertical
// proportions, or the defaults (0.25, 0.5, 0.75) when none are given.
func NewTransitionFilter(proportions []float64) TransitionFilter {
	if len(proportions) == 0 {
		proportions = defaultProportions
	}
	return TransitionFilter{Proportions: proportions}
}

// CountTransitions sums the adjacent-pixel color flips along each configured
// cross-section row of a binary image. The row for proportion p is
// round(p*height), clamped to the last row.
func (f TransitionFilter) CountTransitions(binary *image.Gray) int {
	bounds := binary.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w < 2 || h < 1 {
		return 0
	}

	total := 0
	for _, p := range f.Proportions {
		row := int(math.Round(p * float64(h)))
		if row >= h {
			row = h - 1
		}
		if row < 0 {
			row = 0
		}

		off := binary.PixOffset(bounds.Min.X, bounds.Min.Y+row)
		line := binary.Pix[off : off+w]
		for x := 1; x < w; x++ {
			prev := line[x-1] >= foregroundCutoff
			cur := line[x] >= foregroundCutoff
			if prev != cur {
				total++
			}
		}
	}

	return total
}

// NormalizedTransitions returns the width-independent transition value:
// CountTransitions scaled by transitionScale and divided by width+1. The
// acceptance bounds in the configuration apply to this value.
func (f TransitionFilter) NormalizedTransitions(binary *image.Gray, width int) float64 {
	return NormalizeTransitions(f.CountTransitions(binary), width)
}

// NormalizeTransitions converts a raw flip count into the normalized value
// for a region of the given width.
func NormalizeTransitions(count, width int) float64 {
	return float64(count) * transitionScale / float64(width+1)
}
