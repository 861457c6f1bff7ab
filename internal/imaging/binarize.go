package imaging

import (
	"fmt"
	"image"
)

// Binarizer converts grayscale images to two-level binary images.
//
// Three modes are available: a fixed global threshold (Binarize), a local
// adaptive threshold for unevenly lit scenes (AdaptiveBinarize), and an
// automatically computed global threshold (BinarizeOtsu). All modes accept
// single-channel input only and never mutate the source image.
type Binarizer struct {
	// Threshold is the global luminance cutoff for Binarize (0-255).
	// Pixels at or above the threshold become foreground (255).
	Threshold int
}

// NewBinarizer creates a binarizer with the given global threshold.
func NewBinarizer(threshold int) Binarizer {
	return Binarizer{Threshold: threshold}
}

// Binarize maps every pixel >= Threshold to foreground (255) and every other
// pixel to background (0). The input must be a non-empty single-channel image.
func (b Binarizer) Binarize(img image.Image) (*image.Gray, error) {
	g, err := requireGray(img)
	if err != nil {
		return nil, err
	}
	if b.Threshold < 0 || b.Threshold > 255 {
		return nil, fmt.Errorf("%w: threshold %d outside [0, 255]", ErrInvalidInput, b.Threshold)
	}

	bounds := g.Bounds()
	out := image.NewGray(bounds)
	t := uint8(b.Threshold)

	w := bounds.Dx()
	for y := 0; y < bounds.Dy(); y++ {
		srcOff := g.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		dstOff := out.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		src := g.Pix[srcOff : srcOff+w]
		dst := out.Pix[dstOff : dstOff+w]
		for x, v := range src {
			if v >= t {
				dst[x] = 255
			}
		}
	}

	return out, nil
}

// AdaptiveBinarize thresholds each pixel against the mean of its local
// blockSize x blockSize neighborhood minus the constant c. It handles scenes
// with uneven illumination where a single global threshold over- or
// under-segments parts of the frame.
//
// An even blockSize is bumped to the next odd value so the window is centered
// on the pixel. Windows are clipped at the image border.
func (b Binarizer) AdaptiveBinarize(img image.Image, blockSize, c int) (*image.Gray, error) {
	g, err := requireGray(img)
	if err != nil {
		return nil, err
	}
	if blockSize <= 0 {
		return nil, fmt.Errorf("%w: block size %d must be positive", ErrInvalidInput, blockSize)
	}
	if blockSize%2 == 0 {
		blockSize++
	}

	bounds := g.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := image.NewGray(bounds)

	// Summed-area table over pixel values; row/column 0 are zero so window
	// sums reduce to four lookups.
	integral := make([]int64, (w+1)*(h+1))
	for y := 0; y < h; y++ {
		var rowSum int64
		srcOff := g.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		src := g.Pix[srcOff : srcOff+w]
		for x := 0; x < w; x++ {
			rowSum += int64(src[x])
			integral[(y+1)*(w+1)+(x+1)] = integral[y*(w+1)+(x+1)] + rowSum
		}
	}

	half := blockSize / 2
	for y := 0; y < h; y++ {
		srcOff := g.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		dstOff := out.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		src := g.Pix[srcOff : srcOff+w]
		dst := out.Pix[dstOff : dstOff+w]
		y1 := max(0, y-half)
		y2 := min(h-1, y+half)
		for x := 0; x < w; x++ {
			x1 := max(0, x-half)
			x2 := min(w-1, x+half)

			sum := integral[(y2+1)*(w+1)+(x2+1)] -
				integral[y1*(w+1)+(x2+1)] -
				integral[(y2+1)*(w+1)+x1] +
				integral[y1*(w+1)+x1]
			count := int64((y2 - y1 + 1) * (x2 - x1 + 1))
			mean := float64(sum) / float64(count)

			if float64(src[x]) >= mean-float64(c) {
				dst[x] = 255
			}
		}
	}

	return out, nil
}

// BinarizeOtsu computes the global threshold that maximizes between-class
// variance over the image histogram, then binarizes with it. Pixels strictly
// above the returned threshold become foreground, so an all-black image stays
// all background. Returns the binary image and the computed threshold.
func (b Binarizer) BinarizeOtsu(img image.Image) (*image.Gray, int, error) {
	g, err := requireGray(img)
	if err != nil {
		return nil, 0, err
	}

	bounds := g.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	var hist [256]int64
	for y := 0; y < h; y++ {
		off := g.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		for _, v := range g.Pix[off : off+w] {
			hist[v]++
		}
	}

	total := int64(w * h)
	var sumAll int64
	for v, n := range hist {
		sumAll += int64(v) * n
	}

	var (
		sumBg     int64
		weightBg  int64
		bestT     int
		bestSigma float64
	)
	for t := 0; t < 256; t++ {
		weightBg += hist[t]
		if weightBg == 0 {
			continue
		}
		weightFg := total - weightBg
		if weightFg == 0 {
			break
		}

		sumBg += int64(t) * hist[t]
		meanBg := float64(sumBg) / float64(weightBg)
		meanFg := float64(sumAll-sumBg) / float64(weightFg)

		diff := meanBg - meanFg
		sigma := float64(weightBg) * float64(weightFg) * diff * diff
		if sigma > bestSigma {
			bestSigma = sigma
			bestT = t
		}
	}

	out := image.NewGray(bounds)
	t := uint8(bestT)
	for y := 0; y < h; y++ {
		srcOff := g.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		dstOff := out.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		src := g.Pix[srcOff : srcOff+w]
		dst := out.Pix[dstOff : dstOff+w]
		for x, v := range src {
			if v > t {
				dst[x] = 255
			}
		}
	}

	return out, bestT, nil
}
