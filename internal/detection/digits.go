package detection

import (
	"errors"
	"fmt"
	"image"
	"log"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/ironsheep/plate-detect/internal/config"
	"github.com/ironsheep/plate-detect/internal/imaging"
)

// DigitRegion is one character-sized region segmented from a plate crop.
// Box coordinates are relative to the margin-cropped plate image.
type DigitRegion struct {
	Box        BoundingBox `json:"box"`
	Confidence float64     `json:"confidence"`

	// Image is the binary crop of the character region. Excluded from
	// JSON output.
	Image *image.Gray `json:"-"`

	// Recognized is reserved for a downstream character recognizer.
	// This package never sets it.
	Recognized string `json:"recognized,omitempty"`
}

// DigitExtractor segments an accepted plate region into individual character
// regions. It reuses the binarization and labeling primitives at finer
// granularity: the plate crop loses a fixed margin per side, is re-binarized
// and inverted so the dark characters become foreground, and the resulting
// components are filtered by area alone. Single characters do not satisfy
// the plate-level aspect or transition heuristics, so those filters are not
// applied here.
type DigitExtractor struct {
	cfg       config.Digit
	binarizer imaging.Binarizer
	verbose   bool
}

// NewDigitExtractor builds an extractor from the digit section of a
// validated configuration.
func NewDigitExtractor(cfg config.Config) (*DigitExtractor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &DigitExtractor{
		cfg:       cfg.Digit,
		binarizer: imaging.NewBinarizer(cfg.Digit.Threshold),
		verbose:   cfg.Verbose,
	}, nil
}

// ExtractDigits segments the plate's binary image into character regions,
// ordered left to right by bounding-box x (reading order).
func (e *DigitExtractor) ExtractDigits(plate PlateRegion) ([]DigitRegion, error) {
	if plate.Image == nil {
		return nil, fmt.Errorf("%w: plate region has no image data", imaging.ErrInvalidInput)
	}

	bounds := plate.Image.Bounds()
	mx := int(math.Round(float64(bounds.Dx()) * e.cfg.MarginPercent))
	my := int(math.Round(float64(bounds.Dy()) * e.cfg.MarginPercent))

	inner := image.Rect(bounds.Min.X+mx, bounds.Min.Y+my, bounds.Max.X-mx, bounds.Max.Y-my)
	if inner.Empty() {
		return nil, fmt.Errorf("%w: margin %.2f leaves no plate content", imaging.ErrInvalidInput, e.cfg.MarginPercent)
	}

	cropped, err := imaging.ExtractROI(plate.Image, inner)
	if err != nil {
		return nil, err
	}

	binary, err := e.binarizer.Binarize(cropped)
	if err != nil {
		return nil, err
	}

	// Characters are dark on a light plate; invert so they label as
	// foreground.
	components, err := FindComponents(imaging.Invert(binary))
	if err != nil {
		return nil, err
	}

	cb := binary.Bounds()
	totalArea := float64(cb.Dx() * cb.Dy())
	maxArea := totalArea / e.cfg.MaxAreaDivisor
	minArea := totalArea / e.cfg.MinAreaDivisor

	digits := make([]DigitRegion, 0, len(components))
	for _, comp := range components {
		area := float64(comp.Box.Area())
		if area < minArea || area > maxArea {
			continue
		}

		roi, err := imaging.ExtractROI(binary, comp.Box.Rect())
		if err != nil {
			continue
		}

		digits = append(digits, DigitRegion{
			Box:        comp.Box,
			Image:      roi,
			Confidence: 1.0,
		})
		if e.verbose {
			log.Printf("digits: kept component area=%d size=%dx%d",
				comp.Box.Area(), comp.Box.Width, comp.Box.Height)
		}
	}

	sort.SliceStable(digits, func(i, j int) bool {
		return digits[i].Box.X < digits[j].Box.X
	})

	if e.verbose {
		log.Printf("digits: %d regions extracted", len(digits))
	}
	return digits, nil
}

// SaveDigitImages writes each digit crop to outputDir as PNG, named
// prefix_000.png, prefix_001.png and so on in the digits' order. Writes are
// best-effort: a failing item is recorded but does not abort the remaining
// saves. The returned slice holds the paths actually written; the returned
// error aggregates any per-item failures.
func (e *DigitExtractor) SaveDigitImages(digits []DigitRegion, outputDir, prefix string) ([]string, error) {
	if prefix == "" {
		prefix = "digit"
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	paths := make([]string, 0, len(digits))
	var errs []error
	for i, digit := range digits {
		if digit.Image == nil {
			continue
		}
		path := filepath.Join(outputDir, fmt.Sprintf("%s_%03d.png", prefix, i))
		if err := imaging.SaveImage(path, digit.Image); err != nil {
			errs = append(errs, fmt.Errorf("digit %d: %w", i, err))
			continue
		}
		paths = append(paths, path)
	}

	return paths, errors.Join(errs...)
}
