// Package config defines the tunable thresholds of the plate detection
// pipeline and the named profiles that bundle them. Profiles differ only in
// numeric bounds, never in algorithm structure.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig reports a configuration whose bounds are inconsistent,
// such as a minimum exceeding its maximum.
var ErrInvalidConfig = errors.New("invalid configuration")

// Binarization holds thresholding parameters.
type Binarization struct {
	// Threshold is the global luminance cutoff (0-255) for plate detection.
	Threshold int `json:"threshold"`

	// UseAdaptive switches the detector from the global threshold to a
	// local-mean threshold, for scenes with uneven illumination.
	UseAdaptive bool `json:"use_adaptive"`

	// AdaptiveBlockSize is the local window size in pixels (odd; even
	// values are bumped by one).
	AdaptiveBlockSize int `json:"adaptive_block_size"`

	// AdaptiveConstant is subtracted from the local mean.
	AdaptiveConstant int `json:"adaptive_constant"`
}

// Geometric holds the bounding-box acceptance bounds.
type Geometric struct {
	// Aspect ratio (width/height) bounds for a single-line plate.
	MinAspectRatio float64 `json:"min_aspect_ratio"`
	MaxAspectRatio float64 `json:"max_aspect_ratio"`

	// Inverse area ratio (total image area / component area) bounds.
	// High ratios reject components too small relative to the frame,
	// low ratios reject implausibly large ones.
	MinAreaRatio float64 `json:"min_area_ratio"`
	MaxAreaRatio float64 `json:"max_area_ratio"`
}

// Transition holds the scan-line transition heuristic parameters.
type Transition struct {
	// Proportions are the vertical positions (0.0-1.0) of the sampled
	// cross-section rows.
	Proportions []float64 `json:"proportions"`

	// Accepted range for the width-normalized transition value.
	MinNormalized float64 `json:"min_normalized"`
	MaxNormalized float64 `json:"max_normalized"`
}

// Digit holds digit-extraction parameters.
type Digit struct {
	// Threshold is the binarization cutoff applied to the plate crop.
	Threshold int `json:"threshold"`

	// MarginPercent is the fraction (0.0-0.5) of width and height cropped
	// from each side to discard the plate's border framing.
	MarginPercent float64 `json:"margin_percent"`

	// Area divisors bound acceptable character sizes: a component is kept
	// when its box area lies in [cropArea/MinAreaDivisor, cropArea/MaxAreaDivisor].
	MaxAreaDivisor float64 `json:"max_area_divisor"`
	MinAreaDivisor float64 `json:"min_area_divisor"`
}

// Config is the full parameter set for one detection pass. It is a plain
// value: services receive their own copy, so concurrent pipelines with
// different configurations never share mutable state.
type Config struct {
	Binarization Binarization `json:"binarization"`
	Geometric    Geometric    `json:"geometric"`
	Transition   Transition   `json:"transition"`
	Digit        Digit        `json:"digit"`

	// Verbose enables per-stage diagnostic logging.
	Verbose bool `json:"verbose"`
}

// Default returns the baseline profile, calibrated for single-line plates.
func Default() Config {
	return Config{
		Binarization: Binarization{
			Threshold:         150,
			AdaptiveBlockSize: 11,
			AdaptiveConstant:  2,
		},
		Geometric: Geometric{
			MinAspectRatio: 2.8,
			MaxAspectRatio: 5.0,
			MinAreaRatio:   23.0,
			MaxAreaRatio:   300.0,
		},
		Transition: Transition{
			Proportions:   []float64{0.25, 0.5, 0.75},
			MinNormalized: 30.0,
			MaxNormalized: 90.0,
		},
		Digit: Digit{
			Threshold:      140,
			MarginPercent:  0.10,
			MaxAreaDivisor: 6.0,
			MinAreaDivisor: 62.0,
		},
	}
}

// HighSensitivity returns a recall-leaning profile that admits more
// candidates. Useful under variable lighting.
func HighSensitivity() Config {
	cfg := Default()
	cfg.Geometric.MaxAreaRatio = 400.0
	cfg.Transition.MinNormalized = 25.0
	cfg.Transition.MaxNormalized = 100.0
	return cfg
}

// HighPrecision returns a precision-leaning profile with tighter bounds,
// for callers that need fewer false positives.
func HighPrecision() Config {
	cfg := Default()
	cfg.Geometric.MinAspectRatio = 3.0
	cfg.Geometric.MaxAspectRatio = 4.5
	cfg.Transition.MinNormalized = 40.0
	cfg.Transition.MaxNormalized = 80.0
	return cfg
}

// Profile returns the named preset: "default", "high_sensitivity", or
// "high_precision".
func Profile(name string) (Config, error) {
	switch name {
	case "default":
		return Default(), nil
	case "high_sensitivity":
		return HighSensitivity(), nil
	case "high_precision":
		return HighPrecision(), nil
	default:
		return Config{}, fmt.Errorf("%w: unknown profile %q", ErrInvalidConfig, name)
	}
}

// Validate checks that every bound pair is ordered and every value is in its
// legal domain.
func (c Config) Validate() error {
	if c.Binarization.Threshold < 0 || c.Binarization.Threshold > 255 {
		return fmt.Errorf("%w: binarization threshold %d outside [0, 255]", ErrInvalidConfig, c.Binarization.Threshold)
	}
	if c.Binarization.AdaptiveBlockSize <= 0 {
		return fmt.Errorf("%w: adaptive block size %d must be positive", ErrInvalidConfig, c.Binarization.AdaptiveBlockSize)
	}
	if c.Geometric.MinAspectRatio > c.Geometric.MaxAspectRatio {
		return fmt.Errorf("%w: aspect ratio bounds %.2f > %.2f", ErrInvalidConfig, c.Geometric.MinAspectRatio, c.Geometric.MaxAspectRatio)
	}
	if c.Geometric.MinAreaRatio > c.Geometric.MaxAreaRatio {
		return fmt.Errorf("%w: area ratio bounds %.2f > %.2f", ErrInvalidConfig, c.Geometric.MinAreaRatio, c.Geometric.MaxAreaRatio)
	}
	if c.Transition.MinNormalized > c.Transition.MaxNormalized {
		return fmt.Errorf("%w: transition bounds %.2f > %.2f", ErrInvalidConfig, c.Transition.MinNormalized, c.Transition.MaxNormalized)
	}
	if len(c.Transition.Proportions) == 0 {
		return fmt.Errorf("%w: no transition sample proportions", ErrInvalidConfig)
	}
	for _, p := range c.Transition.Proportions {
		if p < 0.0 || p > 1.0 {
			return fmt.Errorf("%w: transition proportion %.2f outside [0, 1]", ErrInvalidConfig, p)
		}
	}
	if c.Digit.Threshold < 0 || c.Digit.Threshold > 255 {
		return fmt.Errorf("%w: digit threshold %d outside [0, 255]", ErrInvalidConfig, c.Digit.Threshold)
	}
	if c.Digit.MarginPercent < 0 || c.Digit.MarginPercent >= 0.5 {
		return fmt.Errorf("%w: digit margin %.2f outside [0, 0.5)", ErrInvalidConfig, c.Digit.MarginPercent)
	}
	if c.Digit.MaxAreaDivisor <= 0 || c.Digit.MinAreaDivisor <= 0 {
		return fmt.Errorf("%w: digit area divisors must be positive", ErrInvalidConfig)
	}
	if c.Digit.MaxAreaDivisor > c.Digit.MinAreaDivisor {
		return fmt.Errorf("%w: digit area divisors %.2f > %.2f", ErrInvalidConfig, c.Digit.MaxAreaDivisor, c.Digit.MinAreaDivisor)
	}
	return nil
}
