package detection

import (
	"image"
	"log"
	"math"
	"sort"
	"time"

	"github.com/ironsheep/plate-detect/internal/config"
	"github.com/ironsheep/plate-detect/internal/imaging"
)

// PlateRegion is one accepted plate candidate. It is created by the Detector
// when a component survives validation; Confidence is assigned at creation
// and never recomputed. Digits is populated only by DigitExtractor and owned
// by the region once attached.
type PlateRegion struct {
	Box              BoundingBox `json:"box"`
	Confidence       float64     `json:"confidence"`
	TransitionsCount int         `json:"transitions_count"`

	// Image is the binary crop of the region, used downstream for digit
	// extraction. Excluded from JSON output.
	Image *image.Gray `json:"-"`

	Digits []DigitRegion `json:"digits,omitempty"`
}

// NormalizedTransitions returns the region's width-normalized transition
// value, the quantity the acceptance bounds apply to.
func (p PlateRegion) NormalizedTransitions() float64 {
	return NormalizeTransitions(p.TransitionsCount, p.Box.Width)
}

// DetectionResult holds the outcome of one detection pass. It is immutable
// after return; Plates are ranked best-first.
type DetectionResult struct {
	// Plates are the accepted candidates sorted descending by confidence,
	// ties broken by larger bounding-box area.
	Plates []PlateRegion `json:"plates"`

	// PlateCount equals len(Plates).
	PlateCount int `json:"plate_count"`

	ProcessingTime time.Duration `json:"processing_time_ns"`

	// Success is false only for a degenerate input image. Zero detected
	// plates on a readable image is still a success.
	Success      bool   `json:"success"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// BestPlate returns the highest-confidence plate, or nil when none were
// detected.
func (r *DetectionResult) BestPlate() *PlateRegion {
	if len(r.Plates) == 0 {
		return nil
	}
	return &r.Plates[0]
}

// Detector orchestrates the full plate detection pipeline over one image.
// It holds only configuration-derived state and is safe for concurrent use.
type Detector struct {
	cfg         config.Config
	binarizer   imaging.Binarizer
	geometric   GeometricFilter
	transitions TransitionFilter
	validator   PlateValidator
}

// NewDetector builds a detector from a validated configuration.
func NewDetector(cfg config.Config) (*Detector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	geometric := GeometricFilter{
		MinAspectRatio: cfg.Geometric.MinAspectRatio,
		MaxAspectRatio: cfg.Geometric.MaxAspectRatio,
		MinAreaRatio:   cfg.Geometric.MinAreaRatio,
		MaxAreaRatio:   cfg.Geometric.MaxAreaRatio,
	}

	return &Detector{
		cfg:         cfg,
		binarizer:   imaging.NewBinarizer(cfg.Binarization.Threshold),
		geometric:   geometric,
		transitions: NewTransitionFilter(cfg.Transition.Proportions),
		validator: PlateValidator{
			Geometric:      geometric,
			MinTransitions: cfg.Transition.MinNormalized,
			MaxTransitions: cfg.Transition.MaxNormalized,
		},
	}, nil
}

// Detect locates plate candidates in img and returns them ranked best-first.
//
// A degenerate input (nil image, zero dimension) yields Success=false with
// ErrorMessage set; nothing escapes the service boundary as a panic or error.
// Zero surviving candidates is not a failure.
func (d *Detector) Detect(img image.Image) *DetectionResult {
	start := time.Now()

	if img == nil {
		return d.fail(start, "no input image")
	}
	if b := img.Bounds(); b.Dx() <= 0 || b.Dy() <= 0 {
		return d.fail(start, "input image has zero dimension")
	}

	gray := imaging.Grayscale(img)

	var (
		binary *image.Gray
		err    error
	)
	if d.cfg.Binarization.UseAdaptive {
		binary, err = d.binarizer.AdaptiveBinarize(gray,
			d.cfg.Binarization.AdaptiveBlockSize, d.cfg.Binarization.AdaptiveConstant)
	} else {
		binary, err = d.binarizer.Binarize(gray)
	}
	if err != nil {
		return d.fail(start, err.Error())
	}

	components, err := FindComponents(binary)
	if err != nil {
		return d.fail(start, err.Error())
	}
	if d.cfg.Verbose {
		log.Printf("detect: %d connected components", len(components))
	}

	bounds := binary.Bounds()
	totalArea := bounds.Dx() * bounds.Dy()

	plates := make([]PlateRegion, 0)
	geometricSurvivors := 0
	for _, comp := range components {
		if comp.Box.Width <= 0 || comp.Box.Height <= 0 {
			continue
		}
		if !d.geometric.Accept(comp.Box, totalArea) {
			continue
		}
		geometricSurvivors++

		roi, err := imaging.ExtractROI(binary, comp.Box.Rect())
		if err != nil {
			// Boxes come from the same image; out-of-bounds here would
			// be a labeling bug, not user input.
			continue
		}

		plate := PlateRegion{
			Box:              comp.Box,
			TransitionsCount: d.transitions.CountTransitions(roi),
			Image:            roi,
		}

		if ok, reason := d.validator.ValidatePlateRegion(plate, totalArea); !ok {
			if d.cfg.Verbose {
				log.Printf("detect: candidate %+v rejected: %s", comp.Box, reason)
			}
			continue
		}

		plate.Confidence = d.confidence(plate, totalArea)
		plates = append(plates, plate)
	}
	if d.cfg.Verbose {
		log.Printf("detect: %d after geometric filter, %d validated", geometricSurvivors, len(plates))
	}

	sort.SliceStable(plates, func(i, j int) bool {
		if plates[i].Confidence != plates[j].Confidence {
			return plates[i].Confidence > plates[j].Confidence
		}
		return plates[i].Box.Area() > plates[j].Box.Area()
	})

	return &DetectionResult{
		Plates:         plates,
		PlateCount:     len(plates),
		ProcessingTime: time.Since(start),
		Success:        true,
	}
}

func (d *Detector) fail(start time.Time, msg string) *DetectionResult {
	return &DetectionResult{
		Plates:         make([]PlateRegion, 0),
		ProcessingTime: time.Since(start),
		Success:        false,
		ErrorMessage:   msg,
	}
}

// confidence scores how centrally the candidate's metrics sit within their
// accepted ranges: each criterion contributes 1 at its range midpoint,
// falling linearly to 0 at the boundary, and the three scores are averaged.
// The result is deterministic, bounded to [0,1], and non-increasing as any
// metric approaches its rejection boundary.
func (d *Detector) confidence(p PlateRegion, totalArea int) float64 {
	aspect := rangeScore(p.Box.AspectRatio(), d.geometric.MinAspectRatio, d.geometric.MaxAspectRatio)
	area := rangeScore(float64(totalArea)/float64(p.Box.Area()), d.geometric.MinAreaRatio, d.geometric.MaxAreaRatio)
	trans := rangeScore(p.NormalizedTransitions(), d.validator.MinTransitions, d.validator.MaxTransitions)
	return (aspect + area + trans) / 3
}

// rangeScore maps v's distance from the midpoint of [min, max] to [0,1]:
// 1 at the midpoint, 0 at either bound or outside.
func rangeScore(v, min, max float64) float64 {
	half := (max - min) / 2
	if half <= 0 {
		if v == min {
			return 1
		}
		return 0
	}
	mid := (min + max) / 2
	score := 1 - math.Abs(v-mid)/half
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
