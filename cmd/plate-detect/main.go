package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"log"
	"os"

	"github.com/ironsheep/plate-detect/internal/config"
	"github.com/ironsheep/plate-detect/internal/detection"
	"github.com/ironsheep/plate-detect/internal/imaging"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("plate-detect %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	var (
		imagePath   = flag.String("image", "", "path to the input image (required)")
		profileName = flag.String("profile", "default", "configuration profile: default, high_sensitivity, high_precision")
		verbose     = flag.Bool("verbose", false, "log per-stage pipeline diagnostics")
		annotateOut = flag.String("annotate", "", "write a copy of the input with detected plates outlined to this path")
		boxColor    = flag.String("box-color", imaging.DefaultBoxColor, "hex color for plate outlines")
		digitsDir   = flag.String("digits-dir", "", "extract the best plate's digits and save crops to this directory")
		digitsPre   = flag.String("digits-prefix", "digit", "filename prefix for saved digit crops")
	)
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	if *imagePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Profile(*profileName)
	if err != nil {
		log.Fatalf("Invalid profile: %v", err)
	}
	cfg.Verbose = *verbose

	cache := imaging.NewImageCache()
	img, err := cache.Load(*imagePath)
	if err != nil {
		log.Fatalf("Failed to load image: %v", err)
	}

	detector, err := detection.NewDetector(cfg)
	if err != nil {
		log.Fatalf("Failed to build detector: %v", err)
	}

	result := detector.Detect(img)
	if !result.Success {
		log.Fatalf("Detection failed: %s", result.ErrorMessage)
	}

	if *digitsDir != "" {
		if err := extractDigits(result, cfg, *digitsDir, *digitsPre); err != nil {
			log.Printf("Digit extraction: %v", err)
		}
	}

	if *annotateOut != "" {
		boxes := make([]image.Rectangle, 0, result.PlateCount)
		for _, plate := range result.Plates {
			boxes = append(boxes, plate.Box.Rect())
		}
		annotated := imaging.DrawBoundingBoxes(img, boxes, *boxColor, 2)
		if err := imaging.SaveImage(*annotateOut, annotated); err != nil {
			log.Printf("Failed to save annotated image: %v", err)
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		log.Fatalf("Failed to encode result: %v", err)
	}
}

// extractDigits segments the best plate and saves its digit crops.
func extractDigits(result *detection.DetectionResult, cfg config.Config, dir, prefix string) error {
	best := result.BestPlate()
	if best == nil {
		return fmt.Errorf("no plate detected")
	}

	extractor, err := detection.NewDigitExtractor(cfg)
	if err != nil {
		return err
	}

	digits, err := extractor.ExtractDigits(*best)
	if err != nil {
		return err
	}
	best.Digits = digits

	paths, err := extractor.SaveDigitImages(digits, dir, prefix)
	if err != nil {
		return fmt.Errorf("saved %d of %d digit crops: %w", len(paths), len(digits), err)
	}
	log.Printf("Saved %d digit crops to %s", len(paths), dir)
	return nil
}
