package detection

import (
	"image"
	"math"
	"testing"
)

func TestCountTransitions_SampledRows(t *testing.T) {
	// 10x4 image: default proportions sample rows round(p*4) = 1, 2, 3.
	bin := newBinary(10, 4)

	// Row 1 alternates every pixel: 9 flips.
	for x := 0; x < 10; x += 2 {
		bin.Pix[bin.PixOffset(x, 1)] = 255
	}
	// Rows 2 and 3 stay uniform: 0 flips.

	f := NewTransitionFilter(nil)
	if got := f.CountTransitions(bin); got != 9 {
		t.Errorf("transitions: got %d, want 9", got)
	}
}

func TestCountTransitions_UniformRegion(t *testing.T) {
	bin := newBinary(20, 8)
	fillRect(bin, bin.Bounds(), 255)

	f := NewTransitionFilter(nil)
	if got := f.CountTransitions(bin); got != 0 {
		t.Errorf("uniform region: got %d transitions, want 0", got)
	}
}

func TestCountTransitions_CustomProportions(t *testing.T) {
	bin := newBinary(6, 4)
	// Only row 0 has a flip pattern: W B W B W B -> 5 flips.
	for x := 0; x < 6; x += 2 {
		bin.Pix[bin.PixOffset(x, 0)] = 255
	}

	f := NewTransitionFilter([]float64{0.0})
	if got := f.CountTransitions(bin); got != 5 {
		t.Errorf("transitions at row 0: got %d, want 5", got)
	}
}

func TestCountTransitions_ProportionOneClamps(t *testing.T) {
	bin := newBinary(6, 4)
	// Last row has one white pixel: 2 flips.
	bin.Pix[bin.PixOffset(2, 3)] = 255

	f := NewTransitionFilter([]float64{1.0})
	if got := f.CountTransitions(bin); got != 2 {
		t.Errorf("clamped last row: got %d transitions, want 2", got)
	}
}

func TestCountTransitions_DegenerateWidth(t *testing.T) {
	bin := newBinary(1, 5)
	f := NewTransitionFilter(nil)
	if got := f.CountTransitions(bin); got != 0 {
		t.Errorf("single-column image: got %d transitions, want 0", got)
	}
}

func TestNormalizeTransitions(t *testing.T) {
	got := NormalizeTransitions(24, 150)
	want := 24.0 * 255.0 / 151.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("normalized value: got %f, want %f", got, want)
	}
}

func TestNormalizedTransitions_WidthIndependence(t *testing.T) {
	// Two regions with proportionally identical texture should land near
	// the same normalized value despite different widths.
	narrow := newBinary(50, 8)
	wide := newBinary(100, 8)
	for x := 0; x < 50; x += 10 {
		fillRect(narrow, image.Rect(x, 0, x+5, 8), 255)
	}
	for x := 0; x < 100; x += 10 {
		fillRect(wide, image.Rect(x, 0, x+5, 8), 255)
	}

	f := NewTransitionFilter(nil)
	n := f.NormalizedTransitions(narrow, 50)
	w := f.NormalizedTransitions(wide, 100)
	if math.Abs(n-w) > n*0.1 {
		t.Errorf("normalized values should be comparable: narrow %f vs wide %f", n, w)
	}
}

func TestNewTransitionFilter_Defaults(t *testing.T) {
	f := NewTransitionFilter(nil)
	if len(f.Proportions) != 3 {
		t.Fatalf("default proportions: got %d, want 3", len(f.Proportions))
	}
	want := []float64{0.25, 0.5, 0.75}
	for i, p := range want {
		if f.Proportions[i] != p {
			t.Errorf("proportion %d: got %f, want %f", i, f.Proportions[i], p)
		}
	}
}
