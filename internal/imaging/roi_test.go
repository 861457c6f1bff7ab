package imaging

import (
	"errors"
	"image"
	"testing"
)

// gradientGray creates a gray image with a distinct value per pixel
func gradientGray(w, h int) *image.Gray {
	g := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.Pix[g.PixOffset(x, y)] = uint8((y*w + x) % 256)
		}
	}
	return g
}

func TestExtractROI_RoundTrip(t *testing.T) {
	src := gradientGray(20, 10)
	box := image.Rect(3, 2, 11, 7)

	roi, err := ExtractROI(src, box)
	if err != nil {
		t.Fatalf("ExtractROI failed: %v", err)
	}
	if roi.Bounds().Dx() != box.Dx() || roi.Bounds().Dy() != box.Dy() {
		t.Fatalf("roi size: got %v, want %dx%d", roi.Bounds(), box.Dx(), box.Dy())
	}

	dst := image.NewGray(src.Bounds())
	if err := EmbedROI(dst, roi, box.Min.X, box.Min.Y); err != nil {
		t.Fatalf("EmbedROI failed: %v", err)
	}

	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			if dst.GrayAt(x, y) != src.GrayAt(x, y) {
				t.Fatalf("pixel (%d,%d) not reproduced: got %d, want %d",
					x, y, dst.GrayAt(x, y).Y, src.GrayAt(x, y).Y)
			}
		}
	}
}

func TestExtractROI_NoAliasing(t *testing.T) {
	src := gradientGray(10, 10)
	roi, err := ExtractROI(src, image.Rect(0, 0, 5, 5))
	if err != nil {
		t.Fatalf("ExtractROI failed: %v", err)
	}

	src.Pix[0] = 77
	if roi.Pix[0] == 77 {
		t.Error("roi shares pixel storage with the source image")
	}
}

func TestExtractROI_OutOfBounds(t *testing.T) {
	src := gradientGray(10, 10)

	if _, err := ExtractROI(src, image.Rect(5, 5, 15, 15)); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for region outside bounds, got %v", err)
	}
	if _, err := ExtractROI(src, image.Rect(3, 3, 3, 8)); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for empty region, got %v", err)
	}
}

func TestEmbedROI_OutOfBounds(t *testing.T) {
	dst := gradientGray(10, 10)
	roi := gradientGray(5, 5)

	if err := EmbedROI(dst, roi, 8, 8); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for overflowing embed, got %v", err)
	}
}

func TestInvert_Involution(t *testing.T) {
	src := gradientGray(12, 7)

	twice := Invert(Invert(src))
	for i := range src.Pix {
		if twice.Pix[i] != src.Pix[i] {
			t.Fatalf("pixel %d: double inversion changed %d to %d", i, src.Pix[i], twice.Pix[i])
		}
	}
}

func TestInvert_SwapsBinaryLevels(t *testing.T) {
	g := newGray(4, 4, 255)
	g.Pix[5] = 0

	inv := Invert(g)
	if inv.Pix[5] != 255 {
		t.Errorf("background should become foreground, got %d", inv.Pix[5])
	}
	if inv.Pix[0] != 0 {
		t.Errorf("foreground should become background, got %d", inv.Pix[0])
	}
}
