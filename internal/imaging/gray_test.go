package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestGrayscale_LumaWeights(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 1))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 255, 0, 255})
	img.Set(2, 0, color.RGBA{0, 0, 255, 255})
	img.Set(3, 0, color.RGBA{128, 128, 128, 255})

	g := Grayscale(img)

	// BT.601: red ~76, green ~150, blue ~29
	cases := []struct {
		x        int
		min, max uint8
	}{
		{0, 70, 82},
		{1, 144, 155},
		{2, 25, 33},
		{3, 126, 130},
	}
	for _, c := range cases {
		v := g.GrayAt(c.x, 0).Y
		if v < c.min || v > c.max {
			t.Errorf("pixel %d: got %d, want within [%d, %d]", c.x, v, c.min, c.max)
		}
	}
}

func TestGrayscale_PassthroughForGray(t *testing.T) {
	g := newGray(5, 5, 42)
	if Grayscale(g) != g {
		t.Error("single-channel input should pass through unchanged")
	}
}
