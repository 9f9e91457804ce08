package bgremove

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

var (
	gray  = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	red   = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.NRGBA{R: 10, G: 10, B: 10, A: 255}
)

// sampleImage returns the 2x2 fixture: gray at (0,0), red at (1,0), black at
// (0,1) and white at (1,1).
func sampleImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, gray)
	img.SetNRGBA(1, 0, red)
	img.SetNRGBA(0, 1, black)
	img.SetNRGBA(1, 1, white)
	return img
}

func encodeSample(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	return buf.Bytes()
}

func transparent(c color.NRGBA) color.NRGBA {
	c.A = 0
	return c
}

func assertPixels(t *testing.T, img *image.NRGBA, want map[image.Point]color.NRGBA) {
	t.Helper()
	for p, w := range want {
		if got := img.NRGBAAt(p.X, p.Y); got != w {
			t.Errorf("pixel %v = %+v, want %+v", p, got, w)
		}
	}
}
