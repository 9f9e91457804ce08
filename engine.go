package bgremove

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/gift"
)

// Stats summarises one removal pass.
type Stats struct {
	Changed int
	Total   int
}

// Percent returns the share of pixels made transparent, in [0, 100]. A zero
// Total, which only a hand-built Stats can carry, yields 0.
func (s Stats) Percent() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Changed) / float64(s.Total) * 100
}

// Remover makes every pixel matching its predicate fully transparent.
type Remover struct {
	Name  string
	match Predicate
}

// NewRemover builds a Remover around an arbitrary predicate.
func NewRemover(name string, match Predicate) *Remover {
	return &Remover{Name: name, match: match}
}

// NewCheckeredRemover targets the gray checkerboard that editors draw behind
// transparent regions.
func NewCheckeredRemover() *Remover {
	return NewRemover("checkered", CheckeredGray(DefaultGrayTolerance, CheckeredLow, CheckeredHigh))
}

// NewWhiteRemover targets a near-white background within tolerance of 255.
func NewWhiteRemover(tolerance int) *Remover {
	return NewRemover("white", NearWhite(tolerance))
}

// RemoveCheckered applies a default checkered remover to img.
func RemoveCheckered(img image.Image) (*image.NRGBA, Stats, error) {
	return NewCheckeredRemover().Remove(img)
}

// RemoveWhite applies a white remover with DefaultWhiteTolerance to img.
func RemoveWhite(img image.Image) (*image.NRGBA, Stats, error) {
	return NewWhiteRemover(DefaultWhiteTolerance).Remove(img)
}

// Remove copies img into a fresh NRGBA buffer and zeroes the alpha of every
// matching pixel. The input is never modified.
func (r *Remover) Remove(img image.Image) (*image.NRGBA, Stats, error) {
	if err := checkImage(img); err != nil {
		return nil, Stats{}, err
	}

	out := cloneToNRGBA(img)
	mask := NewMask(out, r.match)
	changed := mask.Apply(out)

	return out, Stats{Changed: changed, Total: mask.Len()}, nil
}

// Inspect counts the pixels Remove would make transparent without producing
// an output image.
func (r *Remover) Inspect(img image.Image) (Stats, error) {
	if err := checkImage(img); err != nil {
		return Stats{}, err
	}

	mask := NewMask(cloneToNRGBA(img), r.match)
	return Stats{Changed: mask.Count(), Total: mask.Len()}, nil
}

// RemoveFile loads the image at in, removes the background and writes the
// result to out as PNG. in and out may be the same path.
func (r *Remover) RemoveFile(in, out string) (Stats, error) {
	img, err := LoadImage(in)
	if err != nil {
		return Stats{}, err
	}

	cleaned, stats, err := r.Remove(img)
	if err != nil {
		return Stats{}, err
	}

	if err := SaveImage(out, cleaned); err != nil {
		return Stats{}, err
	}

	return stats, nil
}

func checkImage(img image.Image) error {
	if img == nil {
		return fmt.Errorf("nil image provided")
	}

	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return fmt.Errorf("invalid image dimensions %dx%d", bounds.Dx(), bounds.Dy())
	}
	return nil
}

// cloneToNRGBA copies the image into a mutable, zero-origin NRGBA buffer.
// gift reads NRGBA sources without premultiplying, so the colour channels of
// translucent pixels survive the copy. 16-bit sources keep the high byte of
// each channel instead of gift's rounding, so 0xF000 stays 240 and not 239.
func cloneToNRGBA(src image.Image) *image.NRGBA {
	switch src.(type) {
	case *image.NRGBA64, *image.RGBA64, *image.Gray16:
		return truncateToNRGBA(src)
	}

	g := gift.New()
	dst := image.NewNRGBA(g.Bounds(src.Bounds()))
	g.Draw(dst, src)
	return dst
}

func truncateToNRGBA(src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	nrgba64, straight := src.(*image.NRGBA64)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			var c color.NRGBA
			if straight {
				w := nrgba64.NRGBA64At(x, y)
				c = color.NRGBA{R: uint8(w.R >> 8), G: uint8(w.G >> 8), B: uint8(w.B >> 8), A: uint8(w.A >> 8)}
			} else {
				c = color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			}
			dst.SetNRGBA(x-bounds.Min.X, y-bounds.Min.Y, c)
		}
	}

	return dst
}
