package bgremove

import "image"

// Mask marks the pixels of an image that matched a Predicate.
type Mask struct {
	Rect  image.Rectangle
	bits  []bool
	count int
}

// NewMask evaluates match for every pixel of img.
func NewMask(img *image.NRGBA, match Predicate) *Mask {
	bounds := img.Bounds()
	m := &Mask{
		Rect: bounds,
		bits: make([]bool, bounds.Dx()*bounds.Dy()),
	}

	idx := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if match(img.NRGBAAt(x, y)) {
				m.bits[idx] = true
				m.count++
			}
			idx++
		}
	}

	return m
}

// At reports whether the pixel at (x, y) is masked. Points outside Rect are
// never masked.
func (m *Mask) At(x, y int) bool {
	p := image.Point{X: x, Y: y}
	if !p.In(m.Rect) {
		return false
	}
	return m.bits[(y-m.Rect.Min.Y)*m.Rect.Dx()+(x-m.Rect.Min.X)]
}

// Count returns the number of masked pixels.
func (m *Mask) Count() int { return m.count }

// Len returns the number of pixels covered by the mask.
func (m *Mask) Len() int { return len(m.bits) }

// Apply sets alpha to 0 for every masked pixel of img, leaving the colour
// channels untouched, and returns the number of pixels written. Nothing is
// written when img does not share the mask's bounds.
func (m *Mask) Apply(img *image.NRGBA) int {
	if !img.Bounds().Eq(m.Rect) {
		return 0
	}

	width := m.Rect.Dx()
	written := 0

	for row := 0; row < m.Rect.Dy(); row++ {
		for col := 0; col < width; col++ {
			if !m.bits[row*width+col] {
				continue
			}
			offset := img.PixOffset(m.Rect.Min.X+col, m.Rect.Min.Y+row)
			img.Pix[offset+3] = 0
			written++
		}
	}

	return written
}
