package bgremove

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/imgio"
)

// LoadImage opens and decodes the image file at path.
func LoadImage(path string) (image.Image, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return img, nil
}

// SaveImage writes img to path as PNG, replacing any existing file.
func SaveImage(path string, img image.Image) error {
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
