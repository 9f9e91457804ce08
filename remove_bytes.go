package bgremove

import (
	"bytes"
	"fmt"
)

// RemoveBackgroundBytes decodes raw image bytes, applies r and returns the
// cleaned image encoded as PNG.
func RemoveBackgroundBytes(data []byte, r *Remover) ([]byte, Stats, error) {
	img, _, err := DecodeImageBytes(data)
	if err != nil {
		return nil, Stats{}, err
	}

	cleaned, stats, err := r.Remove(img)
	if err != nil {
		return nil, Stats{}, err
	}

	var buf bytes.Buffer
	if err := EncodePNG(&buf, cleaned); err != nil {
		return nil, Stats{}, fmt.Errorf("encode png: %w", err)
	}

	return buf.Bytes(), stats, nil
}

// InspectBytes checks raw image bytes without performing any cleanup. It
// decodes the bytes and delegates to Remover.Inspect.
func InspectBytes(data []byte, r *Remover) (Stats, error) {
	img, _, err := DecodeImageBytes(data)
	if err != nil {
		return Stats{}, err
	}

	return r.Inspect(img)
}
