package bgremove

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"strings"
)

const pngDataURLPrefix = "data:image/png;base64,"

// DecodeBase64Image decodes a base64 payload or a data URL. Line breaks in the
// payload are ignored and missing padding is accepted.
func DecodeBase64Image(input string) (image.Image, string, error) {
	payload := strings.Join(strings.Fields(base64Payload(input)), "")

	enc := base64.StdEncoding
	if len(payload)%4 != 0 {
		enc = base64.RawStdEncoding
	}

	data, err := enc.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("decode base64: %w", err)
	}

	return DecodeImageBytes(data)
}

// EncodePNGToBase64 returns img as a base64 PNG without a data URL header.
func EncodePNGToBase64(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// PNGDataURL is EncodePNGToBase64 with a data:image/png header.
func PNGDataURL(img image.Image) (string, error) {
	payload, err := EncodePNGToBase64(img)
	if err != nil {
		return "", err
	}
	return pngDataURLPrefix + payload, nil
}

// RemoveBackgroundBase64 removes the background from a base64 image and
// returns the result as base64 PNG. A data URL input yields a data URL output.
func RemoveBackgroundBase64(input string, r *Remover) (string, Stats, error) {
	img, _, err := DecodeBase64Image(input)
	if err != nil {
		return "", Stats{}, err
	}

	cleaned, stats, err := r.Remove(img)
	if err != nil {
		return "", Stats{}, err
	}

	encode := EncodePNGToBase64
	if isDataURL(input) {
		encode = PNGDataURL
	}

	output, err := encode(cleaned)
	if err != nil {
		return "", Stats{}, err
	}
	return output, stats, nil
}

func isDataURL(s string) bool {
	return len(s) >= 5 && strings.EqualFold(s[:5], "data:")
}

// base64Payload drops a "data:<mime>;base64," header if present.
func base64Payload(s string) string {
	if !isDataURL(s) {
		return s
	}
	if _, payload, ok := strings.Cut(s, ","); ok {
		return payload
	}
	return s
}
