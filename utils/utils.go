package utils

import (
	"fmt"
	"image/color"
	"strings"
)

// Contains returns true if the value is present in the collection.
func Contains[T comparable](slice []T, value T) bool {
	for _, v := range slice {
		if v == value {
			return true
		}
	}
	return false
}

// HexToRGBA converts a color expressed as hexadecimal string to RGBA color.
// Both the short (#fff) and the long (#ffffff, #ffffffff) forms are accepted.
func HexToRGBA(x string) (color.NRGBA, error) {
	var r, g, b, a uint8 = 0, 0, 0, 0xff

	x = strings.TrimPrefix(x, "#")
	switch len(x) {
	case 3:
		if _, err := fmt.Sscanf(x, "%1x%1x%1x", &r, &g, &b); err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", x, err)
		}
		r, g, b = r*17, g*17, b*17
	case 6:
		if _, err := fmt.Sscanf(x, "%02x%02x%02x", &r, &g, &b); err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", x, err)
		}
	case 8:
		if _, err := fmt.Sscanf(x, "%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", x, err)
		}
	default:
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", x)
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
