package utils

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ParseColorFromFilename extracts the color name from an image filename.
// Image files in the Drive folder are named "<color>-<view>.<ext>"
// (e.g. "rojo-frente.png", "azul_cielo-lado.jpg"); the first segment is the
// color name, with underscores standing in for spaces.
func ParseColorFromFilename(filename string) (string, error) {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	base = strings.TrimSpace(base)
	if base == "" {
		return "", fmt.Errorf("filename %q has no base name", filename)
	}

	segment := base
	if idx := strings.IndexByte(base, '-'); idx >= 0 {
		segment = base[:idx]
	}

	color := strings.ReplaceAll(segment, "_", " ")
	color = strings.ToLower(strings.TrimSpace(color))
	if color == "" {
		return "", fmt.Errorf("filename %q has no color segment", filename)
	}

	return color, nil
}
