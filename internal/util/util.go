// Package util holds small helpers shared by the library and the CLI.
package util

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var losslessExts = map[string]bool{
	".png":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
}

// IsLossless reports whether the path's extension names a lossless raster
// format suitable for carrying an LSB payload.
func IsLossless(path string) bool {
	return losslessExts[strings.ToLower(filepath.Ext(path))]
}

// EnsureLossless returns path unchanged when its extension is lossless,
// and otherwise swaps the extension for ".png". Writing a stego image
// through a lossy codec would silently destroy the payload.
func EnsureLossless(path string) string {
	if IsLossless(path) {
		return path
	}
	ext := filepath.Ext(path)
	return path[:len(path)-len(ext)] + ".png"
}

// FixUnicode canonicalizes text to NFC so visually identical input always
// embeds the same bytes.
func FixUnicode(in string) string {
	return norm.NFC.String(in)
}
