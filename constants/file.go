package constants

import (
	"path/filepath"
	"strings"
)

// SupportedExtensions holds the image extensions considered during collection.
// Anything else is silently ignored.
var SupportedExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"webp": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsSupportedImage reports whether path carries a supported image extension.
func IsSupportedImage(path string) bool {
	_, ok := SupportedExtensions[NormalizeExt(filepath.Ext(path))]
	return ok
}
