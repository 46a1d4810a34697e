package domain

import (
	"path/filepath"
	"regexp"
	"strings"
)

var targetSizePattern = regexp.MustCompile(`(?i)^\d+(\.\d+)?(KB|MB|B)$`)

// IsValidTargetSize reports whether input is a size such as "500KB", "1.5MB" or "800B".
// Units are case-insensitive; no whitespace is allowed anywhere.
func IsValidTargetSize(input string) bool {
	return targetSizePattern.MatchString(input)
}

// DefaultOutputPath returns the path imgbytesizer writes to when none is given:
// {dir}/{stem}_resized{ext}. ext is ".{format}" when a concrete format is set,
// otherwise the input's own extension (possibly none).
// The stem ends at the last dot of the file name, so "archive.tar.gz" has stem "archive.tar".
// A leading dot is part of the stem: ".hidden" has no extension.
func DefaultOutputPath(imagePath string, format Format) string {
	dir, base := filepath.Split(imagePath)
	stem, ext := base, ""
	if i := strings.LastIndex(base, "."); i > 0 {
		stem, ext = base[:i], base[i:]
	}
	if format != "" && format != FormatSame {
		ext = "." + string(format)
	}
	return filepath.Join(dir, stem+"_resized"+ext)
}

// SupportedExtensions lists the image extensions imgbytesizer accepts.
var SupportedExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

// IsSupportedImage reports whether path has a supported image extension (case-insensitive).
func IsSupportedImage(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range SupportedExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// CustomSizeLabel is the preset entry that opens a free-text size prompt.
const CustomSizeLabel = "Custom..."

// SizePresets returns the common target sizes offered before the custom entry.
func SizePresets() []string {
	return []string{"100KB", "200KB", "500KB", "1MB", "2MB", "5MB"}
}
