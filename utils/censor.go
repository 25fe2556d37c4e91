package utils

import (
	"path/filepath"
	"strings"
)

// Word list applied to review bodies and usernames. Matching is substring
// based on the lowercased input.
var censoredWords = []string{"fuck", "cunt", "shit", "cum", "bitch", "cock", "nigg", "fag"}

// ContainsProfanity reports whether s contains any censored word.
func ContainsProfanity(s string) bool {
	lowered := strings.ToLower(s)
	for _, word := range censoredWords {
		if strings.Contains(lowered, word) {
			return true
		}
	}
	return false
}

var allowedImageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// AllowedImageFile reports whether the filename carries an allowed image
// extension. Extension check only, no content sniffing.
func AllowedImageFile(filename string) bool {
	return allowedImageExtensions[strings.ToLower(filepath.Ext(filename))]
}

// SanitizeFilename strips any path components from an uploaded filename so it
// can be stored safely under the static directory.
func SanitizeFilename(filename string) string {
	name := filepath.Base(filepath.Clean(filename))
	name = strings.ReplaceAll(name, "..", "")
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
