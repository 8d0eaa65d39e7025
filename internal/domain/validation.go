package domain

import (
	"regexp"
	"strings"
)

// Upload limits of the original deployment: PDF or an image, max 10MB.
const MaxUploadBytes = 10 << 20

var allowedMIME = map[string]struct{}{
	"application/pdf": {},
	"image/jpeg":      {},
	"image/png":       {},
	"image/webp":      {},
}

func AllowedUploadMIME(mime string) bool {
	_, ok := allowedMIME[strings.ToLower(strings.TrimSpace(mime))]
	return ok
}

var (
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	// filename chars outside [\w.-] are flattened to "_" before they
	// become part of an object key
	unsafeNameRe = regexp.MustCompile(`[^\w.\-]+`)
)

func ValidEmail(s string) bool {
	return emailRe.MatchString(strings.ToLower(strings.TrimSpace(s)))
}

// Password policy for provisioned owner accounts: min 8 chars.
// Detailed strength checks stay in the admin UI.
func ValidPassword(s string) bool {
	return len(s) >= 8
}

func SafeFileName(name string) string {
	return unsafeNameRe.ReplaceAllString(name, "_")
}
