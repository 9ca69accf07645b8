package utils

import (
	"regexp"
	"strings"
)

var (
	emailRegex    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9\s\-'_]+$`)
)

// IsValidEmail checks a basic local@domain.tld shape.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidUsername requires 3-50 characters after trimming, limited to
// letters, digits, spaces, hyphens, apostrophes and underscores.
func IsValidUsername(username string) bool {
	trimmed := strings.TrimSpace(username)
	if len(trimmed) < 3 || len(trimmed) > 50 {
		return false
	}
	return usernameRegex.MatchString(trimmed)
}

// IsValidPassword requires at least 6 characters.
func IsValidPassword(password string) bool {
	return len(password) >= 6
}
