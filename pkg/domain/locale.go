package domain

import (
	"fmt"
	"strings"
)

// Locale is a two-letter language code used to select localized content
type Locale string

// DefaultLocale used when nothing else is configured
const DefaultLocale Locale = "en"

// SupportedLocales lists locales the remote API serves
var SupportedLocales = []Locale{"en", "de", "fr", "es"}

// ParseLocale normalizes and validates a locale code
func ParseLocale(s string) (Locale, error) {
	l := Locale(strings.ToLower(strings.TrimSpace(s)))
	if len(l) != 2 {
		return "", fmt.Errorf("invalid locale %q, two-letter code expected", s)
	}
	for _, supported := range SupportedLocales {
		if l == supported {
			return l, nil
		}
	}
	return "", fmt.Errorf("unsupported locale %q", s)
}

// String returns locale code
func (l Locale) String() string { return string(l) }
