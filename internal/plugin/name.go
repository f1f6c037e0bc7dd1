package plugin

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrInvalidIdentifier is returned when a plugin name fails IsValidIdentifier.
var ErrInvalidIdentifier = errors.New("plugin name can only contain lowercase letters, numbers, hyphens, and underscores")

var identifierPattern = regexp.MustCompile(`^[a-z0-9-_]+$`)

// IsValidIdentifier reports whether name is a usable plugin identifier.
// The empty string is never valid.
func IsValidIdentifier(name string) bool {
	if name == "" {
		return false
	}
	return identifierPattern.MatchString(name)
}

// ValidateIdentifier returns ErrInvalidIdentifier, wrapped with the offending
// name, when name is not a valid identifier.
func ValidateIdentifier(name string) error {
	if !IsValidIdentifier(name) {
		return fmt.Errorf("invalid name %q: %w", name, ErrInvalidIdentifier)
	}
	return nil
}

// Slugify lower-cases text and replaces every run of whitespace with a single
// hyphen. Nothing else is removed or rewritten.
func Slugify(text string) string {
	lower := cases.Lower(language.Und).String(text)

	var b strings.Builder
	b.Grow(len(lower))
	inSpace := false
	for _, r := range lower {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte('-')
				inSpace = true
			}
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
