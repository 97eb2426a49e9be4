package scaffold

import (
	"fmt"
	"strings"
	"unicode"
)

// ValidateName reports the first rule name breaks: it must be non-empty,
// contain no whitespace, and consist only of letters, numbers, hyphens, and
// underscores. The returned error wraps ErrInvalidName.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: cannot be empty", ErrInvalidName)
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: cannot contain spaces", ErrInvalidName)
	}
	if strings.IndexFunc(name, func(r rune) bool { return !nameRune(r) }) >= 0 {
		return fmt.Errorf("%w: can only contain alphanumeric characters, hyphens, and underscores", ErrInvalidName)
	}
	return nil
}

// SanitizeName lowercases name and replaces every rune ValidateName would
// reject with a hyphen.
func SanitizeName(name string) string {
	return strings.Map(func(r rune) rune {
		if nameRune(r) {
			return r
		}
		return '-'
	}, strings.ToLower(name))
}

func nameRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-' || r == '_'
}
