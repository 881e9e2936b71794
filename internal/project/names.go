package project

import (
	"fmt"
	"strings"
	"unicode"

	oerrors "github.com/fabricinit/cli/internal/errors"
)

// SanitizeModName strips every character that is not a letter or digit.
// It keeps non-ASCII letters so ValidateModName can reject them with a message
// instead of silently dropping part of the name.
func SanitizeModName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SanitizeModID lowercases name and keeps only [a-z0-9_].
func SanitizeModID(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidateModName checks that a sanitized mod name is non-empty ASCII alphanumeric.
func ValidateModName(name string) error {
	if name == "" {
		return fmt.Errorf("mod name must contain at least one letter or digit: %w", oerrors.ErrValidation)
	}

	for _, r := range name {
		if !isASCIIAlnum(r) {
			return fmt.Errorf("mod name %q must only contain alphanumeric characters: %w", name, oerrors.ErrValidation)
		}
	}

	return nil
}

// ValidateMavenGroup checks a Maven group such as com.example.
func ValidateMavenGroup(group string) error {
	if group == "" {
		return fmt.Errorf("maven group cannot be empty: %w", oerrors.ErrValidation)
	}

	for _, r := range group {
		if !isASCIIAlnum(r) && r != '.' {
			return fmt.Errorf("maven group can only contain alphanumeric characters and dots: %w", oerrors.ErrValidation)
		}
	}

	if strings.HasPrefix(group, ".") || strings.HasSuffix(group, ".") {
		return fmt.Errorf("maven group cannot start or end with a dot: %w", oerrors.ErrValidation)
	}

	return nil
}

// PackagePath converts a Maven group into a slash-separated directory path.
func PackagePath(group string) string {
	return strings.ReplaceAll(group, ".", "/")
}

func isASCIIAlnum(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}
