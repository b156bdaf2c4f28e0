package errors

import (
	"strings"
	"unicode"
)

// ValidateFrameID validates a frame identifier for safety and correctness.
// IDs are opaque strings assigned at creation; the rules here are
// intentionally conservative:
//   - No empty IDs
//   - No control characters
//   - Maximum length of 128 characters
func ValidateFrameID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "frame id cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidInput, "frame id too long (max 128 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "frame id contains invalid control characters")
		}
	}

	return nil
}

// ValidateAssetRef validates a background or content image reference.
// References are either http(s) URLs or relative file paths. Local paths
// are validated to prevent traversal outside the template's asset
// directory, which matters when templates arrive over the export service.
//
// Validation rules:
//   - Reference cannot be empty
//   - Maximum length of 2048 characters
//   - No null bytes or control characters
//   - URLs must use the http or https scheme
//   - Local paths must be relative, without traversal sequences (..)
//     or backslashes
func ValidateAssetRef(ref string) error {
	if ref == "" {
		return New(ErrCodeInvalidInput, "asset reference cannot be empty")
	}

	const maxRefLength = 2048
	if len(ref) > maxRefLength {
		return New(ErrCodeInvalidInput, "asset reference too long (max %d characters)", maxRefLength)
	}

	for _, r := range ref {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "asset reference contains invalid characters")
		}
	}

	if strings.Contains(ref, "://") {
		if !strings.HasPrefix(ref, "http://") && !strings.HasPrefix(ref, "https://") {
			return New(ErrCodeInvalidInput, "asset URL must use http or https scheme")
		}
		return nil
	}

	// Local path rules from here on.
	if strings.HasPrefix(ref, "/") {
		return New(ErrCodeInvalidInput, "asset path must be relative (cannot start with /)")
	}

	if strings.Contains(ref, "..") {
		return New(ErrCodeInvalidInput, "asset path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(ref, "\\") {
		return New(ErrCodeInvalidInput, "asset path cannot contain backslashes")
	}

	return nil
}

// ValidateFontFamily validates a font family name before it is handed to
// the system font lookup. Family names become file lookups, so the same
// traversal rules apply as for asset paths.
func ValidateFontFamily(family string) error {
	if family == "" {
		return New(ErrCodeInvalidInput, "font family cannot be empty")
	}

	if len(family) > 128 {
		return New(ErrCodeInvalidInput, "font family too long (max 128 characters)")
	}

	if strings.ContainsAny(family, "/\\") || strings.Contains(family, "..") {
		return New(ErrCodeInvalidInput, "font family cannot contain path separators")
	}

	for _, r := range family {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "font family contains invalid control characters")
		}
	}

	return nil
}
