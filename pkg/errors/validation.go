package errors

import (
	"strings"
	"unicode"
)

// ValidateOutputName validates the base name of an output file.
// Output files are always written into the configured output directory, so
// the name must be a plain base name:
//   - Name cannot be empty
//   - Maximum length of 200 characters
//   - No control characters or null bytes
//   - No path separators or parent-directory references
//   - No leading dot (hidden files)
func ValidateOutputName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPath, "output name cannot be empty")
	}

	const maxNameLength = 200
	if len(name) > maxNameLength {
		return New(ErrCodeInvalidPath, "output name too long (max %d characters)", maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output name contains invalid characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidPath, "output name cannot contain path separators")
	}

	if strings.HasPrefix(name, ".") {
		return New(ErrCodeInvalidPath, "output name cannot start with a dot")
	}

	return nil
}
