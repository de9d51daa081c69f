package errors

import (
	"math"
	"path/filepath"
	"strings"
	"unicode"
)

// MaxMemberNameLength bounds member names so they stay usable as graph node
// identifiers and in table output.
const MaxMemberNameLength = 64

// ValidateMemberName validates a member name before it enters a model.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No whitespace or control characters
//   - Maximum length of MaxMemberNameLength characters
func ValidateMemberName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidMember, "member name cannot be empty")
	}

	if len(name) > MaxMemberNameLength {
		return New(ErrCodeInvalidMember, "member name too long (max %d characters)", MaxMemberNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidMember, "member name %q contains whitespace or control characters", name)
		}
	}

	return nil
}

// ValidateCoordinates rejects NaN and infinite coordinates, which would make
// every geometric comparison false.
func ValidateCoordinates(name string, coords ...float64) error {
	for _, c := range coords {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return New(ErrCodeInvalidMember, "member %s has non-finite coordinate %v", name, c)
		}
	}
	return nil
}

// ModelExtensions lists the file extensions a model can be read from or
// written to.
var ModelExtensions = []string{".json", ".toml", ".yaml", ".yml"}

// ValidateModelPath validates a model file path.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - Extension must be one of ModelExtensions (case-insensitive)
func ValidateModelPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	ext := strings.ToLower(filepath.Ext(path))
	for _, ok := range ModelExtensions {
		if ext == ok {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unsupported model file extension %q (want one of %s)",
		ext, strings.Join(ModelExtensions, ", "))
}
