package errors

import (
	"strings"
	"unicode"
)

// ValidateProjectPath validates a hierarchical module path such as ":libs:core".
//
// Rules:
//   - No empty paths
//   - No control characters or whitespace
//   - No empty segments (":a::b")
//   - Maximum length of 256 characters
//
// The root project is written as ":" and is accepted.
func ValidateProjectPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidGraph, "project path cannot be empty")
	}
	if len(path) > 256 {
		return New(ErrCodeInvalidGraph, "project path too long (max 256 characters)")
	}
	for _, r := range path {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidGraph, "project path %q contains invalid characters", path)
		}
	}
	if path == ":" {
		return nil
	}
	if strings.Contains(path, "::") || strings.HasSuffix(path, ":") {
		return New(ErrCodeInvalidGraph, "project path %q contains an empty segment", path)
	}
	return nil
}

// ValidateTypeName validates a node or edge type name.
// A type name must contain at least one letter or digit, since class
// identifiers are built from those characters only.
func ValidateTypeName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidConfig, "type name cannot be empty")
	}
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return nil
		}
	}
	return New(ErrCodeInvalidConfig, "type name %q has no letters or digits", name)
}

// ValidatePath validates a relative output path for safety.
// It prevents path traversal and absolute paths in request-supplied names.
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}
