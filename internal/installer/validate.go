package installer

import (
	"fmt"
	"strings"
	"unicode"
)

// maxItemNameLen is the maximum allowed length for a user-supplied skill
// or agent name.
const maxItemNameLen = 128

// ValidateItemName checks that a user-supplied skill or agent name is safe
// to use as a catalog lookup key and a destination path component. It runs
// before any filesystem access, so a crafted name can never escape the
// catalog directory.
//
// Rules:
//   - Must be non-empty
//   - Max 128 characters
//   - No whitespace
//   - No path separators (/ or \)
//   - No parent-directory sequence (..)
//   - No leading dot
//   - Only alphanumerics, hyphens, and underscores
func ValidateItemName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidItemName)
	}

	if len(name) > maxItemNameLen {
		return fmt.Errorf("%w: name too long (%d chars, max %d)", ErrInvalidItemName, len(name), maxItemNameLen)
	}

	for _, r := range name {
		if unicode.IsSpace(r) {
			return fmt.Errorf("%w: name cannot contain spaces — use hyphens instead (e.g. 'code-review')", ErrInvalidItemName)
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return fmt.Errorf("%w: name cannot contain path separators", ErrInvalidItemName)
	}

	if strings.Contains(name, "..") {
		return fmt.Errorf("%w: name cannot contain '..'", ErrInvalidItemName)
	}

	if strings.HasPrefix(name, ".") {
		return fmt.Errorf("%w: name cannot start with a dot", ErrInvalidItemName)
	}

	for _, r := range name {
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_') {
			return fmt.Errorf("%w: invalid character %q — only letters, numbers, hyphens, and underscores are allowed", ErrInvalidItemName, r)
		}
	}

	return nil
}
