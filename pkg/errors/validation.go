package errors

import (
	"strings"
	"unicode"
)

// maxIDLength bounds identifier length to keep storage keys sane.
const maxIDLength = 128

// validateID applies the shared identifier rules: non-empty, bounded length,
// no control characters, no path separators or traversal sequences. Ids end
// up in storage keys and file names, so this is deliberately conservative.
func validateID(id string, code Code, what string) error {
	if id == "" {
		return New(code, "%s cannot be empty", what)
	}
	if len(id) > maxIDLength {
		return New(code, "%s too long (max %d characters)", what, maxIDLength)
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(code, "%s contains control characters", what)
		}
	}
	if strings.ContainsAny(id, "/\\") || strings.Contains(id, "..") {
		return New(code, "%s contains invalid characters", what)
	}
	return nil
}

// ValidateBoardID validates a board identifier.
func ValidateBoardID(id string) error {
	return validateID(id, ErrCodeInvalidBoard, "board id")
}

// ValidateNodeID validates a node identifier.
func ValidateNodeID(id string) error {
	return validateID(id, ErrCodeInvalidNode, "node id")
}

// ValidateUserID validates a user identifier. An empty user id means the
// caller is not authenticated, which gets its own code so the API can map it
// to 401 rather than 400.
func ValidateUserID(id string) error {
	if id == "" {
		return New(ErrCodeUnauthorized, "not authenticated")
	}
	return validateID(id, ErrCodeInvalidInput, "user id")
}
