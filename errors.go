package punct

import "errors"

// Sentinel errors for library operations.
var (
	// Matcher configuration errors.
	ErrInvalidMarks = errors.New("invalid punctuation marks")

	// Profile loading errors.
	ErrProfileNotFound = errors.New("marks profile not found")
	ErrProfileParse    = errors.New("failed to parse marks profiles")

	// Processing errors.
	ErrProcess = errors.New("chunk processing failed")
)
