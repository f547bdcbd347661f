// Package errors provides structured, coded errors for codecat.
//
// Error codes follow the pattern ERR_XXX_DESCRIPTION where:
//   - 1XX: configuration errors
//   - 2XX: IO errors (file, disk)
//   - 4XX: validation errors
//   - 5XX: internal errors
package errors

import "strings"

// Category classifies errors for logging and exit handling.
type Category string

const (
	// CategoryConfig indicates configuration-related errors.
	CategoryConfig Category = "CONFIG"
	// CategoryIO indicates file and disk I/O errors.
	CategoryIO Category = "IO"
	// CategoryValidation indicates input validation errors.
	CategoryValidation Category = "VALIDATION"
	// CategoryInternal indicates unexpected internal errors.
	CategoryInternal Category = "INTERNAL"
)

// Error codes organized by category.
const (
	// Config errors (100-199)
	ErrCodeConfigInvalid = "ERR_102_CONFIG_INVALID"

	// IO errors (200-299)
	ErrCodeFileNotFound = "ERR_201_FILE_NOT_FOUND"
	ErrCodeOutputCreate = "ERR_203_OUTPUT_CREATE"
	ErrCodeOutputLocked = "ERR_204_OUTPUT_LOCKED"

	// Validation errors (400-499)
	ErrCodeRootMissing = "ERR_401_ROOT_MISSING"
	ErrCodeRootNotDir  = "ERR_402_ROOT_NOT_DIR"

	// Internal errors (500-599)
	ErrCodeWatchFailed = "ERR_501_WATCH_FAILED"
)

// categoryFromCode derives the category from the code's number block.
func categoryFromCode(code string) Category {
	switch {
	case strings.HasPrefix(code, "ERR_1"):
		return CategoryConfig
	case strings.HasPrefix(code, "ERR_2"):
		return CategoryIO
	case strings.HasPrefix(code, "ERR_4"):
		return CategoryValidation
	default:
		return CategoryInternal
	}
}
