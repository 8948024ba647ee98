package i18n

import "errors"

// Sentinel errors are joined with the underlying cause so callers can match
// the failure class with errors.Is while keeping the original detail.
var (
	// YAML operations
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	// File operations
	ErrLoadingFileCancelled = errors.New("loading translation file cancelled")
	ErrFailedToReadFile     = errors.New("failed to read translation file")
	ErrFailedToParseFile    = errors.New("failed to parse translation file")

	// Directory operations
	ErrFailedToAccessDirectory          = errors.New("failed to access directory")
	ErrLoadingDirectoryCancelled        = errors.New("loading from directory cancelled")
	ErrFailedToReadDirectory            = errors.New("failed to read directory")
	ErrContextCancelledDuringProcessing = errors.New("context canceled while processing directory")
)
