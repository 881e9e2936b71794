package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates user input or configuration failed validation.
	ErrValidation = errors.New("validation error")

	// ErrCancelled indicates the user interrupted a prompt.
	ErrCancelled = errors.New("cancelled by user")

	// ErrNetwork indicates a remote catalog could not be reached.
	ErrNetwork = errors.New("network error")

	// ErrDecode indicates a remote catalog returned a malformed payload.
	ErrDecode = errors.New("deserialization error")

	// ErrFilesystem indicates a filesystem operation failed.
	ErrFilesystem = errors.New("filesystem error")

	// ErrTemplate indicates a template asset could not be read.
	ErrTemplate = errors.New("template error")

	// ErrCommand indicates an external command failed.
	ErrCommand = errors.New("command failed")
)
