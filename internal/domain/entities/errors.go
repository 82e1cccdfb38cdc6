package entities

import "errors"

// Domain errors
var (
	// Workspace errors
	ErrNoFileSelected      = errors.New("no file selected")
	ErrOperationInProgress = errors.New("operation already in progress")
	ErrEmptyQuestion       = errors.New("question is empty")
	ErrNoTranscript        = errors.New("no transcript loaded")
	ErrInvalidFormKind     = errors.New("invalid form kind")
	ErrInvalidItemKind     = errors.New("invalid item kind")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
)
