package errors

import "errors"

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrInternalError = errors.New("internal server error")
)

// Upload errors
var (
	ErrEmptyUpload   = errors.New("upload has no file name or content")
	ErrUploadMissing = errors.New("staged recording is missing")
)
