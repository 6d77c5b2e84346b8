package service

import (
	"errors"
	"fmt"
)

// Sentinel errors: the handler boundary maps these to HTTP statuses and
// stable machine-readable codes. Everything else becomes a 500.
var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidIdentifier   = errors.New("invalid identifier")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUploadFailed        = errors.New("upload failed")
	ErrInvalidVideoURL     = errors.New("invalid video url")
	ErrDuplicateVideoTitle = errors.New("duplicate video title")
	ErrVideoNotFound       = errors.New("video not found")
	ErrChapterNotFound     = errors.New("chapter not found")
)

// ValidationError names the first offending input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func invalidField(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func missingField(field string) error {
	return &ValidationError{Field: field, Reason: "is required"}
}
