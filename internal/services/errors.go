package services

import "errors"

// Error taxonomy surfaced to handlers: not found / conflict / validation /
// forbidden, anything else is a server error.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation failed")
	ErrForbidden  = errors.New("forbidden")
)
