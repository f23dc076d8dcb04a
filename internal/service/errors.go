package service

import "errors"

// Stable failure kinds surfaced by the service layer. Handlers map
// these onto HTTP status codes; anything else is an internal error
// that gets logged server-side and reported generically.
var (
	ErrNotFound            = errors.New("not found")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnsupportedMedia    = errors.New("unsupported media type")
	ErrInsufficientStorage = errors.New("insufficient storage")
	ErrThumbnailExists     = errors.New("thumbnail already exists")
)
