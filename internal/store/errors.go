package store

import "errors"

// Sentinel errors for store operations. Concrete failures wrap these with
// context, so callers can match with errors.Is while users still see an
// actionable message.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
)
