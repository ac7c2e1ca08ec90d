package message

import "errors"

// Domain-specific errors for the message package.
var (
	ErrMissingContext   = errors.New("context id is required")
	ErrInvalidTimestamp = errors.New("event timestamp is not a valid slack ts")
)
