package channel

import "errors"

// Domain-specific errors for the channel package.
var (
	ErrMissingContext = errors.New("context id is required")
)
