package model

import "errors"

// ErrMissingContextID flags requests that omit the tenant identifier.
var ErrMissingContextID = errors.New("context id is required")

// Environment is the runtime environment the service runs in.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the caller identity for a request.
// Webhook-originated work runs under a synthetic system scope.
type Scope struct {
	UserID string
}
