package status

import (
	"context"

	"ai-brain/internal/statuscache"
	"ai-brain/pkg/log"
	"ai-brain/pkg/slackapi"
)

// SlackAPI is the slice of the Slack client the checker needs.
type SlackAPI interface {
	AuthTest(ctx context.Context) (slackapi.AuthTestResponse, error)
}

// Checker resolves connection status for external data sources,
// memoized through the status cache.
type Checker struct {
	cache *statuscache.Cache
	slack SlackAPI // nil when no bot token is configured
	l     log.Logger
}

// New creates a connection-status checker.
func New(cache *statuscache.Cache, slack SlackAPI, l log.Logger) *Checker {
	return &Checker{
		cache: cache,
		slack: slack,
		l:     l,
	}
}
