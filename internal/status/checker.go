package status

import (
	"context"
	"time"

	"ai-brain/internal/model"
)

// Check returns the connection status for a data source and context.
// Results are cached; a fresh probe only runs on a cache miss. Probe
// failures degrade to a disconnected status, never an error.
func (ch *Checker) Check(ctx context.Context, source model.DataSource, contextID string) (model.ConnectionStatus, bool) {
	if cached := ch.cache.Get(string(source), contextID); cached != nil {
		if st, ok := cached.(model.ConnectionStatus); ok {
			return st, true
		}
	}

	st := ch.probe(ctx, source, contextID)
	ch.cache.Set(string(source), contextID, st)
	return st, false
}

// Invalidate drops the cached status so the next Check re-probes.
func (ch *Checker) Invalidate(source model.DataSource, contextID string) {
	ch.cache.Delete(string(source), contextID)
}

func (ch *Checker) probe(ctx context.Context, source model.DataSource, contextID string) model.ConnectionStatus {
	st := model.ConnectionStatus{
		Source:    source,
		ContextID: contextID,
		CheckedAt: time.Now(),
	}

	switch source {
	case model.SourceSlack:
		if ch.slack == nil {
			st.Detail = "slack bot token not configured"
			return st
		}
		resp, err := ch.slack.AuthTest(ctx)
		if err != nil {
			ch.l.Warnf(ctx, "status: slack probe failed for %s: %v", contextID, err)
			st.Detail = "slack unreachable"
			return st
		}
		st.Connected = true
		st.Workspace = resp.Team
	default:
		st.Detail = "unknown data source"
	}

	return st
}
