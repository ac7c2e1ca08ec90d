package model

import "time"

// DataSource identifies an external integration checked by the
// connection-status widgets.
type DataSource string

const (
	SourceSlack DataSource = "slack"
)

// ConnectionStatus is the result of probing a data source connection
// for one context. Cached short-term by the status cache.
type ConnectionStatus struct {
	Source    DataSource
	ContextID string
	Connected bool
	Workspace string // workspace/team name reported by the provider
	Detail    string // human-readable failure detail, empty when connected
	CheckedAt time.Time
}
