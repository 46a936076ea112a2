package models

// ChangeType classifies a document change delivered by a subscription.
type ChangeType string

const (
	ChangeAdded    ChangeType = "added"
	ChangeModified ChangeType = "modified"
	ChangeRemoved  ChangeType = "removed"
)

// ChangeOrigin tells whether a snapshot echoes this client's own writes that
// the server has not acknowledged yet, or carries genuine server state.
type ChangeOrigin string

const (
	OriginLocal  ChangeOrigin = "local"
	OriginServer ChangeOrigin = "server"
)

// Change is a single document change inside a [Snapshot].
type Change struct {
	Type ChangeType `json:"type"`
	Doc  Document   `json:"doc"`
}

// Snapshot is one notification of a subscription: the set of changes since
// the previous notification.
type Snapshot struct {
	HasPendingWrites bool     `json:"has_pending_writes"`
	Changes          []Change `json:"changes"`
}

// Origin derives the change origin from the pending-writes flag.
func (s Snapshot) Origin() ChangeOrigin {
	if s.HasPendingWrites {
		return OriginLocal
	}
	return OriginServer
}
