package adapter

import "github.com/MKhiriev/go-doc-sync/models"

// queryRequest is the wire form of a query. The cursor travels as an opaque
// continuation token.
type queryRequest struct {
	Collection string          `json:"collection"`
	Filters    []models.Filter `json:"filters,omitempty"`
	Orders     []models.Order  `json:"orders,omitempty"`
	Limit      int             `json:"limit,omitempty"`
	StartAfter string          `json:"start_after,omitempty"`
}

type queryResponse struct {
	Docs []models.Document `json:"docs"`
}

// changesResponse is one long-poll result of the change feed.
type changesResponse struct {
	Seq     int64        `json:"seq"`
	Changes []feedChange `json:"changes"`
}

// feedChange is a change as delivered by the feed; Writer names the client
// whose commit produced it, empty for server-side writes.
type feedChange struct {
	Type   models.ChangeType `json:"type"`
	Doc    models.Document   `json:"doc"`
	Writer string            `json:"writer,omitempty"`
}

func newQueryRequest(q models.Query) (queryRequest, error) {
	req := queryRequest{
		Collection: q.Collection,
		Filters:    q.Filters,
		Orders:     q.Orders,
		Limit:      q.Max,
	}
	if q.After != nil {
		token, err := EncodeCursorToken(*q.After)
		if err != nil {
			return queryRequest{}, err
		}
		req.StartAfter = token
	}
	return req, nil
}

// snapshotsFromFeed splits a feed result into snapshots: consecutive changes
// written by clientID form pending-write snapshots, the rest server ones.
func snapshotsFromFeed(clientID string, changes []feedChange) []models.Snapshot {
	var out []models.Snapshot
	for _, c := range changes {
		local := clientID != "" && c.Writer == clientID
		if len(out) == 0 || out[len(out)-1].HasPendingWrites != local {
			out = append(out, models.Snapshot{HasPendingWrites: local})
		}
		last := &out[len(out)-1]
		last.Changes = append(last.Changes, models.Change{Type: c.Type, Doc: c.Doc})
	}
	return out
}
