package models

// BatchOpKind is the kind of a single write inside an atomic batch.
type BatchOpKind string

const (
	BatchUpdate BatchOpKind = "update"
	BatchDelete BatchOpKind = "delete"
	BatchSet    BatchOpKind = "set"
)

// BatchOp is one write of an atomic batch. Data is nil for deletions.
type BatchOp struct {
	Kind BatchOpKind `json:"kind"`
	Ref  DocRef      `json:"ref"`
	Data Item        `json:"data,omitempty"`
}

// BatchRequest is the wire form of a batch commit.
type BatchRequest struct {
	ClientID string    `json:"client_id"`
	Ops      []BatchOp `json:"ops"`
	Length   int       `json:"length"`
	Hash     string    `json:"hash,omitempty"`
}
