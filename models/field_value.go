package models

import (
	"encoding/json"
	"errors"
)

// FieldValueKind enumerates the sentinel operations a remote store resolves
// at commit time.
type FieldValueKind string

const (
	// KindServerTimestamp is replaced by the commit time of the remote store.
	KindServerTimestamp FieldValueKind = "serverTimestamp"
)

// FieldValue is a write-time sentinel. It is never resolved locally: the
// remote store substitutes the real value when the batch is committed.
type FieldValue struct {
	Kind FieldValueKind `json:"__op"`
}

// ServerTimestamp is the sentinel injected into created_at / updated_at.
var ServerTimestamp = FieldValue{Kind: KindServerTimestamp}

// IsServerTimestamp reports whether v is the server timestamp sentinel.
func IsServerTimestamp(v any) bool {
	fv, ok := v.(FieldValue)
	return ok && fv.Kind == KindServerTimestamp
}

var errUnknownFieldValue = errors.New("unknown field value sentinel")

// UnmarshalJSON implements json.Unmarshaler.
func (f *FieldValue) UnmarshalJSON(b []byte) error {
	var raw struct {
		Kind FieldValueKind `json:"__op"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw.Kind != KindServerTimestamp {
		return errUnknownFieldValue
	}
	f.Kind = raw.Kind
	return nil
}
