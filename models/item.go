// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Well-known record fields written or read by the sync layer.
const (
	FieldID        = "id"
	FieldCreatedAt = "created_at"
	FieldCreatedBy = "created_by"
	FieldUpdatedAt = "updated_at"
	FieldArchived  = "archived"
	FieldDeleted   = "deleted"
	FieldDepth     = "depth"
)

// Item is a single schemaless record as kept in the local store and in the
// remote collection. Values are JSON-like: nil, bool, numbers, string,
// []any, map[string]any, Item or a [FieldValue] sentinel.
type Item map[string]any

// DeepCopy returns a copy of the item in which every nested map and slice is
// copied as well, so mutating the copy never reaches the original.
func (i Item) DeepCopy() Item {
	if i == nil {
		return nil
	}

	out := make(Item, len(i))
	for k, v := range i {
		out[k] = deepCopyValue(v)
	}
	return out
}

// ID returns the "id" field as a string, or "" when it is absent.
func (i Item) ID() string {
	id, _ := i[FieldID].(string)
	return id
}

func deepCopyValue(v any) any {
	switch val := v.(type) {
	case Item:
		return val.DeepCopy()
	case map[string]any:
		return map[string]any(Item(val).DeepCopy())
	case []any:
		out := make([]any, len(val))
		for idx, el := range val {
			out[idx] = deepCopyValue(el)
		}
		return out
	case []string:
		out := make([]string, len(val))
		copy(out, val)
		return out
	case json.RawMessage:
		out := make(json.RawMessage, len(val))
		copy(out, val)
		return out
	default:
		return val
	}
}

// AsItem converts a value read from the local store into an Item.
// It returns false when v is neither an Item nor a map[string]any.
func AsItem(v any) (Item, bool) {
	switch val := v.(type) {
	case Item:
		return val, true
	case map[string]any:
		return Item(val), true
	default:
		return nil, false
	}
}
