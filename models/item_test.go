package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItem_DeepCopy_NestedMutationDoesNotLeak(t *testing.T) {
	orig := Item{
		"title": "a",
		"meta":  map[string]any{"tags": []any{"x", "y"}},
		"sub":   Item{"n": 1},
	}

	cp := orig.DeepCopy()
	cp["title"] = "b"
	cp["meta"].(map[string]any)["tags"].([]any)[0] = "changed"
	cp["sub"].(Item)["n"] = 2

	assert.Equal(t, "a", orig["title"])
	assert.Equal(t, "x", orig["meta"].(map[string]any)["tags"].([]any)[0])
	assert.Equal(t, 1, orig["sub"].(Item)["n"])
}

func TestItem_DeepCopy_Nil(t *testing.T) {
	var i Item
	assert.Nil(t, i.DeepCopy())
}

func TestItem_ID(t *testing.T) {
	assert.Equal(t, "abc", Item{"id": "abc"}.ID())
	assert.Equal(t, "", Item{"id": 42}.ID())
	assert.Equal(t, "", Item{}.ID())
}

func TestAsItem(t *testing.T) {
	it, ok := AsItem(map[string]any{"a": 1})
	require.True(t, ok)
	assert.Equal(t, 1, it["a"])

	_, ok = AsItem("not a map")
	assert.False(t, ok)
}

func TestDocument_Item_SetsID(t *testing.T) {
	doc := Document{ID: "srv-1", Data: Item{"id": "tempItem-1", "title": "t"}}

	item := doc.Item()

	assert.Equal(t, "srv-1", item["id"])
	assert.Equal(t, "tempItem-1", doc.Data["id"], "document data must stay untouched")
}

func TestIsServerTimestamp(t *testing.T) {
	assert.True(t, IsServerTimestamp(ServerTimestamp))
	assert.False(t, IsServerTimestamp("now"))
	assert.False(t, IsServerTimestamp(FieldValue{Kind: "other"}))
}
