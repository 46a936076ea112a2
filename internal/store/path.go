package store

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-doc-sync/models"
)

// splitPath breaks a slash- or dot-delimited path into its segments.
// Empty segments are dropped, so "nodes/", "/nodes" and "nodes" are equal.
func splitPath(path string) ([]string, error) {
	segments := strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '.'
	})
	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	return segments, nil
}

// JoinPath builds a slash-delimited store path from segments.
func JoinPath(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		s = strings.Trim(s, "/")
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "/")
}

// asMap returns v as a map[string]any when it holds one.
func asMap(v any) (map[string]any, bool) {
	item, ok := models.AsItem(v)
	if !ok {
		return nil, false
	}
	return map[string]any(item), true
}

// copyValue deep copies a JSON-like value.
func copyValue(v any) any {
	return models.Item{"v": v}.DeepCopy()["v"]
}

// lookup walks segments starting at node.
func lookup(node any, segments []string) (any, bool) {
	for _, seg := range segments {
		m, ok := asMap(node)
		if !ok {
			return nil, false
		}
		node, ok = m[seg]
		if !ok {
			return nil, false
		}
	}
	return node, true
}

// container returns the map at segments below root, creating missing maps
// along the way.
func container(root map[string]any, segments []string) (map[string]any, error) {
	node := root
	for i, seg := range segments {
		next, ok := node[seg]
		if !ok || next == nil {
			m := make(map[string]any)
			node[seg] = m
			node = m
			continue
		}
		m, ok := asMap(next)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNotContainer, JoinPath(segments[:i+1]...))
		}
		node = m
	}
	return node, nil
}
