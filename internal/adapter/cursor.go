package adapter

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-doc-sync/models"
)

// EncodeCursorToken turns a query cursor into an opaque continuation token.
// Format: base64("<docID>|<json order values>").
// Returns empty string for a zero-value cursor.
func EncodeCursorToken(c models.Cursor) (string, error) {
	if c.DocID == "" && len(c.Values) == 0 {
		return "", nil
	}
	if strings.Contains(c.DocID, "|") {
		return "", fmt.Errorf("%w: document id contains separator", ErrInvalidCursorToken)
	}

	values, err := json.Marshal(c.Values)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidCursorToken, err)
	}

	raw := c.DocID + "|" + string(values)
	return base64.RawURLEncoding.EncodeToString([]byte(raw)), nil
}

// DecodeCursorToken parses a token produced by [EncodeCursorToken].
func DecodeCursorToken(token string) (models.Cursor, error) {
	if token == "" {
		return models.Cursor{}, nil
	}

	b, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return models.Cursor{}, fmt.Errorf("%w: %w", ErrInvalidCursorToken, err)
	}

	id, rawValues, ok := strings.Cut(string(b), "|")
	if !ok || id == "" {
		return models.Cursor{}, fmt.Errorf("%w: malformed token", ErrInvalidCursorToken)
	}

	var values []any
	if err := json.Unmarshal([]byte(rawValues), &values); err != nil {
		return models.Cursor{}, fmt.Errorf("%w: %w", ErrInvalidCursorToken, err)
	}

	return models.Cursor{DocID: id, Values: values}, nil
}
