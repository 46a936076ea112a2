package adapter

import (
	"encoding/base64"
	"testing"

	"github.com/MKhiriev/go-doc-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorToken_RoundTrip(t *testing.T) {
	in := models.Cursor{DocID: "0192c2d4-aaaa", Values: []any{3.0, "title", true}}

	token, err := EncodeCursorToken(in)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	out, err := DecodeCursorToken(token)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestCursorToken_Empty(t *testing.T) {
	token, err := EncodeCursorToken(models.Cursor{})
	require.NoError(t, err)
	assert.Empty(t, token)

	cur, err := DecodeCursorToken("")
	require.NoError(t, err)
	assert.Equal(t, models.Cursor{}, cur)
}

func TestEncodeCursorToken_SeparatorInID(t *testing.T) {
	_, err := EncodeCursorToken(models.Cursor{DocID: "a|b"})
	assert.ErrorIs(t, err, ErrInvalidCursorToken)
}

func TestDecodeCursorToken_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"not base64", "!!!"},
		{"no separator", base64.RawURLEncoding.EncodeToString([]byte("abc"))},
		{"empty id", base64.RawURLEncoding.EncodeToString([]byte("|[]"))},
		{"bad values", base64.RawURLEncoding.EncodeToString([]byte("a|{"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeCursorToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalidCursorToken)
		})
	}
}
