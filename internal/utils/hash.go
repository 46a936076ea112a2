package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"hash"
	"sync"
)

// Signer computes HMAC-SHA256 signatures of request bodies with a fixed key.
// Every Signer owns its pool of hash instances, so stores configured with
// different keys never share state. A nil *Signer signs nothing.
type Signer struct {
	pool sync.Pool
}

// NewSigner returns a Signer keyed with key, or nil when key is empty.
func NewSigner(key string) *Signer {
	if key == "" {
		return nil
	}

	k := []byte(key)
	return &Signer{
		pool: sync.Pool{
			New: func() any { return hmac.New(sha256.New, k) },
		},
	}
}

// Sum returns the raw HMAC-SHA256 digest of data.
func (s *Signer) Sum(data []byte) []byte {
	if s == nil {
		return nil
	}

	h := s.pool.Get().(hash.Hash)
	defer s.pool.Put(h)

	h.Reset()
	h.Write(data)
	return h.Sum(nil)
}

// SignJSON marshals v and returns the hex digest of the encoded bytes.
// Maps are marshaled with sorted keys, so equal documents sign equally
// regardless of field order. A nil Signer returns "" and no error.
func (s *Signer) SignJSON(v any) (string, error) {
	if s == nil {
		return "", nil
	}

	payload, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode payload for signing: %w", err)
	}
	return hex.EncodeToString(s.Sum(payload)), nil
}

// Verify reports whether signature is the hex digest of data.
func (s *Signer) Verify(data []byte, signature string) bool {
	if s == nil {
		return signature == ""
	}

	want, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(s.Sum(data), want)
}

// HashString is a one-off hex HMAC-SHA256 of data under key.
func HashString(data string, key string) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}
