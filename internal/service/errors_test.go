package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/MKhiriev/go-doc-sync/internal/adapter"
	"github.com/stretchr/testify/assert"
)

func TestSyncError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("%w: 502", adapter.ErrBadGateway)
	err := error(newSyncError("batch sync", ErrBatchCommit, cause))

	assert.ErrorIs(t, err, ErrBatchCommit)
	assert.ErrorIs(t, err, adapter.ErrBadGateway)
	assert.NotErrorIs(t, err, ErrFetch)
	assert.Equal(t, "batch sync: batch commit failed: bad gateway: 502", err.Error())
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "bad gateway", err: adapter.ErrBadGateway, want: true},
		{name: "internal", err: fmt.Errorf("wrapped: %w", adapter.ErrInternalServerError), want: true},
		{name: "unavailable", err: adapter.ErrUnavailable, want: true},
		{name: "deadline", err: context.DeadlineExceeded, want: true},
		{name: "net error", err: &net.OpError{Op: "dial", Err: errors.New("connection refused")}, want: true},
		{name: "bad request", err: adapter.ErrBadRequest, want: false},
		{name: "unauthorized", err: adapter.ErrUnauthorized, want: false},
		{name: "forbidden", err: adapter.ErrForbidden, want: false},
		{name: "not found", err: adapter.ErrNotFound, want: false},
		{name: "conflict", err: adapter.ErrConflict, want: false},
		{name: "too large", err: adapter.ErrBatchTooLarge, want: false},
		{name: "invalid query", err: adapter.ErrInvalidQuery, want: false},
		{name: "canceled", err: context.Canceled, want: false},
		{name: "unknown", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryable(tt.err))
		})
	}
}
