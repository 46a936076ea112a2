// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"net"

	"github.com/MKhiriev/go-doc-sync/internal/adapter"
)

// isRetryable reports whether a remote failure may succeed when the same
// request is sent again later. Requests rejected for what they contain or
// for who sent them are not retryable.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrUnavailable),
		errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, context.DeadlineExceeded):
		return true

	case errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrUnauthorized),
		errors.Is(err, adapter.ErrForbidden),
		errors.Is(err, adapter.ErrNotFound),
		errors.Is(err, adapter.ErrConflict),
		errors.Is(err, adapter.ErrBatchTooLarge),
		errors.Is(err, adapter.ErrInvalidQuery),
		errors.Is(err, context.Canceled):
		return false
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
