// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package debounce provides a single-fire deferred completion signal that
// coalesces bursts of calls into one trigger.
//
// A [Handle] completes once no [Handle.Refresh] call has happened for the
// configured delay. Refreshing resets the countdown and never produces an
// additional completion: there is exactly one completion per quiescent
// period. A completed or stopped handle is spent; callers start a new one.
package debounce

import (
	"context"
	"sync"
	"time"
)

// Handle is an outstanding debounce countdown.
type Handle struct {
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	done    chan struct{}
	stopc   chan struct{}
	fired   bool
	stopped bool
}

// Start begins a countdown of delay. A non-positive delay completes on the
// next scheduler tick.
func Start(delay time.Duration) *Handle {
	h := &Handle{
		delay: max(delay, 0),
		done:  make(chan struct{}),
		stopc: make(chan struct{}),
	}

	h.mu.Lock()
	h.arm()
	h.mu.Unlock()

	return h
}

// Refresh resets the countdown. It is a no-op once the handle has completed
// or has been stopped.
func (h *Handle) Refresh() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.fired || h.stopped {
		return
	}

	h.timer.Stop()
	h.arm()
}

// Done returns a channel that is closed when the countdown completes. It is
// never closed for a stopped handle.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Stop cancels the countdown. It reports whether the handle was still
// pending, i.e. whether Stop prevented the completion.
func (h *Handle) Stop() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.fired || h.stopped {
		return false
	}

	h.stopped = true
	h.timer.Stop()
	close(h.stopc)
	return true
}

// Wait blocks until the countdown completes, the handle is stopped or ctx is
// done. It reports whether the countdown completed.
func (h *Handle) Wait(ctx context.Context) bool {
	select {
	case <-h.done:
		return true
	case <-h.stopc:
		return false
	case <-ctx.Done():
		return false
	}
}

// Fired reports whether the countdown has completed.
func (h *Handle) Fired() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.fired
}

// arm must be called with h.mu held.
func (h *Handle) arm() {
	h.gen++
	gen := h.gen
	h.timer = time.AfterFunc(h.delay, func() { h.fire(gen) })
}

func (h *Handle) fire(gen uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	// a refresh raced with an expiring timer
	if gen != h.gen || h.fired || h.stopped {
		return
	}

	h.fired = true
	close(h.done)
}
