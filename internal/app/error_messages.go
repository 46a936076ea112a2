// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// go-doc-sync client runtime.
//
// All Msg* constants are human-readable message strings written into log
// entries to describe the outcome of a lifecycle step. Keeping them in one
// place ensures consistent wording across the binary and its workers.
package app

const (
	// MsgClientStarting is logged once the session and its workers are wired
	// and the client begins its startup sequence.
	MsgClientStarting = "client starting"

	// MsgInitialFetchFailed is logged when paging the remote collection into
	// the local store fails at startup. The client keeps running; the change
	// channel delivers the current state once it opens.
	MsgInitialFetchFailed = "initial fetch failed"

	// MsgInitialFetchDone is logged when the remote collection has been paged
	// into the local store.
	MsgInitialFetchDone = "initial fetch done"

	// MsgNotSignedIn is logged when the client starts without a usable bearer
	// token. Local writes are buffered but nothing is sent.
	MsgNotSignedIn = "user is not signed in, remote sync is paused"

	// MsgShutdownRequested is logged when the process receives an interrupt
	// or termination signal.
	MsgShutdownRequested = "shutdown requested"

	// MsgClientStopped is logged after the workers have stopped and the sync
	// session is closed.
	MsgClientStopped = "client stopped"

	// MsgSyncError is logged for sync failures that have no synchronous
	// caller, such as debounced drains and change channel errors.
	MsgSyncError = "sync error"

	// MsgSyncStatusChanged is logged on every sync status transition.
	MsgSyncStatusChanged = "sync status changed"
)
