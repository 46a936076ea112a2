// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client application runtime.
//
// It wires the sync session, the initial fetch, and the background workers
// into a single process lifecycle that ends on SIGINT or SIGTERM.
package client
