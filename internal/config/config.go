// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Default values applied before any other source is merged.
const (
	DefaultPageSize             = 50
	DefaultMaxBatchOps          = 500
	DefaultDebounce             = time.Second
	DefaultStatusSettle         = 300 * time.Millisecond
	DefaultRequestTimeout       = 30 * time.Second
	DefaultChannelRetryInterval = 5 * time.Second
	DefaultStorePath            = "nodes"
)

// Adapter kinds understood by the client binary.
const (
	AdapterHTTP   = "http"
	AdapterMemory = "memory"
)

// Storage kinds understood by the client binary.
const (
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the remote document store connection settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync holds the per-entity synchronization settings.
	Sync Sync `envPrefix:"SYNC_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds configuration of the remote document store binding.
type Adapter struct {
	// Kind selects the binding: "http" or "memory".
	// Env: ADAPTER_KIND
	Kind string `env:"KIND"`

	// Address is the base address of the document API, "host:port" or a URL.
	// Env: ADAPTER_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout bounds a single HTTP round trip (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// HashKey is the HMAC key used for the HashSHA256 batch integrity header.
	// Env: ADAPTER_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// ClientID identifies this client in the change feed so that echoes of
	// its own writes can be told apart. Generated when empty.
	// Env: ADAPTER_CLIENT_ID
	ClientID string `env:"CLIENT_ID"`

	// Token is the bearer token of the signed-in user.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// Storage groups the local store settings.
type Storage struct {
	// Kind selects the local store: "sqlite" or "memory".
	// Env: STORAGE_KIND
	Kind string `env:"KIND"`

	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path or DSN.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Sync holds the configuration of one synced entity type.
type Sync struct {
	// StorePath is the local store root of the entity, relative to the root
	// of the local store (e.g. "nodes").
	// Env: SYNC_STORE_PATH
	StorePath string `env:"STORE_PATH"`

	// CollectionPath is the remote collection path (e.g. "userItems/42/items").
	// Env: SYNC_COLLECTION_PATH
	CollectionPath string `env:"COLLECTION_PATH"`

	// PageSize is the number of documents fetched per page.
	// Env: SYNC_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`

	// MaxBatchOps is the hard per-batch operation cap of the remote store.
	// Env: SYNC_MAX_BATCH_OPS
	MaxBatchOps int `env:"MAX_BATCH_OPS"`

	// Debounce is the quiescence period before pending writes are flushed.
	// Env: SYNC_DEBOUNCE
	Debounce time.Duration `env:"DEBOUNCE"`

	// StatusSettle delays the patching -> idle status transition.
	// Env: SYNC_STATUS_SETTLE
	StatusSettle time.Duration `env:"STATUS_SETTLE"`

	// InsertFillables lists the fields kept on insert; empty keeps all.
	// Env: SYNC_INSERT_FILLABLES (comma separated)
	InsertFillables []string `env:"INSERT_FILLABLES" envSeparator:","`

	// PatchFillables lists the fields kept on whole-record patches; empty
	// keeps all.
	// Env: SYNC_PATCH_FILLABLES (comma separated)
	PatchFillables []string `env:"PATCH_FILLABLES" envSeparator:","`

	// InsertGuard lists fields never written on insert.
	// Env: SYNC_INSERT_GUARD (comma separated)
	InsertGuard []string `env:"INSERT_GUARD" envSeparator:","`

	// PatchGuard lists fields never written on patches, whole-record or not.
	// Env: SYNC_PATCH_GUARD (comma separated)
	PatchGuard []string `env:"PATCH_GUARD" envSeparator:","`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// ChannelRetryInterval is the pause before a failed change channel is
	// reopened.
	// Env: WORKERS_CHANNEL_RETRY_INTERVAL
	ChannelRetryInterval time.Duration `env:"CHANNEL_RETRY_INTERVAL"`
}

// defaults returns the lowest-priority configuration source.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			Kind:           AdapterHTTP,
			RequestTimeout: DefaultRequestTimeout,
		},
		Storage: Storage{
			Kind: StorageSQLite,
		},
		Sync: Sync{
			StorePath:    DefaultStorePath,
			PageSize:     DefaultPageSize,
			MaxBatchOps:  DefaultMaxBatchOps,
			Debounce:     DefaultDebounce,
			StatusSettle: DefaultStatusSettle,
		},
		Workers: Workers{
			ChannelRetryInterval: DefaultChannelRetryInterval,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv(os.Environ()).
		withFlags(flagArgs()).
		withJSON().
		build()
}
