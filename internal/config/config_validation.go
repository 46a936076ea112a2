// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the ErrInvalid*
// sentinels wrapped with the offending setting otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Adapter.Kind {
	case AdapterMemory:
	case AdapterHTTP:
		if cfg.Adapter.Address == "" || cfg.Adapter.RequestTimeout <= 0 {
			return fmt.Errorf("%w: http adapter needs address and request timeout", ErrInvalidAdapterConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidAdapterConfigs, cfg.Adapter.Kind)
	}

	switch cfg.Storage.Kind {
	case StorageMemory:
	case StorageSQLite:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: empty dsn", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidStorageConfigs, cfg.Storage.Kind)
	}

	if cfg.Sync.StorePath == "" || cfg.Sync.CollectionPath == "" {
		return fmt.Errorf("%w: store path and collection path are required", ErrInvalidSyncConfigs)
	}
	if cfg.Sync.PageSize <= 0 || cfg.Sync.MaxBatchOps <= 0 {
		return fmt.Errorf("%w: page size and max batch ops must be positive", ErrInvalidSyncConfigs)
	}
	if cfg.Sync.Debounce < 0 || cfg.Sync.StatusSettle < 0 {
		return fmt.Errorf("%w: negative delay", ErrInvalidSyncConfigs)
	}

	if cfg.Workers.ChannelRetryInterval <= 0 {
		return fmt.Errorf("%w: channel retry interval must be positive", ErrInvalidWorkerConfigs)
	}

	return nil
}
