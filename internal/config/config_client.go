package config

import "time"

// ClientConfig is the view of [StructuredConfig] consumed by the client
// binary when it wires the local store, the remote adapter and the sync
// session together.
type ClientConfig struct {
	Adapter Adapter
	Storage Storage
	Entity  EntityConfig
	Workers Workers
}

// EntityConfig describes how one entity type is synced.
type EntityConfig struct {
	StorePath         string
	CollectionPath    string
	PageSize          int
	MaxBatchOps       int
	DebounceDelay     time.Duration
	StatusSettleDelay time.Duration
	InsertFillables   []string
	PatchFillables    []string
	InsertGuard       []string
	PatchGuard        []string
}

// GetClientConfig loads the structured configuration from all sources and
// returns its client view.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, err
	}
	return cfg.Client(), nil
}

// Client returns the client view of the configuration.
func (cfg *StructuredConfig) Client() *ClientConfig {
	return &ClientConfig{
		Adapter: cfg.Adapter,
		Storage: cfg.Storage,
		Entity:  cfg.Entity(),
		Workers: cfg.Workers,
	}
}

// Entity returns the per-entity sync settings.
func (cfg *StructuredConfig) Entity() EntityConfig {
	return EntityConfig{
		StorePath:         cfg.Sync.StorePath,
		CollectionPath:    cfg.Sync.CollectionPath,
		PageSize:          cfg.Sync.PageSize,
		MaxBatchOps:       cfg.Sync.MaxBatchOps,
		DebounceDelay:     cfg.Sync.Debounce,
		StatusSettleDelay: cfg.Sync.StatusSettle,
		InsertFillables:   append([]string(nil), cfg.Sync.InsertFillables...),
		PatchFillables:    append([]string(nil), cfg.Sync.PatchFillables...),
		InsertGuard:       append([]string(nil), cfg.Sync.InsertGuard...),
		PatchGuard:        append([]string(nil), cfg.Sync.PatchGuard...),
	}
}
