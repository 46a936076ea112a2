package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Adapter struct {
		Kind           string   `json:"kind"`
		Address        string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
		HashKey        string   `json:"hash_key"`
		ClientID       string   `json:"client_id"`
		Token          string   `json:"token"`
	} `json:"adapter,omitempty"`

	Storage struct {
		Kind string `json:"kind"`
		DB   struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Sync struct {
		StorePath       string   `json:"store_path"`
		CollectionPath  string   `json:"collection_path"`
		PageSize        int      `json:"page_size"`
		MaxBatchOps     int      `json:"max_batch_ops"`
		Debounce        Duration `json:"debounce"`
		StatusSettle    Duration `json:"status_settle"`
		InsertFillables []string `json:"insert_fillables"`
		PatchFillables  []string `json:"patch_fillables"`
		InsertGuard     []string `json:"insert_guard"`
		PatchGuard      []string `json:"patch_guard"`
	} `json:"sync,omitempty"`

	Workers struct {
		ChannelRetryInterval Duration `json:"channel_retry_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Adapter: Adapter{
			Kind:           jsonCfg.Adapter.Kind,
			Address:        jsonCfg.Adapter.Address,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			HashKey:        jsonCfg.Adapter.HashKey,
			ClientID:       jsonCfg.Adapter.ClientID,
			Token:          jsonCfg.Adapter.Token,
		},
		Storage: Storage{
			Kind: jsonCfg.Storage.Kind,
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Sync: Sync{
			StorePath:       jsonCfg.Sync.StorePath,
			CollectionPath:  jsonCfg.Sync.CollectionPath,
			PageSize:        jsonCfg.Sync.PageSize,
			MaxBatchOps:     jsonCfg.Sync.MaxBatchOps,
			Debounce:        time.Duration(jsonCfg.Sync.Debounce),
			StatusSettle:    time.Duration(jsonCfg.Sync.StatusSettle),
			InsertFillables: jsonCfg.Sync.InsertFillables,
			PatchFillables:  jsonCfg.Sync.PatchFillables,
			InsertGuard:     jsonCfg.Sync.InsertGuard,
			PatchGuard:      jsonCfg.Sync.PatchGuard,
		},
		Workers: Workers{
			ChannelRetryInterval: time.Duration(jsonCfg.Workers.ChannelRetryInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
