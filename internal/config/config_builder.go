package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// layer is one configuration source. Non-zero fields of later layers
// override earlier ones.
type layer struct {
	source string
	cfg    *StructuredConfig
}

type configBuilder struct {
	layers []layer
	errs   []error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{layers: make([]layer, 0, 4)}
}

func (b *configBuilder) add(source string, cfg *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("%s: %w", source, err))
		return b
	}
	b.layers = append(b.layers, layer{source: source, cfg: cfg})
	return b
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if err := errors.Join(b.errs...); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	merged := new(StructuredConfig)
	for _, l := range b.layers {
		if err := mergo.Merge(merged, l.cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merge %s config: %w", l.source, err)
		}
	}

	return merged, merged.validate()
}

func (b *configBuilder) withDefaults() *configBuilder {
	return b.add("defaults", defaults(), nil)
}

func (b *configBuilder) withEnv(environ []string) *configBuilder {
	cfg, err := parseEnv(environ)
	return b.add("env", cfg, err)
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	cfg, err := parseFlags(args)
	return b.add("flags", cfg, err)
}

// withJSON adds the JSON file named by the last layer that sets
// JSONFilePath. It is a no-op when no layer names a file.
func (b *configBuilder) withJSON() *configBuilder {
	path := b.jsonPath()
	if path == "" {
		return b
	}

	cfg, err := parseJSON(path)
	return b.add("json", cfg, err)
}

func (b *configBuilder) jsonPath() string {
	for i := len(b.layers) - 1; i >= 0; i-- {
		if p := b.layers[i].cfg.JSONFilePath; p != "" {
			return p
		}
	}
	return ""
}
