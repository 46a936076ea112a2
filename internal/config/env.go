// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads a configuration layer from environ, a list of "KEY=value"
// pairs in the form returned by os.Environ. Variable names follow the `env`
// and `envPrefix` tags of [StructuredConfig]; unset variables leave their
// fields zero so that lower layers show through when merged.
func parseEnv(environ []string) (*StructuredConfig, error) {
	cfg := new(StructuredConfig)

	opts := env.Options{Environment: env.ToMap(environ)}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	return cfg, nil
}
