// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package network

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"
)

// Config is a set of named networks and an optional default, typically loaded
// from YAML:
//
//	default: testnet
//	networks:
//	  local: "Standalone Network ; February 2017"
//
// Preset names may be used without being listed
type Config struct {
	Default  string            `yaml:"default"`
	Networks map[string]string `yaml:"networks"`
}

// LoadConfig parses a YAML network config
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to decode network config: %w", err)
	}
	for name, passphrase := range cfg.Networks {
		if passphrase == "" {
			return nil, fmt.Errorf("network %q has an empty passphrase", name)
		}
	}
	if cfg.Default != "" {
		if _, err := cfg.Lookup(cfg.Default); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

// Lookup resolves a network by name, checking the config before the presets
func (c *Config) Lookup(name string) (Network, error) {
	if passphrase, ok := c.Networks[name]; ok {
		return Network{Name: name, Passphrase: passphrase}, nil
	}
	if network := ByName(name); network != NetworkInvalid {
		return network, nil
	}
	return Network{}, fmt.Errorf("unknown network: %s", name)
}

// NewContext returns a Context with the configured default selected
func (c *Config) NewContext(logger *slog.Logger) (*Context, error) {
	ctx := NewContext(WithLogger(logger))
	if c.Default == "" {
		return ctx, nil
	}
	network, err := c.Lookup(c.Default)
	if err != nil {
		return nil, err
	}
	ctx.Use(network)
	return ctx, nil
}
