// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"fmt"
	"os"

	ctoml "github.com/ChainSafe/paras/dot/config/toml"
	"github.com/naoina/toml"
)

// ExportTomlConfig exports a toml configuration to a toml configuration file
func ExportTomlConfig(cfg *ctoml.Config, fp string) error {
	raw, err := toml.Marshal(*cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	err = os.WriteFile(fp, raw, 0600)
	if err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// LoadTomlConfig loads a toml configuration file
func LoadTomlConfig(fp string) (*ctoml.Config, error) {
	raw, err := os.ReadFile(fp)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	cfg, err := ParseTomlConfig(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration from %s: %w", fp, err)
	}

	return cfg, nil
}

// ParseTomlConfig decodes a toml configuration
func ParseTomlConfig(raw []byte) (*ctoml.Config, error) {
	cfg := new(ctoml.Config)
	err := toml.Unmarshal(raw, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	return cfg, nil
}
