// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"encoding/json"
	"fmt"

	"github.com/ChainSafe/paras/chain/dev"
	"github.com/ChainSafe/paras/dot/parachain/paras"
	parachaintypes "github.com/ChainSafe/paras/dot/parachain/types"
	"github.com/ChainSafe/paras/internal/log"
	"github.com/go-playground/validator/v10"
)

// Config is a collection of configurations throughout the system
type Config struct {
	Global  GlobalConfig
	Log     LogConfig
	Paras   ParasConfig
	RPC     RPCConfig
	Genesis paras.Genesis
}

// GlobalConfig is used for every node command
type GlobalConfig struct {
	Name           string `validate:"required"`
	BasePath       string `validate:"required"`
	LogLvl         log.Level
	PublishMetrics bool
	MetricsAddress string `validate:"required_if=PublishMetrics true"`
	EventsCapacity int    `validate:"gte=0"`
}

// LogConfig represents the log levels for individual packages
type LogConfig struct {
	StateLvl log.Level
	RPCLvl   log.Level
}

// ParasConfig is the host configuration of the paras state
// and the length of a session in blocks.
type ParasConfig struct {
	MaxCodeSize            uint32
	MaxHeadDataSize        uint32
	CodeRetentionPeriod    parachaintypes.BlockNumber
	ValidationUpgradeDelay parachaintypes.BlockNumber
	SessionLength          parachaintypes.BlockNumber
}

// HostConfiguration returns the paras host configuration.
func (p ParasConfig) HostConfiguration() paras.Configuration {
	return paras.Configuration{
		MaxCodeSize:            p.MaxCodeSize,
		MaxHeadDataSize:        p.MaxHeadDataSize,
		CodeRetentionPeriod:    p.CodeRetentionPeriod,
		ValidationUpgradeDelay: p.ValidationUpgradeDelay,
	}
}

// RPCConfig is to marshal/unmarshal toml RPC config vars
type RPCConfig struct {
	Enabled        bool
	External       bool
	Unsafe         bool
	UnsafeExternal bool
	Port           uint32   `validate:"lte=65535"`
	Host           string   `validate:"required_if=Enabled true"`
	Modules        []string `validate:"dive,oneof=paras dev"`
}

func (r *RPCConfig) isRPCEnabled() bool {
	return r.Enabled || r.External || r.Unsafe || r.UnsafeExternal
}

// String will return the json representation for a Config
func (c *Config) String() string {
	out, _ := json.MarshalIndent(c, "", "\t")
	return string(out)
}

var configValidator = validator.New()

// Validate checks the configuration values are usable.
func (c *Config) Validate() error {
	err := configValidator.Struct(c)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	err = c.Paras.HostConfiguration().Validate()
	if err != nil {
		return err
	}

	return nil
}

// DevConfig returns a new development configuration
func DevConfig() *Config {
	return &Config{
		Global: GlobalConfig{
			Name:           dev.DefaultName,
			BasePath:       dev.DefaultBasePath,
			LogLvl:         dev.DefaultLvl,
			MetricsAddress: dev.DefaultMetricsAddress,
			EventsCapacity: dev.DefaultEventsCapacity,
		},
		Log: LogConfig{
			StateLvl: dev.DefaultLvl,
			RPCLvl:   dev.DefaultLvl,
		},
		Paras: ParasConfig{
			MaxCodeSize:            dev.DefaultMaxCodeSize,
			MaxHeadDataSize:        dev.DefaultMaxHeadDataSize,
			CodeRetentionPeriod:    dev.DefaultCodeRetentionPeriod,
			ValidationUpgradeDelay: dev.DefaultValidationUpgradeDelay,
			SessionLength:          dev.DefaultSessionLength,
		},
		RPC: RPCConfig{
			Enabled: dev.DefaultRPCEnabled,
			Unsafe:  dev.DefaultRPCUnsafe,
			Port:    dev.DefaultRPCHTTPPort,
			Host:    dev.DefaultRPCHTTPHost,
			Modules: dev.DefaultRPCModules,
		},
	}
}
