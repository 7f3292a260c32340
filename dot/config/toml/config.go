// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package toml

import (
	"github.com/ChainSafe/paras/dot/parachain/paras"
)

// Config is a collection of configurations throughout the system
type Config struct {
	Global  GlobalConfig  `toml:"global,omitempty"`
	Log     LogConfig     `toml:"log,omitempty"`
	Paras   ParasConfig   `toml:"paras,omitempty"`
	RPC     RPCConfig     `toml:"rpc,omitempty"`
	Genesis paras.Genesis `toml:"genesis,omitempty"`
}

// GlobalConfig is to marshal/unmarshal toml global config vars
type GlobalConfig struct {
	Name           string `toml:"name,omitempty"`
	BasePath       string `toml:"basepath,omitempty"`
	LogLvl         string `toml:"log,omitempty"`
	PublishMetrics bool   `toml:"publish-metrics,omitempty"`
	MetricsAddress string `toml:"metrics-address,omitempty"`
	EventsCapacity int    `toml:"events-capacity,omitempty"`
}

// LogConfig represents the log levels for individual packages
type LogConfig struct {
	StateLvl string `toml:"state,omitempty"`
	RPCLvl   string `toml:"rpc,omitempty"`
}

// ParasConfig is to marshal/unmarshal toml host configuration vars
type ParasConfig struct {
	MaxCodeSize            uint32 `toml:"max-code-size,omitempty"`
	MaxHeadDataSize        uint32 `toml:"max-head-data-size,omitempty"`
	CodeRetentionPeriod    uint32 `toml:"code-retention-period,omitempty"`
	ValidationUpgradeDelay uint32 `toml:"validation-upgrade-delay,omitempty"`
	SessionLength          uint32 `toml:"session-length,omitempty"`
}

// RPCConfig is to marshal/unmarshal toml RPC config vars
type RPCConfig struct {
	Enabled        bool     `toml:"enabled,omitempty"`
	Unsafe         bool     `toml:"unsafe,omitempty"`
	UnsafeExternal bool     `toml:"unsafe-external,omitempty"`
	External       bool     `toml:"external,omitempty"`
	Port           uint32   `toml:"port,omitempty"`
	Host           string   `toml:"host,omitempty"`
	Modules        []string `toml:"modules,omitempty"`
}
