// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ChainSafe/paras/dot"
	ctoml "github.com/ChainSafe/paras/dot/config/toml"
	"github.com/urfave/cli"
)

// exportAction is the action for the "export" subcommand that will export
// the node configuration built from the flags to a toml configuration file
func exportAction(ctx *cli.Context) error {
	cfg, err := createDotConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to create node configuration: %w", err)
	}

	fp, err := filepath.Abs(ctx.String(OutputFlag.Name))
	if err != nil {
		return fmt.Errorf("failed to create absolute filepath: %w", err)
	}

	err = cfg.Validate()
	if err != nil {
		return err
	}

	err = dot.ExportTomlConfig(dotConfigToToml(cfg), fp)
	if err != nil {
		return fmt.Errorf("failed to export configuration: %w", err)
	}

	logger.Infof("exported toml configuration to %s", fp)
	return nil
}

func dotConfigToToml(dcfg *dot.Config) *ctoml.Config {
	cfg := &ctoml.Config{}

	cfg.Global = ctoml.GlobalConfig{
		Name:           dcfg.Global.Name,
		BasePath:       dcfg.Global.BasePath,
		LogLvl:         strings.ToLower(dcfg.Global.LogLvl.String()),
		PublishMetrics: dcfg.Global.PublishMetrics,
		MetricsAddress: dcfg.Global.MetricsAddress,
		EventsCapacity: dcfg.Global.EventsCapacity,
	}

	cfg.Log = ctoml.LogConfig{
		StateLvl: strings.ToLower(dcfg.Log.StateLvl.String()),
		RPCLvl:   strings.ToLower(dcfg.Log.RPCLvl.String()),
	}

	cfg.Paras = ctoml.ParasConfig{
		MaxCodeSize:            dcfg.Paras.MaxCodeSize,
		MaxHeadDataSize:        dcfg.Paras.MaxHeadDataSize,
		CodeRetentionPeriod:    uint32(dcfg.Paras.CodeRetentionPeriod),
		ValidationUpgradeDelay: uint32(dcfg.Paras.ValidationUpgradeDelay),
		SessionLength:          uint32(dcfg.Paras.SessionLength),
	}

	cfg.RPC = ctoml.RPCConfig{
		Enabled:        dcfg.RPC.Enabled,
		External:       dcfg.RPC.External,
		Unsafe:         dcfg.RPC.Unsafe,
		UnsafeExternal: dcfg.RPC.UnsafeExternal,
		Port:           dcfg.RPC.Port,
		Host:           dcfg.RPC.Host,
		Modules:        dcfg.RPC.Modules,
	}

	cfg.Genesis = dcfg.Genesis

	return cfg
}
