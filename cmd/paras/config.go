// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ChainSafe/paras/chain/dev"
	"github.com/ChainSafe/paras/dot"
	ctoml "github.com/ChainSafe/paras/dot/config/toml"
	parachaintypes "github.com/ChainSafe/paras/dot/parachain/types"
	"github.com/ChainSafe/paras/internal/log"
	"github.com/ChainSafe/paras/lib/utils"
	"github.com/urfave/cli"
)

// flagsKVStore is the view of the command line flags used to build the
// node configuration. It is satisfied by globalFlags.
type flagsKVStore interface {
	String(key string) string
	Bool(key string) bool
	Uint(key string) uint
	IsSet(key string) bool
}

// globalFlags reads the global flags of a cli context, which
// FixFlagOrder fills with the global flags given after a subcommand.
type globalFlags struct {
	ctx *cli.Context
}

func (g globalFlags) String(key string) string { return g.ctx.GlobalString(key) }
func (g globalFlags) Bool(key string) bool     { return g.ctx.GlobalBool(key) }
func (g globalFlags) Uint(key string) uint     { return g.ctx.GlobalUint(key) }
func (g globalFlags) IsSet(key string) bool    { return g.ctx.GlobalIsSet(key) }

// loadConfigFile loads the toml configuration file at the given path,
// or the development configuration if the path is empty.
func loadConfigFile(fp string) (*ctoml.Config, error) {
	if fp == "" {
		logger.Debug("no configuration file given, using the development configuration")
		return dot.ParseTomlConfig(dev.DefaultConfig)
	}

	logger.Infof("loading toml configuration from %s...", fp)
	return dot.LoadTomlConfig(fp)
}

// createDotConfig creates a new dot configuration from the provided flag values
func createDotConfig(ctx *cli.Context) (*dot.Config, error) {
	return newDotConfig(globalFlags{ctx: ctx})
}

func newDotConfig(flags flagsKVStore) (cfg *dot.Config, err error) {
	tomlCfg, err := loadConfigFile(flags.String(ConfigFlag.Name))
	if err != nil {
		return nil, fmt.Errorf("failed to load toml configuration: %w", err)
	}

	cfg = dot.DevConfig()

	err = setLogConfig(flags, tomlCfg, &cfg.Global, &cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to set log configuration: %w", err)
	}

	log.PatchLevel(cfg.Global.LogLvl)

	setDotGlobalConfig(flags, tomlCfg.Global, &cfg.Global)
	setDotParasConfig(tomlCfg.Paras, &cfg.Paras)
	setDotRPCConfig(flags, tomlCfg.RPC, &cfg.RPC)
	cfg.Genesis = tomlCfg.Genesis

	logger.Debugf("dot configuration: %s", cfg)
	return cfg, nil
}

func getLogLevel(flags flagsKVStore, flagName, tomlValue string, defaultLevel log.Level) (
	level log.Level, err error) {
	if flagValue := flags.String(flagName); flagValue != "" {
		return parseLogLevelString(flagValue)
	}

	if tomlValue == "" {
		return defaultLevel, nil
	}

	return parseLogLevelString(tomlValue)
}

var ErrLogLevelIntegerOutOfRange = errors.New("log level integer can only be between 0 and 5 included")

func parseLogLevelString(logLevelString string) (logLevel log.Level, err error) {
	levelInt, err := strconv.Atoi(logLevelString)
	if err == nil { // level given as an integer
		if levelInt < 0 || levelInt > 5 {
			return 0, fmt.Errorf("%w: log level given: %d", ErrLogLevelIntegerOutOfRange, levelInt)
		}
		logLevel = log.Level(levelInt)
		return logLevel, nil
	}

	logLevel, err = log.ParseLevel(logLevelString)
	if err != nil {
		return 0, fmt.Errorf("cannot parse log level string: %w", err)
	}

	return logLevel, nil
}

func setLogConfig(flags flagsKVStore, tomlConfig *ctoml.Config,
	globalCfg *dot.GlobalConfig, logCfg *dot.LogConfig) (err error) {
	if tomlConfig == nil {
		tomlConfig = new(ctoml.Config)
	}

	globalCfg.LogLvl, err = getLogLevel(flags, LogFlag.Name, tomlConfig.Global.LogLvl, log.Info)
	if err != nil {
		return fmt.Errorf("cannot get global log level: %w", err)
	}

	levelsData := []struct {
		name      string
		flagName  string
		tomlValue string
		levelPtr  *log.Level
	}{
		{
			name:      "state",
			flagName:  LogStateFlag.Name,
			tomlValue: tomlConfig.Log.StateLvl,
			levelPtr:  &logCfg.StateLvl,
		},
		{
			name:      "rpc",
			flagName:  LogRPCFlag.Name,
			tomlValue: tomlConfig.Log.RPCLvl,
			levelPtr:  &logCfg.RPCLvl,
		},
	}

	for _, levelData := range levelsData {
		level, err := getLogLevel(flags, levelData.flagName, levelData.tomlValue, globalCfg.LogLvl)
		if err != nil {
			return fmt.Errorf("cannot get %s log level: %w", levelData.name, err)
		}
		*levelData.levelPtr = level
	}

	return nil
}

// setDotGlobalConfig sets dot.GlobalConfig using flag values from the cli context
func setDotGlobalConfig(flags flagsKVStore, tomlCfg ctoml.GlobalConfig, cfg *dot.GlobalConfig) {
	if tomlCfg.Name != "" {
		cfg.Name = tomlCfg.Name
	}
	if tomlCfg.BasePath != "" {
		cfg.BasePath = tomlCfg.BasePath
	}
	if tomlCfg.MetricsAddress != "" {
		cfg.MetricsAddress = tomlCfg.MetricsAddress
	}
	if tomlCfg.EventsCapacity > 0 {
		cfg.EventsCapacity = tomlCfg.EventsCapacity
	}
	cfg.PublishMetrics = tomlCfg.PublishMetrics

	if name := flags.String(NameFlag.Name); name != "" {
		cfg.Name = name
	}
	if basepath := flags.String(BasePathFlag.Name); basepath != "" {
		cfg.BasePath = basepath
	}
	if flags.Bool(PublishMetricsFlag.Name) {
		cfg.PublishMetrics = true
	}
	if address := flags.String(MetricsAddressFlag.Name); address != "" {
		cfg.MetricsAddress = address
	}

	cfg.BasePath = utils.ExpandDir(cfg.BasePath)

	logger.Debugf(
		"global configuration: name=%s basepath=%s log=%s publish-metrics=%t metrics-address=%s",
		cfg.Name, cfg.BasePath, cfg.LogLvl, cfg.PublishMetrics, cfg.MetricsAddress,
	)
}

// setDotParasConfig sets dot.ParasConfig using the values of the toml configuration
func setDotParasConfig(tomlCfg ctoml.ParasConfig, cfg *dot.ParasConfig) {
	if tomlCfg.MaxCodeSize != 0 {
		cfg.MaxCodeSize = tomlCfg.MaxCodeSize
	}
	if tomlCfg.MaxHeadDataSize != 0 {
		cfg.MaxHeadDataSize = tomlCfg.MaxHeadDataSize
	}
	cfg.CodeRetentionPeriod = parachaintypes.BlockNumber(tomlCfg.CodeRetentionPeriod)
	cfg.ValidationUpgradeDelay = parachaintypes.BlockNumber(tomlCfg.ValidationUpgradeDelay)
	cfg.SessionLength = parachaintypes.BlockNumber(tomlCfg.SessionLength)

	logger.Debugf(
		"paras configuration: max-code-size=%d max-head-data-size=%d "+
			"code-retention-period=%d validation-upgrade-delay=%d session-length=%d",
		cfg.MaxCodeSize, cfg.MaxHeadDataSize, cfg.CodeRetentionPeriod,
		cfg.ValidationUpgradeDelay, cfg.SessionLength,
	)
}

// setDotRPCConfig sets dot.RPCConfig using flag values from the cli context
func setDotRPCConfig(flags flagsKVStore, tomlCfg ctoml.RPCConfig, cfg *dot.RPCConfig) {
	cfg.Enabled = tomlCfg.Enabled
	cfg.External = tomlCfg.External
	cfg.Unsafe = tomlCfg.Unsafe
	cfg.UnsafeExternal = tomlCfg.UnsafeExternal
	cfg.Modules = tomlCfg.Modules
	if tomlCfg.Port != 0 {
		cfg.Port = tomlCfg.Port
	}
	if tomlCfg.Host != "" {
		cfg.Host = tomlCfg.Host
	}

	// check --rpc flag and update node configuration
	if enabled := flags.Bool(RPCEnabledFlag.Name); enabled {
		cfg.Enabled = true
	} else if flags.IsSet(RPCEnabledFlag.Name) {
		cfg.Enabled = false
	}

	// check --rpc-external flag and update node configuration
	if externalEnabled := flags.Bool(RPCExternalFlag.Name); externalEnabled {
		cfg.External = true
	}

	// check --rpc-unsafe flag value
	if rpcUnsafe := flags.Bool(RPCUnsafeFlag.Name); rpcUnsafe {
		cfg.Unsafe = true
	}

	// check --rpc-unsafe-external flag value
	if externalUnsafe := flags.Bool(RPCUnsafeExternalFlag.Name); externalUnsafe {
		cfg.UnsafeExternal = true
	}

	// check --rpcport flag and update node configuration
	if port := flags.Uint(RPCPortFlag.Name); port != 0 {
		cfg.Port = uint32(port)
	}

	// check --rpchost flag and update node configuration
	if host := flags.String(RPCHostFlag.Name); host != "" {
		cfg.Host = host
	}

	// check --rpcmods flag and update node configuration
	if modules := flags.String(RPCModulesFlag.Name); modules != "" {
		cfg.Modules = strings.Split(strings.TrimSpace(modules), ",")
	}

	logger.Debugf(
		"rpc configuration: enabled=%t external=%t unsafe=%t unsafe-external=%t "+
			"port=%d host=%s modules=%s",
		cfg.Enabled, cfg.External, cfg.Unsafe, cfg.UnsafeExternal,
		cfg.Port, cfg.Host, strings.Join(cfg.Modules, ","),
	)
}
