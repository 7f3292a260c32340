// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"github.com/urfave/cli"
)

// Node flags
var (
	// ConfigFlag TOML configuration file
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file, defaults to the development configuration",
	}
	// BasePathFlag data directory for the node
	BasePathFlag = cli.StringFlag{
		Name:  "basepath",
		Usage: "Data directory for the node",
	}
	// NameFlag node implementation name
	NameFlag = cli.StringFlag{
		Name:  "name",
		Usage: "Node name",
	}
	// LogFlag cli service settings
	LogFlag = cli.StringFlag{
		Name:  "log",
		Usage: "Global log level. Supports levels crit (silent) to trce (trace) or 0 to 5",
	}
	// LogStateFlag sets the state service log level
	LogStateFlag = cli.StringFlag{
		Name:  "log-state",
		Usage: "State log level. Supports levels crit (silent) to trce (trace) or 0 to 5",
	}
	// LogRPCFlag sets the rpc service log level
	LogRPCFlag = cli.StringFlag{
		Name:  "log-rpc",
		Usage: "RPC log level. Supports levels crit (silent) to trce (trace) or 0 to 5",
	}
)

// RPC service configuration flags
var (
	// RPCEnabledFlag enables the HTTP-RPC server
	RPCEnabledFlag = cli.BoolFlag{
		Name:  "rpc",
		Usage: "Enable the HTTP-RPC server",
	}
	// RPCExternalFlag enables the external HTTP-RPC server
	RPCExternalFlag = cli.BoolFlag{
		Name:  "rpc-external",
		Usage: "Enable external HTTP-RPC connections",
	}
	// RPCUnsafeFlag enables the unsafe methods for local HTTP-RPC connections
	RPCUnsafeFlag = cli.BoolFlag{
		Name:  "rpc-unsafe",
		Usage: "Enable the unsafe RPC methods",
	}
	// RPCUnsafeExternalFlag enables the unsafe methods for external HTTP-RPC connections
	RPCUnsafeExternalFlag = cli.BoolFlag{
		Name:  "rpc-unsafe-external",
		Usage: "Enable external HTTP-RPC connections to the unsafe RPC methods",
	}
	// RPCHostFlag HTTP-RPC server listening hostname
	RPCHostFlag = cli.StringFlag{
		Name:  "rpchost",
		Usage: "HTTP-RPC server listening hostname",
	}
	// RPCPortFlag HTTP-RPC server listening port
	RPCPortFlag = cli.UintFlag{
		Name:  "rpcport",
		Usage: "HTTP-RPC server listening port",
	}
	// RPCModulesFlag API modules to enable via HTTP-RPC, comma separated list
	RPCModulesFlag = cli.StringFlag{
		Name:  "rpcmods",
		Usage: "API modules to enable via HTTP-RPC, comma separated list",
	}
)

// Metrics flags
var (
	// PublishMetricsFlag publishes the node metrics
	PublishMetricsFlag = cli.BoolFlag{
		Name:  "publish-metrics",
		Usage: "Publish node metrics",
	}
	// MetricsAddressFlag sets the listening address of the metrics server
	MetricsAddressFlag = cli.StringFlag{
		Name:  "metrics-address",
		Usage: "Listening address of the metrics server",
	}
)

// Paras operation flags
var (
	// ParaFlag the para id an operation applies to
	ParaFlag = cli.UintFlag{
		Name:  "para",
		Usage: "Para id",
	}
	// CodeFlag hex encoded validation code
	CodeFlag = cli.StringFlag{
		Name:  "code",
		Usage: "Hex encoded validation code",
	}
	// CodeFileFlag file holding the raw validation code
	CodeFileFlag = cli.StringFlag{
		Name:  "code-file",
		Usage: "File holding the raw validation code, used instead of --code",
	}
	// HeadFlag hex encoded head data
	HeadFlag = cli.StringFlag{
		Name:  "head",
		Usage: "Hex encoded head data",
	}
	// BlockFlag activation block of a code upgrade
	BlockFlag = cli.UintFlag{
		Name:  "block",
		Usage: "Activation block of the code upgrade, 0 applies the configured upgrade delay",
	}
	// ActionFlag session action to queue
	ActionFlag = cli.StringFlag{
		Name:  "action",
		Usage: "Session action to queue, one of onboard or offboard",
	}
	// CountFlag number of blocks to advance
	CountFlag = cli.UintFlag{
		Name:  "count",
		Usage: "Number of blocks to advance",
		Value: 1,
	}
	// ForceFlag forces a database reset on init
	ForceFlag = cli.BoolFlag{
		Name:  "force",
		Usage: "Delete the existing node database before initialising",
	}
	// OutputFlag file the configuration is exported to
	OutputFlag = cli.StringFlag{
		Name:  "output",
		Usage: "File the configuration is exported to",
		Value: "config.toml",
	}
)

// flag sets for the root paras node and its commands
var (
	// GlobalFlags are flags that are valid for use with the root command and all subcommands
	GlobalFlags = []cli.Flag{
		ConfigFlag,
		BasePathFlag,
		NameFlag,
		LogFlag,
		LogStateFlag,
		LogRPCFlag,
	}

	// NodeFlags are flags used to start the node services
	NodeFlags = []cli.Flag{
		RPCEnabledFlag,
		RPCExternalFlag,
		RPCUnsafeFlag,
		RPCUnsafeExternalFlag,
		RPCHostFlag,
		RPCPortFlag,
		RPCModulesFlag,
		PublishMetricsFlag,
		MetricsAddressFlag,
	}

	// RootFlags are the flags that are valid for use with the root command
	RootFlags = append(GlobalFlags, NodeFlags...)

	// InitFlags are flags that are valid for use with the init subcommand
	InitFlags = append([]cli.Flag{ForceFlag}, GlobalFlags...)

	// SetCodeFlags are flags that are valid for use with the set-code subcommand
	SetCodeFlags = append([]cli.Flag{ParaFlag, CodeFlag, CodeFileFlag}, GlobalFlags...)

	// SetHeadFlags are flags that are valid for use with the set-head and note-head subcommands
	SetHeadFlags = append([]cli.Flag{ParaFlag, HeadFlag}, GlobalFlags...)

	// ScheduleUpgradeFlags are flags that are valid for use with the schedule-upgrade subcommand
	ScheduleUpgradeFlags = append([]cli.Flag{ParaFlag, CodeFlag, CodeFileFlag, BlockFlag}, GlobalFlags...)

	// QueueActionFlags are flags that are valid for use with the queue-action subcommand
	QueueActionFlags = append([]cli.Flag{ParaFlag, ActionFlag}, GlobalFlags...)

	// AdvanceFlags are flags that are valid for use with the advance subcommand
	AdvanceFlags = append([]cli.Flag{CountFlag}, GlobalFlags...)

	// ShowFlags are flags that are valid for use with the show subcommand
	ShowFlags = append([]cli.Flag{ParaFlag}, GlobalFlags...)

	// ExportFlags are flags that are valid for use with the export subcommand
	ExportFlags = append([]cli.Flag{OutputFlag}, RootFlags...)
)

// FixFlagOrder allow us to use various flag order formats (ie, `paras init
// --config config.toml` and `paras --config config.toml init`). FixFlagOrder
// only fixes global flags, all local flags must come after the subcommand (ie,
// `paras --force --config config.toml init` will not recognise `--force` but
// `paras init --force --config config.toml` will work as expected).
func FixFlagOrder(f func(ctx *cli.Context) error) func(*cli.Context) error {
	return func(ctx *cli.Context) error {
		const trace = "trace"

		// loop through all flags (global and local)
		for _, flagName := range ctx.FlagNames() {

			// check if flag is set as global or local flag
			if ctx.GlobalIsSet(flagName) {
				if ctx.String(LogFlag.Name) == trace {
					logger.Trace("[cmd] global flag set with name: " + flagName)
				}
			} else if ctx.IsSet(flagName) {
				// copy local flag to the global flag set if it is defined there
				err := ctx.GlobalSet(flagName, ctx.String(flagName))
				if ctx.String(LogFlag.Name) != trace {
					continue
				}
				if err == nil {
					logger.Trace("[cmd] global flag fixed with name: " + flagName)
				} else {
					logger.Trace("[cmd] local flag set with name: " + flagName)
				}
			}
		}

		return f(ctx)
	}
}
