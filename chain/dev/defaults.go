// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dev

import (
	"github.com/ChainSafe/paras/internal/log"
)

var (
	// DefaultName is the default node name
	DefaultName = "paras-dev"
	// DefaultBasePath is the default data directory path
	DefaultBasePath = "~/.paras/dev"
	// DefaultLvl is the default log level
	DefaultLvl = log.Info
	// DefaultMetricsAddress is the default listening address of the metrics server
	DefaultMetricsAddress = "localhost:9876"
	// DefaultEventsCapacity is the default number of events kept in memory
	DefaultEventsCapacity = 1024
)

const (
	// DefaultMaxCodeSize is the default maximum validation code size
	DefaultMaxCodeSize = 3 * 1024 * 1024
	// DefaultMaxHeadDataSize is the default maximum head data size
	DefaultMaxHeadDataSize = 1024 * 1024
	// DefaultCodeRetentionPeriod is the default number of blocks past code is kept for
	DefaultCodeRetentionPeriod = 100
	// DefaultValidationUpgradeDelay is the default delay in blocks of a scheduled upgrade
	DefaultValidationUpgradeDelay = 10
	// DefaultSessionLength is the default number of blocks per session
	DefaultSessionLength = 10
)

var (
	// DefaultRPCHTTPHost rpc host
	DefaultRPCHTTPHost = "localhost"
	// DefaultRPCHTTPPort rpc port
	DefaultRPCHTTPPort = uint32(8545)
	// DefaultRPCModules the default RPC modules
	DefaultRPCModules = []string{"paras", "dev"}
	// DefaultRPCEnabled enables the RPC server
	DefaultRPCEnabled = true
	// DefaultRPCUnsafe enables the unsafe RPC methods on localhost
	DefaultRPCUnsafe = true
)
