// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dev

import (
	_ "embed"
)

// DefaultConfig is the toml configuration of the development chain.
//
//go:embed config.toml
var DefaultConfig []byte
