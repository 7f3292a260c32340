// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package paras

import (
	"fmt"

	parachaintypes "github.com/ChainSafe/paras/dot/parachain/types"
	"github.com/go-playground/validator/v10"
)

// Configuration is the host configuration snapshot used by a single operation.
type Configuration struct {
	// MaxCodeSize is the maximum validation code size in bytes.
	MaxCodeSize uint32 `validate:"required,lte=3145728"`
	// MaxHeadDataSize is the maximum head data size in bytes.
	MaxHeadDataSize uint32 `validate:"required,lte=1048576"`
	// CodeRetentionPeriod is the number of blocks replaced validation code
	// is kept for before it can be pruned.
	CodeRetentionPeriod parachaintypes.BlockNumber
	// ValidationUpgradeDelay is the minimum number of blocks between scheduling
	// and activating a code upgrade. It is only used by callers computing
	// an activation block.
	ValidationUpgradeDelay parachaintypes.BlockNumber
}

// DefaultConfiguration returns the default host configuration.
func DefaultConfiguration() Configuration {
	return Configuration{
		MaxCodeSize:            parachaintypes.MaxCodeSize,
		MaxHeadDataSize:        parachaintypes.MaxHeadDataSize,
		CodeRetentionPeriod:    100,
		ValidationUpgradeDelay: 10,
	}
}

var configurationValidator = validator.New()

// Validate checks the configuration does not exceed the hard size bounds.
func (c Configuration) Validate() error {
	err := configurationValidator.Struct(c)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfiguration, err)
	}
	return nil
}

// StaticConfiguration is a configuration provider always
// returning the same configuration.
type StaticConfiguration Configuration

// HostConfiguration returns the static configuration.
func (s StaticConfiguration) HostConfiguration() Configuration {
	return Configuration(s)
}
