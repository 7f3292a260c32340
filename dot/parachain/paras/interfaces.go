// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package paras

import (
	parachaintypes "github.com/ChainSafe/paras/dot/parachain/types"
)

// ConfigurationProvider provides the host configuration snapshot.
type ConfigurationProvider interface {
	HostConfiguration() Configuration
}

// BlockNumberProvider provides the current relay chain block number.
type BlockNumberProvider interface {
	BlockNumber() parachaintypes.BlockNumber
}

// SessionIndexProvider provides the current session index.
type SessionIndexProvider interface {
	SessionIndex() parachaintypes.SessionIndex
}

// EventSink receives the notifications of committed operations.
type EventSink interface {
	DepositEvent(event Event)
}

// Metrics records the paras state machine activity.
type Metrics interface {
	UpgradeScheduled(superseded bool)
	UpgradeApplied()
	PastCodePruned(count int)
	ActionQueued()
	ActionsFlushed(count int)
}

// NoopMetrics discards all metrics.
type NoopMetrics struct{}

// UpgradeScheduled does nothing.
func (NoopMetrics) UpgradeScheduled(bool) {}

// UpgradeApplied does nothing.
func (NoopMetrics) UpgradeApplied() {}

// PastCodePruned does nothing.
func (NoopMetrics) PastCodePruned(int) {}

// ActionQueued does nothing.
func (NoopMetrics) ActionQueued() {}

// ActionsFlushed does nothing.
func (NoopMetrics) ActionsFlushed(int) {}
