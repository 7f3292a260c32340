// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package modules

import (
	"github.com/ChainSafe/paras/dot/parachain/paras"
	parachaintypes "github.com/ChainSafe/paras/dot/parachain/types"
	"github.com/ChainSafe/paras/dot/state"
)

// ParasAPI is the read access to the paras state.
type ParasAPI interface {
	CurrentCode(para parachaintypes.ParaID) (parachaintypes.ValidationCode, bool, error)
	CurrentHead(para parachaintypes.ParaID) (parachaintypes.HeadData, bool, error)
	FutureCodeUpgrade(para parachaintypes.ParaID) (paras.ScheduledUpgrade, bool, error)
	PastCodePruning() ([]paras.PruningEntry, error)
	PastCode(para parachaintypes.ParaID, eligible parachaintypes.BlockNumber) (
		[]parachaintypes.ValidationCode, error)
	ActionsQueue(session parachaintypes.SessionIndex) ([]paras.QueuedAction, error)
	Parachains() ([]parachaintypes.ParaID, error)
}

// ChainAPI is the read access to the chain clock.
type ChainAPI interface {
	BlockNumber() parachaintypes.BlockNumber
	SessionIndex() parachaintypes.SessionIndex
}

// EventAPI is the access to the recorded paras events.
type EventAPI interface {
	Records() []state.EventRecord
	RecordsForPara(para parachaintypes.ParaID) []state.EventRecord
	GetEventNotifierChannel() chan state.EventRecord
	FreeEventNotifierChannel(ch chan state.EventRecord)
}

// ParasControlAPI is the privileged access to the paras state.
type ParasControlAPI interface {
	ForceSetCurrentCode(para parachaintypes.ParaID, code parachaintypes.ValidationCode) error
	ForceSetCurrentHead(para parachaintypes.ParaID, head parachaintypes.HeadData) error
	ForceScheduleCodeUpgrade(para parachaintypes.ParaID, code parachaintypes.ValidationCode,
		activationBlock parachaintypes.BlockNumber) error
	ScheduleCodeUpgradeWithDelay(para parachaintypes.ParaID, code parachaintypes.ValidationCode) (
		parachaintypes.BlockNumber, error)
	ForceNoteNewHead(para parachaintypes.ParaID, head parachaintypes.HeadData) error
	ForceQueueAction(para parachaintypes.ParaID, action parachaintypes.ParaAction) error
	ScheduleParaInitialize(para parachaintypes.ParaID, args paras.GenesisArgs) error
	ScheduleParaCleanup(para parachaintypes.ParaID) error
}

// ClockControlAPI advances the chain clock.
type ClockControlAPI interface {
	AdvanceBlocks(count uint32) (parachaintypes.BlockNumber, error)
	NewSession() (parachaintypes.SessionIndex, error)
}
