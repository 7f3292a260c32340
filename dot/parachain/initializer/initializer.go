// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package initializer

import (
	"fmt"
	"math"
	"sync"

	"github.com/ChainSafe/paras/dot/parachain/paras"
	parachaintypes "github.com/ChainSafe/paras/dot/parachain/types"
	"github.com/ChainSafe/paras/internal/log"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "parachain-initializer"))

// ChainState is the chain clock driven by the initializer.
type ChainState interface {
	BlockNumber() parachaintypes.BlockNumber
	SessionIndex() parachaintypes.SessionIndex
	SetBlockNumber(blockNumber parachaintypes.BlockNumber) error
	SetSessionIndex(sessionIndex parachaintypes.SessionIndex) error
}

// Config is the initializer configuration.
type Config struct {
	Paras         *paras.Paras
	Chain         ChainState
	Configuration paras.ConfigurationProvider
	// SessionLength is the number of blocks per session.
	// Sessions only change on NewSession calls if it is zero.
	SessionLength parachaintypes.BlockNumber
}

// Initializer drives the paras state machine with the block and session hooks,
// and serialises all the operations on it.
type Initializer struct {
	mutex         sync.Mutex
	paras         *paras.Paras
	chain         ChainState
	configuration paras.ConfigurationProvider
	sessionLength parachaintypes.BlockNumber
}

// New creates a new initializer.
func New(cfg Config) *Initializer {
	return &Initializer{
		paras:         cfg.Paras,
		chain:         cfg.Chain,
		configuration: cfg.Configuration,
		sessionLength: cfg.SessionLength,
	}
}

// OnInitialize runs the block hook, pruning the past code due at the block.
func (i *Initializer) OnInitialize(block parachaintypes.BlockNumber) error {
	i.mutex.Lock()
	defer i.mutex.Unlock()
	return i.onInitialize(block)
}

func (i *Initializer) onInitialize(block parachaintypes.BlockNumber) error {
	pruned, err := i.paras.Sweep(block)
	if err != nil {
		return fmt.Errorf("sweeping past code: %w", err)
	}

	if pruned > 0 {
		logger.Debugf("block %d: pruned %d past code entries", block, pruned)
	}
	return nil
}

// OnNewSession runs the session hook, applying the actions queued for the session.
func (i *Initializer) OnNewSession(session parachaintypes.SessionIndex) error {
	i.mutex.Lock()
	defer i.mutex.Unlock()
	return i.onNewSession(session)
}

func (i *Initializer) onNewSession(session parachaintypes.SessionIndex) error {
	actions, err := i.paras.ApplySessionActions(session, i.chain.BlockNumber())
	if err != nil {
		return fmt.Errorf("applying actions of session %d: %w", session, err)
	}

	logger.Infof("session %d started, applied %d actions", session, len(actions))
	return nil
}

// AdvanceBlocks moves the chain forward by the given number of blocks,
// running the block hook at each block and starting a new session at
// every session boundary. It returns the block number reached.
func (i *Initializer) AdvanceBlocks(count uint32) (parachaintypes.BlockNumber, error) {
	i.mutex.Lock()
	defer i.mutex.Unlock()

	for n := uint32(0); n < count; n++ {
		block := i.chain.BlockNumber()
		if block == math.MaxUint32 {
			return block, fmt.Errorf("%w: block %d", ErrBlockNumberOverflow, block)
		}
		block++

		err := i.chain.SetBlockNumber(block)
		if err != nil {
			return block - 1, fmt.Errorf("setting block number: %w", err)
		}

		err = i.onInitialize(block)
		if err != nil {
			return block, err
		}

		if i.sessionLength > 0 && block%i.sessionLength == 0 {
			_, err = i.newSession()
			if err != nil {
				return block, err
			}
		}
	}

	return i.chain.BlockNumber(), nil
}

// NewSession starts the next session and returns its index.
func (i *Initializer) NewSession() (parachaintypes.SessionIndex, error) {
	i.mutex.Lock()
	defer i.mutex.Unlock()
	return i.newSession()
}

func (i *Initializer) newSession() (parachaintypes.SessionIndex, error) {
	session := i.chain.SessionIndex()
	if session == math.MaxUint32 {
		return session, fmt.Errorf("%w: session %d", ErrSessionIndexOverflow, session)
	}
	session++

	// the session only starts once its actions are applied
	err := i.onNewSession(session)
	if err != nil {
		return session - 1, err
	}

	err = i.chain.SetSessionIndex(session)
	if err != nil {
		return session - 1, fmt.Errorf("setting session index: %w", err)
	}

	return session, nil
}

// InitializeGenesis registers the genesis paras.
func (i *Initializer) InitializeGenesis(genesis paras.Genesis) error {
	i.mutex.Lock()
	defer i.mutex.Unlock()
	return i.paras.InitializeGenesis(genesis)
}

// ForceSetCurrentCode overwrites the current code of the para.
func (i *Initializer) ForceSetCurrentCode(para parachaintypes.ParaID, code parachaintypes.ValidationCode) error {
	i.mutex.Lock()
	defer i.mutex.Unlock()
	return i.paras.ForceSetCurrentCode(para, code)
}

// ForceSetCurrentHead overwrites the current head of the para.
func (i *Initializer) ForceSetCurrentHead(para parachaintypes.ParaID, head parachaintypes.HeadData) error {
	i.mutex.Lock()
	defer i.mutex.Unlock()
	return i.paras.ForceSetCurrentHead(para, head)
}

// ForceScheduleCodeUpgrade schedules a code upgrade of the para at the activation block.
func (i *Initializer) ForceScheduleCodeUpgrade(para parachaintypes.ParaID,
	code parachaintypes.ValidationCode, activationBlock parachaintypes.BlockNumber) error {
	i.mutex.Lock()
	defer i.mutex.Unlock()
	return i.paras.ForceScheduleCodeUpgrade(para, code, activationBlock)
}

// ScheduleCodeUpgradeWithDelay schedules a code upgrade of the para after the
// configured validation upgrade delay, and returns the activation block.
func (i *Initializer) ScheduleCodeUpgradeWithDelay(para parachaintypes.ParaID,
	code parachaintypes.ValidationCode) (parachaintypes.BlockNumber, error) {
	i.mutex.Lock()
	defer i.mutex.Unlock()

	cfg := i.configuration.HostConfiguration()
	now := i.chain.BlockNumber()
	if now > math.MaxUint32-cfg.ValidationUpgradeDelay {
		return 0, fmt.Errorf("%w: block %d with delay %d",
			ErrBlockNumberOverflow, now, cfg.ValidationUpgradeDelay)
	}
	activationBlock := now + cfg.ValidationUpgradeDelay

	err := i.paras.ScheduleCodeUpgrade(para, code, activationBlock, cfg)
	if err != nil {
		return 0, err
	}
	return activationBlock, nil
}

// ForceNoteNewHead notes a new head of the para at the current block.
func (i *Initializer) ForceNoteNewHead(para parachaintypes.ParaID, head parachaintypes.HeadData) error {
	i.mutex.Lock()
	defer i.mutex.Unlock()
	return i.paras.ForceNoteNewHead(para, head)
}

// ForceQueueAction queues the action for the para at the next session.
func (i *Initializer) ForceQueueAction(para parachaintypes.ParaID, action parachaintypes.ParaAction) error {
	i.mutex.Lock()
	defer i.mutex.Unlock()
	return i.paras.ForceQueueAction(para, action)
}

// ScheduleParaInitialize stages the onboarding of the para at the next session.
func (i *Initializer) ScheduleParaInitialize(para parachaintypes.ParaID, args paras.GenesisArgs) error {
	i.mutex.Lock()
	defer i.mutex.Unlock()
	return i.paras.ScheduleParaInitialize(para, args)
}

// ScheduleParaCleanup stages the offboarding of the para at the next session.
func (i *Initializer) ScheduleParaCleanup(para parachaintypes.ParaID) error {
	i.mutex.Lock()
	defer i.mutex.Unlock()
	return i.paras.ScheduleParaCleanup(para)
}

// BlockNumber returns the current block number.
func (i *Initializer) BlockNumber() parachaintypes.BlockNumber {
	return i.chain.BlockNumber()
}

// SessionIndex returns the current session index.
func (i *Initializer) SessionIndex() parachaintypes.SessionIndex {
	return i.chain.SessionIndex()
}

// Paras returns the paras state machine, for read access.
func (i *Initializer) Paras() *paras.Paras {
	return i.paras
}
