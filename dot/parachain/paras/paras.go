// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package paras

import (
	"fmt"
	"math"

	"github.com/ChainSafe/chaindb"
	parachaintypes "github.com/ChainSafe/paras/dot/parachain/types"
	"github.com/ChainSafe/paras/internal/log"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "paras"))

// Config is the configuration of the paras state machine.
type Config struct {
	Configuration ConfigurationProvider
	BlockState    BlockNumberProvider
	SessionState  SessionIndexProvider
	EventSink     EventSink
	Metrics       Metrics
}

// Paras owns the validation code and head data of every para, together with
// the scheduled upgrades, the past code pruning queue and the session actions queue.
// Its methods are not safe for concurrent use: callers serialise them.
type Paras struct {
	db            chaindb.Database
	configuration ConfigurationProvider
	blockState    BlockNumberProvider
	sessionState  SessionIndexProvider
	events        EventSink
	metrics       Metrics
}

// New creates the paras state machine on top of the given database.
func New(db chaindb.Database, cfg Config) *Paras {
	p := &Paras{
		db:            db,
		configuration: cfg.Configuration,
		blockState:    cfg.BlockState,
		sessionState:  cfg.SessionState,
		events:        cfg.EventSink,
		metrics:       cfg.Metrics,
	}

	if p.configuration == nil {
		p.configuration = StaticConfiguration(DefaultConfiguration())
	}

	if p.metrics == nil {
		p.metrics = NoopMetrics{}
	}

	return p
}

// execute runs the operation in a new transaction and commits it.
// Events are deposited only once the changes are committed.
func (p *Paras) execute(operation func(tx *transaction) error) error {
	tx := newTransaction(p.db)

	err := operation(tx)
	if err != nil {
		return err
	}

	err = tx.commit()
	if err != nil {
		return fmt.Errorf("committing: %w", err)
	}

	if p.events == nil {
		return nil
	}

	for _, event := range tx.events {
		p.events.DepositEvent(event)
	}
	return nil
}

// ForceSetCurrentCode overwrites the current code of the para.
// The replaced code, if any, is discarded and not retained as past code.
func (p *Paras) ForceSetCurrentCode(para parachaintypes.ParaID, code parachaintypes.ValidationCode) error {
	cfg := p.configuration.HostConfiguration()

	err := ValidateCode(code, cfg)
	if err != nil {
		return err
	}

	return p.execute(func(tx *transaction) error {
		err := store(tx, currentCodeItem, code, para)
		if err != nil {
			return err
		}

		logger.Debugf("force set current code of para %d to %s", para, code.Hash())
		tx.deposit(CurrentCodeUpdated{Para: para, CodeHash: code.Hash()})
		return nil
	})
}

// ForceSetCurrentHead overwrites the current head of the para.
func (p *Paras) ForceSetCurrentHead(para parachaintypes.ParaID, head parachaintypes.HeadData) error {
	cfg := p.configuration.HostConfiguration()

	err := ValidateHead(head, cfg)
	if err != nil {
		return err
	}

	return p.execute(func(tx *transaction) error {
		err := store(tx, headsItem, head, para)
		if err != nil {
			return err
		}

		tx.deposit(CurrentHeadUpdated{Para: para})
		return nil
	})
}

// ForceNoteNewHead sets the head of the para and applies its scheduled
// code upgrade if it is due at the current block.
func (p *Paras) ForceNoteNewHead(para parachaintypes.ParaID, head parachaintypes.HeadData) error {
	cfg := p.configuration.HostConfiguration()

	err := ValidateHead(head, cfg)
	if err != nil {
		return err
	}

	now := p.blockState.BlockNumber()
	var applied bool
	err = p.execute(func(tx *transaction) (err error) {
		err = store(tx, headsItem, head, para)
		if err != nil {
			return err
		}

		applied, err = applyIfDue(tx, para, now, cfg)
		if err != nil {
			return fmt.Errorf("applying code upgrade: %w", err)
		}

		tx.deposit(NewHeadNoted{Para: para})
		return nil
	})
	if err != nil {
		return err
	}

	if applied {
		p.metrics.UpgradeApplied()
	}
	return nil
}

// CurrentCode returns the current code of the para, and false if it has none.
func (p *Paras) CurrentCode(para parachaintypes.ParaID) (
	code parachaintypes.ValidationCode, found bool, err error) {
	found, err = load(newTransaction(p.db), currentCodeItem, &code, para)
	return code, found, err
}

// CurrentHead returns the current head of the para, and false if it has none.
func (p *Paras) CurrentHead(para parachaintypes.ParaID) (
	head parachaintypes.HeadData, found bool, err error) {
	found, err = load(newTransaction(p.db), headsItem, &head, para)
	return head, found, err
}

func saturatingAdd(block, delta parachaintypes.BlockNumber) parachaintypes.BlockNumber {
	if block > math.MaxUint32-delta {
		return math.MaxUint32
	}
	return block + delta
}
