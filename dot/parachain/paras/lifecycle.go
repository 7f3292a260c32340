// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package paras

import (
	"fmt"

	parachaintypes "github.com/ChainSafe/paras/dot/parachain/types"
	"golang.org/x/exp/slices"
)

// GenesisPara is a para registered at genesis.
type GenesisPara struct {
	ID   parachaintypes.ParaID         `json:"id" toml:"id"`
	Head parachaintypes.HeadData       `json:"head" toml:"head"`
	Code parachaintypes.ValidationCode `json:"code" toml:"code"`
}

// Genesis is the initial paras state.
type Genesis struct {
	Paras []GenesisPara `json:"paras" toml:"paras"`
}

// InitializeGenesis registers the genesis paras with their head and code.
func (p *Paras) InitializeGenesis(genesis Genesis) error {
	cfg := p.configuration.HostConfiguration()

	for _, para := range genesis.Paras {
		err := validateGenesis(para.Head, para.Code, cfg)
		if err != nil {
			return fmt.Errorf("validating genesis para %d: %w", para.ID, err)
		}
	}

	return p.execute(func(tx *transaction) error {
		for _, para := range genesis.Paras {
			registered, err := isRegistered(tx, para.ID)
			if err != nil {
				return err
			} else if registered {
				return fmt.Errorf("%w: %d", ErrParaAlreadyExists, para.ID)
			}

			err = installPara(tx, para.ID, GenesisArgs{Head: para.Head, Code: para.Code})
			if err != nil {
				return fmt.Errorf("installing genesis para %d: %w", para.ID, err)
			}
		}

		logger.Infof("initialised genesis with %d paras", len(genesis.Paras))
		return nil
	})
}

func validateGenesis(head parachaintypes.HeadData, code parachaintypes.ValidationCode,
	cfg Configuration) error {
	err := ValidateHead(head, cfg)
	if err != nil {
		return err
	}
	return ValidateCode(code, cfg)
}

// ScheduleParaInitialize stages the genesis of the para and queues
// its onboarding at the next session.
func (p *Paras) ScheduleParaInitialize(para parachaintypes.ParaID, args GenesisArgs) error {
	cfg := p.configuration.HostConfiguration()

	err := validateGenesis(args.Head, args.Code, cfg)
	if err != nil {
		return err
	}

	session, err := nextSession(p.sessionState.SessionIndex())
	if err != nil {
		return err
	}

	err = p.execute(func(tx *transaction) error {
		registered, err := isRegistered(tx, para)
		if err != nil {
			return err
		}

		staged, err := exists(tx, upcomingParasGenesisItem, para)
		if err != nil {
			return err
		}

		if registered || staged {
			return fmt.Errorf("%w: %d", ErrParaAlreadyExists, para)
		}

		err = store(tx, upcomingParasGenesisItem, args, para)
		if err != nil {
			return err
		}

		return queueAction(tx, para, parachaintypes.Onboard, session)
	})
	if err != nil {
		return err
	}

	p.metrics.ActionQueued()
	return nil
}

// ScheduleParaCleanup queues the offboarding of the para at the next session.
func (p *Paras) ScheduleParaCleanup(para parachaintypes.ParaID) error {
	return p.QueueAction(para, parachaintypes.Offboard)
}

// ApplyActions applies flushed session actions at the given block.
// Onboarding installs the staged genesis of the para and registers it.
// Offboarding retires the current code of the para and removes its state.
func (p *Paras) ApplyActions(actions []QueuedAction, now parachaintypes.BlockNumber) error {
	cfg := p.configuration.HostConfiguration()

	return p.execute(func(tx *transaction) error {
		return applyActions(tx, actions, now, cfg)
	})
}

func applyActions(tx *transaction, actions []QueuedAction,
	now parachaintypes.BlockNumber, cfg Configuration) error {
	for _, queued := range actions {
		var err error
		switch queued.Action {
		case parachaintypes.Onboard:
			err = onboard(tx, queued.Para)
		case parachaintypes.Offboard:
			err = offboard(tx, queued.Para, now, cfg)
		default:
			err = fmt.Errorf("%w: %d", parachaintypes.ErrUnknownParaAction, queued.Action)
		}
		if err != nil {
			return fmt.Errorf("applying %s of para %d: %w", queued.Action, queued.Para, err)
		}
	}
	return nil
}

func onboard(tx *transaction, para parachaintypes.ParaID) error {
	var args GenesisArgs
	found, err := load(tx, upcomingParasGenesisItem, &args, para)
	if err != nil {
		return err
	} else if !found {
		logger.Warnf("no genesis staged for para %d, skipping onboarding", para)
		return nil
	}

	err = remove(tx, upcomingParasGenesisItem, para)
	if err != nil {
		return err
	}

	err = installPara(tx, para, args)
	if err != nil {
		return err
	}

	logger.Infof("onboarded para %d", para)
	tx.deposit(CurrentCodeUpdated{Para: para, CodeHash: args.Code.Hash()})
	return nil
}

func installPara(tx *transaction, para parachaintypes.ParaID, args GenesisArgs) error {
	err := store(tx, headsItem, args.Head, para)
	if err != nil {
		return err
	}

	err = store(tx, currentCodeItem, args.Code, para)
	if err != nil {
		return err
	}

	return register(tx, para)
}

func offboard(tx *transaction, para parachaintypes.ParaID,
	now parachaintypes.BlockNumber, cfg Configuration) error {
	known, err := isKnown(tx, para)
	if err != nil {
		return err
	} else if !known {
		logger.Warnf("para %d has no state, skipping offboarding", para)
		return nil
	}

	var code parachaintypes.ValidationCode
	found, err := load(tx, currentCodeItem, &code, para)
	if err != nil {
		return err
	}

	if found {
		err = enqueuePastCode(tx, para, code, saturatingAdd(now, cfg.CodeRetentionPeriod))
		if err != nil {
			return fmt.Errorf("retiring current code: %w", err)
		}
	}

	for _, item := range []storageItem{currentCodeItem, headsItem, futureCodeUpgradesItem} {
		err = remove(tx, item, para)
		if err != nil {
			return err
		}
	}

	err = deregister(tx, para)
	if err != nil {
		return err
	}

	logger.Infof("offboarded para %d", para)
	return nil
}

// Parachains returns the registered paras in ascending order.
func (p *Paras) Parachains() (paras []parachaintypes.ParaID, err error) {
	return loadParachains(newTransaction(p.db))
}

func loadParachains(tx *transaction) (paras []parachaintypes.ParaID, err error) {
	_, err = load(tx, parachainsItem, &paras)
	return paras, err
}

func isRegistered(tx *transaction, para parachaintypes.ParaID) (bool, error) {
	paras, err := loadParachains(tx)
	if err != nil {
		return false, err
	}

	_, found := slices.BinarySearch(paras, para)
	return found, nil
}

// isKnown returns true if the para is registered or has current code.
func isKnown(tx *transaction, para parachaintypes.ParaID) (bool, error) {
	registered, err := isRegistered(tx, para)
	if err != nil || registered {
		return registered, err
	}
	return exists(tx, currentCodeItem, para)
}

func register(tx *transaction, para parachaintypes.ParaID) error {
	paras, err := loadParachains(tx)
	if err != nil {
		return err
	}

	i, found := slices.BinarySearch(paras, para)
	if found {
		return nil
	}

	paras = slices.Insert(paras, i, para)
	return store(tx, parachainsItem, paras)
}

func deregister(tx *transaction, para parachaintypes.ParaID) error {
	paras, err := loadParachains(tx)
	if err != nil {
		return err
	}

	i, found := slices.BinarySearch(paras, para)
	if !found {
		return nil
	}

	paras = slices.Delete(paras, i, i+1)
	if len(paras) == 0 {
		return remove(tx, parachainsItem)
	}
	return store(tx, parachainsItem, paras)
}
