// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package paras

import (
	"errors"
	"fmt"

	parachaintypes "github.com/ChainSafe/paras/dot/parachain/types"
)

// ForceScheduleCodeUpgrade schedules a code upgrade for the para using
// the current host configuration.
func (p *Paras) ForceScheduleCodeUpgrade(para parachaintypes.ParaID,
	code parachaintypes.ValidationCode, activationBlock parachaintypes.BlockNumber) error {
	return p.ScheduleCodeUpgrade(para, code, activationBlock, p.configuration.HostConfiguration())
}

// ScheduleCodeUpgrade schedules the code to become the current code of the para
// at the activation block. An upgrade already scheduled for the para is discarded.
// The activation block is recorded as given and may be in the past, in which case
// the upgrade is applied at the next opportunity.
func (p *Paras) ScheduleCodeUpgrade(para parachaintypes.ParaID, code parachaintypes.ValidationCode,
	activationBlock parachaintypes.BlockNumber, cfg Configuration) error {
	err := ValidateCode(code, cfg)
	if err != nil {
		return err
	}

	var superseded bool
	err = p.execute(func(tx *transaction) (err error) {
		superseded, err = exists(tx, futureCodeUpgradesItem, para)
		if err != nil {
			return err
		}

		if superseded {
			logger.Debugf("superseding scheduled code upgrade of para %d", para)
		}

		upgrade := ScheduledUpgrade{
			Code:            code,
			ActivationBlock: activationBlock,
		}
		err = store(tx, futureCodeUpgradesItem, upgrade, para)
		if err != nil {
			return err
		}

		tx.deposit(CodeUpgradeScheduled{Para: para, ActivationBlock: activationBlock})
		return nil
	})
	if err != nil {
		return err
	}

	p.metrics.UpgradeScheduled(superseded)
	return nil
}

// ApplyIfDue applies the scheduled code upgrade of the para if its activation
// block is at or before the given block. It returns true if an upgrade was applied.
func (p *Paras) ApplyIfDue(para parachaintypes.ParaID, now parachaintypes.BlockNumber) (
	applied bool, err error) {
	cfg := p.configuration.HostConfiguration()

	err = p.execute(func(tx *transaction) (err error) {
		applied, err = applyIfDue(tx, para, now, cfg)
		return err
	})
	if err != nil {
		return false, err
	}

	if applied {
		p.metrics.UpgradeApplied()
	}
	return applied, nil
}

// FutureCodeUpgrade returns the scheduled code upgrade of the para,
// and false if there is none.
func (p *Paras) FutureCodeUpgrade(para parachaintypes.ParaID) (
	upgrade ScheduledUpgrade, found bool, err error) {
	found, err = load(newTransaction(p.db), futureCodeUpgradesItem, &upgrade, para)
	return upgrade, found, err
}

func checkDue(upgrade ScheduledUpgrade, now parachaintypes.BlockNumber) error {
	if upgrade.ActivationBlock > now {
		return fmt.Errorf("%w: activation block %d is after block %d",
			ErrNotDue, upgrade.ActivationBlock, now)
	}
	return nil
}

func applyIfDue(tx *transaction, para parachaintypes.ParaID,
	now parachaintypes.BlockNumber, cfg Configuration) (applied bool, err error) {
	var upgrade ScheduledUpgrade
	found, err := load(tx, futureCodeUpgradesItem, &upgrade, para)
	if err != nil {
		return false, err
	} else if !found {
		return false, nil
	}

	err = checkDue(upgrade, now)
	if errors.Is(err, ErrNotDue) {
		return false, nil
	}

	var pastCode parachaintypes.ValidationCode
	found, err = load(tx, currentCodeItem, &pastCode, para)
	if err != nil {
		return false, err
	}

	if found {
		eligible := saturatingAdd(now, cfg.CodeRetentionPeriod)
		err = enqueuePastCode(tx, para, pastCode, eligible)
		if err != nil {
			return false, fmt.Errorf("retiring past code: %w", err)
		}
	}

	err = store(tx, currentCodeItem, upgrade.Code, para)
	if err != nil {
		return false, err
	}

	err = remove(tx, futureCodeUpgradesItem, para)
	if err != nil {
		return false, err
	}

	codeHash := upgrade.Code.Hash()
	if upgrade.ActivationBlock < now {
		logger.Debugf("applying expired code upgrade %s of para %d scheduled for block %d at block %d",
			codeHash, para, upgrade.ActivationBlock, now)
	} else {
		logger.Debugf("applying code upgrade %s of para %d at block %d", codeHash, para, now)
	}

	tx.deposit(CurrentCodeUpdated{Para: para, CodeHash: codeHash})
	return true, nil
}
