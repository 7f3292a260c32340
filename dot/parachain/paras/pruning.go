// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package paras

import (
	parachaintypes "github.com/ChainSafe/paras/dot/parachain/types"
	"golang.org/x/exp/slices"
)

// enqueuePastCode retains the code replaced for the para until the eligible block.
// Codes replaced in the same block share one pruning entry and are kept
// in the order they were replaced.
func enqueuePastCode(tx *transaction, para parachaintypes.ParaID,
	code parachaintypes.ValidationCode, eligible parachaintypes.BlockNumber) error {
	codes, err := loadPastCode(tx, para, eligible)
	if err != nil {
		return err
	}

	codes = append(codes, code)
	err = store(tx, pastCodeItem, codes, para, eligible)
	if err != nil {
		return err
	}

	entries, err := loadPruningList(tx)
	if err != nil {
		return err
	}

	entry := PruningEntry{Para: para, EligibleBlock: eligible}
	if slices.Contains(entries, entry) {
		return nil
	}

	entries = append(entries, entry)
	return store(tx, pastCodePruningItem, entries)
}

func loadPastCode(tx *transaction, para parachaintypes.ParaID,
	eligible parachaintypes.BlockNumber) (codes []parachaintypes.ValidationCode, err error) {
	_, err = load(tx, pastCodeItem, &codes, para, eligible)
	return codes, err
}

func loadPruningList(tx *transaction) (entries []PruningEntry, err error) {
	_, err = load(tx, pastCodePruningItem, &entries)
	return entries, err
}

// Sweep removes all the past code eligible for pruning at the given block,
// for all paras, and returns the number of codes removed.
// Entries are compared one by one to the block, so their insertion
// order has no effect on what is removed.
func (p *Paras) Sweep(now parachaintypes.BlockNumber) (removed int, err error) {
	err = p.execute(func(tx *transaction) (err error) {
		removed, err = sweep(tx, now)
		return err
	})
	if err != nil {
		return 0, err
	}

	if removed > 0 {
		logger.Debugf("pruned %d past code entries at block %d", removed, now)
		p.metrics.PastCodePruned(removed)
	}
	return removed, nil
}

func sweep(tx *transaction, now parachaintypes.BlockNumber) (removed int, err error) {
	entries, err := loadPruningList(tx)
	if err != nil {
		return 0, err
	}

	retained := make([]PruningEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.EligibleBlock > now {
			retained = append(retained, entry)
			continue
		}

		codes, err := loadPastCode(tx, entry.Para, entry.EligibleBlock)
		if err != nil {
			return 0, err
		}

		err = remove(tx, pastCodeItem, entry.Para, entry.EligibleBlock)
		if err != nil {
			return 0, err
		}
		removed += len(codes)
	}

	switch {
	case len(retained) == len(entries):
		return 0, nil
	case len(retained) == 0:
		err = remove(tx, pastCodePruningItem)
	default:
		err = store(tx, pastCodePruningItem, retained)
	}
	if err != nil {
		return 0, err
	}

	return removed, nil
}

// PastCodePruning returns the past code pruning queue.
func (p *Paras) PastCodePruning() (entries []PruningEntry, err error) {
	return loadPruningList(newTransaction(p.db))
}

// PastCode returns the past codes of the para eligible for pruning at
// the given block, oldest replaced first. It returns an empty slice if
// there is none.
func (p *Paras) PastCode(para parachaintypes.ParaID, eligible parachaintypes.BlockNumber) (
	codes []parachaintypes.ValidationCode, err error) {
	codes, err = loadPastCode(newTransaction(p.db), para, eligible)
	if err != nil {
		return nil, err
	}

	if codes == nil {
		codes = []parachaintypes.ValidationCode{}
	}
	return codes, nil
}
