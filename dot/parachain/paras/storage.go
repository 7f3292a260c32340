// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package paras

import (
	"fmt"

	parachaintypes "github.com/ChainSafe/paras/dot/parachain/types"
	"github.com/ChainSafe/paras/lib/common"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
)

const palletPrefix = "Paras"

// storageItem is the name of a storage value or map of the paras state.
type storageItem string

const (
	currentCodeItem          storageItem = "CurrentCode"
	headsItem                storageItem = "Heads"
	futureCodeUpgradesItem   storageItem = "FutureCodeUpgrades"
	pastCodeItem             storageItem = "PastCode"
	pastCodePruningItem      storageItem = "PastCodePruning"
	actionsQueueItem         storageItem = "ActionsQueue"
	parachainsItem           storageItem = "Parachains"
	upcomingParasGenesisItem storageItem = "UpcomingParasGenesis"
)

// key returns the storage key of the item, made of the twox128 hashes of the
// pallet and item names, followed by the twox64concat hash of each SCALE
// encoded map key given.
func (s storageItem) key(mapKeys ...interface{}) (key []byte, err error) {
	palletHash, err := common.Twox128Hash([]byte(palletPrefix))
	if err != nil {
		return nil, fmt.Errorf("hashing pallet prefix: %w", err)
	}

	itemHash, err := common.Twox128Hash([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("hashing storage item %s: %w", s, err)
	}

	key = append(palletHash, itemHash...)
	for _, mapKey := range mapKeys {
		encoded, err := codec.Encode(mapKey)
		if err != nil {
			return nil, fmt.Errorf("encoding %s map key: %w", s, err)
		}

		hashed, err := common.Twox64Concat(encoded)
		if err != nil {
			return nil, fmt.Errorf("hashing %s map key: %w", s, err)
		}
		key = append(key, hashed...)
	}

	return key, nil
}

// ScheduledUpgrade is a pending code upgrade of a para.
type ScheduledUpgrade struct {
	Code            parachaintypes.ValidationCode
	ActivationBlock parachaintypes.BlockNumber
}

// PruningEntry is an entry of the past code pruning queue.
type PruningEntry struct {
	Para          parachaintypes.ParaID
	EligibleBlock parachaintypes.BlockNumber
}

// QueuedAction is an action queued for a para at a session boundary.
type QueuedAction struct {
	Para   parachaintypes.ParaID
	Action parachaintypes.ParaAction
}

// GenesisArgs is the data a para is onboarded with.
type GenesisArgs struct {
	Head parachaintypes.HeadData
	Code parachaintypes.ValidationCode
}

// load decodes the value stored for the item into target, and
// returns false if no value is stored.
func load(tx *transaction, item storageItem, target interface{}, mapKeys ...interface{}) (
	found bool, err error) {
	key, err := item.key(mapKeys...)
	if err != nil {
		return false, err
	}

	encoded, found, err := tx.get(key)
	if err != nil {
		return false, fmt.Errorf("loading %s: %w", item, err)
	} else if !found {
		return false, nil
	}

	err = codec.Decode(encoded, target)
	if err != nil {
		return false, fmt.Errorf("decoding %s: %w", item, err)
	}

	return true, nil
}

// exists returns true if a value is stored for the item.
func exists(tx *transaction, item storageItem, mapKeys ...interface{}) (bool, error) {
	key, err := item.key(mapKeys...)
	if err != nil {
		return false, err
	}

	_, found, err := tx.get(key)
	if err != nil {
		return false, fmt.Errorf("checking %s: %w", item, err)
	}
	return found, nil
}

func store(tx *transaction, item storageItem, value interface{}, mapKeys ...interface{}) error {
	key, err := item.key(mapKeys...)
	if err != nil {
		return err
	}

	encoded, err := codec.Encode(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", item, err)
	}

	tx.put(key, encoded)
	return nil
}

func remove(tx *transaction, item storageItem, mapKeys ...interface{}) error {
	key, err := item.key(mapKeys...)
	if err != nil {
		return err
	}

	tx.del(key)
	return nil
}
