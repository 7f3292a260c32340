// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ChainSafe/chaindb"
	"github.com/ChainSafe/paras/dot/parachain/paras"
)

var genesisDataKey = []byte("genesis_data")

// BaseState is a wrapper for the chaindb.Database, without any prefixes
type BaseState struct {
	db chaindb.Database
}

// NewBaseState returns a new BaseState
func NewBaseState(db chaindb.Database) *BaseState {
	return &BaseState{
		db: db,
	}
}

// StoreGenesisData stores the genesis the paras state was initialised with.
func (s *BaseState) StoreGenesisData(genesis paras.Genesis) error {
	enc, err := json.Marshal(genesis)
	if err != nil {
		return fmt.Errorf("cannot encode genesis data: %w", err)
	}

	return s.db.Put(genesisDataKey, enc)
}

// LoadGenesisData retrieves the stored genesis data.
func (s *BaseState) LoadGenesisData() (genesis paras.Genesis, err error) {
	enc, err := s.db.Get(genesisDataKey)
	if err != nil {
		return genesis, err
	}

	err = json.Unmarshal(enc, &genesis)
	if err != nil {
		return genesis, fmt.Errorf("cannot decode genesis data: %w", err)
	}

	return genesis, nil
}

// Initialised returns true if genesis data was stored.
func (s *BaseState) Initialised() (bool, error) {
	_, err := s.db.Get(genesisDataKey)
	if errors.Is(err, chaindb.ErrKeyNotFound) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return true, nil
}
