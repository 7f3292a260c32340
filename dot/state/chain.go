// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/ChainSafe/chaindb"
	parachaintypes "github.com/ChainSafe/paras/dot/parachain/types"
)

var (
	blockNumberKey  = []byte("block_number")
	sessionIndexKey = []byte("session_index")
)

// ChainState holds the relay chain block number and session index
// the paras state machine runs at.
type ChainState struct {
	sync.RWMutex
	db           chaindb.Database
	blockNumber  parachaintypes.BlockNumber
	sessionIndex parachaintypes.SessionIndex
}

// NewChainState loads the chain state from the database. A fresh database
// starts at block 0 and session 0.
func NewChainState(db chaindb.Database) (*ChainState, error) {
	blockNumber, err := loadUint32(db, blockNumberKey)
	if err != nil {
		return nil, fmt.Errorf("loading block number: %w", err)
	}

	sessionIndex, err := loadUint32(db, sessionIndexKey)
	if err != nil {
		return nil, fmt.Errorf("loading session index: %w", err)
	}

	return &ChainState{
		db:           db,
		blockNumber:  parachaintypes.BlockNumber(blockNumber),
		sessionIndex: parachaintypes.SessionIndex(sessionIndex),
	}, nil
}

// BlockNumber returns the current block number.
func (s *ChainState) BlockNumber() parachaintypes.BlockNumber {
	s.RLock()
	defer s.RUnlock()
	return s.blockNumber
}

// SessionIndex returns the current session index.
func (s *ChainState) SessionIndex() parachaintypes.SessionIndex {
	s.RLock()
	defer s.RUnlock()
	return s.sessionIndex
}

// SetBlockNumber stores the current block number.
func (s *ChainState) SetBlockNumber(blockNumber parachaintypes.BlockNumber) error {
	s.Lock()
	defer s.Unlock()

	err := storeUint32(s.db, blockNumberKey, uint32(blockNumber))
	if err != nil {
		return fmt.Errorf("storing block number: %w", err)
	}

	s.blockNumber = blockNumber
	return nil
}

// SetSessionIndex stores the current session index.
func (s *ChainState) SetSessionIndex(sessionIndex parachaintypes.SessionIndex) error {
	s.Lock()
	defer s.Unlock()

	err := storeUint32(s.db, sessionIndexKey, uint32(sessionIndex))
	if err != nil {
		return fmt.Errorf("storing session index: %w", err)
	}

	s.sessionIndex = sessionIndex
	return nil
}

func storeUint32(db chaindb.Database, key []byte, value uint32) error {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, value)
	return db.Put(key, buf)
}

func loadUint32(db chaindb.Database, key []byte) (uint32, error) {
	data, err := db.Get(key)
	if errors.Is(err, chaindb.ErrKeyNotFound) {
		return 0, nil
	} else if err != nil {
		return 0, err
	}

	if len(data) != 4 {
		return 0, fmt.Errorf("%w: %d bytes", ErrInvalidUint32Length, len(data))
	}

	return binary.LittleEndian.Uint32(data), nil
}

// ErrInvalidUint32Length is returned when a stored number is not 4 bytes long.
var ErrInvalidUint32Length = errors.New("invalid uint32 length")
