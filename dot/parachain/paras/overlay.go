// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package paras

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/chaindb"
	"github.com/tidwall/btree"
)

// change is a pending write of the overlay.
type change struct {
	value   []byte
	deleted bool
}

// transaction is the storage overlay of a single operation.
// Reads see the pending changes, and nothing reaches the database
// until commit is called. Dropping a transaction discards it.
type transaction struct {
	db      chaindb.Database
	changes *btree.Map[string, change]
	events  []Event
}

func newTransaction(db chaindb.Database) *transaction {
	return &transaction{
		db:      db,
		changes: btree.NewMap[string, change](0),
	}
}

// get returns the value at the key, and false if it does not exist.
func (t *transaction) get(key []byte) (value []byte, found bool, err error) {
	pending, ok := t.changes.Get(string(key))
	if ok {
		if pending.deleted {
			return nil, false, nil
		}
		return pending.value, true, nil
	}

	value, err = t.db.Get(key)
	if err != nil {
		if errors.Is(err, chaindb.ErrKeyNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("getting 0x%x from database: %w", key, err)
	}

	return value, true, nil
}

func (t *transaction) put(key, value []byte) {
	t.changes.Set(string(key), change{value: value})
}

func (t *transaction) del(key []byte) {
	t.changes.Set(string(key), change{deleted: true})
}

// deposit queues an event to be emitted once the transaction commits.
func (t *transaction) deposit(event Event) {
	t.events = append(t.events, event)
}

// commit writes all the pending changes in a single database batch,
// in ascending key order.
func (t *transaction) commit() (err error) {
	if t.changes.Len() == 0 {
		return nil
	}

	batch := t.db.NewBatch()
	t.changes.Scan(func(key string, pending change) bool {
		if pending.deleted {
			err = batch.Del([]byte(key))
			if err != nil {
				err = fmt.Errorf("deleting 0x%x in database batch: %w", key, err)
			}
		} else {
			err = batch.Put([]byte(key), pending.value)
			if err != nil {
				err = fmt.Errorf("putting 0x%x in database batch: %w", key, err)
			}
		}
		return err == nil
	})
	if err != nil {
		batch.Reset()
		return err
	}

	err = batch.Flush()
	if err != nil {
		return fmt.Errorf("flushing database batch: %w", err)
	}

	return nil
}
