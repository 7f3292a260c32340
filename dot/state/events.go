// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"sync"

	"github.com/ChainSafe/paras/dot/parachain/paras"
	parachaintypes "github.com/ChainSafe/paras/dot/parachain/types"
	"github.com/gammazero/deque"
)

// DefaultEventsCapacity is the number of events kept when no capacity is configured.
const DefaultEventsCapacity = 1024

const defaultBufferSize = 128

// EventRecord is an event together with the block it was emitted at.
type EventRecord struct {
	Block parachaintypes.BlockNumber
	Event paras.Event
}

// EventState records the most recent paras events.
type EventState struct {
	sync.RWMutex
	blockState paras.BlockNumberProvider
	capacity   int
	records    deque.Deque[EventRecord]
	notifiers  map[chan EventRecord]struct{}
}

// NewEventState creates an event recorder keeping at most capacity records.
func NewEventState(blockState paras.BlockNumberProvider, capacity int) *EventState {
	if capacity <= 0 {
		capacity = DefaultEventsCapacity
	}

	return &EventState{
		blockState: blockState,
		capacity:   capacity,
		notifiers:  make(map[chan EventRecord]struct{}),
	}
}

// DepositEvent records the event at the current block, evicting
// the oldest record when the recorder is full.
func (s *EventState) DepositEvent(event paras.Event) {
	s.Lock()
	defer s.Unlock()

	if s.records.Len() == s.capacity {
		s.records.PopFront()
	}

	record := EventRecord{
		Block: s.blockState.BlockNumber(),
		Event: event,
	}
	s.records.PushBack(record)
	logger.Tracef("recorded event %s at block %d", event, record.Block)

	for ch := range s.notifiers {
		select {
		case ch <- record:
		default:
			logger.Debugf("event notifier channel full, dropping event %s", event)
		}
	}
}

// GetEventNotifierChannel returns a channel receiving the events recorded
// from now on. Events are dropped for a channel whose buffer is full.
func (s *EventState) GetEventNotifierChannel() chan EventRecord {
	s.Lock()
	defer s.Unlock()

	ch := make(chan EventRecord, defaultBufferSize)
	s.notifiers[ch] = struct{}{}
	return ch
}

// FreeEventNotifierChannel stops notifying the channel.
func (s *EventState) FreeEventNotifierChannel(ch chan EventRecord) {
	s.Lock()
	defer s.Unlock()

	delete(s.notifiers, ch)
}

// Records returns the recorded events, oldest first.
func (s *EventState) Records() []EventRecord {
	s.RLock()
	defer s.RUnlock()

	records := make([]EventRecord, s.records.Len())
	for i := range records {
		records[i] = s.records.At(i)
	}
	return records
}

// RecordsForPara returns the recorded events of the para, oldest first.
func (s *EventState) RecordsForPara(para parachaintypes.ParaID) []EventRecord {
	s.RLock()
	defer s.RUnlock()

	var records []EventRecord
	for i := 0; i < s.records.Len(); i++ {
		record := s.records.At(i)
		if record.Event.ParaID() == para {
			records = append(records, record)
		}
	}
	return records
}

// Last returns the most recent record, and false if nothing was recorded.
func (s *EventState) Last() (record EventRecord, ok bool) {
	s.RLock()
	defer s.RUnlock()

	if s.records.Len() == 0 {
		return record, false
	}
	return s.records.Back(), true
}
