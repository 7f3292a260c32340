// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package subscription

import (
	"errors"
	"sync"
	"time"

	parachaintypes "github.com/ChainSafe/paras/dot/parachain/types"
	"github.com/ChainSafe/paras/dot/rpc/modules"
	"github.com/ChainSafe/paras/dot/state"
)

var errCannotCancel = errors.New("cannot cancel listening goroutine")

// Listener interface for functions that define Listener related functions
type Listener interface {
	Listen()
	Stop() error
}

// EventListener forwards the paras events, optionally of a single para,
// to a websocket connection.
type EventListener struct {
	Channel       chan state.EventRecord
	wsconn        *WSConn
	para          *parachaintypes.ParaID
	subID         uint32
	cancel        chan struct{}
	cancelOnce    sync.Once
	done          chan struct{}
	cancelTimeout time.Duration
}

// Listen implementation of Listen interface to listen for event notifications
func (l *EventListener) Listen() {
	go func() {
		defer func() {
			l.wsconn.EventAPI.FreeEventNotifierChannel(l.Channel)
			close(l.done)
		}()

		for {
			select {
			case <-l.cancel:
				return
			case record, ok := <-l.Channel:
				if !ok {
					return
				}

				if l.para != nil && record.Event.ParaID() != *l.para {
					continue
				}

				l.wsconn.safeSend(newSubscriptionResponse(parasEventMethod, l.subID,
					modules.NewEventResponse(record)))
			}
		}
	}()
}

// Stop to cancel the running goroutines to this listener
func (l *EventListener) Stop() error {
	l.cancelOnce.Do(func() { close(l.cancel) })
	return cancelWithTimeout(l.done, l.cancelTimeout)
}

func cancelWithTimeout(done <-chan struct{}, timeout time.Duration) error {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-done:
		return nil
	case <-timer.C:
		return errCannotCancel
	}
}
