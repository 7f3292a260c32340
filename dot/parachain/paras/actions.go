// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package paras

import (
	"fmt"
	"math"

	parachaintypes "github.com/ChainSafe/paras/dot/parachain/types"
)

// ForceQueueAction queues the action for the para at the next session.
func (p *Paras) ForceQueueAction(para parachaintypes.ParaID, action parachaintypes.ParaAction) error {
	return p.QueueAction(para, action)
}

// QueueAction appends the action for the para to the actions queue of the
// session following the current one. Offboarding a para with no state
// fails with ErrNoSuchPara.
func (p *Paras) QueueAction(para parachaintypes.ParaID, action parachaintypes.ParaAction) error {
	switch action {
	case parachaintypes.Onboard, parachaintypes.Offboard:
	default:
		return fmt.Errorf("%w: %d", parachaintypes.ErrUnknownParaAction, action)
	}

	session, err := nextSession(p.sessionState.SessionIndex())
	if err != nil {
		return err
	}

	err = p.execute(func(tx *transaction) error {
		if action == parachaintypes.Offboard {
			known, err := isKnown(tx, para)
			if err != nil {
				return err
			} else if !known {
				return fmt.Errorf("%w: %d", ErrNoSuchPara, para)
			}
		}

		return queueAction(tx, para, action, session)
	})
	if err != nil {
		return err
	}

	p.metrics.ActionQueued()
	return nil
}

func nextSession(current parachaintypes.SessionIndex) (parachaintypes.SessionIndex, error) {
	if current == math.MaxUint32 {
		return 0, fmt.Errorf("%w: no session after %d", ErrSessionIndexOverflow, current)
	}
	return current + 1, nil
}

func queueAction(tx *transaction, para parachaintypes.ParaID,
	action parachaintypes.ParaAction, session parachaintypes.SessionIndex) error {
	var queue []QueuedAction
	_, err := load(tx, actionsQueueItem, &queue, session)
	if err != nil {
		return err
	}

	queue = append(queue, QueuedAction{Para: para, Action: action})
	err = store(tx, actionsQueueItem, queue, session)
	if err != nil {
		return err
	}

	logger.Debugf("queued %s of para %d for session %d", action, para, session)
	tx.deposit(ActionQueued{Para: para, Session: session})
	return nil
}

// Flush removes and returns the actions queued for the session, in the order
// they were queued. It returns an empty slice if nothing was queued.
func (p *Paras) Flush(session parachaintypes.SessionIndex) (actions []QueuedAction, err error) {
	err = p.execute(func(tx *transaction) (err error) {
		actions, err = flush(tx, session)
		return err
	})
	if err != nil {
		return nil, err
	}

	p.metrics.ActionsFlushed(len(actions))
	return actions, nil
}

func flush(tx *transaction, session parachaintypes.SessionIndex) (actions []QueuedAction, err error) {
	_, err = load(tx, actionsQueueItem, &actions, session)
	if err != nil {
		return nil, err
	}

	if len(actions) == 0 {
		return []QueuedAction{}, nil
	}

	err = remove(tx, actionsQueueItem, session)
	if err != nil {
		return nil, err
	}
	return actions, nil
}

// ApplySessionActions flushes the actions queued for the session and applies
// them at the given block, in a single transaction. On error the queue of
// the session is left untouched.
func (p *Paras) ApplySessionActions(session parachaintypes.SessionIndex, now parachaintypes.BlockNumber) (
	actions []QueuedAction, err error) {
	cfg := p.configuration.HostConfiguration()

	err = p.execute(func(tx *transaction) (err error) {
		actions, err = flush(tx, session)
		if err != nil {
			return err
		}
		return applyActions(tx, actions, now, cfg)
	})
	if err != nil {
		return nil, err
	}

	p.metrics.ActionsFlushed(len(actions))
	return actions, nil
}

// ActionsQueue returns the actions queued for the session.
func (p *Paras) ActionsQueue(session parachaintypes.SessionIndex) (actions []QueuedAction, err error) {
	_, err = load(newTransaction(p.db), actionsQueueItem, &actions, session)
	return actions, err
}
