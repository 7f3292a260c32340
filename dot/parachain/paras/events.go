// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package paras

import (
	"fmt"

	parachaintypes "github.com/ChainSafe/paras/dot/parachain/types"
)

// Event is a notification emitted by a paras operation.
type Event interface {
	Index() uint
	ParaID() parachaintypes.ParaID
	String() string
}

var (
	_ Event = CurrentCodeUpdated{}
	_ Event = CurrentHeadUpdated{}
	_ Event = CodeUpgradeScheduled{}
	_ Event = NewHeadNoted{}
	_ Event = ActionQueued{}
)

// CurrentCodeUpdated is emitted when the current code of a para changes.
type CurrentCodeUpdated struct {
	Para     parachaintypes.ParaID
	CodeHash parachaintypes.ValidationCodeHash
}

// Index returns the event index.
func (CurrentCodeUpdated) Index() uint { return 0 }

// ParaID returns the para the event is about.
func (e CurrentCodeUpdated) ParaID() parachaintypes.ParaID { return e.Para }

func (e CurrentCodeUpdated) String() string {
	return fmt.Sprintf("CurrentCodeUpdated(para=%d, code=%s)", e.Para, e.CodeHash)
}

// CurrentHeadUpdated is emitted when the head of a para is force set.
type CurrentHeadUpdated struct {
	Para parachaintypes.ParaID
}

// Index returns the event index.
func (CurrentHeadUpdated) Index() uint { return 1 }

// ParaID returns the para the event is about.
func (e CurrentHeadUpdated) ParaID() parachaintypes.ParaID { return e.Para }

func (e CurrentHeadUpdated) String() string {
	return fmt.Sprintf("CurrentHeadUpdated(para=%d)", e.Para)
}

// CodeUpgradeScheduled is emitted when a code upgrade is scheduled for a para.
type CodeUpgradeScheduled struct {
	Para            parachaintypes.ParaID
	ActivationBlock parachaintypes.BlockNumber
}

// Index returns the event index.
func (CodeUpgradeScheduled) Index() uint { return 2 }

// ParaID returns the para the event is about.
func (e CodeUpgradeScheduled) ParaID() parachaintypes.ParaID { return e.Para }

func (e CodeUpgradeScheduled) String() string {
	return fmt.Sprintf("CodeUpgradeScheduled(para=%d, at=%d)", e.Para, e.ActivationBlock)
}

// NewHeadNoted is emitted when a new head is noted for a para.
type NewHeadNoted struct {
	Para parachaintypes.ParaID
}

// Index returns the event index.
func (NewHeadNoted) Index() uint { return 3 }

// ParaID returns the para the event is about.
func (e NewHeadNoted) ParaID() parachaintypes.ParaID { return e.Para }

func (e NewHeadNoted) String() string {
	return fmt.Sprintf("NewHeadNoted(para=%d)", e.Para)
}

// ActionQueued is emitted when an action is queued for a para
// to be applied at the start of the given session.
type ActionQueued struct {
	Para    parachaintypes.ParaID
	Session parachaintypes.SessionIndex
}

// Index returns the event index.
func (ActionQueued) Index() uint { return 4 }

// ParaID returns the para the event is about.
func (e ActionQueued) ParaID() parachaintypes.ParaID { return e.Para }

func (e ActionQueued) String() string {
	return fmt.Sprintf("ActionQueued(para=%d, session=%d)", e.Para, e.Session)
}
