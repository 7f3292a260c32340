// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package subscription

import (
	"github.com/ChainSafe/paras/dot/state"
)

// EventAPI is the interface to get and free paras event notifier channels
type EventAPI interface {
	GetEventNotifierChannel() chan state.EventRecord
	FreeEventNotifierChannel(ch chan state.EventRecord)
}
