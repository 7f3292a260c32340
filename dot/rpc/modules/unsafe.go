// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package modules

import "strings"

var unsafeMethods = map[string]struct{}{
	"paras_forceSetCurrentCode":      {},
	"paras_forceSetCurrentHead":      {},
	"paras_forceScheduleCodeUpgrade": {},
	"paras_scheduleCodeUpgrade":      {},
	"paras_forceNoteNewHead":         {},
	"paras_forceQueueAction":         {},
	"paras_scheduleParaInitialize":   {},
	"paras_scheduleParaCleanup":      {},
}

// IsUnsafe returns true if the rpc method mutates state.
// All the dev module methods are unsafe.
func IsUnsafe(method string) bool {
	if strings.HasPrefix(method, "dev_") {
		return true
	}

	_, unsafe := unsafeMethods[method]
	return unsafe
}
