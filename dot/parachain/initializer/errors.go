// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package initializer

import "errors"

var (
	// ErrBlockNumberOverflow is returned when the chain cannot advance
	// past the last representable block number.
	ErrBlockNumberOverflow = errors.New("block number overflow")
	// ErrSessionIndexOverflow is returned when no session can start
	// after the last representable session index.
	ErrSessionIndexOverflow = errors.New("session index overflow")
)
