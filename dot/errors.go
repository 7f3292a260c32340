// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"errors"
)

var (
	// ErrNodeInitialised is returned when initialising a node which was already initialised.
	ErrNodeInitialised = errors.New("node already initialised")
	// ErrNodeNotInitialised is returned when creating a node which was not initialised.
	ErrNodeNotInitialised = errors.New("node not initialised")
)
