// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package paras

import "errors"

var (
	// ErrBlobTooLarge is returned when validation code or head data exceeds
	// its configured size bound. The operation is rejected with no state change.
	ErrBlobTooLarge = errors.New("blob too large")
	// ErrNoSuchPara is returned when an operation requires existing state
	// for a para which is not known.
	ErrNoSuchPara = errors.New("no such para")
	// ErrNotDue is returned internally when a scheduled upgrade activation block
	// has not been reached yet. ApplyIfDue treats it as a benign no-op.
	ErrNotDue = errors.New("code upgrade not due")
	// ErrCodeDecompressionBomb is returned when compressed validation code
	// decompresses beyond the bomb limit.
	ErrCodeDecompressionBomb = errors.New("validation code decompression bomb")
	// ErrParaAlreadyExists is returned when staging the onboarding of a para
	// which is already registered or already staged.
	ErrParaAlreadyExists = errors.New("para already exists")
	// ErrInvalidConfiguration is returned when a host configuration fails validation.
	ErrInvalidConfiguration = errors.New("invalid host configuration")
	// ErrSessionIndexOverflow is returned when an action cannot be queued
	// because the current session is the last representable one.
	ErrSessionIndexOverflow = errors.New("session index overflow")
)
