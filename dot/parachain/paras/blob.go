// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package paras

import (
	"bytes"
	"fmt"
	"io"

	parachaintypes "github.com/ChainSafe/paras/dot/parachain/types"
	"github.com/klauspost/compress/zstd"
)

// ValidateCode checks the validation code does not exceed the configured maximum size.
func ValidateCode(code parachaintypes.ValidationCode, cfg Configuration) error {
	if uint64(len(code)) > uint64(cfg.MaxCodeSize) {
		return fmt.Errorf("%w: validation code is %d bytes, maximum is %d",
			ErrBlobTooLarge, len(code), cfg.MaxCodeSize)
	}
	return nil
}

// ValidateHead checks the head data does not exceed the configured maximum size.
func ValidateHead(head parachaintypes.HeadData, cfg Configuration) error {
	if uint64(len(head)) > uint64(cfg.MaxHeadDataSize) {
		return fmt.Errorf("%w: head data is %d bytes, maximum is %d",
			ErrBlobTooLarge, len(head), cfg.MaxHeadDataSize)
	}
	return nil
}

// codeCompressionPrefix marks zstd compressed validation code.
// ref: https://github.com/paritytech/substrate/blob/master/primitives/maybe-compressed-blob/src/lib.rs
var codeCompressionPrefix = []byte{82, 188, 83, 118, 70, 219, 142, 5}

// DecompressCode decompresses validation code that may or may not be compressed
// with zstd. Uncompressed code is returned as is.
func DecompressCode(code parachaintypes.ValidationCode, bombLimit uint32) (
	decompressed parachaintypes.ValidationCode, err error) {
	if !bytes.HasPrefix(code, codeCompressionPrefix) {
		return code, nil
	}

	decoder, err := zstd.NewReader(bytes.NewReader(code[len(codeCompressionPrefix):]))
	if err != nil {
		return nil, fmt.Errorf("creating zstd decoder: %w", err)
	}
	defer decoder.Close()

	limited := io.LimitReader(decoder, int64(bombLimit)+1)
	decompressed, err = io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("decompressing validation code: %w", err)
	}

	if uint64(len(decompressed)) > uint64(bombLimit) {
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrCodeDecompressionBomb, bombLimit)
	}

	return decompressed, nil
}
