// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package parachaintypes

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/ChainSafe/paras/lib/common"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

const (
	// MaxCodeSize is the hard upper bound on the size of validation code.
	MaxCodeSize uint32 = 3 * 1024 * 1024
	// MaxHeadDataSize is the hard upper bound on the size of head data.
	MaxHeadDataSize uint32 = 1024 * 1024
	// ValidationCodeBombLimit is the maximum size of validation code
	// once decompressed.
	ValidationCodeBombLimit = 4 * MaxCodeSize
)

// ParaID is the unique identifier of a para.
type ParaID uint32

// BlockNumber is a relay chain block number.
type BlockNumber uint32

// SessionIndex is the index of a session.
type SessionIndex uint32

// ValidationCodeHash is the blake2b-256 hash of validation code.
type ValidationCodeHash common.Hash

// String returns the hex string of the hash.
func (v ValidationCodeHash) String() string {
	return common.Hash(v).String()
}

// MarshalJSON encodes the hash as a hex string.
func (v ValidationCodeHash) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// ValidationCode is Parachain validation code.
type ValidationCode []byte

// Hash returns the blake2b-256 hash of the validation code.
func (v ValidationCode) Hash() ValidationCodeHash {
	return ValidationCodeHash(common.MustBlake2bHash(v))
}

// Encode SCALE encodes the code as a length prefixed byte array.
func (v ValidationCode) Encode(encoder scale.Encoder) error {
	return encodeBytes(encoder, v)
}

// Decode SCALE decodes a length prefixed byte array.
func (v *ValidationCode) Decode(decoder scale.Decoder) error {
	return decodeBytes(decoder, (*[]byte)(v))
}

// MarshalJSON encodes the code as a 0x prefixed hex string.
func (v ValidationCode) MarshalJSON() ([]byte, error) {
	return json.Marshal(common.BytesToHex(v))
}

// UnmarshalJSON decodes a 0x prefixed hex string.
func (v *ValidationCode) UnmarshalJSON(data []byte) error {
	return unmarshalHexJSON(data, (*[]byte)(v))
}

// MarshalText encodes the code as a 0x prefixed hex string.
func (v ValidationCode) MarshalText() ([]byte, error) {
	return []byte(common.BytesToHex(v)), nil
}

// UnmarshalText decodes a 0x prefixed hex string.
func (v *ValidationCode) UnmarshalText(text []byte) error {
	return unmarshalHexText(text, (*[]byte)(v))
}

// HeadData is Parachain head data included into blocks.
type HeadData []byte

// Hash returns the blake2b-256 hash of the head data.
func (h HeadData) Hash() common.Hash {
	return common.MustBlake2bHash(h)
}

// Encode SCALE encodes the head as a length prefixed byte array.
func (h HeadData) Encode(encoder scale.Encoder) error {
	return encodeBytes(encoder, h)
}

// Decode SCALE decodes a length prefixed byte array.
func (h *HeadData) Decode(decoder scale.Decoder) error {
	return decodeBytes(decoder, (*[]byte)(h))
}

// MarshalJSON encodes the head as a 0x prefixed hex string.
func (h HeadData) MarshalJSON() ([]byte, error) {
	return json.Marshal(common.BytesToHex(h))
}

// UnmarshalJSON decodes a 0x prefixed hex string.
func (h *HeadData) UnmarshalJSON(data []byte) error {
	return unmarshalHexJSON(data, (*[]byte)(h))
}

// MarshalText encodes the head as a 0x prefixed hex string.
func (h HeadData) MarshalText() ([]byte, error) {
	return []byte(common.BytesToHex(h)), nil
}

// UnmarshalText decodes a 0x prefixed hex string.
func (h *HeadData) UnmarshalText(text []byte) error {
	return unmarshalHexText(text, (*[]byte)(h))
}

func encodeBytes(encoder scale.Encoder, b []byte) error {
	err := encoder.EncodeUintCompact(*big.NewInt(int64(len(b))))
	if err != nil {
		return fmt.Errorf("encoding length: %w", err)
	}
	return encoder.Write(b)
}

func decodeBytes(decoder scale.Decoder, b *[]byte) error {
	length, err := decoder.DecodeUintCompact()
	if err != nil {
		return fmt.Errorf("decoding length: %w", err)
	}

	if !length.IsUint64() || length.Uint64() > math.MaxUint32 {
		return fmt.Errorf("%w: %s", ErrBytesTooLong, length)
	}

	*b = make([]byte, length.Uint64())
	if length.Uint64() == 0 {
		return nil
	}
	return decoder.Read(*b)
}

func unmarshalHexJSON(data []byte, b *[]byte) error {
	var s string
	err := json.Unmarshal(data, &s)
	if err != nil {
		return err
	}

	return unmarshalHexText([]byte(s), b)
}

func unmarshalHexText(text []byte, b *[]byte) error {
	decoded, err := common.HexToBytes(string(text))
	if err != nil {
		return fmt.Errorf("decoding hex: %w", err)
	}
	*b = decoded
	return nil
}

var (
	// ErrBytesTooLong is returned when a decoded length prefix does not fit in memory.
	ErrBytesTooLong = errors.New("byte array length prefix too large")
	// ErrUnknownParaAction is returned when parsing an unknown action name.
	ErrUnknownParaAction = errors.New("unknown para action")
)

// ParaAction is an action applied to a para at a session boundary.
type ParaAction uint8

const (
	// Onboard registers the para with its staged genesis head and code.
	Onboard ParaAction = iota
	// Offboard removes the para, retiring its current code.
	Offboard
)

func (p ParaAction) String() string {
	switch p {
	case Onboard:
		return "onboard"
	case Offboard:
		return "offboard"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(p))
	}
}

// MarshalJSON encodes the action by name.
func (p ParaAction) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON decodes the action from its name.
func (p *ParaAction) UnmarshalJSON(data []byte) error {
	var s string
	err := json.Unmarshal(data, &s)
	if err != nil {
		return err
	}

	*p, err = ParseParaAction(s)
	return err
}

// ParseParaAction parses the name of a para action.
func ParseParaAction(s string) (action ParaAction, err error) {
	switch strings.ToLower(s) {
	case "onboard":
		return Onboard, nil
	case "offboard":
		return Offboard, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownParaAction, s)
	}
}
