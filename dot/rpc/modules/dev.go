// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package modules

import (
	"net/http"

	parachaintypes "github.com/ChainSafe/paras/dot/parachain/types"
)

// DevModule is an RPC module that provides developer endpoints
type DevModule struct {
	clockAPI ClockControlAPI
}

// NewDevModule creates a new Dev module.
func NewDevModule(clockAPI ClockControlAPI) *DevModule {
	return &DevModule{
		clockAPI: clockAPI,
	}
}

// AdvanceBlocksRequest is a request to advance the chain by a number of blocks.
type AdvanceBlocksRequest struct {
	Count uint32 `json:"count" validate:"required,lte=100000"`
}

// AdvanceBlocks advances the chain, running the block and session hooks,
// and returns the block number reached.
func (m *DevModule) AdvanceBlocks(_ *http.Request, req *AdvanceBlocksRequest,
	res *parachaintypes.BlockNumber) error {
	block, err := m.clockAPI.AdvanceBlocks(req.Count)
	*res = block
	return err
}

// NewSession starts the next session and returns its index.
func (m *DevModule) NewSession(_ *http.Request, _ *EmptyRequest, res *parachaintypes.SessionIndex) error {
	session, err := m.clockAPI.NewSession()
	if err != nil {
		return err
	}

	*res = session
	return nil
}
