// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package modules

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/ChainSafe/paras/dot/parachain/paras"
	parachaintypes "github.com/ChainSafe/paras/dot/parachain/types"
	"github.com/ChainSafe/paras/dot/state"
	"github.com/ChainSafe/paras/lib/common"
)

// ParasModule is an RPC module providing access to the paras state.
type ParasModule struct {
	parasAPI   ParasAPI
	chainAPI   ChainAPI
	eventAPI   EventAPI
	controlAPI ParasControlAPI
}

// NewParasModule creates a new paras module.
func NewParasModule(parasAPI ParasAPI, chainAPI ChainAPI,
	eventAPI EventAPI, controlAPI ParasControlAPI) *ParasModule {
	return &ParasModule{
		parasAPI:   parasAPI,
		chainAPI:   chainAPI,
		eventAPI:   eventAPI,
		controlAPI: controlAPI,
	}
}

// EmptyRequest represents an RPC request with no fields
type EmptyRequest struct{}

// ParaRequest is a request about a single para.
type ParaRequest struct {
	Para parachaintypes.ParaID `json:"para"`
}

// PastCodeRequest is a request for the past code of a para.
type PastCodeRequest struct {
	Para          parachaintypes.ParaID      `json:"para"`
	EligibleBlock parachaintypes.BlockNumber `json:"eligibleBlock"`
}

// SessionRequest is a request about a session.
type SessionRequest struct {
	Session parachaintypes.SessionIndex `json:"session"`
}

// EventsRequest is a request for the recorded events, optionally of a single para.
type EventsRequest struct {
	Para *parachaintypes.ParaID `json:"para"`
}

// CodeResponse holds validation code, which is null if absent.
type CodeResponse struct {
	Code *parachaintypes.ValidationCode     `json:"code"`
	Hash *parachaintypes.ValidationCodeHash `json:"hash"`
}

// HeadResponse holds head data, which is null if absent.
type HeadResponse struct {
	Head *parachaintypes.HeadData `json:"head"`
	Hash *common.Hash             `json:"hash"`
}

// CodeInfoResponse describes the current code of a para.
type CodeInfoResponse struct {
	Hash             parachaintypes.ValidationCodeHash `json:"hash"`
	Size             int                               `json:"size"`
	Compressed       bool                              `json:"compressed"`
	DecompressedSize int                               `json:"decompressedSize"`
}

// FutureCodeUpgradeResponse holds the scheduled upgrade of a para, which is null if absent.
type FutureCodeUpgradeResponse struct {
	Upgrade *ScheduledUpgrade `json:"upgrade"`
}

// ScheduledUpgrade is the JSON representation of a scheduled code upgrade.
type ScheduledUpgrade struct {
	CodeHash        parachaintypes.ValidationCodeHash `json:"codeHash"`
	ActivationBlock parachaintypes.BlockNumber        `json:"activationBlock"`
}

// PruningEntry is the JSON representation of a past code pruning entry.
type PruningEntry struct {
	Para          parachaintypes.ParaID      `json:"para"`
	EligibleBlock parachaintypes.BlockNumber `json:"eligibleBlock"`
}

// QueuedAction is the JSON representation of a queued session action.
type QueuedAction struct {
	Para   parachaintypes.ParaID     `json:"para"`
	Action parachaintypes.ParaAction `json:"action"`
}

// EventResponse is the JSON representation of a recorded event.
type EventResponse struct {
	Block parachaintypes.BlockNumber `json:"block"`
	Index uint                       `json:"index"`
	Para  parachaintypes.ParaID      `json:"para"`
	Event string                     `json:"event"`
}

// NewEventResponse converts a recorded event to its JSON representation.
func NewEventResponse(record state.EventRecord) EventResponse {
	return EventResponse{
		Block: record.Block,
		Index: record.Event.Index(),
		Para:  record.Event.ParaID(),
		Event: record.Event.String(),
	}
}

// ChainResponse holds the chain clock.
type ChainResponse struct {
	BlockNumber  parachaintypes.BlockNumber  `json:"blockNumber"`
	SessionIndex parachaintypes.SessionIndex `json:"sessionIndex"`
}

// CurrentCode returns the current validation code of the para.
func (pm *ParasModule) CurrentCode(_ *http.Request, req *ParaRequest, res *CodeResponse) error {
	code, found, err := pm.parasAPI.CurrentCode(req.Para)
	if err != nil {
		return err
	} else if !found {
		return nil
	}

	hash := code.Hash()
	res.Code = &code
	res.Hash = &hash
	return nil
}

// CodeInfo describes the current validation code of the para,
// decompressing it if it is compressed.
func (pm *ParasModule) CodeInfo(_ *http.Request, req *ParaRequest, res *CodeInfoResponse) error {
	code, found, err := pm.parasAPI.CurrentCode(req.Para)
	if err != nil {
		return err
	} else if !found {
		return fmt.Errorf("%w: %d", paras.ErrNoSuchPara, req.Para)
	}

	decompressed, err := paras.DecompressCode(code, parachaintypes.ValidationCodeBombLimit)
	if err != nil {
		return err
	}

	*res = CodeInfoResponse{
		Hash:             code.Hash(),
		Size:             len(code),
		Compressed:       !bytes.Equal(code, decompressed),
		DecompressedSize: len(decompressed),
	}
	return nil
}

// CurrentHead returns the current head data of the para.
func (pm *ParasModule) CurrentHead(_ *http.Request, req *ParaRequest, res *HeadResponse) error {
	head, found, err := pm.parasAPI.CurrentHead(req.Para)
	if err != nil {
		return err
	} else if !found {
		return nil
	}

	hash := head.Hash()
	res.Head = &head
	res.Hash = &hash
	return nil
}

// FutureCodeUpgrade returns the scheduled code upgrade of the para.
func (pm *ParasModule) FutureCodeUpgrade(_ *http.Request, req *ParaRequest,
	res *FutureCodeUpgradeResponse) error {
	upgrade, found, err := pm.parasAPI.FutureCodeUpgrade(req.Para)
	if err != nil {
		return err
	} else if !found {
		return nil
	}

	res.Upgrade = &ScheduledUpgrade{
		CodeHash:        upgrade.Code.Hash(),
		ActivationBlock: upgrade.ActivationBlock,
	}
	return nil
}

// PastCodePruning returns the past code pruning queue.
func (pm *ParasModule) PastCodePruning(_ *http.Request, _ *EmptyRequest, res *[]PruningEntry) error {
	entries, err := pm.parasAPI.PastCodePruning()
	if err != nil {
		return err
	}

	*res = make([]PruningEntry, len(entries))
	for i, entry := range entries {
		(*res)[i] = PruningEntry{Para: entry.Para, EligibleBlock: entry.EligibleBlock}
	}
	return nil
}

// PastCode returns the past codes of the para eligible for pruning at the given block,
// oldest replaced first.
func (pm *ParasModule) PastCode(_ *http.Request, req *PastCodeRequest, res *[]CodeResponse) error {
	codes, err := pm.parasAPI.PastCode(req.Para, req.EligibleBlock)
	if err != nil {
		return err
	}

	*res = make([]CodeResponse, len(codes))
	for i := range codes {
		hash := codes[i].Hash()
		(*res)[i] = CodeResponse{Code: &codes[i], Hash: &hash}
	}
	return nil
}

// ActionsQueue returns the actions queued for the session.
func (pm *ParasModule) ActionsQueue(_ *http.Request, req *SessionRequest, res *[]QueuedAction) error {
	actions, err := pm.parasAPI.ActionsQueue(req.Session)
	if err != nil {
		return err
	}

	*res = make([]QueuedAction, len(actions))
	for i, action := range actions {
		(*res)[i] = QueuedAction{Para: action.Para, Action: action.Action}
	}
	return nil
}

// Parachains returns the registered paras.
func (pm *ParasModule) Parachains(_ *http.Request, _ *EmptyRequest, res *[]parachaintypes.ParaID) error {
	registered, err := pm.parasAPI.Parachains()
	if err != nil {
		return err
	}

	*res = append([]parachaintypes.ParaID{}, registered...)
	return nil
}

// Events returns the recorded events, oldest first.
func (pm *ParasModule) Events(_ *http.Request, req *EventsRequest, res *[]EventResponse) error {
	var records []state.EventRecord
	if req.Para != nil {
		records = pm.eventAPI.RecordsForPara(*req.Para)
	} else {
		records = pm.eventAPI.Records()
	}

	*res = make([]EventResponse, len(records))
	for i, record := range records {
		(*res)[i] = NewEventResponse(record)
	}
	return nil
}

// Chain returns the current block number and session index.
func (pm *ParasModule) Chain(_ *http.Request, _ *EmptyRequest, res *ChainResponse) error {
	*res = ChainResponse{
		BlockNumber:  pm.chainAPI.BlockNumber(),
		SessionIndex: pm.chainAPI.SessionIndex(),
	}
	return nil
}
