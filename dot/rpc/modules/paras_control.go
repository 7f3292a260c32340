// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package modules

import (
	"net/http"

	"github.com/ChainSafe/paras/dot/parachain/paras"
	parachaintypes "github.com/ChainSafe/paras/dot/parachain/types"
)

// SetCodeRequest is a request to set the validation code of a para.
type SetCodeRequest struct {
	Para parachaintypes.ParaID         `json:"para"`
	Code parachaintypes.ValidationCode `json:"code" validate:"required"`
}

// SetHeadRequest is a request to set the head data of a para.
type SetHeadRequest struct {
	Para parachaintypes.ParaID   `json:"para"`
	Head parachaintypes.HeadData `json:"head" validate:"required"`
}

// ScheduleUpgradeRequest is a request to schedule a code upgrade of a para.
type ScheduleUpgradeRequest struct {
	Para            parachaintypes.ParaID         `json:"para"`
	Code            parachaintypes.ValidationCode `json:"code" validate:"required"`
	ActivationBlock parachaintypes.BlockNumber    `json:"activationBlock"`
}

// QueueActionRequest is a request to queue a session action for a para.
type QueueActionRequest struct {
	Para   parachaintypes.ParaID     `json:"para"`
	Action parachaintypes.ParaAction `json:"action"`
}

// ParaInitializeRequest is a request to onboard a para at the next session.
type ParaInitializeRequest struct {
	Para parachaintypes.ParaID         `json:"para"`
	Head parachaintypes.HeadData       `json:"head" validate:"required"`
	Code parachaintypes.ValidationCode `json:"code" validate:"required"`
}

// ScheduledResponse holds the activation block of a scheduled upgrade.
type ScheduledResponse struct {
	ActivationBlock parachaintypes.BlockNumber `json:"activationBlock"`
}

// ForceSetCurrentCode overwrites the current code of the para.
func (pm *ParasModule) ForceSetCurrentCode(_ *http.Request, req *SetCodeRequest, _ *EmptyRequest) error {
	return pm.controlAPI.ForceSetCurrentCode(req.Para, req.Code)
}

// ForceSetCurrentHead overwrites the current head of the para.
func (pm *ParasModule) ForceSetCurrentHead(_ *http.Request, req *SetHeadRequest, _ *EmptyRequest) error {
	return pm.controlAPI.ForceSetCurrentHead(req.Para, req.Head)
}

// ForceScheduleCodeUpgrade schedules a code upgrade of the para at the given block.
func (pm *ParasModule) ForceScheduleCodeUpgrade(_ *http.Request, req *ScheduleUpgradeRequest,
	res *ScheduledResponse) error {
	err := pm.controlAPI.ForceScheduleCodeUpgrade(req.Para, req.Code, req.ActivationBlock)
	if err != nil {
		return err
	}

	res.ActivationBlock = req.ActivationBlock
	return nil
}

// ScheduleCodeUpgrade schedules a code upgrade of the para after the
// configured validation upgrade delay.
func (pm *ParasModule) ScheduleCodeUpgrade(_ *http.Request, req *SetCodeRequest,
	res *ScheduledResponse) error {
	activationBlock, err := pm.controlAPI.ScheduleCodeUpgradeWithDelay(req.Para, req.Code)
	if err != nil {
		return err
	}

	res.ActivationBlock = activationBlock
	return nil
}

// ForceNoteNewHead notes a new head of the para.
func (pm *ParasModule) ForceNoteNewHead(_ *http.Request, req *SetHeadRequest, _ *EmptyRequest) error {
	return pm.controlAPI.ForceNoteNewHead(req.Para, req.Head)
}

// ForceQueueAction queues an action for the para at the next session.
func (pm *ParasModule) ForceQueueAction(_ *http.Request, req *QueueActionRequest, _ *EmptyRequest) error {
	return pm.controlAPI.ForceQueueAction(req.Para, req.Action)
}

// ScheduleParaInitialize stages the onboarding of the para at the next session.
func (pm *ParasModule) ScheduleParaInitialize(_ *http.Request, req *ParaInitializeRequest,
	_ *EmptyRequest) error {
	return pm.controlAPI.ScheduleParaInitialize(req.Para, paras.GenesisArgs{
		Head: req.Head,
		Code: req.Code,
	})
}

// ScheduleParaCleanup stages the offboarding of the para at the next session.
func (pm *ParasModule) ScheduleParaCleanup(_ *http.Request, req *ParaRequest, _ *EmptyRequest) error {
	return pm.controlAPI.ScheduleParaCleanup(req.Para)
}
