// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package subscription

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	parachaintypes "github.com/ChainSafe/paras/dot/parachain/types"
)

// RPC methods
const (
	parasSubscribeEvents   string = "paras_subscribeEvents"
	parasUnsubscribeEvents string = "paras_unsubscribeEvents"
	parasEventMethod       string = "paras_event"
)

type setupListener func(reqid float64, params interface{}) (Listener, error)

var (
	errUknownParamSubscribeID = errors.New("invalid params format type")
	errCannotParseID          = errors.New("could not parse param id")
	errCannotFindListener     = errors.New("could not find listener")
	errCannotFindUnsubsriber  = errors.New("could not find unsubsriber function")
	errUnknownParamType       = errors.New("unknown parameter type")
)

func (c *WSConn) getSetupListener(method string) setupListener {
	switch method {
	case parasSubscribeEvents:
		return c.initEventListener
	default:
		return nil
	}
}

func (c *WSConn) getUnsubListener(method string, params interface{}) (Listener, error) {
	if method != parasUnsubscribeEvents {
		return nil, fmt.Errorf("%w: %s", errCannotFindUnsubsriber, method)
	}

	subscribeID, err := parseSubscribeID(params)
	if err != nil {
		return nil, err
	}

	c.listenersMu.Lock()
	defer c.listenersMu.Unlock()

	listener, ok := c.Subscriptions[subscribeID]
	if !ok {
		return nil, fmt.Errorf("subscriber id %v: %w", subscribeID, errCannotFindListener)
	}
	delete(c.Subscriptions, subscribeID)

	return listener, nil
}

func parseSubscribeID(p interface{}) (uint32, error) {
	params, ok := p.([]interface{})
	if !ok || len(params) == 0 {
		return 0, errUknownParamSubscribeID
	}

	var id uint32
	switch v := params[0].(type) {
	case float64:
		id = uint32(v)
	case string:
		i, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return 0, errCannotParseID
		}
		id = uint32(i)
	default:
		return 0, errUknownParamSubscribeID
	}

	return id, nil
}

// parseParaFilter parses the optional para id the event subscription is
// restricted to, given as the first parameter.
func parseParaFilter(p interface{}) (*parachaintypes.ParaID, error) {
	if p == nil {
		return nil, nil
	}

	params, ok := p.([]interface{})
	if !ok {
		return nil, errUnknownParamType
	} else if len(params) == 0 || params[0] == nil {
		return nil, nil
	}

	value, ok := params[0].(float64)
	if !ok || value < 0 || value > math.MaxUint32 || value != float64(uint32(value)) {
		return nil, fmt.Errorf("%w: %v", errUnknownParamType, params[0])
	}

	para := parachaintypes.ParaID(value)
	return &para, nil
}
