// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package rpc

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ChainSafe/paras/dot/rpc/subscription"
	"github.com/gorilla/websocket"
)

// ServeHTTP implemented to handle WebSocket connections
func (h *HTTPServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	upg := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			if !h.serverConfig.exposeRPC() && !isLocalhost(r.RemoteAddr) {
				h.logger.Infof("external websocket request refused from %s", r.RemoteAddr)
				return false
			}
			return true
		},
	}

	ws, err := upg.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warnf("websocket upgrade failed: %s", err)
		return
	}

	unsafeEnabled := h.serverConfig.RPCUnsafeExternal ||
		(h.serverConfig.RPCUnsafe && isLocalhost(r.RemoteAddr))

	wsc := &subscription.WSConn{
		UnsafeEnabled: unsafeEnabled,
		Wsconn:        ws,
		Subscriptions: make(map[uint32]subscription.Listener),
		RPCHost:       fmt.Sprintf("http://%s/", h.server.GetAddress()),
		HTTP:          &http.Client{Timeout: 30 * time.Second},
	}
	if h.serverConfig.EventAPI != nil {
		wsc.EventAPI = h.serverConfig.EventAPI
	}

	h.wsConnsMu.Lock()
	h.wsConns = append(h.wsConns, wsc)
	h.wsConnsMu.Unlock()

	go wsc.HandleConn()
}
