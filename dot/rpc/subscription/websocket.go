// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package subscription

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ChainSafe/paras/dot/rpc/modules"
	"github.com/ChainSafe/paras/internal/log"
	"github.com/gorilla/websocket"
)

const defaultCancelTimeout = 10 * time.Second

type websocketMessage struct {
	ID     float64     `json:"id"`
	Method string      `json:"method"`
	Params interface{} `json:"params"`
}

type httpclient interface {
	Do(*http.Request) (*http.Response, error)
}

var errCannotReadFromWebsocket = errors.New("cannot read message from websocket")
var logger = log.NewFromGlobal(log.AddContext("pkg", "rpc/subscription"))

// WSConn struct to hold WebSocket Connection references
type WSConn struct {
	UnsafeEnabled bool
	Wsconn        *websocket.Conn
	mu            sync.Mutex
	listenersMu   sync.Mutex
	qtyListeners  uint32
	Subscriptions map[uint32]Listener
	EventAPI      EventAPI
	RPCHost       string
	HTTP          httpclient
}

// readWebsocketMessage will read and parse the message data to a string->interface{} data
func (c *WSConn) readWebsocketMessage() (bytes []byte, err error) {
	_, bytes, err = c.Wsconn.ReadMessage()
	if err != nil {
		logger.Debugf("websocket failed to read message: %s", err)
		return nil, errCannotReadFromWebsocket
	}

	logger.Tracef("websocket message received: %s", string(bytes))
	return bytes, nil
}

// HandleConn handles messages received on websocket connections
// until the connection is closed, then stops its listeners.
func (c *WSConn) HandleConn() {
	defer c.StopListeners()

	for {
		mbytes, err := c.readWebsocketMessage()
		if err != nil {
			return
		}

		msg := new(websocketMessage)
		err = json.Unmarshal(mbytes, &msg)
		if err != nil {
			logger.Debugf("failed to unmarshal websocket request message: %s", err)
			c.safeSendError(0, big.NewInt(InvalidRequestCode), InvalidRequestMessage)
			continue
		}

		if msg.Method == "" {
			c.safeSendError(0, big.NewInt(InvalidRequestCode), InvalidRequestMessage)
			continue
		}

		logger.Debugf("ws method %s called with params %v", msg.Method, msg.Params)

		if !strings.Contains(msg.Method, "_unsubscribe") {
			setupListener := c.getSetupListener(msg.Method)

			if setupListener == nil {
				c.executeRPCCall(msg, mbytes)
				continue
			}

			listener, err := setupListener(msg.ID, msg.Params)
			if err != nil {
				logger.Warnf("failed to create listener (method=%s): %s", msg.Method, err)
				continue
			}

			listener.Listen()
			continue
		}

		listener, err := c.getUnsubListener(msg.Method, msg.Params)
		if err != nil {
			logger.Warnf("failed to get unsubscriber (method=%s): %s", msg.Method, err)

			if errors.Is(err, errUknownParamSubscribeID) || errors.Is(err, errCannotFindUnsubsriber) {
				c.safeSendError(msg.ID, big.NewInt(InvalidRequestCode), InvalidRequestMessage)
				continue
			}

			c.safeSend(newBooleanResponseJSON(false, msg.ID))
			continue
		}

		err = listener.Stop()
		if err != nil {
			logger.Warnf("failed to stop listener goroutine (method=%s): %s", msg.Method, err)
			c.safeSend(newBooleanResponseJSON(false, msg.ID))
			continue
		}

		c.safeSend(newBooleanResponseJSON(true, msg.ID))
	}
}

// StopListeners stops all the listeners of the connection.
func (c *WSConn) StopListeners() {
	c.listenersMu.Lock()
	listeners := c.Subscriptions
	c.Subscriptions = make(map[uint32]Listener)
	c.listenersMu.Unlock()

	for id, listener := range listeners {
		err := listener.Stop()
		if err != nil {
			logger.Warnf("failed to stop listener %d: %s", id, err)
		}
	}
}

func (c *WSConn) executeRPCCall(msg *websocketMessage, data []byte) {
	if !c.UnsafeEnabled && modules.IsUnsafe(msg.Method) {
		c.safeSendError(msg.ID, big.NewInt(ServerErrorCode),
			"unsafe rpc method cannot be reached: "+msg.Method)
		return
	}

	request, err := c.prepareRequest(data)
	if err != nil {
		logger.Warnf("failed while preparing the request: %s", err)
		return
	}

	var wsresponse interface{}
	err = c.executeRequest(request, &wsresponse)
	if err != nil {
		logger.Warnf("problems while executing the request: %s", err)
		return
	}

	c.safeSend(wsresponse)
}

func (c *WSConn) initEventListener(reqID float64, params interface{}) (Listener, error) {
	if c.EventAPI == nil {
		c.safeSendError(reqID, nil, "error EventAPI not set")
		return nil, fmt.Errorf("error EventAPI not set")
	}

	para, err := parseParaFilter(params)
	if err != nil {
		c.safeSendError(reqID, big.NewInt(InvalidRequestCode), InvalidRequestMessage)
		return nil, err
	}

	listener := &EventListener{
		Channel:       c.EventAPI.GetEventNotifierChannel(),
		wsconn:        c,
		para:          para,
		cancel:        make(chan struct{}),
		done:          make(chan struct{}),
		cancelTimeout: defaultCancelTimeout,
	}

	c.listenersMu.Lock()
	listener.subID = atomic.AddUint32(&c.qtyListeners, 1)
	c.Subscriptions[listener.subID] = listener
	c.listenersMu.Unlock()

	c.safeSend(NewSubscriptionResponseJSON(listener.subID, reqID))

	return listener, nil
}

func (c *WSConn) safeSend(msg interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	err := c.Wsconn.WriteJSON(msg)
	if err != nil {
		logger.Debugf("error sending websocket message: %s", err)
	}
}

func (c *WSConn) safeSendError(reqID float64, errorCode *big.Int, message string) {
	res := &ErrorResponseJSON{
		Jsonrpc: "2.0",
		Error: &ErrorMessageJSON{
			Code:    errorCode,
			Message: message,
		},
		ID: reqID,
	}
	c.safeSend(res)
}

func (c *WSConn) prepareRequest(b []byte) (*http.Request, error) {
	buff := &bytes.Buffer{}
	if _, err := buff.Write(b); err != nil {
		logger.Warnf("failed to write message to buffer: %s", err)
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, c.RPCHost, buff)
	if err != nil {
		logger.Warnf("failed request to rpc service: %s", err)
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func (c *WSConn) executeRequest(r *http.Request, d interface{}) error {
	res, err := c.HTTP.Do(r)
	if err != nil {
		logger.Warnf("websocket error calling rpc: %s", err)
		return err
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		logger.Warnf("error reading response body: %s", err)
		return err
	}

	err = res.Body.Close()
	if err != nil {
		logger.Warnf("error closing response body: %s", err)
		return err
	}

	err = json.Unmarshal(body, d)
	if err != nil {
		logger.Warnf("error unmarshal rpc response: %s", err)
		return err
	}

	return nil
}
