// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package rpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/ChainSafe/paras/dot/rpc/modules"
	"github.com/ChainSafe/paras/dot/rpc/subscription"
	"github.com/ChainSafe/paras/internal/httpserver"
	"github.com/ChainSafe/paras/internal/log"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/gorilla/rpc/v2"
)

const stopTimeout = 10 * time.Second

var (
	errServerExited = errors.New("rpc server exited unexpectedly")
	errStopTimeout  = errors.New("rpc server exit timeout")
)

// HTTPServer gateway for RPC server
type HTTPServer struct {
	logger       *log.Logger
	rpcServer    *rpc.Server // Actual RPC call handler
	serverConfig *HTTPServerConfig
	server       *httpserver.Server
	cancel       context.CancelFunc
	done         chan error

	wsConnsMu sync.Mutex
	wsConns   []*subscription.WSConn
}

// HTTPServerConfig configures the HTTPServer
type HTTPServerConfig struct {
	LogLvl            log.Level
	ParasAPI          modules.ParasAPI
	ChainAPI          modules.ChainAPI
	EventAPI          modules.EventAPI
	ParasControlAPI   modules.ParasControlAPI
	ClockControlAPI   modules.ClockControlAPI
	RPCExternal       bool
	RPCUnsafe         bool
	RPCUnsafeExternal bool
	Host              string
	RPCPort           uint32
	Modules           []string
}

func (h *HTTPServerConfig) rpcUnsafeEnabled() bool {
	return h.RPCUnsafe || h.RPCUnsafeExternal
}

func (h *HTTPServerConfig) exposeRPC() bool {
	return h.RPCExternal || h.RPCUnsafeExternal
}

// NewHTTPServer creates a new http server and registers an associated rpc server
func NewHTTPServer(cfg *HTTPServerConfig) *HTTPServer {
	logger := log.NewFromGlobal(log.AddContext("pkg", "rpc"), log.SetLevel(cfg.LogLvl))

	server := &HTTPServer{
		logger:       logger,
		rpcServer:    rpc.NewServer(),
		serverConfig: cfg,
	}

	server.RegisterModules(cfg.Modules)
	return server
}

// RegisterModules registers the RPC services associated with the given API modules
func (h *HTTPServer) RegisterModules(mods []string) {
	for _, mod := range mods {
		h.logger.Debug("Enabling rpc module " + mod)
		var srvc interface{}
		switch mod {
		case "paras":
			srvc = modules.NewParasModule(h.serverConfig.ParasAPI, h.serverConfig.ChainAPI,
				h.serverConfig.EventAPI, h.serverConfig.ParasControlAPI)
		case "dev":
			srvc = modules.NewDevModule(h.serverConfig.ClockControlAPI)
		default:
			h.logger.Warn("Unrecognised module: " + mod)
			continue
		}

		err := h.rpcServer.RegisterService(srvc, mod)
		if err != nil {
			h.logger.Warnf("Failed to register module %s: %s", mod, err)
		}
	}
}

// Start registers the rpc handler function and starts the rpc http server
func (h *HTTPServer) Start() error {
	h.rpcServer.RegisterCodec(NewDotUpCodec(), "application/json")
	h.rpcServer.RegisterCodec(NewDotUpCodec(), "application/json;charset=UTF-8")

	r := mux.NewRouter()
	r.Handle("/", h.rpcServer)
	r.Handle("/ws", h)

	validate := validator.New()
	h.rpcServer.RegisterValidateRequestFunc(rpcValidator(h.serverConfig, validate))

	address := net.JoinHostPort(h.serverConfig.Host, strconv.Itoa(int(h.serverConfig.RPCPort)))
	h.server = httpserver.New("rpc", address, r, h.logger)

	ctx, cancel := context.WithCancel(context.Background())
	h.cancel = cancel
	ready := make(chan struct{})
	h.done = make(chan error, 1)

	go h.server.Run(ctx, ready, h.done)

	select {
	case <-ready:
		return nil
	case err := <-h.done:
		cancel()
		if err != nil {
			return fmt.Errorf("starting rpc server: %w", err)
		}
		return errServerExited
	}
}

// Address returns the address the server listens on.
func (h *HTTPServer) Address() string {
	return h.server.GetAddress()
}

// Stop stops the server
func (h *HTTPServer) Stop() error {
	if h.cancel == nil {
		return nil
	}
	h.cancel()

	h.wsConnsMu.Lock()
	for _, conn := range h.wsConns {
		conn.StopListeners()
		err := conn.Wsconn.Close()
		if err != nil {
			h.logger.Warnf("error closing websocket connection: %s", err)
		}
	}
	h.wsConns = nil
	h.wsConnsMu.Unlock()

	timer := time.NewTimer(stopTimeout)
	defer timer.Stop()

	select {
	case err := <-h.done:
		return err
	case <-timer.C:
		return errStopTimeout
	}
}
