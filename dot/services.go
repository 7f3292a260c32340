// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"fmt"

	"github.com/ChainSafe/paras/dot/parachain/initializer"
	"github.com/ChainSafe/paras/dot/parachain/paras"
	parasmetrics "github.com/ChainSafe/paras/dot/parachain/paras/metrics"
	"github.com/ChainSafe/paras/dot/rpc"
	"github.com/ChainSafe/paras/dot/state"
	"github.com/ChainSafe/paras/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// State Service

// createStateService creates the state service and initialise state database
func createStateService(cfg *Config) (*state.Service, error) {
	logger.Debug("creating state service...")

	config := state.Config{
		Path:           cfg.Global.BasePath,
		LogLevel:       cfg.Log.StateLvl,
		EventsCapacity: cfg.Global.EventsCapacity,
	}

	stateSrvc := state.NewService(config)

	// start state service (initialise state database)
	err := stateSrvc.Start()
	if err != nil {
		return nil, fmt.Errorf("failed to start state service: %w", err)
	}

	return stateSrvc, nil
}

// Paras

// createParasState creates the paras state on top of the state service.
// The metrics are only recorded if a registerer is given.
func createParasState(cfg *Config, stateSrvc *state.Service,
	registerer prometheus.Registerer) (*paras.Paras, error) {
	var parasMetrics paras.Metrics = paras.NoopMetrics{}
	if registerer != nil {
		prometheusMetrics, err := parasmetrics.NewPrometheus(registerer)
		if err != nil {
			return nil, fmt.Errorf("failed to create paras metrics: %w", err)
		}
		parasMetrics = prometheusMetrics
	}

	return paras.New(stateSrvc.ParasDB(), paras.Config{
		Configuration: paras.StaticConfiguration(cfg.Paras.HostConfiguration()),
		BlockState:    stateSrvc.Chain,
		SessionState:  stateSrvc.Chain,
		EventSink:     stateSrvc.Events,
		Metrics:       parasMetrics,
	}), nil
}

func createInitializer(cfg *Config, stateSrvc *state.Service,
	parasState *paras.Paras) *initializer.Initializer {
	return initializer.New(initializer.Config{
		Paras:         parasState,
		Chain:         stateSrvc.Chain,
		Configuration: paras.StaticConfiguration(cfg.Paras.HostConfiguration()),
		SessionLength: cfg.Paras.SessionLength,
	})
}

// RPC Service

// createRPCService creates the RPC service from the provided core configuration
func createRPCService(cfg *Config, stateSrvc *state.Service, parasState *paras.Paras,
	clock *initializer.Initializer) *rpc.HTTPServer {
	logger.Infof("creating rpc service with host %s, external %t, port %d, unsafe %t and unsafe external %t",
		cfg.RPC.Host, cfg.RPC.External, cfg.RPC.Port, cfg.RPC.Unsafe, cfg.RPC.UnsafeExternal)

	rpcConfig := &rpc.HTTPServerConfig{
		LogLvl:            cfg.Log.RPCLvl,
		ParasAPI:          parasState,
		ChainAPI:          stateSrvc.Chain,
		EventAPI:          stateSrvc.Events,
		ParasControlAPI:   clock,
		ClockControlAPI:   clock,
		RPCExternal:       cfg.RPC.External,
		RPCUnsafe:         cfg.RPC.Unsafe,
		RPCUnsafeExternal: cfg.RPC.UnsafeExternal,
		Host:              cfg.RPC.Host,
		RPCPort:           cfg.RPC.Port,
		Modules:           cfg.RPC.Modules,
	}

	return rpc.NewHTTPServer(rpcConfig)
}

// Metrics

// createMetrics creates the metrics registry of the node, and the server
// publishing it if metrics publishing is enabled.
func createMetrics(cfg *Config) (*prometheus.Registry, *metrics.Server) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	if !cfg.Global.PublishMetrics {
		return registry, nil
	}

	logger.Infof("enabling stand-alone metrics HTTP endpoint at address %s", cfg.Global.MetricsAddress)
	return registry, metrics.NewServer(cfg.Global.MetricsAddress, registry)
}
