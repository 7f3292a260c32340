// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/ChainSafe/paras/dot/parachain/initializer"
	"github.com/ChainSafe/paras/dot/parachain/paras"
	"github.com/ChainSafe/paras/dot/state"
	"github.com/ChainSafe/paras/internal/log"
	"github.com/ChainSafe/paras/lib/services"
	"github.com/ChainSafe/paras/lib/utils"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "dot"))

// Node is a container for all the components of a node.
type Node struct {
	Name        string
	Services    *services.ServiceRegistry // registry of all node services
	State       *state.Service
	Paras       *paras.Paras
	Initializer *initializer.Initializer
	stopOnce    sync.Once
	stopErr     error
	started     chan struct{}
	stopped     chan struct{}
}

// InitNode initialises the paras state of a new node with the genesis
// paras of the configuration.
func InitNode(cfg *Config) error {
	logger.PatchLevel(cfg.Global.LogLvl)
	logger.Infof(
		"🕸️ initialising node with name %s, basepath %s and %d genesis paras...",
		cfg.Global.Name, cfg.Global.BasePath, len(cfg.Genesis.Paras))

	err := cfg.Validate()
	if err != nil {
		return err
	}

	if NodeInitialized(cfg.Global.BasePath) {
		return fmt.Errorf("%w: %s", ErrNodeInitialised, cfg.Global.BasePath)
	}

	stateSrvc, err := createStateService(cfg)
	if err != nil {
		return fmt.Errorf("failed to create state service: %w", err)
	}

	err = initialiseGenesis(cfg, stateSrvc)
	stopErr := stateSrvc.Stop()
	if err != nil {
		return err
	} else if stopErr != nil {
		return fmt.Errorf("failed to stop state service: %w", stopErr)
	}

	logger.Infof("node initialised with name %s and basepath %s",
		cfg.Global.Name, cfg.Global.BasePath)
	return nil
}

func initialiseGenesis(cfg *Config, stateSrvc *state.Service) error {
	parasState, err := createParasState(cfg, stateSrvc, nil)
	if err != nil {
		return err
	}

	err = parasState.InitializeGenesis(cfg.Genesis)
	if err != nil {
		return fmt.Errorf("failed to initialise genesis paras: %w", err)
	}

	err = stateSrvc.Base.StoreGenesisData(cfg.Genesis)
	if err != nil {
		return fmt.Errorf("failed to store genesis data: %w", err)
	}

	return nil
}

// NodeInitialized returns true if, within the configured data directory for the
// node, the state database has been created and the genesis data has been stored
func NodeInitialized(basepath string) bool {
	if !utils.DatabaseExists(basepath) {
		logger.Debugf("node has not been initialised from basepath %s: no database found", basepath)
		return false
	}

	db, err := utils.SetupDatabase(basepath, false)
	if err != nil {
		logger.Errorf("failed to create database from basepath %s: %s", basepath, err)
		return false
	}

	defer func() {
		err := db.Close()
		if err != nil {
			logger.Errorf("failed to close database: %s", err)
		}
	}()

	initialised, err := state.NewBaseState(db).Initialised()
	if err != nil {
		logger.Errorf("failed to load genesis data from basepath %s: %s", basepath, err)
		return false
	}

	return initialised
}

// NewNode creates a new node from a node configuration. The state service
// is started so the node operations can be used right away, the other
// services are started by Start.
func NewNode(cfg *Config) (*Node, error) {
	logger.PatchLevel(cfg.Global.LogLvl)

	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	if !NodeInitialized(cfg.Global.BasePath) {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotInitialised, cfg.Global.BasePath)
	}

	logger.Infof("🕸️ initialising node services with name %s and basepath %s...",
		cfg.Global.Name, cfg.Global.BasePath)

	stateSrvc, err := createStateService(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create state service: %w", err)
	}

	node, err := newNode(cfg, stateSrvc)
	if err != nil {
		stopErr := stateSrvc.Stop()
		if stopErr != nil {
			logger.Errorf("failed to stop state service: %s", stopErr)
		}
		return nil, err
	}

	return node, nil
}

func newNode(cfg *Config, stateSrvc *state.Service) (*Node, error) {
	var nodeSrvcs []services.Service

	registry, metricsSrvc := createMetrics(cfg)
	if metricsSrvc != nil {
		nodeSrvcs = append(nodeSrvcs, metricsSrvc)
	}

	parasState, err := createParasState(cfg, stateSrvc, registry)
	if err != nil {
		return nil, err
	}

	clock := createInitializer(cfg, stateSrvc, parasState)

	if cfg.RPC.isRPCEnabled() {
		nodeSrvcs = append(nodeSrvcs, createRPCService(cfg, stateSrvc, parasState, clock))
	} else {
		logger.Debug("rpc service disabled by default")
	}

	// close state service last
	nodeSrvcs = append(nodeSrvcs, stateSrvc)

	node := &Node{
		Name:        cfg.Global.Name,
		Services:    services.NewServiceRegistry(logger),
		State:       stateSrvc,
		Paras:       parasState,
		Initializer: clock,
		started:     make(chan struct{}),
		stopped:     make(chan struct{}),
	}

	for _, srvc := range nodeSrvcs {
		node.Services.RegisterService(srvc)
	}

	return node, nil
}

// Start starts all node services and blocks until the node is stopped,
// either by Stop or by an interrupt signal.
func (n *Node) Start() error {
	logger.Info("🕸️ starting node services...")

	err := n.Services.StartAll()
	if err != nil {
		return err
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigc)

	close(n.started)

	select {
	case <-sigc:
		logger.Info("signal interrupt, shutting down...")
		return n.Stop()
	case <-n.stopped:
		return n.stopErr
	}
}

// Stop stops all node services. It is safe to call more than once.
func (n *Node) Stop() error {
	n.stopOnce.Do(func() {
		n.stopErr = n.Services.StopAll()
		close(n.stopped)
	})
	return n.stopErr
}
