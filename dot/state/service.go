// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"fmt"
	"path/filepath"

	"github.com/ChainSafe/chaindb"
	"github.com/ChainSafe/paras/internal/log"
	"github.com/ChainSafe/paras/lib/utils"
)

const (
	chainPrefix = "chain"
	parasPrefix = "paras"
)

var logger = log.NewFromGlobal(
	log.AddContext("pkg", "state"),
)

// Service is the struct that holds the chain clock, the event recorder
// and the database backing the paras state.
type Service struct {
	dbPath         string
	isMemDB        bool // set to true if using an in-memory database; only used for testing.
	eventsCapacity int
	db             chaindb.Database
	Base           *BaseState
	Chain          *ChainState
	Events         *EventState
}

// Config is the configuration used by the state service.
type Config struct {
	Path           string
	LogLevel       log.Level
	EventsCapacity int
}

// NewService creates a new instance of Service.
func NewService(config Config) *Service {
	logger.PatchLevel(config.LogLevel)

	return &Service{
		dbPath:         config.Path,
		eventsCapacity: config.EventsCapacity,
	}
}

// UseMemDB tells the service to use an in-memory key-value store instead of a persistent database.
// This should be called after NewService, and before Start.
func (s *Service) UseMemDB() {
	s.isMemDB = true
}

// DB returns the Service's database.
func (s *Service) DB() chaindb.Database {
	return s.db
}

// ParasDB returns the table of the database holding the paras state.
func (s *Service) ParasDB() chaindb.Database {
	return chaindb.NewTable(s.db, parasPrefix)
}

// Start opens the database and loads the chain clock.
func (s *Service) Start() (err error) {
	if s.db != nil {
		return nil
	}

	basepath, err := filepath.Abs(s.dbPath)
	if err != nil {
		return fmt.Errorf("getting absolute path of %s: %w", s.dbPath, err)
	}

	db, err := utils.SetupDatabase(basepath, s.isMemDB)
	if err != nil {
		return fmt.Errorf("creating database: %w", err)
	}

	s.Chain, err = NewChainState(chaindb.NewTable(db, chainPrefix))
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("creating chain state: %w", err)
	}

	s.db = db
	s.Base = NewBaseState(db)
	s.Events = NewEventState(s.Chain, s.eventsCapacity)

	logger.Infof("created state service at block %d and session %d",
		s.Chain.BlockNumber(), s.Chain.SessionIndex())
	return nil
}

// Stop closes the database.
func (s *Service) Stop() error {
	if s.db == nil {
		return nil
	}

	err := s.db.Close()
	if err != nil {
		return fmt.Errorf("closing database: %w", err)
	}

	s.db = nil
	return nil
}
