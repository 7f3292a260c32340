// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"testing"

	"github.com/ChainSafe/chaindb"
	"github.com/ChainSafe/paras/internal/log"
	"github.com/stretchr/testify/require"
)

// NewInMemoryDB creates a new in-memory database
func NewInMemoryDB(t *testing.T) chaindb.Database {
	t.Helper()

	db, err := chaindb.NewBadgerDB(&chaindb.Config{
		DataDir:  t.TempDir(),
		InMemory: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

// NewTestService creates a started state service backed by an in-memory database.
func NewTestService(t *testing.T) *Service {
	t.Helper()

	service := NewService(Config{
		Path:     t.TempDir(),
		LogLevel: log.Info,
	})
	service.UseMemDB()

	err := service.Start()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = service.Stop()
	})

	return service
}
