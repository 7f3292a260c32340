// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package paras

import (
	"testing"

	"github.com/ChainSafe/chaindb"
	parachaintypes "github.com/ChainSafe/paras/dot/parachain/types"
	"github.com/stretchr/testify/require"
)

func newTestDatabase(t *testing.T) chaindb.Database {
	t.Helper()

	db, err := chaindb.NewBadgerDB(&chaindb.Config{
		DataDir:  t.TempDir(),
		InMemory: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	return chaindb.NewTable(db, "paras")
}

// testConfiguration has small bounds so oversized blobs are cheap to build.
func testConfiguration() Configuration {
	return Configuration{
		MaxCodeSize:            16,
		MaxHeadDataSize:        8,
		CodeRetentionPeriod:    10,
		ValidationUpgradeDelay: 2,
	}
}

type testClock struct {
	block   parachaintypes.BlockNumber
	session parachaintypes.SessionIndex
}

func (c *testClock) BlockNumber() parachaintypes.BlockNumber   { return c.block }
func (c *testClock) SessionIndex() parachaintypes.SessionIndex { return c.session }

type eventRecorder struct {
	events []Event
}

func (r *eventRecorder) DepositEvent(event Event) {
	r.events = append(r.events, event)
}

type testEnv struct {
	paras  *Paras
	db     chaindb.Database
	clock  *testClock
	events *eventRecorder
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		db:     newTestDatabase(t),
		clock:  &testClock{},
		events: &eventRecorder{},
	}

	env.paras = New(env.db, Config{
		Configuration: StaticConfiguration(testConfiguration()),
		BlockState:    env.clock,
		SessionState:  env.clock,
		EventSink:     env.events,
	})

	return env
}

func code(b ...byte) parachaintypes.ValidationCode { return parachaintypes.ValidationCode(b) }

func head(b ...byte) parachaintypes.HeadData { return parachaintypes.HeadData(b) }
