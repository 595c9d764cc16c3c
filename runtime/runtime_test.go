// Copyright (C) 2024, GreetLabs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/greetlabs/greetvm/consts"
	"github.com/greetlabs/greetvm/program"
	"github.com/greetlabs/greetvm/state"
	"github.com/greetlabs/greetvm/storage"
)

func newTestRuntime(t *testing.T) *Runtime {
	t.Helper()
	require := require.New(t)

	r, err := New(logging.NoLog{}, prometheus.NewRegistry())
	require.NoError(err)
	r.Register(consts.ID, program.New())
	return r
}

func TestCallUnknownProgram(t *testing.T) {
	require := require.New(t)

	r := newTestRuntime(t)
	_, err := r.Call(context.Background(), &CallInfo{
		State:           state.NewSimpleMutable(memdb.New()),
		ProgramID:       ids.GenerateTestID(),
		Accounts:        []ids.ID{ids.GenerateTestID()},
		InstructionData: []byte{0},
	})
	require.ErrorIs(err, ErrProgramNotFound)
}

func TestCallRegisteredProgram(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	r := newTestRuntime(t)
	mu := state.NewSimpleMutable(memdb.New())
	account := ids.GenerateTestID()
	require.NoError(storage.CreateAccount(ctx, mu, account, consts.ID, storage.RecordBytes))

	counter, err := r.Call(ctx, &CallInfo{
		State:           mu,
		ProgramID:       consts.ID,
		Accounts:        []ids.ID{account},
		InstructionData: []byte{0},
	})
	require.NoError(err)
	require.Equal(uint32(1), counter)
}

func TestCallPropagatesProgramError(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	r := newTestRuntime(t)
	mu := state.NewSimpleMutable(memdb.New())
	account := ids.GenerateTestID()
	require.NoError(storage.CreateAccount(ctx, mu, account, ids.GenerateTestID(), storage.RecordBytes))

	_, err := r.Call(ctx, &CallInfo{
		State:           mu,
		ProgramID:       consts.ID,
		Accounts:        []ids.ID{account},
		InstructionData: []byte{0},
	})
	require.ErrorIs(err, program.ErrIncorrectOwner)
}
