// Copyright (C) 2024, GreetLabs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"context"
	"fmt"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/greetlabs/greetvm/state"
	"github.com/greetlabs/greetvm/storage"
)

func TestNewEmpty(t *testing.T) {
	require := require.New(t)

	g, err := New(nil)
	require.NoError(err)
	require.Empty(g.Allocations)
}

func TestLoad(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	account := ids.GenerateTestID()
	raw := fmt.Sprintf(`
allocations:
  - account: %s
    counter: 5
`, account)

	g, err := New([]byte(raw))
	require.NoError(err)
	require.Len(g.Allocations, 1)

	programID := ids.GenerateTestID()
	mu := state.NewSimpleMutable(memdb.New())
	require.NoError(g.Load(ctx, mu, programID))

	owner, err := storage.GetAccountOwner(ctx, mu, account)
	require.NoError(err)
	require.Equal(programID, owner)

	counter, err := storage.GetCounter(ctx, mu, account)
	require.NoError(err)
	require.Equal(uint32(5), counter)
}

func TestLoadInvalidAccount(t *testing.T) {
	require := require.New(t)

	g, err := New([]byte("allocations:\n  - account: not-an-id\n"))
	require.NoError(err)

	mu := state.NewSimpleMutable(memdb.New())
	err = g.Load(context.Background(), mu, ids.GenerateTestID())
	require.ErrorIs(err, storage.ErrInvalidAddress)
}
