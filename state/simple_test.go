// Copyright (C) 2024, GreetLabs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/stretchr/testify/require"
)

var (
	testKey = []byte("key")
	testVal = []byte("value")
)

func TestSimpleMutableBuffering(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	db := memdb.New()
	mu := NewSimpleMutable(db)

	require.NoError(mu.Insert(ctx, testKey, testVal))

	// visible through the view
	v, err := mu.GetValue(ctx, testKey)
	require.NoError(err)
	require.Equal(testVal, v)

	// not in the database until Commit
	_, err = db.Get(testKey)
	require.ErrorIs(err, database.ErrNotFound)

	require.NoError(mu.Commit(ctx))
	v, err = db.Get(testKey)
	require.NoError(err)
	require.Equal(testVal, v)
}

func TestSimpleMutableDropped(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	db := memdb.New()
	mu := NewSimpleMutable(db)
	require.NoError(mu.Insert(ctx, testKey, testVal))

	// dropping the view without Commit leaves the database untouched
	mu = NewSimpleMutable(db)
	_, err := mu.GetValue(ctx, testKey)
	require.ErrorIs(err, database.ErrNotFound)
}

func TestSimpleMutableRemove(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	db := memdb.New()
	require.NoError(db.Put(testKey, testVal))

	mu := NewSimpleMutable(db)
	require.NoError(mu.Remove(ctx, testKey))

	// removal is visible through the view before Commit
	_, err := mu.GetValue(ctx, testKey)
	require.ErrorIs(err, database.ErrNotFound)

	require.NoError(mu.Commit(ctx))
	_, err = db.Get(testKey)
	require.ErrorIs(err, database.ErrNotFound)
}

func TestSimpleMutableReadThrough(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	db := memdb.New()
	require.NoError(db.Put(testKey, testVal))

	mu := NewSimpleMutable(db)
	v, err := mu.GetValue(ctx, testKey)
	require.NoError(err)
	require.Equal(testVal, v)
}
