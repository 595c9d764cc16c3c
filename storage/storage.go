// Copyright (C) 2024, GreetLabs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"errors"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"

	"github.com/greetlabs/greetvm/consts"
	"github.com/greetlabs/greetvm/state"
)

// State
// 0x0/ (account owner)
//   -> [account] => [owner]
// 0x1/ (account data)
//   -> [account] => [data]

const (
	accountOwnerPrefix byte = 0x0
	accountDataPrefix  byte = 0x1
)

// [accountOwnerPrefix] + [account]
func AccountOwnerKey(account ids.ID) []byte {
	k := make([]byte, consts.ByteLen+ids.IDLen)
	k[0] = accountOwnerPrefix
	copy(k[consts.ByteLen:], account[:])
	return k
}

// [accountDataPrefix] + [account]
func AccountDataKey(account ids.ID) []byte {
	k := make([]byte, consts.ByteLen+ids.IDLen)
	k[0] = accountDataPrefix
	copy(k[consts.ByteLen:], account[:])
	return k
}

// CreateAccount allocates a zero-filled data slot of [size] bytes for
// [account] and records [owner] as its owner.
func CreateAccount(
	ctx context.Context,
	mu state.Mutable,
	account ids.ID,
	owner ids.ID,
	size uint64,
) error {
	exists, err := AccountExists(ctx, mu, account)
	if err != nil {
		return err
	}
	if exists {
		return ErrAccountExists
	}
	if err := mu.Insert(ctx, AccountOwnerKey(account), owner[:]); err != nil {
		return err
	}
	return mu.Insert(ctx, AccountDataKey(account), make([]byte, size))
}

func AccountExists(
	ctx context.Context,
	im state.Immutable,
	account ids.ID,
) (bool, error) {
	_, err := im.GetValue(ctx, AccountOwnerKey(account))
	if errors.Is(err, database.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func GetAccountOwner(
	ctx context.Context,
	im state.Immutable,
	account ids.ID,
) (ids.ID, error) {
	v, err := im.GetValue(ctx, AccountOwnerKey(account))
	if err != nil {
		return ids.Empty, err
	}
	return ids.ToID(v)
}

func GetAccountData(
	ctx context.Context,
	im state.Immutable,
	account ids.ID,
) ([]byte, error) {
	return im.GetValue(ctx, AccountDataKey(account))
}

func SetAccountData(
	ctx context.Context,
	mu state.Mutable,
	account ids.ID,
	data []byte,
) error {
	return mu.Insert(ctx, AccountDataKey(account), data)
}

// GetCounter reads the greeting counter out of [account]'s data slot. Used to
// serve queries; the invocation path goes through DeserializeRecord directly.
func GetCounter(
	ctx context.Context,
	im state.Immutable,
	account ids.ID,
) (uint32, error) {
	data, err := GetAccountData(ctx, im, account)
	if err != nil {
		return 0, err
	}
	record, err := DeserializeRecord(data)
	if err != nil {
		return 0, err
	}
	return record.Counter, nil
}
