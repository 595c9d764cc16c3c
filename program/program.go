// Copyright (C) 2024, GreetLabs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package program

import (
	"context"
	"errors"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/greetlabs/greetvm/instructions"
	"github.com/greetlabs/greetvm/state"
	"github.com/greetlabs/greetvm/storage"
)

var (
	ErrNotEnoughAccounts = errors.New("not enough account keys")

	// ErrIncorrectOwner is returned when the target account's recorded owner
	// does not match the invoking program's identity.
	ErrIncorrectOwner = errors.New("greeting account not owned by program")
)

// Greeting is the on-ledger greeting counter program.
type Greeting struct{}

func New() *Greeting {
	return &Greeting{}
}

// Process runs one invocation: decode the instruction, verify the target
// account is owned by [programID], then read-modify-write its greeting
// record. The first element of [accounts] is the target. Any error is
// terminal and leaves state untouched (writes only happen as the last step).
// Returns the counter value after the instruction is applied.
func (*Greeting) Process(
	ctx context.Context,
	mu state.Mutable,
	programID ids.ID,
	accounts []ids.ID,
	instructionData []byte,
) (uint32, error) {
	instruction, err := instructions.Unmarshal(instructionData)
	if err != nil {
		return 0, err
	}

	if len(accounts) == 0 {
		return 0, ErrNotEnoughAccounts
	}
	target := accounts[0]

	// The account must be owned by the program for the program to modify
	// its data.
	owner, err := storage.GetAccountOwner(ctx, mu, target)
	if err != nil {
		return 0, err
	}
	if owner != programID {
		return 0, ErrIncorrectOwner
	}

	data, err := storage.GetAccountData(ctx, mu, target)
	if err != nil {
		return 0, err
	}
	record, err := storage.DeserializeRecord(data)
	if err != nil {
		return 0, err
	}

	record.Counter = instruction.Apply(record.Counter)

	raw, err := record.Serialize()
	if err != nil {
		return 0, err
	}
	if err := storage.SetAccountData(ctx, mu, target, raw); err != nil {
		return 0, err
	}
	return record.Counter, nil
}
