// Copyright (C) 2024, GreetLabs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"
)

type Controller interface {
	// SubmitInstruction runs one invocation against [account] and commits
	// the result. Returns the counter value after the instruction.
	SubmitInstruction(ctx context.Context, account ids.ID, instruction []byte) (uint32, error)

	// GetCounter reads the current counter for [account].
	GetCounter(ctx context.Context, account ids.ID) (uint32, error)
}
