// Copyright (C) 2024, GreetLabs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

import "github.com/ava-labs/avalanchego/ids"

const (
	Name = "greetvm"

	ByteLen   = 1
	Uint32Len = 4
)

// ID is the identity of the greeting program. Accounts mutated by the program
// must record it as their owner.
var ID ids.ID

func init() {
	b := make([]byte, ids.IDLen)
	copy(b, []byte(Name))
	programID, err := ids.ToID(b)
	if err != nil {
		panic(err)
	}
	ID = programID
}
