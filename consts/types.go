// Copyright (C) 2024, GreetLabs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

const (
	// Instruction TypeIDs
	IncrementID  uint8 = 0
	DecrementID  uint8 = 1
	SetCounterID uint8 = 2
)
