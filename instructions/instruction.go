// Copyright (C) 2024, GreetLabs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package instructions

import (
	"encoding/binary"
	"errors"

	"github.com/greetlabs/greetvm/consts"
)

// SetCounterPayloadLen is the exact payload length required by SetCounter.
const SetCounterPayloadLen = consts.Uint32Len

var (
	ErrInvalidInstructionData = errors.New("invalid instruction data")

	_ Instruction = (*Increment)(nil)
	_ Instruction = (*Decrement)(nil)
	_ Instruction = (*SetCounter)(nil)
)

// Instruction is one decoded operation against a greeting account.
type Instruction interface {
	GetTypeID() uint8

	// Apply returns the counter value after the instruction runs. It is a
	// total function: every (counter, instruction) pair produces a value.
	Apply(counter uint32) uint32

	// Bytes encodes the instruction into its wire form (tag + payload).
	Bytes() []byte
}

type Increment struct{}

func (*Increment) GetTypeID() uint8 {
	return consts.IncrementID
}

func (*Increment) Apply(counter uint32) uint32 {
	// Wraps to zero past MaxUint32. Wrapping on both edges is part of the
	// contract (see Decrement).
	return counter + 1
}

func (*Increment) Bytes() []byte {
	return []byte{consts.IncrementID}
}

type Decrement struct{}

func (*Decrement) GetTypeID() uint8 {
	return consts.DecrementID
}

func (*Decrement) Apply(counter uint32) uint32 {
	// Decrementing zero wraps to MaxUint32. This preserves the observed
	// behavior of deployed counters; callers wanting a floor must enforce
	// it client-side.
	return counter - 1
}

func (*Decrement) Bytes() []byte {
	return []byte{consts.DecrementID}
}

type SetCounter struct {
	Value uint32
}

func (*SetCounter) GetTypeID() uint8 {
	return consts.SetCounterID
}

func (s *SetCounter) Apply(uint32) uint32 {
	return s.Value
}

func (s *SetCounter) Bytes() []byte {
	b := make([]byte, consts.ByteLen+SetCounterPayloadLen)
	b[0] = consts.SetCounterID
	binary.LittleEndian.PutUint32(b[consts.ByteLen:], s.Value)
	return b
}

// Unmarshal decodes raw instruction bytes into a typed instruction. The first
// byte is the tag; remaining bytes are the payload. Increment and Decrement
// tolerate trailing bytes, SetCounter requires exactly a 4-byte little-endian
// uint32 payload (no truncation, no padding).
func Unmarshal(b []byte) (Instruction, error) {
	if len(b) == 0 {
		return nil, ErrInvalidInstructionData
	}
	tag, payload := b[0], b[consts.ByteLen:]
	switch tag {
	case consts.IncrementID:
		return &Increment{}, nil
	case consts.DecrementID:
		return &Decrement{}, nil
	case consts.SetCounterID:
		if len(payload) != SetCounterPayloadLen {
			return nil, ErrInvalidInstructionData
		}
		return &SetCounter{Value: binary.LittleEndian.Uint32(payload)}, nil
	default:
		return nil, ErrInvalidInstructionData
	}
}
