// Copyright (C) 2024, GreetLabs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package instructions

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/greetlabs/greetvm/consts"
)

func TestUnmarshalIncrementDecrement(t *testing.T) {
	require := require.New(t)

	// trailing bytes are tolerated on tags 0 and 1
	for _, b := range [][]byte{
		{consts.IncrementID},
		{consts.IncrementID, 0xff},
		{consts.IncrementID, 1, 2, 3, 4, 5},
	} {
		in, err := Unmarshal(b)
		require.NoError(err)
		require.IsType(&Increment{}, in)
	}
	for _, b := range [][]byte{
		{consts.DecrementID},
		{consts.DecrementID, 0xff, 0xff},
	} {
		in, err := Unmarshal(b)
		require.NoError(err)
		require.IsType(&Decrement{}, in)
	}
}

func TestUnmarshalSetCounter(t *testing.T) {
	require := require.New(t)

	in, err := Unmarshal([]byte{consts.SetCounterID, 0x0a, 0x00, 0x00, 0x00})
	require.NoError(err)
	set, ok := in.(*SetCounter)
	require.True(ok)
	require.Equal(uint32(10), set.Value)

	// little-endian byte order
	in, err = Unmarshal([]byte{consts.SetCounterID, 0x78, 0x56, 0x34, 0x12})
	require.NoError(err)
	require.Equal(uint32(0x12345678), in.(*SetCounter).Value)
}

func TestUnmarshalSetCounterExactPayload(t *testing.T) {
	require := require.New(t)

	// payload must be exactly 4 bytes; short and long both rejected
	for _, b := range [][]byte{
		{consts.SetCounterID},
		{consts.SetCounterID, 1},
		{consts.SetCounterID, 1, 2},
		{consts.SetCounterID, 1, 2, 3},
		{consts.SetCounterID, 1, 2, 3, 4, 5},
	} {
		_, err := Unmarshal(b)
		require.ErrorIs(err, ErrInvalidInstructionData)
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	require := require.New(t)

	_, err := Unmarshal(nil)
	require.ErrorIs(err, ErrInvalidInstructionData)
	_, err = Unmarshal([]byte{})
	require.ErrorIs(err, ErrInvalidInstructionData)

	for tag := 3; tag <= 0xff; tag += 41 {
		_, err := Unmarshal([]byte{byte(tag), 0, 0, 0, 0})
		require.ErrorIs(err, ErrInvalidInstructionData)
	}
}

func TestApplyWrapping(t *testing.T) {
	require := require.New(t)

	require.Equal(uint32(1), (&Increment{}).Apply(0))
	require.Equal(uint32(0), (&Increment{}).Apply(math.MaxUint32))

	require.Equal(uint32(0), (&Decrement{}).Apply(1))
	require.Equal(uint32(math.MaxUint32), (&Decrement{}).Apply(0))
}

func TestApplySetCounter(t *testing.T) {
	require := require.New(t)

	// set ignores the prior value
	for _, prior := range []uint32{0, 1, 42, math.MaxUint32} {
		require.Equal(uint32(7), (&SetCounter{Value: 7}).Apply(prior))
	}
}

func TestBytesRoundTrip(t *testing.T) {
	require := require.New(t)

	for _, in := range []Instruction{
		&Increment{},
		&Decrement{},
		&SetCounter{Value: 0xdeadbeef},
	} {
		decoded, err := Unmarshal(in.Bytes())
		require.NoError(err)
		require.Equal(in, decoded)
	}
}
