// Copyright (C) 2024, GreetLabs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"fmt"

	"github.com/near/borsh-go"

	"github.com/greetlabs/greetvm/consts"
)

// RecordBytes is the serialized size of a GreetingRecord. Account data slots
// are allocated at exactly this size.
const RecordBytes = consts.Uint32Len

// GreetingRecord is the state stored in a greeting account.
type GreetingRecord struct {
	// Counter is the number of times the account has been greeted.
	Counter uint32
}

// DeserializeRecord decodes the borsh-encoded record held in an account's
// data slot.
func DeserializeRecord(data []byte) (*GreetingRecord, error) {
	if len(data) < RecordBytes {
		return nil, fmt.Errorf("%w: %d bytes, need %d", ErrCorruptRecord, len(data), RecordBytes)
	}
	r := new(GreetingRecord)
	if err := borsh.Deserialize(r, data[:RecordBytes]); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCorruptRecord, err)
	}
	return r, nil
}

// Serialize encodes the record into its stored form (little-endian uint32).
func (r *GreetingRecord) Serialize() ([]byte, error) {
	return borsh.Serialize(*r)
}
