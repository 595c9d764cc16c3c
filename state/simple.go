// Copyright (C) 2024, GreetLabs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"

	"github.com/ava-labs/avalanchego/database"
)

var _ Mutable = (*SimpleMutable)(nil)

type changeOp struct {
	value  []byte
	delete bool
}

// SimpleMutable buffers all writes in memory until Commit. Dropping an
// uncommitted SimpleMutable leaves the underlying database untouched, which is
// how a failed invocation avoids partial mutation.
type SimpleMutable struct {
	db Database

	changes map[string]*changeOp
}

func NewSimpleMutable(db Database) *SimpleMutable {
	return &SimpleMutable{db, make(map[string]*changeOp)}
}

func (s *SimpleMutable) GetValue(_ context.Context, k []byte) ([]byte, error) {
	if v, ok := s.changes[string(k)]; ok {
		if v.delete {
			return nil, database.ErrNotFound
		}
		return v.value, nil
	}
	return s.db.Get(k)
}

func (s *SimpleMutable) Insert(_ context.Context, k []byte, v []byte) error {
	s.changes[string(k)] = &changeOp{value: v, delete: false}
	return nil
}

func (s *SimpleMutable) Remove(_ context.Context, k []byte) error {
	s.changes[string(k)] = &changeOp{value: nil, delete: true}
	return nil
}

// Commit writes all buffered changes to the underlying database in one batch.
func (s *SimpleMutable) Commit(context.Context) error {
	b := s.db.NewBatch()
	for k, op := range s.changes {
		if op.delete {
			if err := b.Delete([]byte(k)); err != nil {
				return err
			}
			continue
		}
		if err := b.Put([]byte(k), op.value); err != nil {
			return err
		}
	}
	if err := b.Write(); err != nil {
		return err
	}
	s.changes = make(map[string]*changeOp)
	return nil
}
