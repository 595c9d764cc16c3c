// Copyright (C) 2024, GreetLabs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"context"
	"fmt"

	"github.com/ava-labs/avalanchego/ids"
	"gopkg.in/yaml.v2"

	"github.com/greetlabs/greetvm/state"
	"github.com/greetlabs/greetvm/storage"
)

type CustomAllocation struct {
	// Account is the string form of the account's ID.
	Account string `yaml:"account" json:"account"`

	// Counter optionally seeds a starting value; zero by default.
	Counter uint32 `yaml:"counter" json:"counter"`
}

type Genesis struct {
	Allocations []*CustomAllocation `yaml:"allocations" json:"allocations"`
}

func Default() *Genesis {
	return &Genesis{}
}

func New(b []byte) (*Genesis, error) {
	g := Default()
	if len(b) == 0 {
		return g, nil
	}
	if err := yaml.Unmarshal(b, g); err != nil {
		return nil, err
	}
	return g, nil
}

// Load creates every allocated greeting account, owned by [programID].
func (g *Genesis) Load(ctx context.Context, mu state.Mutable, programID ids.ID) error {
	for _, alloc := range g.Allocations {
		account, err := ids.FromString(alloc.Account)
		if err != nil {
			return fmt.Errorf("%w: %s", storage.ErrInvalidAddress, alloc.Account)
		}
		if err := storage.CreateAccount(ctx, mu, account, programID, storage.RecordBytes); err != nil {
			return err
		}
		if alloc.Counter == 0 {
			continue
		}
		record := storage.GreetingRecord{Counter: alloc.Counter}
		raw, err := record.Serialize()
		if err != nil {
			return err
		}
		if err := storage.SetAccountData(ctx, mu, account, raw); err != nil {
			return err
		}
	}
	return nil
}
