// Copyright (C) 2024, GreetLabs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"crypto/rand"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/greetlabs/greetvm/consts"
	"github.com/greetlabs/greetvm/state"
	"github.com/greetlabs/greetvm/storage"
)

func newAccountCmd(s *simulator) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "manage greeting accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(
		newAccountCreateCmd(s),
	)
	return cmd
}

func newAccountCreateCmd(s *simulator) *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "allocate a zero-initialized greeting account owned by the program",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()

			b := make([]byte, ids.IDLen)
			if _, err := rand.Read(b); err != nil {
				return err
			}
			account, err := ids.ToID(b)
			if err != nil {
				return err
			}

			mu := state.NewSimpleMutable(s.db)
			if err := storage.CreateAccount(ctx, mu, account, consts.ID, storage.RecordBytes); err != nil {
				return err
			}
			if err := mu.Commit(ctx); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), account.String())
			return nil
		},
	}
}
