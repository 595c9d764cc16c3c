// Copyright (C) 2024, GreetLabs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/greetlabs/greetvm/instructions"
)

func newIncrementCmd(s *simulator) *cobra.Command {
	return &cobra.Command{
		Use:   "increment [account]",
		Short: "increment the account's greeting counter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return invoke(cmd, s, args[0], &instructions.Increment{})
		},
	}
}

func newDecrementCmd(s *simulator) *cobra.Command {
	return &cobra.Command{
		Use:   "decrement [account]",
		Short: "decrement the account's greeting counter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return invoke(cmd, s, args[0], &instructions.Decrement{})
		},
	}
}

func newSetCmd(s *simulator) *cobra.Command {
	return &cobra.Command{
		Use:   "set [account] [value]",
		Short: "set the account's greeting counter",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseUint(args[1], 10, 32)
			if err != nil {
				return err
			}
			return invoke(cmd, s, args[0], &instructions.SetCounter{Value: uint32(value)})
		},
	}
}

func newGetCmd(s *simulator) *cobra.Command {
	return &cobra.Command{
		Use:   "get [account]",
		Short: "print the account's greeting counter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := ids.FromString(args[0])
			if err != nil {
				return err
			}
			counter, err := s.GetCounter(context.Background(), account)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), counter)
			return nil
		},
	}
}

func invoke(cmd *cobra.Command, s *simulator, accountStr string, in instructions.Instruction) error {
	account, err := ids.FromString(accountStr)
	if err != nil {
		return err
	}
	counter, err := s.SubmitInstruction(context.Background(), account, in.Bytes())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), counter)
	return nil
}
