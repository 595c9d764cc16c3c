// Copyright (C) 2024, GreetLabs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"net/http"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/formatting"
)

// Endpoint is the base path the JSON-RPC service is registered under.
const Endpoint = "/greetvm"

type JSONRPCServer struct {
	c Controller
}

func NewJSONRPCServer(c Controller) *JSONRPCServer {
	return &JSONRPCServer{c}
}

type SubmitArgs struct {
	Account string `json:"account"`

	// Instruction is the hex-encoded raw instruction bytes (tag + payload).
	Instruction string `json:"instruction"`
}

type SubmitReply struct {
	Counter uint32 `json:"counter"`
}

func (j *JSONRPCServer) Submit(req *http.Request, args *SubmitArgs, reply *SubmitReply) error {
	account, err := ids.FromString(args.Account)
	if err != nil {
		return err
	}
	instruction, err := formatting.Decode(formatting.Hex, args.Instruction)
	if err != nil {
		return err
	}
	counter, err := j.c.SubmitInstruction(req.Context(), account, instruction)
	if err != nil {
		return err
	}
	reply.Counter = counter
	return nil
}

type CounterArgs struct {
	Account string `json:"account"`
}

type CounterReply struct {
	Counter uint32 `json:"counter"`
}

func (j *JSONRPCServer) Counter(req *http.Request, args *CounterArgs, reply *CounterReply) error {
	account, err := ids.FromString(args.Account)
	if err != nil {
		return err
	}
	counter, err := j.c.GetCounter(req.Context(), account)
	if err != nil {
		return err
	}
	reply.Counter = counter
	return nil
}
