// Copyright (C) 2024, GreetLabs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"context"
	"errors"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/greetlabs/greetvm/state"
)

var ErrProgramNotFound = errors.New("program not found")

// Program is one on-ledger program the runtime can invoke.
type Program interface {
	Process(
		ctx context.Context,
		mu state.Mutable,
		programID ids.ID,
		accounts []ids.ID,
		instructionData []byte,
	) (uint32, error)
}

// CallInfo carries everything the host passes into one invocation. There is
// no ambient state: each call is independent except for what lives in State.
type CallInfo struct {
	// State is the invocation's exclusive, serialized view of account
	// storage.
	State state.Mutable

	// ProgramID selects the program to run and is the identity used for the
	// ownership check.
	ProgramID ids.ID

	// Accounts is the ordered account set; the first element is the target.
	Accounts []ids.ID

	// InstructionData is the raw instruction byte sequence.
	InstructionData []byte
}

// Runtime dispatches invocations to registered programs.
type Runtime struct {
	log      logging.Logger
	metrics  *metrics
	programs map[ids.ID]Program
}

func New(log logging.Logger, r *prometheus.Registry) (*Runtime, error) {
	m, err := newMetrics(r)
	if err != nil {
		return nil, err
	}
	return &Runtime{
		log:      log,
		metrics:  m,
		programs: map[ids.ID]Program{},
	}, nil
}

func (r *Runtime) Register(programID ids.ID, p Program) {
	r.programs[programID] = p
}

// Call runs one invocation to completion. Errors are returned synchronously
// and are terminal for the invocation; nothing is retried.
func (r *Runtime) Call(ctx context.Context, callInfo *CallInfo) (uint32, error) {
	p, ok := r.programs[callInfo.ProgramID]
	if !ok {
		r.metrics.callsRejected.Inc()
		return 0, ErrProgramNotFound
	}
	counter, err := p.Process(
		ctx,
		callInfo.State,
		callInfo.ProgramID,
		callInfo.Accounts,
		callInfo.InstructionData,
	)
	if err != nil {
		r.metrics.callsFailed.Inc()
		r.log.Debug("invocation failed",
			zap.Stringer("program", callInfo.ProgramID),
			zap.Error(err),
		)
		return 0, err
	}
	r.metrics.callsSucceeded.Inc()
	r.log.Info("greeted",
		zap.Stringer("account", callInfo.Accounts[0]),
		zap.Uint32("counter", counter),
	)
	return counter, nil
}
