// Copyright (C) 2024, GreetLabs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"fmt"
	"os"
	"path"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/greetlabs/greetvm/consts"
	"github.com/greetlabs/greetvm/genesis"
	"github.com/greetlabs/greetvm/pebble"
	"github.com/greetlabs/greetvm/program"
	"github.com/greetlabs/greetvm/runtime"
	"github.com/greetlabs/greetvm/state"
	"github.com/greetlabs/greetvm/storage"
)

const greetvmFolder = ".greetvm"

// genesisMarkerKey records that the genesis document was already applied.
var genesisMarkerKey = []byte("genesis")

type simulator struct {
	log        logging.Logger
	logLevel   string
	configPath string

	config *Config

	db        *pebble.Database
	dbMetrics *prometheus.Registry

	runtime        *runtime.Runtime
	runtimeMetrics *prometheus.Registry

	// One invocation at a time; the host owns cross-invocation ordering.
	callLock sync.Mutex

	cleanup func()
}

func NewRootCmd() *cobra.Command {
	s := &simulator{}
	cmd := &cobra.Command{
		Use:   "greetvm",
		Short: "greeting counter program simulator",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Help()
		},
	}

	cobra.EnablePrefixMatching = true
	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.DisableAutoGenTag = true
	cmd.SilenceErrors = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.PersistentFlags().StringVar(&s.logLevel, "log-level", "", "log level (overrides config)")
	cmd.PersistentFlags().StringVar(&s.configPath, "config", "", "path to yaml config file")

	// flags are only parsed inside Execute, so initialization must wait
	// until then
	cmd.PersistentPreRunE = func(*cobra.Command, []string) error {
		return s.Init()
	}

	// add subcommands
	cmd.AddCommand(
		newAccountCmd(s),
		newIncrementCmd(s),
		newDecrementCmd(s),
		newSetCmd(s),
		newGetCmd(s),
		newRunCmd(s),
	)

	// ensure databases and log writers are properly closed on exit
	cobra.OnFinalize(func() {
		if s.cleanup != nil {
			s.cleanup()
			s.cleanup = nil
		}
	})

	return cmd
}

// loadConfig reads the yaml config and applies flag overrides on top.
func (s *simulator) loadConfig() error {
	config, err := LoadConfig(s.configPath)
	if err != nil {
		return err
	}
	if s.logLevel != "" {
		config.LogLevel = s.logLevel
	}
	s.config = config
	return nil
}

func (s *simulator) Init() error {
	if err := s.loadConfig(); err != nil {
		return err
	}
	config := s.config

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	basePath := path.Join(homeDir, greetvmFolder)
	dbPath := config.Database
	if dbPath == "" {
		dbPath = path.Join(basePath, "db")
	}

	loggingConfig := logging.Config{}
	loggingConfig.LogLevel, err = logging.ToLevel(config.LogLevel)
	if err != nil {
		return err
	}
	loggingConfig.Directory = path.Join(basePath, "logs")
	loggingConfig.LogFormat = logging.JSON
	loggingConfig.DisableWriterDisplaying = true

	logFactory := newLogFactory(loggingConfig)
	s.log, err = logFactory.Make("greetvm")
	if err != nil {
		logFactory.Close()
		return err
	}

	s.db, s.dbMetrics, err = pebble.New(dbPath, pebble.NewDefaultConfig())
	if err != nil {
		return err
	}

	s.runtimeMetrics = prometheus.NewRegistry()
	s.runtime, err = runtime.New(s.log, s.runtimeMetrics)
	if err != nil {
		return err
	}
	s.runtime.Register(consts.ID, program.New())

	s.cleanup = func() {
		if err := s.db.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close database: %s\n", err)
		}
		logFactory.Close()
	}

	if err := s.loadGenesis(context.TODO()); err != nil {
		return err
	}

	s.log.Info("simulator initialized",
		zap.String("log-level", config.LogLevel),
		zap.Stringer("program", consts.ID),
	)
	return nil
}

// loadGenesis applies the configured genesis document exactly once per
// database.
func (s *simulator) loadGenesis(ctx context.Context) error {
	applied, err := s.db.Has(genesisMarkerKey)
	if err != nil {
		return err
	}
	if applied {
		return nil
	}
	var b []byte
	if s.config.Genesis != "" {
		b, err = os.ReadFile(s.config.Genesis)
		if err != nil {
			return err
		}
	}
	g, err := genesis.New(b)
	if err != nil {
		return err
	}
	mu := state.NewSimpleMutable(s.db)
	if err := g.Load(ctx, mu, consts.ID); err != nil {
		return err
	}
	if err := mu.Commit(ctx); err != nil {
		return err
	}
	return s.db.Put(genesisMarkerKey, []byte{1})
}

// SubmitInstruction runs one invocation against [account] and commits the
// state change. Implements rpc.Controller.
func (s *simulator) SubmitInstruction(
	ctx context.Context,
	account ids.ID,
	instruction []byte,
) (uint32, error) {
	s.callLock.Lock()
	defer s.callLock.Unlock()

	mu := state.NewSimpleMutable(s.db)
	counter, err := s.runtime.Call(ctx, &runtime.CallInfo{
		State:           mu,
		ProgramID:       consts.ID,
		Accounts:        []ids.ID{account},
		InstructionData: instruction,
	})
	if err != nil {
		// mu is dropped uncommitted; stored bytes are untouched.
		return 0, err
	}
	return counter, mu.Commit(ctx)
}

// GetCounter implements rpc.Controller.
func (s *simulator) GetCounter(ctx context.Context, account ids.ID) (uint32, error) {
	return storage.GetCounter(ctx, state.NewSimpleMutable(s.db), account)
}
