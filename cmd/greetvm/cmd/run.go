// Copyright (C) 2024, GreetLabs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/greetlabs/greetvm/rpc"
	"github.com/greetlabs/greetvm/server"
)

const shutdownTimeout = 10 * time.Second

func newRunCmd(s *simulator) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "serve the JSON-RPC API",
		RunE: func(*cobra.Command, []string) error {
			listener, err := net.Listen("tcp", fmt.Sprintf(
				"%s:%d",
				s.config.HTTPHost,
				s.config.HTTPPort,
			))
			if err != nil {
				return err
			}

			srv := server.New(
				s.log,
				listener,
				server.HTTPConfig{
					ReadTimeout:       30 * time.Second,
					ReadHeaderTimeout: 30 * time.Second,
					WriteTimeout:      30 * time.Second,
					IdleTimeout:       120 * time.Second,
				},
				s.config.AllowedOrigins,
				shutdownTimeout,
			)

			handler, err := server.NewHandler(rpc.NewJSONRPCServer(s), "greetvm")
			if err != nil {
				return err
			}
			srv.AddRoute(handler, rpc.Endpoint)
			srv.AddRoute(promhttp.HandlerFor(
				prometheus.Gatherers{s.runtimeMetrics, s.dbMetrics},
				promhttp.HandlerOpts{},
			), "/metrics")

			sigs := make(chan os.Signal, 1)
			signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				sig := <-sigs
				s.log.Info("shutting down",
					zap.String("signal", sig.String()),
				)
				_ = srv.Shutdown()
			}()

			s.log.Info("serving",
				zap.String("address", listener.Addr().String()),
			)
			if err := srv.Dispatch(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
}
