// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"github.com/MKhiriev/typedconf/internal/app"
	"github.com/MKhiriev/typedconf/internal/logger"
	"github.com/spf13/cobra"
)

func (c *cli) newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Resolve the configuration and serve it over HTTP and gRPC",
		Long: `Resolve the configuration once and serve the snapshot until SIGINT or
SIGTERM. The HTTP API listens on --address, the gRPC service on
--grpc-address when set. Resolutions are recorded when --db-dsn is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// The server logs JSON to stdout like any other service.
			log, err := logger.NewLogger("server").WithLevel(c.settings.Log.Level)
			if err != nil {
				return err
			}
			c.logger = log

			a, err := c.newApp(cmd, app.WithStorage())
			if err != nil {
				return err
			}
			defer a.Close()

			c.logger.Info().
				Str("version", c.build.BuildVersion()).
				Str("commit", c.build.BuildCommit()).
				Msg("starting typedconf server")

			return a.Serve(cmd.Context())
		},
	}
}
