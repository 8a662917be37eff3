// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/typedconf/internal/app"
	"github.com/MKhiriev/typedconf/internal/config"
	"github.com/MKhiriev/typedconf/internal/logger"
	"github.com/MKhiriev/typedconf/models"
	"github.com/spf13/cobra"
)

// cli carries state shared by the subcommands of one invocation.
type cli struct {
	build    models.AppBuildInfo
	settings *config.Settings
	logger   *logger.Logger
}

func newRootCommand(build models.AppBuildInfo) *cobra.Command {
	c := &cli{build: build}

	root := &cobra.Command{
		Use:   "typedconf",
		Short: "Layered JSON configuration with loader directives",
		Long: `typedconf merges default.json with environment, deployment and user
layers and an inline override, then resolves {"[loader]": params}
directives and "${ENV}" placeholders into a plain configuration tree.`,
		Version:      fmt.Sprintf("%s (built %s, commit %s)", build.BuildVersion(), build.BuildDate(), build.BuildCommit()),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.init(cmd)
		},
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		c.newResolveCommand(),
		c.newGetCommand(),
		c.newDeclareCommand(),
		c.newServeCommand(),
		c.newHistoryCommand(),
		c.newBrowseCommand(),
		c.newTokenCommand(),
	)

	return root
}

func (c *cli) init(cmd *cobra.Command) error {
	base := logger.NewConsoleLogger("typedconf", cmd.ErrOrStderr())

	settings, err := config.GetSettings(cmd.Flags())
	if err != nil {
		base.Err(err).Msg("error getting settings")
		return err
	}

	log, err := base.WithLevel(settings.Log.Level)
	if err != nil {
		base.Err(err).Msg("error setting log level")
		return err
	}

	c.settings = settings
	c.logger = log
	log.Debug().
		Str("conf_dir", settings.Layers.Dir).
		Str("environment", settings.Layers.Environment).
		Str("deployment", settings.Layers.Deployment).
		Str("user", settings.Layers.User).
		Msg("received settings")

	return nil
}

// newApp wires the application for one command. Callers must Close it.
func (c *cli) newApp(cmd *cobra.Command, opts ...app.Option) (*app.App, error) {
	a, err := app.New(cmd.Context(), c.settings, c.build, c.logger, opts...)
	if err != nil {
		c.logger.Err(err).Msg("error creating application")
		return nil, err
	}
	return a, nil
}

// stdinIsTerminal reports whether interactive output makes sense.
func stdinIsTerminal() bool {
	info, err := os.Stdin.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
