// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"

	"github.com/MKhiriev/typedconf/internal/adapter"
	"github.com/MKhiriev/typedconf/internal/tui"
	"github.com/spf13/cobra"
)

var errNotTerminal = errors.New("browse needs an interactive terminal")

func (c *cli) newBrowseCommand() *cobra.Command {
	var remote string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the resolved configuration interactively",
		Long: `Open a terminal browser over the resolved configuration. "/" filters
paths, "enter" copies the selected value, "r" resolves again.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !stdinIsTerminal() {
				return errNotTerminal
			}

			src, closeFn, err := c.browseSource(cmd, remote)
			if err != nil {
				return err
			}
			defer closeFn()

			return tui.New(src, c.logger).Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&remote, "remote", "", "browse the snapshot served at this address")

	return cmd
}

func (c *cli) browseSource(cmd *cobra.Command, remote string) (tui.Source, func() error, error) {
	if remote != "" {
		client, err := adapter.NewHTTPConfAdapter(remote, c.settings.Server.RequestTimeout, c.logger)
		if err != nil {
			return nil, nil, err
		}
		return tui.SourceFunc(client.Conf), func() error { return nil }, nil
	}

	a, err := c.newApp(cmd)
	if err != nil {
		return nil, nil, err
	}

	src := tui.SourceFunc(func(ctx context.Context) (map[string]any, string, error) {
		snapshot, err := a.Load(ctx)
		if err != nil {
			return nil, "", err
		}
		return snapshot.Tree, snapshot.Fingerprint, nil
	})
	return src, a.Close, nil
}
