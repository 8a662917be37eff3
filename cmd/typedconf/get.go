// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/typedconf/internal/adapter"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// valueGetter is the part of the local service and the remote adapter that
// `get` needs.
type valueGetter func(ctx context.Context, path string) (any, error)

func (c *cli) newGetCommand() *cobra.Command {
	var (
		remote    string
		copyValue bool
	)

	cmd := &cobra.Command{
		Use:   "get PATH",
		Short: "Print one configuration value",
		Long: `Print the value at PATH ("db.host" or "db/host"). Strings are printed
bare, other values as JSON. With --remote the value is read from a running
typedconf server instead of resolving locally.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			get, closeFn, err := c.newValueGetter(cmd, remote)
			if err != nil {
				return err
			}
			defer closeFn()

			value, err := get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			text, err := scalarText(value)
			if err != nil {
				return err
			}

			if copyValue {
				if err = clipboard.WriteAll(text); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				c.logger.Info().Str("path", args[0]).Msg("value copied to clipboard")
				return nil
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}

	cmd.Flags().StringVar(&remote, "remote", "", "read from the typedconf server at this address")
	cmd.Flags().BoolVar(&copyValue, "copy", false, "copy the value to the clipboard instead of printing it")

	return cmd
}

func (c *cli) newValueGetter(cmd *cobra.Command, remote string) (valueGetter, func() error, error) {
	if remote != "" {
		client, err := adapter.NewHTTPConfAdapter(remote, c.settings.Server.RequestTimeout, c.logger)
		if err != nil {
			return nil, nil, err
		}
		return client.Get, func() error { return nil }, nil
	}

	a, err := c.newApp(cmd)
	if err != nil {
		return nil, nil, err
	}

	get := func(ctx context.Context, path string) (any, error) {
		if _, err := a.Load(ctx); err != nil {
			return nil, err
		}
		return a.Services.ConfService.Value(path)
	}
	return get, a.Close, nil
}
