// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"github.com/spf13/cobra"
)

func (c *cli) newResolveCommand() *cobra.Command {
	var (
		output     string
		unresolved bool
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the resolved configuration",
		Long: `Print the configuration selected by --environment, --deployment, --user
and --override. With --unresolved the merged layers are printed as-is,
directives and placeholders included.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := c.newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if unresolved {
				sel, err := c.settings.Selectors()
				if err != nil {
					return err
				}
				root, err := a.Services.ConfService.Unresolved(cmd.Context(), sel)
				if err != nil {
					return err
				}
				return writeValue(cmd.OutOrStdout(), root.Interface(), output)
			}

			snapshot, err := a.Load(cmd.Context())
			if err != nil {
				return err
			}
			return writeValue(cmd.OutOrStdout(), snapshot.Tree, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputJSON, "output format: json or yaml")
	cmd.Flags().BoolVar(&unresolved, "unresolved", false, "print merged layers without resolving directives")

	return cmd
}
