// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"cmp"

	"github.com/MKhiriev/typedconf/internal/declaration"
	"github.com/MKhiriev/typedconf/models"
	"github.com/spf13/cobra"
)

func (c *cli) newDeclareCommand() *cobra.Command {
	var (
		out           string
		pkg           string
		typeName      string
		withSelectors bool
	)

	cmd := &cobra.Command{
		Use:   "declare",
		Short: "Generate a Go struct declaration from the configuration",
		Long: `Write a Go source file declaring a struct that mirrors the resolved
configuration. By default only default.json is resolved, so the
declaration does not depend on the selected environment; pass
--with-selectors to include the selected layers.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := c.newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			sel := models.Selectors{}
			if withSelectors {
				if sel, err = c.settings.Selectors(); err != nil {
					return err
				}
			}

			snapshot, err := a.Services.ConfService.Load(cmd.Context(), sel)
			if err != nil {
				return err
			}

			decl := c.settings.Declaration
			if out == "" {
				out = decl.Path
			}
			opts := declaration.Options{
				Package:  cmp.Or(pkg, decl.Package),
				TypeName: cmp.Or(typeName, decl.TypeName),
			}
			if out == "-" {
				return declaration.Write(cmd.OutOrStdout(), snapshot.Tree, opts)
			}
			if err = declaration.WriteFile(out, snapshot.Tree, opts); err != nil {
				return err
			}

			c.logger.Info().Str("path", out).Msg("declaration written")
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", `output file, "-" for stdout (default from DECLARATION_PATH)`)
	cmd.Flags().StringVar(&pkg, "package", "", "package name of the generated file (default from DECLARATION_PACKAGE)")
	cmd.Flags().StringVar(&typeName, "type", "", "name of the generated struct (default from DECLARATION_TYPE)")
	cmd.Flags().BoolVar(&withSelectors, "with-selectors", false, "resolve the selected layers too")

	return cmd
}
