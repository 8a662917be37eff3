// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) newTokenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "token OPERATOR",
		Short: "Issue a reload token for OPERATOR",
		Long: `Sign a token that lets OPERATOR call POST /api/conf/reload and the
gRPC Reload method. The signing key comes from AUTH_TOKEN_SIGN_KEY and must
match the key of the server.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			token, err := a.Services.AuthService.CreateToken(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			event := c.logger.Info().Str("operator", args[0])
			if token.ExpiresAt != nil {
				event = event.Time("expires_at", token.ExpiresAt.Time)
			}
			event.Msg("token issued")

			_, err = fmt.Fprintln(cmd.OutOrStdout(), token.String())
			return err
		},
	}
}
