// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/typedconf/internal/adapter"
	"github.com/MKhiriev/typedconf/internal/app"
	"github.com/MKhiriev/typedconf/models"
	"github.com/spf13/cobra"
)

func (c *cli) newHistoryCommand() *cobra.Command {
	var (
		limit  int
		remote string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded resolutions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				summaries []models.SnapshotSummary
				err       error
			)
			if remote != "" {
				summaries, err = c.remoteHistory(cmd, remote, limit)
			} else {
				summaries, err = c.localHistory(cmd, limit)
			}
			if err != nil {
				return err
			}

			if asJSON {
				return writeValue(cmd.OutOrStdout(), models.HistoryResponse{
					Snapshots: summaries,
					Length:    len(summaries),
				}, outputJSON)
			}
			return writeHistoryTable(cmd.OutOrStdout(), summaries)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of entries")
	cmd.Flags().StringVar(&remote, "remote", "", "read from the typedconf server at this address")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")

	return cmd
}

func (c *cli) localHistory(cmd *cobra.Command, limit int) ([]models.SnapshotSummary, error) {
	a, err := c.newApp(cmd, app.WithStorage())
	if err != nil {
		return nil, err
	}
	defer a.Close()

	snapshots, err := a.Snapshots(cmd.Context(), limit)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.SnapshotSummary, 0, len(snapshots))
	for i := range snapshots {
		summaries = append(summaries, snapshots[i].Summary())
	}
	return summaries, nil
}

func (c *cli) remoteHistory(cmd *cobra.Command, remote string, limit int) ([]models.SnapshotSummary, error) {
	client, err := adapter.NewHTTPConfAdapter(remote, c.settings.Server.RequestTimeout, c.logger)
	if err != nil {
		return nil, err
	}

	resp, err := client.History(cmd.Context(), limit)
	if err != nil {
		return nil, err
	}
	return resp.Snapshots, nil
}

func writeHistoryTable(w io.Writer, summaries []models.SnapshotSummary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RESOLVED AT\tID\tENVIRONMENT\tDEPLOYMENT\tUSER\tFINGERPRINT")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			s.ResolvedAt.Local().Format(time.DateTime),
			s.ID,
			dash(s.Environment),
			dash(s.Deployment),
			dash(s.User),
			shortFingerprint(s.Fingerprint),
		)
	}
	return tw.Flush()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func shortFingerprint(fp string) string {
	if len(fp) > 12 {
		return fp[:12]
	}
	return fp
}
