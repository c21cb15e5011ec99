package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmagro/chain-dashboard/internal/display"
	"github.com/dmagro/chain-dashboard/internal/report"
	"github.com/dmagro/chain-dashboard/internal/rpc"
)

func snapshotCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Poll once and print the dashboard",
		Long: `Poll the endpoint once and print the dashboard panel.

With --json the poll is written to reports/snapshot-<timestamp>.json instead.

Examples:
  dashboard snapshot
  dashboard snapshot --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnapshot(cmd, jsonOut)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Write a JSON report instead of printing the panel")
	return cmd
}

func runSnapshot(cmd *cobra.Command, jsonOut bool) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log := newLogger(cmd, os.Stderr)
	panel := display.NewPanel(os.Stdout, "Chain Dashboard", 0, false)
	ctrl := newController(cfg, panel, panel, log)
	ctx := cmd.Context()

	if !cfg.EndpointConfigured() {
		ctrl.Start(ctx)
		_ = panel.Format(os.Stdout)
		return rpc.ErrNotConfigured
	}

	if jsonOut {
		display.DisableColors()

		start := time.Now()
		res, pollErr := ctrl.Poll(ctx)
		snap := report.NewSnapshot(start, time.Since(start), res, pollErr)

		path, err := report.WriteJSON(report.DefaultDir, snap, "snapshot")
		if err != nil {
			return err
		}
		fmt.Printf("Report written to %s\n", path)
		return pollErr
	}

	_, refreshErr := ctrl.Start(ctx)
	fmt.Println()
	if err := panel.Format(os.Stdout); err != nil {
		return err
	}
	fmt.Println()
	return refreshErr
}
