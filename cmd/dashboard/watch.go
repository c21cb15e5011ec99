package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmagro/chain-dashboard/internal/dashboard"
	"github.com/dmagro/chain-dashboard/internal/display"
)

func watchCmd() *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Interactive dashboard, refreshed on a fixed interval",
		Long: `Show the dashboard and refresh it on a fixed interval until interrupted.

Type a key and press Enter:
  r  refresh now
  c  connect wallet
  y  copy the connected address
  q  quit

Examples:
  dashboard watch
  dashboard watch --interval 5s`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, interval)
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 0, "Refresh interval (defaults to config)")
	return cmd
}

func runWatch(cmd *cobra.Command, intervalOverride time.Duration) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	interval := cfg.RefreshInterval
	if intervalOverride > 0 {
		interval = intervalOverride
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	log := newLogger(cmd, os.Stderr)
	panel := display.NewPanel(os.Stdout, "Chain Dashboard", interval, true)

	var opts []dashboard.Option
	if w := dialWallet(ctx, cfg, log); w != nil {
		defer w.Close()
		opts = append(opts, dashboard.WithWallet(w))
	}
	ctrl := newController(cfg, panel, panel, log, opts...)

	commands := make(chan dashboard.Command)
	go readCommands(ctx, os.Stdin, commands, cancel)

	err = ctrl.Run(ctx, interval, commands)

	display.Clear(os.Stdout)
	fmt.Println("Exiting...")
	return err
}

// readCommands turns input lines into dashboard commands. "q" cancels the
// loop; EOF only stops reading so the panel keeps polling when stdin is not
// a terminal.
func readCommands(ctx context.Context, r io.Reader, out chan<- dashboard.Command, quit context.CancelFunc) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if line == "" {
			continue
		}

		var cmd dashboard.Command
		switch line[0] {
		case 'r':
			cmd = dashboard.CommandRefresh
		case 'c':
			cmd = dashboard.CommandConnect
		case 'y':
			cmd = dashboard.CommandCopyAddress
		case 'q':
			quit()
			return
		default:
			continue
		}

		select {
		case out <- cmd:
		case <-ctx.Done():
			return
		}
	}
}
