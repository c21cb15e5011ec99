package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmagro/chain-dashboard/internal/config"
	"github.com/dmagro/chain-dashboard/internal/dashboard"
	"github.com/dmagro/chain-dashboard/internal/rpc"
	"github.com/dmagro/chain-dashboard/internal/wallet"
)

const walletDialTimeout = 5 * time.Second

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		cfgPath, _ = cmd.Root().PersistentFlags().GetString("config")
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// dialWallet connects to the configured wallet provider. A missing or
// unreachable wallet is not fatal: Connect then reports that no wallet was
// detected.
func dialWallet(ctx context.Context, cfg *config.Config, log *slog.Logger) *wallet.RPCProvider {
	if !cfg.WalletConfigured() {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, walletDialTimeout)
	defer cancel()

	p, err := wallet.Dial(ctx, cfg.WalletURL)
	if err != nil {
		log.Warn("wallet unavailable", "url", cfg.WalletURL, "error", err)
		return nil
	}
	return p
}

func newController(cfg *config.Config, surface dashboard.Surface, notifier dashboard.Notifier, log *slog.Logger, opts ...dashboard.Option) *dashboard.Controller {
	client := rpc.NewClient(cfg.RPCURL)
	opts = append([]dashboard.Option{
		dashboard.WithLogger(log),
		dashboard.WithClipboard(wallet.SystemClipboard{}),
	}, opts...)
	return dashboard.New(cfg, client, surface, notifier, opts...)
}
