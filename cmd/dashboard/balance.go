package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dmagro/chain-dashboard/internal/display"
	"github.com/dmagro/chain-dashboard/internal/rpc"
	"github.com/dmagro/chain-dashboard/internal/wallet"
)

func balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance <address>",
		Short: "Look up one account balance at the latest block",
		Long: `Fetch the balance of an address at the latest block and print it in ETH.

Examples:
  dashboard balance 0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045`,
		Args: cobra.ExactArgs(1),
		RunE: runBalance,
	}
}

func runBalance(cmd *cobra.Command, args []string) error {
	addr, err := wallet.NormalizeAddress(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if !cfg.EndpointConfigured() {
		return rpc.ErrNotConfigured
	}

	log := newLogger(cmd, os.Stderr)
	client := rpc.NewClient(cfg.RPCURL)
	ctx := cmd.Context()

	var block, balance string
	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		block, err = rpc.BlockNumber(gctx, client)
		return err
	})
	g.Go(func() (err error) {
		balance, err = rpc.GetBalance(gctx, client, addr, rpc.BlockTagLatest)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("balance lookup failed: %w", err)
	}
	latency := time.Since(start)
	log.Debug("balance fetched", "address", addr, "block", block, "latency", latency)

	f := &display.BalanceFormatter{
		Address:     addr,
		BlockNumber: block,
		Balance:     balance,
		Latency:     latency,
	}
	return f.Format(os.Stdout)
}
