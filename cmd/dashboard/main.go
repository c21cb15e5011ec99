// Command dashboard shows the chain tip height, gas price and an account
// balance from one Ethereum JSON-RPC endpoint, and lets the user connect a
// wallet to view its own balance.
//
// Usage:
//
//	dashboard                      ← interactive panel, refreshed every 15s
//	dashboard watch --interval 5s  ← same, custom interval
//	dashboard snapshot --json      ← one poll, written to reports/
//	dashboard balance 0xd8dA...    ← one balance lookup
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmagro/chain-dashboard/internal/config"
)

func main() {
	config.LoadEnv()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	watch := watchCmd()

	root := &cobra.Command{
		Use:   "dashboard",
		Short: "Chain tip, gas price and wallet balance at a glance",
		Long: `Poll an Ethereum JSON-RPC endpoint for block height, gas price and an
account balance. Connect a wallet (an external signer reachable at
wallet_url) to view its own balance.

Configuration is read from config/dashboard.yaml, a .env file, and the
DASHBOARD_RPC_URL, DASHBOARD_DEFAULT_ADDRESS and DASHBOARD_WALLET_URL
environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          watch.RunE,
	}

	root.PersistentFlags().String("config", "config/dashboard.yaml", "Config file path")
	root.PersistentFlags().Bool("debug", false, "Enable debug logging")
	root.Flags().AddFlagSet(watch.Flags())

	root.AddCommand(watch, snapshotCmd(), balanceCmd())
	return root
}
