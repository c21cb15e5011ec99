package display

import (
	"fmt"
	"io"
	"time"

	"github.com/dmagro/chain-dashboard/internal/rpc"
)

// BalanceFormatter formats a single balance lookup for terminal display.
type BalanceFormatter struct {
	Address     string
	BlockNumber string // hex
	Balance     string // hex wei
	Latency     time.Duration
}

// Format writes the formatted balance output to w.
func (f *BalanceFormatter) Format(w io.Writer) error {
	block := "N/A"
	if n, ok := rpc.HexToUint64(f.BlockNumber); ok {
		block = "#" + rpc.FormatNumber(n)
	}

	fmt.Fprintf(w, "\n%s\n", bold("Balance"))
	fmt.Fprintln(w, "═══════════════════════════════════════════════════")
	fmt.Fprintf(w, "  Address:   %s\n", f.Address)
	fmt.Fprintf(w, "  Balance:   %s\n", green(rpc.WeiToEther(f.Balance)+" ETH"))
	fmt.Fprintf(w, "  Block:     %s\n", block)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s\n", dim(fmt.Sprintf("fetched in %dms", f.Latency.Milliseconds())))
	fmt.Fprintln(w)

	return nil
}
