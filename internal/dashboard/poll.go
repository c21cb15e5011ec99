package dashboard

import "github.com/dmagro/chain-dashboard/internal/rpc"

// PollResult holds the raw hex values of one poll. Balance is empty when no
// address was available to look up.
type PollResult struct {
	Address     string
	BlockNumber string
	GasPrice    string
	Balance     string
}

// Block returns the formatted block height, or NotAvailable.
func (r PollResult) Block() string {
	n, ok := rpc.HexToUint64(r.BlockNumber)
	if !ok {
		return NotAvailable
	}
	return rpc.FormatNumber(n)
}

// Gas returns the gas price in gwei, or NotAvailable when the node
// returned nothing.
func (r PollResult) Gas() string {
	if r.GasPrice == "" {
		return NotAvailable
	}
	return rpc.WeiToGwei(r.GasPrice) + " Gwei"
}

// Ether returns the balance in ether, or NotAvailable when no address was
// looked up.
func (r PollResult) Ether() string {
	if r.Address == "" {
		return NotAvailable
	}
	return rpc.WeiToEther(r.Balance) + " ETH"
}

// Fields maps the result onto the value slots of the surface.
func (r PollResult) Fields() map[Field]string {
	return map[Field]string{
		FieldBlockHeight: r.Block(),
		FieldGasPrice:    r.Gas(),
		FieldBalance:     r.Ether(),
	}
}
