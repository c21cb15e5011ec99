// Package report provides the JSON form of a dashboard poll and writes it
// to timestamped files so snapshots can be compared over time.
package report

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"time"

	"github.com/dmagro/chain-dashboard/internal/dashboard"
	"github.com/dmagro/chain-dashboard/internal/rpc"
)

// DefaultDir is where WriteJSON puts report files.
const DefaultDir = "reports"

// MillisDuration marshals a time.Duration as an integer millisecond count.
type MillisDuration time.Duration

func (d MillisDuration) MarshalJSON() ([]byte, error) {
	ms := time.Duration(d).Milliseconds()
	return json.Marshal(ms)
}

// Snapshot is one poll in JSON form. Numeric fields are pointers so that
// values the node did not return are omitted rather than reported as zero.
// Wei amounts are decimal strings because they overflow JSON numbers.
type Snapshot struct {
	Timestamp time.Time      `json:"timestamp"`
	Address   string         `json:"address,omitempty"`
	LatencyMS MillisDuration `json:"latency_ms"`

	BlockNumber *uint64 `json:"block_number,omitempty"`
	GasPriceWei *string `json:"gas_price_wei,omitempty"`
	GasPrice    string  `json:"gas_price,omitempty"`
	BalanceWei  *string `json:"balance_wei,omitempty"`
	Balance     string  `json:"balance,omitempty"`

	Status string  `json:"status"`
	Error  *string `json:"error,omitempty"`
}

// NewSnapshot converts a poll outcome into a Snapshot.
func NewSnapshot(at time.Time, latency time.Duration, res dashboard.PollResult, err error) *Snapshot {
	s := &Snapshot{
		Timestamp: at.UTC(),
		Address:   res.Address,
		LatencyMS: MillisDuration(latency),
	}

	if err != nil {
		msg := err.Error()
		s.Error = &msg
		s.Status = dashboard.StatusErrorPrefix + msg
		return s
	}
	s.Status = dashboard.StatusOK

	if n, ok := rpc.HexToUint64(res.BlockNumber); ok {
		s.BlockNumber = &n
	}
	if wei, ok := rpc.ParseHexBig(res.GasPrice); ok {
		s.GasPriceWei = decimal(wei)
		s.GasPrice = res.Gas()
	}
	if res.Address != "" {
		if wei, ok := rpc.ParseHexBig(res.Balance); ok {
			s.BalanceWei = decimal(wei)
		}
		s.Balance = res.Ether()
	}
	return s
}

func decimal(v *big.Int) *string {
	s := v.String()
	return &s
}

// WriteJSON writes data as indented JSON to dir/{prefix}-{YYYYMMDD-HHMMSS}.json,
// creating dir if needed, and returns the file path.
func WriteJSON(dir string, data interface{}, prefix string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create reports directory: %w", err)
	}

	timestamp := time.Now().Format("20060102-150405")
	path := filepath.Join(dir, fmt.Sprintf("%s-%s.json", prefix, timestamp))

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return "", fmt.Errorf("failed to encode JSON: %w", err)
	}

	return path, nil
}
