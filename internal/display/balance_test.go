package display

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalanceFormatter(t *testing.T) {
	tests := []struct {
		name  string
		block string
		want  []string
	}{
		{"valid block", "0x1312d00", []string{"Block:     #20,000,000", "Balance:   1.5000 ETH"}},
		{"malformed block", "0xzz", []string{"Block:     N/A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			f := &BalanceFormatter{
				Address:     "0x2a63E334e71Cb80B857D4b5821e673C73Ce18a68",
				BlockNumber: tt.block,
				Balance:     "0x14d1120d7b160000",
				Latency:     42 * time.Millisecond,
			}
			require.NoError(t, f.Format(&buf))

			out := buf.String()
			assert.Contains(t, out, "0x2a63E334e71Cb80B857D4b5821e673C73Ce18a68")
			assert.Contains(t, out, "fetched in 42ms")
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}
