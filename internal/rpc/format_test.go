package rpc

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexToUint64(t *testing.T) {
	tests := []struct {
		name   string
		hex    string
		want   uint64
		wantOK bool
	}{
		{"small", "0x10", 16, true},
		{"zero", "0x0", 0, true},
		{"upper prefix", "0X1F", 31, true},
		{"no prefix", "ff", 255, true},
		{"leading zeros", "0x0010", 16, true},
		{"max uint64", "0xffffffffffffffff", 1<<64 - 1, true},
		{"overflow", "0x10000000000000000", 0, false},
		{"empty", "", 0, false},
		{"prefix only", "0x", 0, false},
		{"not hex", "0xzz", 0, false},
		{"negative", "-0x10", 0, false},
		{"signed digits", "0x-10", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := HexToUint64(tt.hex)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHexToUint64MatchesBase16(t *testing.T) {
	for _, n := range []uint64{1, 255, 4096, 21_233_467, 1 << 53, 1<<63 + 7} {
		got, ok := HexToUint64(fmt.Sprintf("0x%x", n))
		assert.True(t, ok)
		assert.Equal(t, n, got)
	}
}

func TestWeiToEther(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want string
	}{
		{"one ether", "0xde0b6b3a7640000", "1.0000"},
		{"zero", "0x0", "0.0000"},
		{"just under two ether truncates", "0x1bc16d674ec7ffff", "1.9999"},
		{"sub-unit dust", "0x5af3107a3fff", "0.0000"},
		{"one ten-thousandth", "0x5af3107a4000", "0.0001"},
		{"malformed", "garbage", "0.0000"},
		{"empty", "", "0.0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeiToEther(tt.hex))
		})
	}
}

func TestWeiToEtherBeyondFloatPrecision(t *testing.T) {
	// 123456789.123456789123456789 ether, far above 2^53 wei.
	wei, ok := new(big.Int).SetString("123456789123456789123456789", 10)
	assert.True(t, ok)

	got := WeiToEther("0x" + wei.Text(16))
	assert.Equal(t, "123456789.1234", got)

	// floor(v / 10^18 * 10000) / 10000 computed independently.
	units := new(big.Int).Quo(wei, new(big.Int).Exp(big.NewInt(10), big.NewInt(14), nil))
	want := fmt.Sprintf("%s.%04d",
		new(big.Int).Quo(units, big.NewInt(10000)).String(),
		new(big.Int).Rem(units, big.NewInt(10000)).Int64())
	assert.Equal(t, want, got)
}

func TestWeiToGwei(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want string
	}{
		{"one gwei", "0x3b9aca00", "1.000"},
		{"zero", "0x0", "0.000"},
		{"rounds half up", "0x16e360", "0.002"},
		{"rounds down", "0x12d687", "0.001"},
		{"thirty gwei", "0x6fc23ac00", "30.000"},
		{"malformed", "0xnothex", "0.000"},
		{"prefix only", "0x", "0.000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeiToGwei(tt.hex))
		})
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "16", FormatNumber(16))
	assert.Equal(t, "999", FormatNumber(999))
	assert.Equal(t, "1,000", FormatNumber(1000))
	assert.Equal(t, "24,277,510", FormatNumber(24277510))
}

func TestIsPlaceholder(t *testing.T) {
	assert.True(t, IsPlaceholder(""))
	assert.True(t, IsPlaceholder("   "))
	assert.True(t, IsPlaceholder("https://REPLACE_WITH_YOUR_ENDPOINT/"))
	assert.False(t, IsPlaceholder("https://rpc.example.org"))
}
