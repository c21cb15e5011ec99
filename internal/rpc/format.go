package rpc

import (
	"fmt"
	"math/big"
	"strings"
)

var (
	weiPerEtherUnit = big.NewInt(100_000_000_000_000) // 10^14: one ten-thousandth of an ether
	weiPerGweiMilli = big.NewInt(1_000_000)           // 10^6: one thousandth of a gwei
	halfGweiMilli   = big.NewInt(500_000)
	tenThousand     = big.NewInt(10_000)
	oneThousand     = big.NewInt(1_000)
)

// ParseHexBig converts a hex quantity (with or without "0x") to *big.Int.
// Returns false for empty input, non-hex digits, or a sign.
//
// Examples:
//   - "0xde0b6b3a7640000" -> 1000000000000000000, true
//   - "0x"                -> nil, false
//   - "0xzz"              -> nil, false
func ParseHexBig(hex string) (*big.Int, bool) {
	hex = strings.TrimSpace(hex)
	if len(hex) >= 2 && hex[0] == '0' && (hex[1] == 'x' || hex[1] == 'X') {
		hex = hex[2:]
	}
	if hex == "" || strings.ContainsAny(hex, "+-_") {
		return nil, false
	}

	val, ok := new(big.Int).SetString(hex, 16)
	if !ok {
		return nil, false
	}
	return val, true
}

// HexToUint64 converts a hex quantity to uint64. The boolean is false when
// the input is malformed or does not fit, so callers can render "N/A".
func HexToUint64(hex string) (uint64, bool) {
	val, ok := ParseHexBig(hex)
	if !ok || !val.IsUint64() {
		return 0, false
	}
	return val.Uint64(), true
}

// WeiToEther renders a hex wei quantity as ether truncated to 4 decimals.
// The division happens on integers so values far beyond 2^53 stay exact.
//
//   - "0xde0b6b3a7640000" -> "1.0000"
//   - "0x1bc16d674ec7ffff" -> "1.9999"
//   - "garbage" -> "0.0000"
func WeiToEther(hex string) string {
	wei, ok := ParseHexBig(hex)
	if !ok {
		return "0.0000"
	}

	units := new(big.Int).Quo(wei, weiPerEtherUnit)
	whole, frac := new(big.Int).QuoRem(units, tenThousand, new(big.Int))
	return fmt.Sprintf("%s.%04d", whole.String(), frac.Int64())
}

// WeiToGwei renders a hex wei quantity as gwei rounded half-up to 3 decimals.
//
//   - "0x3b9aca00" -> "1.000"
//   - "0x16e360"   -> "0.002" (1,500,000 wei rounds up)
//   - "0x"         -> "0.000"
func WeiToGwei(hex string) string {
	wei, ok := ParseHexBig(hex)
	if !ok {
		return "0.000"
	}

	milli := new(big.Int).Add(wei, halfGweiMilli)
	milli.Quo(milli, weiPerGweiMilli)
	whole, frac := new(big.Int).QuoRem(milli, oneThousand, new(big.Int))
	return fmt.Sprintf("%s.%03d", whole.String(), frac.Int64())
}

// FormatNumber adds thousand separators (commas) to a number for readability.
//
// Examples:
//   - 24277510 -> "24,277,510"
//   - 123 -> "123"
func FormatNumber(n uint64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var result []byte
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, byte(c))
	}
	return string(result)
}
