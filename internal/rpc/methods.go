package rpc

import (
	"context"
	"encoding/json"
	"fmt"
)

// BlockTagLatest is the block parameter used for balance lookups.
const BlockTagLatest = "latest"

// BlockNumber calls eth_blockNumber and returns the hex-encoded height.
func BlockNumber(ctx context.Context, c Caller) (string, error) {
	return callHex(ctx, c, "eth_blockNumber")
}

// GasPrice calls eth_gasPrice and returns the hex-encoded price in wei.
func GasPrice(ctx context.Context, c Caller) (string, error) {
	return callHex(ctx, c, "eth_gasPrice")
}

// GetBalance calls eth_getBalance and returns the hex-encoded balance in wei.
func GetBalance(ctx context.Context, c Caller, address, block string) (string, error) {
	return callHex(ctx, c, "eth_getBalance", address, block)
}

func callHex(ctx context.Context, c Caller, method string, params ...interface{}) (string, error) {
	raw, err := c.Call(ctx, method, params...)
	if err != nil {
		return "", err
	}

	var hexStr string
	if err := json.Unmarshal(raw, &hexStr); err != nil {
		return "", fmt.Errorf("failed to parse %s result: %w", method, err)
	}
	return hexStr, nil
}
