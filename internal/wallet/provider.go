// Package wallet connects the dashboard to an account holder: a wallet
// provider that can be asked for account access, and the system clipboard
// for sharing the connected address.
package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	gethrpc "github.com/ethereum/go-ethereum/rpc"
)

// ErrNoAccounts is returned when the provider grants access but exposes no
// account.
var ErrNoAccounts = errors.New("wallet exposed no accounts")

// methodNotFound is the JSON-RPC code for an unknown method.
const methodNotFound = -32601

// Provider is a wallet the user can grant account access through.
type Provider interface {
	// RequestAccounts prompts for access and returns the granted accounts.
	// It may block until the user answers the prompt.
	RequestAccounts(ctx context.Context) ([]string, error)
	// Signer returns the handle for the currently selected account.
	Signer() Signer
}

// Signer exposes the currently selected account.
type Signer interface {
	Address(ctx context.Context) (string, error)
}

// RPCProvider talks to an external signer (Clef, a node with managed
// accounts, a wallet bridge) over JSON-RPC.
type RPCProvider struct {
	client *gethrpc.Client
}

// Dial connects to the signer at rawurl (http, https, ws or wss).
func Dial(ctx context.Context, rawurl string) (*RPCProvider, error) {
	c, err := gethrpc.DialContext(ctx, rawurl)
	if err != nil {
		return nil, fmt.Errorf("dial wallet: %w", err)
	}
	return &RPCProvider{client: c}, nil
}

// RequestAccounts calls eth_requestAccounts. Signers that predate it
// answer "method not found"; for those the already-unlocked accounts from
// eth_accounts are used instead.
func (p *RPCProvider) RequestAccounts(ctx context.Context) ([]string, error) {
	var accounts []string
	err := p.client.CallContext(ctx, &accounts, "eth_requestAccounts")

	var rpcErr gethrpc.Error
	if errors.As(err, &rpcErr) && rpcErr.ErrorCode() == methodNotFound {
		err = p.client.CallContext(ctx, &accounts, "eth_accounts")
	}
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

func (p *RPCProvider) Signer() Signer {
	return &rpcSigner{client: p.client}
}

func (p *RPCProvider) Close() {
	p.client.Close()
}

type rpcSigner struct {
	client *gethrpc.Client
}

// Address returns the first account the signer reports.
func (s *rpcSigner) Address(ctx context.Context) (string, error) {
	var accounts []string
	if err := s.client.CallContext(ctx, &accounts, "eth_accounts"); err != nil {
		return "", err
	}
	if len(accounts) == 0 {
		return "", ErrNoAccounts
	}
	return accounts[0], nil
}

// NormalizeAddress validates a hex address and returns its EIP-55
// checksummed form.
func NormalizeAddress(addr string) (string, error) {
	if !common.IsHexAddress(addr) {
		return "", fmt.Errorf("invalid address %q", addr)
	}
	return common.HexToAddress(addr).Hex(), nil
}
