package wallet

import (
	"context"
	"net/http/httptest"
	"testing"

	gethrpc "github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	lowerAddr    = "0x2a63e334e71cb80b857d4b5821e673c73ce18a68"
	checksumAddr = "0x2a63E334e71Cb80B857D4b5821e673C73Ce18a68"
)

type modernSigner struct {
	accounts  []string
	requested int
}

func (s *modernSigner) RequestAccounts() []string {
	s.requested++
	return s.accounts
}

func (s *modernSigner) Accounts() []string { return s.accounts }

// legacySigner only knows eth_accounts.
type legacySigner struct {
	accounts []string
}

func (s *legacySigner) Accounts() []string { return s.accounts }

func startSigner(t *testing.T, svc interface{}) *RPCProvider {
	t.Helper()

	srv := gethrpc.NewServer()
	require.NoError(t, srv.RegisterName("eth", svc))
	httpSrv := httptest.NewServer(srv)
	t.Cleanup(func() {
		httpSrv.Close()
		srv.Stop()
	})

	p, err := Dial(context.Background(), httpSrv.URL)
	require.NoError(t, err)
	t.Cleanup(p.Close)
	return p
}

func TestRPCProviderRequestAccounts(t *testing.T) {
	svc := &modernSigner{accounts: []string{lowerAddr}}
	p := startSigner(t, svc)

	accounts, err := p.RequestAccounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{lowerAddr}, accounts)
	assert.Equal(t, 1, svc.requested)

	addr, err := p.Signer().Address(context.Background())
	require.NoError(t, err)
	assert.Equal(t, lowerAddr, addr)
}

func TestRPCProviderFallsBackToAccounts(t *testing.T) {
	p := startSigner(t, &legacySigner{accounts: []string{lowerAddr}})

	accounts, err := p.RequestAccounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{lowerAddr}, accounts)
}

func TestRPCSignerNoAccounts(t *testing.T) {
	p := startSigner(t, &legacySigner{})

	_, err := p.Signer().Address(context.Background())
	assert.ErrorIs(t, err, ErrNoAccounts)
}

func TestNormalizeAddress(t *testing.T) {
	got, err := NormalizeAddress(lowerAddr)
	require.NoError(t, err)
	assert.Equal(t, checksumAddr, got)

	_, err = NormalizeAddress("0xABC")
	assert.Error(t, err)
}
