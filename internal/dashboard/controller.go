// Package dashboard drives the chain panel: it polls the node for tip
// height, gas price and an account balance, writes the formatted values to
// a rendering surface, and handles the wallet connect and copy-address
// actions.
//
// The only mutable state is the connected wallet address. It is written by
// Connect and read by every poll; everything a poll fetches is rendered and
// then dropped.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/dmagro/chain-dashboard/internal/config"
	"github.com/dmagro/chain-dashboard/internal/rpc"
	"github.com/dmagro/chain-dashboard/internal/wallet"
)

// Display strings.
const (
	StatusFetching      = "Status: Fetching..."
	StatusOK            = "Status: OK"
	StatusErrorPrefix   = "Status: Error - "
	StatusNotConfigured = "Status: RPC not configured - set rpc_url in the config file"

	ErrorMarker   = "Error"
	NotAvailable  = "N/A"
	Unset         = "—"
	NotConnected  = "Not connected"
	ReceivePrompt = "Connect wallet to receive"
)

// Notifications.
const (
	MsgNoWallet       = "No wallet detected"
	MsgNotConnected   = "Wallet not connected"
	MsgCopied         = "Address copied!"
	msgConnectFailed  = "Connect failed: "
	msgCopyFailed     = "Copy failed: "
	msgNoAccountsHint = "unlock an account in the wallet and retry"
)

var (
	// ErrNoWallet is returned by Connect when no wallet provider is set.
	ErrNoWallet = errors.New("no wallet provider")
	// ErrNotConnected is returned by CopyAddress before a wallet connects.
	ErrNotConnected = errors.New("wallet not connected")
)

// Controller owns the poll cycle and the connected-address state.
type Controller struct {
	cfg       *config.Config
	caller    rpc.Caller
	surface   Surface
	notifier  Notifier
	wallet    wallet.Provider
	clipboard wallet.Clipboard
	log       *slog.Logger

	mu        sync.RWMutex
	connected string

	// generation increases with every Refresh; a cycle only renders if it
	// is still the newest one. renderMu makes the check and the write atomic.
	generation atomic.Uint64
	renderMu   sync.Mutex
}

// Option configures a Controller.
type Option func(*Controller)

// WithWallet enables Connect. Without it Connect reports that no wallet was
// detected.
func WithWallet(p wallet.Provider) Option {
	return func(c *Controller) { c.wallet = p }
}

func WithClipboard(cb wallet.Clipboard) Option {
	return func(c *Controller) { c.clipboard = cb }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

func New(cfg *config.Config, caller rpc.Caller, surface Surface, notifier Notifier, opts ...Option) *Controller {
	c := &Controller{
		cfg:      cfg,
		caller:   caller,
		surface:  surface,
		notifier: notifier,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ConnectedAddress returns the connected wallet address, or "" if none.
func (c *Controller) ConnectedAddress() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

// BalanceAddress returns the account the next poll will look up: the
// connected wallet if there is one, else the configured default address,
// else "".
func (c *Controller) BalanceAddress() string {
	if addr := c.ConnectedAddress(); addr != "" {
		return addr
	}
	if c.cfg.DefaultAddressConfigured() {
		return c.cfg.DefaultAddress
	}
	return ""
}

// Start renders the initial state. When the endpoint is not configured it
// shows the configuration instruction and returns false; the caller must
// not schedule polling then. Otherwise it runs the first refresh, returns
// true, and passes on that refresh's error.
func (c *Controller) Start(ctx context.Context) (bool, error) {
	c.renderWallet()

	if !c.cfg.EndpointConfigured() {
		setAll(c.surface, map[Field]string{
			FieldStatus:      StatusNotConfigured,
			FieldBlockHeight: Unset,
			FieldGasPrice:    Unset,
			FieldBalance:     Unset,
		})
		return false, nil
	}

	return true, c.Refresh(ctx)
}

// Poll fetches block height, gas price and (when an address is known) the
// balance concurrently. Any single failure fails the whole poll.
func (c *Controller) Poll(ctx context.Context) (PollResult, error) {
	res := PollResult{Address: c.BalanceAddress()}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := rpc.BlockNumber(gctx, c.caller)
		res.BlockNumber = v
		return err
	})
	g.Go(func() error {
		v, err := rpc.GasPrice(gctx, c.caller)
		res.GasPrice = v
		return err
	})
	if res.Address != "" {
		g.Go(func() error {
			v, err := rpc.GetBalance(gctx, c.caller, res.Address, rpc.BlockTagLatest)
			res.Balance = v
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return PollResult{}, err
	}
	return res, nil
}

// Refresh runs one poll cycle and renders its outcome. On failure every
// value field shows ErrorMarker and the status carries the cause. The
// returned error is informational; the cycle has already been rendered.
func (c *Controller) Refresh(ctx context.Context) error {
	gen := c.generation.Add(1)
	c.renderCycle(gen, map[Field]string{FieldStatus: StatusFetching})

	res, err := c.Poll(ctx)
	if err != nil {
		c.log.Error("update error", "error", err)
		c.renderCycle(gen, map[Field]string{
			FieldStatus:      StatusErrorPrefix + err.Error(),
			FieldBlockHeight: ErrorMarker,
			FieldGasPrice:    ErrorMarker,
			FieldBalance:     ErrorMarker,
		})
		return err
	}

	values := res.Fields()
	values[FieldStatus] = StatusOK
	c.renderCycle(gen, values)
	return nil
}

// renderCycle writes values only if gen is still the newest refresh.
func (c *Controller) renderCycle(gen uint64, values map[Field]string) {
	c.renderMu.Lock()
	defer c.renderMu.Unlock()

	if c.generation.Load() != gen {
		c.log.Debug("discarding superseded poll", "generation", gen)
		return
	}
	setAll(c.surface, values)
}

// Connect asks the wallet provider for account access, stores the selected
// account and refreshes so the balance switches to it. Failures are
// reported through the notifier and leave the previous state untouched.
func (c *Controller) Connect(ctx context.Context) error {
	if c.wallet == nil {
		c.notifier.Notify(MsgNoWallet)
		return ErrNoWallet
	}

	accounts, err := c.wallet.RequestAccounts(ctx)
	if err != nil {
		return c.connectFailed(err)
	}
	if len(accounts) == 0 {
		return c.connectFailed(fmt.Errorf("%w: %s", wallet.ErrNoAccounts, msgNoAccountsHint))
	}

	addr, err := c.wallet.Signer().Address(ctx)
	if err != nil {
		return c.connectFailed(err)
	}
	addr, err = wallet.NormalizeAddress(addr)
	if err != nil {
		return c.connectFailed(err)
	}

	c.mu.Lock()
	c.connected = addr
	c.mu.Unlock()

	c.log.Info("wallet connected", "address", addr)
	c.renderWallet()

	if c.cfg.EndpointConfigured() {
		_ = c.Refresh(ctx)
	}
	return nil
}

func (c *Controller) connectFailed(err error) error {
	c.log.Error("connect wallet failed", "error", err)
	c.notifier.Notify(msgConnectFailed + err.Error())
	return err
}

// CopyAddress copies the connected address to the clipboard. Without a
// connected wallet the clipboard is left alone.
func (c *Controller) CopyAddress() error {
	addr := c.ConnectedAddress()
	if addr == "" {
		c.notifier.Notify(MsgNotConnected)
		return ErrNotConnected
	}

	if c.clipboard == nil {
		return c.copyFailed(wallet.ErrClipboardUnavailable)
	}
	if err := c.clipboard.WriteText(addr); err != nil {
		return c.copyFailed(err)
	}

	c.notifier.Notify(MsgCopied)
	return nil
}

func (c *Controller) copyFailed(err error) error {
	c.log.Error("copy address failed", "error", err)
	c.notifier.Notify(msgCopyFailed + err.Error())
	return err
}

func (c *Controller) renderWallet() {
	addr := c.ConnectedAddress()
	if addr == "" {
		setAll(c.surface, map[Field]string{
			FieldWalletAddress:  NotConnected,
			FieldReceiveAddress: ReceivePrompt,
		})
		return
	}
	setAll(c.surface, map[Field]string{
		FieldWalletAddress:  addr,
		FieldReceiveAddress: addr,
	})
}
