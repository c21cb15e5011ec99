package dashboard

import (
	"context"
	"sync"
	"time"
)

// Command is a user-triggered action.
type Command int

const (
	CommandRefresh Command = iota
	CommandConnect
	CommandCopyAddress
)

func (c Command) String() string {
	switch c {
	case CommandRefresh:
		return "refresh"
	case CommandConnect:
		return "connect"
	case CommandCopyAddress:
		return "copy-address"
	default:
		return "unknown"
	}
}

// Run renders the initial state and then, if the endpoint is configured,
// refreshes every interval until ctx is cancelled. Commands are dispatched
// as they arrive whether or not polling is active.
//
// Each refresh and connect runs in its own goroutine so a wallet prompt
// waiting on the user never holds up the timer. Overlapping refreshes are
// allowed; the generation guard in Refresh keeps the newest one on screen.
// Run waits for in-flight actions before returning.
func (c *Controller) Run(ctx context.Context, interval time.Duration, commands <-chan Command) error {
	var wg sync.WaitGroup
	defer wg.Wait()

	spawn := func(fn func(context.Context)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn(ctx)
		}()
	}
	refresh := func(ctx context.Context) { _ = c.Refresh(ctx) }
	connect := func(ctx context.Context) { _ = c.Connect(ctx) }

	var tick <-chan time.Time
	if polling, _ := c.Start(ctx); polling {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		tick = ticker.C
	} else {
		c.log.Warn("rpc endpoint not configured; polling disabled")
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-tick:
			// select may pick the tick after cancellation
			if ctx.Err() != nil {
				continue
			}
			spawn(refresh)

		case cmd, ok := <-commands:
			if !ok {
				commands = nil
				continue
			}
			c.log.Debug("command", "action", cmd.String())
			switch cmd {
			case CommandRefresh:
				spawn(refresh)
			case CommandConnect:
				spawn(connect)
			case CommandCopyAddress:
				_ = c.CopyAddress()
			}
		}
	}
}
