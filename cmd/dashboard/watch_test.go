package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmagro/chain-dashboard/internal/dashboard"
)

func TestReadCommands(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	input := "r\n\n  C \nx\nyes\nq\nr\n"
	out := make(chan dashboard.Command, 8)

	done := make(chan struct{})
	go func() {
		readCommands(ctx, strings.NewReader(input), out, cancel)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("readCommands did not return")
	}
	close(out)

	var got []dashboard.Command
	for c := range out {
		got = append(got, c)
	}
	assert.Equal(t, []dashboard.Command{
		dashboard.CommandRefresh,
		dashboard.CommandConnect,
		dashboard.CommandCopyAddress,
	}, got)
	assert.Error(t, ctx.Err(), "q cancels the loop")
}

func TestRootCommandWiring(t *testing.T) {
	root := rootCmd()

	for _, name := range []string{"watch", "snapshot", "balance"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}

	assert.NotNil(t, root.Flags().Lookup("interval"), "root runs watch")
	assert.Equal(t, "config/dashboard.yaml", root.PersistentFlags().Lookup("config").DefValue)
}

func TestBalanceRejectsInvalidAddress(t *testing.T) {
	root := rootCmd()
	root.SetArgs([]string{"balance", "0x1234"})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid address")
}
