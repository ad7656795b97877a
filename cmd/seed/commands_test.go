package main

import (
	"context"
	"os"
	"testing"
	"time"

	"civic/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyFlags_OnlyChangedFlags(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--users", "7", "--random-seed", "42"}))

	cfg := &config.Config{}
	cfg.Seed.Users = 100
	cfg.Seed.CallActions = 100

	flags := &seedFlags{users: 7, randomSeed: 42}
	applyFlags(cmd, flags, cfg)

	assert.Equal(t, 7, cfg.Seed.Users)
	assert.Equal(t, 100, cfg.Seed.CallActions)
	assert.Equal(t, uint64(42), cfg.Seed.RandomSeed)
}

func TestApplyFlags_ZeroIsExplicit(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--events", "0"}))

	cfg := &config.Config{}
	cfg.Seed.EventActions = 100

	applyFlags(cmd, &seedFlags{}, cfg)

	assert.Zero(t, cfg.Seed.EventActions)
}

func TestRootCmd_HasResetSubcommand(t *testing.T) {
	cmd := newRootCmd()

	sub, _, err := cmd.Find([]string{"reset"})
	require.NoError(t, err)
	assert.Equal(t, "reset", sub.Name())
}

func TestInterruptContext_CanceledBySignal(t *testing.T) {
	ctx, stop := interruptContext(context.Background())
	defer stop()

	proc, err := os.FindProcess(os.Getpid())
	require.NoError(t, err)
	require.NoError(t, proc.Signal(os.Interrupt))

	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("context not canceled after interrupt")
	}
}
