package duration

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitBlocksForDuration(t *testing.T) {
	start := time.Now()
	require.NoError(t, Wait(context.Background(), 30*time.Millisecond))
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestWaitNonPositiveReturnsImmediately(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A cancelled context does not matter when there is nothing to wait for.
	assert.NoError(t, Wait(ctx, 0))
	assert.NoError(t, Wait(ctx, -time.Second))
}

func TestWaitCancelled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := Wait(ctx, time.Hour)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Minute)
}

func TestWaitMillis(t *testing.T) {
	start := time.Now()
	require.NoError(t, WaitMillis(context.Background(), 20))
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestWaitForParsesFirst(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Parse errors win over context errors.
	err := WaitFor(ctx, "5x")
	assert.ErrorIs(t, err, ErrInvalidUnit)

	require.NoError(t, WaitFor(context.Background(), "100"))
	require.NoError(t, WaitFor(context.Background(), ""))
}

func TestWaitWithProgress(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	require.NoError(t, Wait(context.Background(), 50*time.Millisecond, WithProgress(logger, 10*time.Millisecond)))

	out := buf.String()
	assert.Contains(t, out, "wait_started")
	assert.Contains(t, out, "wait_done")
	assert.Contains(t, out, "completed=true")
}
