package unit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rexec-dev/rexec-go"
)

// TestWaitForCommand_ContextCancelled verifies the wait honors caller
// cancellation between polls.
func TestWaitForCommand_ContextCancelled(t *testing.T) {
	server := newCommandServer(t,
		map[string]any{"id": "run-1", "status": "Running"},
	)
	client := newCommandClient(t, server, rexec.PollPolicy{
		Interval: 5 * time.Millisecond,
		Timeout:  10 * time.Second,
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(25 * time.Millisecond)
		cancel()
	}()

	info, err := client.WaitForCommand(ctx, "cluster-1", "ctx-1", "run-1")
	require.Error(t, err)
	assert.Nil(t, info)

	var apiErr *rexec.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "CANCELLED", apiErr.Code)
}

// TestDefaultPollPolicy verifies the default policy is bounded.
func TestDefaultPollPolicy(t *testing.T) {
	p := rexec.DefaultPollPolicy()
	assert.Equal(t, time.Second, p.Interval)
	assert.Equal(t, 10*time.Minute, p.Timeout)
}

// TestPollPolicy_Backoff verifies a growing interval still terminates
// on the configured attempt cap.
func TestPollPolicy_Backoff(t *testing.T) {
	server := newCommandServer(t,
		map[string]any{"id": "run-1", "status": "Queued"},
	)
	client := newCommandClient(t, server, rexec.PollPolicy{
		Interval:    time.Millisecond,
		MaxInterval: 4 * time.Millisecond,
		Multiplier:  2.0,
		Jitter:      0.1,
		MaxAttempts: 5,
	})

	_, err := client.WaitForCommand(context.Background(), "cluster-1", "ctx-1", "run-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, rexec.ErrPollTimeout)
	assert.Equal(t, int32(5), server.statusCalls.Load())
}
