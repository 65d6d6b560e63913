package rexec

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"
)

const (
	defaultPollInterval = time.Second
	defaultPollTimeout  = 10 * time.Minute
)

// PollPolicy bounds how [Client.Run] and [Client.WaitForCommand] poll
// for a terminal command status.
//
// The zero value of any field falls back to a safe default: the wait is
// always bounded, so a command that never terminates surfaces as a
// POLL_TIMEOUT error instead of blocking the caller forever.
type PollPolicy struct {
	// Interval is the delay before the first status check and, with a
	// Multiplier of at most 1, between subsequent checks. Defaults to
	// one second.
	Interval time.Duration

	// MaxInterval caps the grown delay when Multiplier is above 1.
	MaxInterval time.Duration

	// Multiplier grows the delay after every check. Values of 1 or
	// below keep the fixed Interval.
	Multiplier float64

	// Jitter randomizes each delay by up to the given fraction (0..1)
	// in either direction.
	Jitter float64

	// Timeout bounds the total wait. When both Timeout and MaxAttempts
	// are zero, a ten-minute timeout applies.
	Timeout time.Duration

	// MaxAttempts bounds the number of status checks. Zero leaves the
	// bound to Timeout alone.
	MaxAttempts int
}

// DefaultPollPolicy returns the policy used when none is configured:
// a fixed one-second interval under a ten-minute total cap.
func DefaultPollPolicy() PollPolicy {
	return PollPolicy{
		Interval: defaultPollInterval,
		Timeout:  defaultPollTimeout,
	}
}

func (p PollPolicy) normalized() PollPolicy {
	if p.Interval <= 0 {
		p.Interval = defaultPollInterval
	}
	if p.Timeout <= 0 && p.MaxAttempts <= 0 {
		p.Timeout = defaultPollTimeout
	}
	return p
}

// delay returns the wait before status check number attempt (1-based).
func (p PollPolicy) delay(attempt int) time.Duration {
	d := float64(p.Interval)
	if p.Multiplier > 1 {
		d *= math.Pow(p.Multiplier, float64(attempt-1))
		if p.MaxInterval > 0 && d > float64(p.MaxInterval) {
			d = float64(p.MaxInterval)
		}
	}
	if p.Jitter > 0 {
		d += d * p.Jitter * (2*rand.Float64() - 1)
	}
	if d < 0 {
		d = 0
	}
	return time.Duration(d)
}

// wait runs fn once per interval until fn reports done, fn fails, the
// context ends, or the policy bound is hit.
func (p PollPolicy) wait(ctx context.Context, fn func(attempt int) (bool, error)) error {
	p = p.normalized()

	var deadline time.Time
	if p.Timeout > 0 {
		deadline = time.Now().Add(p.Timeout)
	}

	for attempt := 1; ; attempt++ {
		if p.MaxAttempts > 0 && attempt > p.MaxAttempts {
			return newError("POLL_TIMEOUT",
				fmt.Sprintf("no terminal status after %d status checks", p.MaxAttempts), 408, nil)
		}

		timer := time.NewTimer(p.delay(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return transportError(ctx.Err(), "wait interrupted")
		case <-timer.C:
		}

		if !deadline.IsZero() && time.Now().After(deadline) {
			return newError("POLL_TIMEOUT",
				fmt.Sprintf("no terminal status within %s", p.Timeout), 408, nil)
		}

		done, err := fn(attempt)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}
