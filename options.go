package rexec

import (
	"log/slog"
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
//
// This bounds individual HTTP calls, not the overall wait of [Client.Run];
// the latter is controlled by [PollPolicy]. Ignored when a custom HTTP
// client is supplied via [WithHTTPClient].
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithLogger sets a logger for debug output, mainly poll progress.
// The client is silent by default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithPollPolicy sets the polling policy used by [Client.Run] and
// [Client.WaitForCommand]. See [DefaultPollPolicy] for the defaults.
func WithPollPolicy(p PollPolicy) Option {
	return func(c *Client) {
		c.poll = p
	}
}
