package rexec

import (
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "rexec-go/" + Version
)

// Client is a workspace Command Execution API client.
//
// A Client is immutable after construction and safe for concurrent use
// by multiple goroutines.
type Client struct {
	apiBase    *url.URL
	token      string
	userAgent  string
	httpClient *http.Client
	timeout    time.Duration
	logger     *slog.Logger
	poll       PollPolicy
}

// NewClient creates a client for the workspace at workspaceURL.
//
// The workspace URL is the plain host URL (for example
// "https://workspace.example.com"); the API prefix is appended by the
// client. The token is attached as a bearer credential to every request
// and is treated as an opaque string.
//
// An empty token or an unusable workspace URL is a configuration error,
// reported here before any network call is made.
func NewClient(workspaceURL, token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, ErrEmptyToken
	}

	base, err := url.Parse(strings.TrimRight(workspaceURL, "/"))
	if err != nil {
		return nil, newError("INVALID_URL", "invalid workspace URL", 0, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, newError("INVALID_URL", "workspace URL must be absolute", 0, nil)
	}
	base.Path = path.Join("/", base.Path, "api", APIVersion)

	c := &Client{
		apiBase:   base,
		token:     token,
		userAgent: defaultUserAgent,
		timeout:   defaultTimeout,
		poll:      DefaultPollPolicy(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}

	return c, nil
}
