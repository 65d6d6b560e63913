//go:build e2e

// Package e2e provides end-to-end tests for the rexec SDK.
//
// These tests run against a real workspace and need credentials plus a
// running cluster:
//
//	REXEC_URL=https://workspace.example.com \
//	REXEC_TOKEN=... \
//	REXEC_CLUSTER_ID=0123-456789-abcdef \
//	go test -tags e2e ./tests/e2e/
//
// Tests are skipped when any of the three variables is unset. Every
// test destroys the contexts it creates; a cluster that is stopped or
// still starting up makes the create call fail, which the tests report
// rather than tolerate.
package e2e

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/rexec-dev/rexec-go"
)

// testConfig holds the workspace coordinates from the environment.
type testConfig struct {
	url       string
	token     string
	clusterID string
}

// getConfig reads the e2e configuration, skipping the test when it is
// incomplete.
func getConfig(t *testing.T) testConfig {
	t.Helper()
	cfg := testConfig{
		url:       os.Getenv("REXEC_URL"),
		token:     os.Getenv("REXEC_TOKEN"),
		clusterID: os.Getenv("REXEC_CLUSTER_ID"),
	}
	if cfg.url == "" || cfg.token == "" || cfg.clusterID == "" {
		t.Skip("Skipping: REXEC_URL, REXEC_TOKEN and REXEC_CLUSTER_ID must be set")
	}
	return cfg
}

// newTestClient creates a client configured for E2E testing.
func newTestClient(t *testing.T) (*rexec.Client, testConfig) {
	t.Helper()
	cfg := getConfig(t)
	client, err := rexec.NewClient(cfg.url, cfg.token,
		rexec.WithTimeout(time.Minute),
		rexec.WithPollPolicy(rexec.PollPolicy{
			Interval: time.Second,
			Timeout:  5 * time.Minute,
		}),
	)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return client, cfg
}

// newTestContext creates a context with a reasonable timeout for E2E tests.
func newTestContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	t.Cleanup(cancel)
	return ctx
}
