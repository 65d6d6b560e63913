// Package rexec provides a Go SDK for the workspace Command Execution API.
//
// The Command Execution API (v1.2) runs source snippets inside a remote
// execution context bound to a compute cluster. This SDK covers the full
// lifecycle: creating a context, submitting commands, polling for
// completion with a bounded policy, fetching results, cancelling commands,
// and destroying the context.
//
// # Installation
//
// To install the SDK, use go get:
//
//	go get github.com/rexec-dev/rexec-go
//
// # Quick Start
//
// Create a client, open an execution context and run a snippet:
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//	    "log"
//	    "os"
//
//	    "github.com/rexec-dev/rexec-go"
//	)
//
//	func main() {
//	    client, err := rexec.NewClient("https://workspace.example.com", os.Getenv("REXEC_TOKEN"))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    ctx := context.Background()
//	    ec, err := client.CreateContext(ctx, "0123-456789-abcdef", rexec.LanguageR, "demo")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer ec.Destroy(ctx)
//
//	    info, err := ec.Run(ctx, `1 + 1`)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(info.Results.Text())
//	}
//
// # Client Configuration
//
// The client can be configured using functional options:
//
//	client, err := rexec.NewClient(workspaceURL, token,
//	    rexec.WithTimeout(time.Minute),
//	    rexec.WithPollPolicy(rexec.PollPolicy{
//	        Interval: 2 * time.Second,
//	        Timeout:  15 * time.Minute,
//	    }),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Error Handling
//
// The SDK provides typed errors for common failure cases:
//
//	info, err := ec.Run(ctx, source)
//	if err != nil {
//	    var apiErr *rexec.Error
//	    if errors.As(err, &apiErr) {
//	        switch apiErr.Code {
//	        case "POLL_TIMEOUT":
//	            // Command never reached a terminal state in time.
//	        case "EXECUTION_FAILED":
//	            // The remote command itself failed.
//	        }
//	    }
//	}
//
// Errors at the create and submit stages always prevent the dependent
// calls: a failed CreateContext never submits, a failed Submit never polls.
//
// # Polling
//
// Run and WaitForCommand poll the command status until it leaves the
// active set (Queued, Running). The wait is always bounded: the default
// [PollPolicy] checks once per second for at most ten minutes, and a
// command that never terminates yields a POLL_TIMEOUT error rather than
// blocking forever. See [PollPolicy] for backoff and attempt caps.
//
// # Thread Safety
//
// The [Client] is safe for concurrent use by multiple goroutines. Each
// method call is independent and does not share state.
//
// # API Version Compatibility
//
// This SDK targets the v1.2 Command Execution API. Use [CheckCompatibility]
// to validate a workspace-reported API version against the supported range.
package rexec
