package rexec

import (
	"context"
	"net/url"
)

// Submit submits source text for execution against an existing context
// and returns the command (run) identifier without waiting for the
// command to finish.
//
// The source text is passed through to the API unmodified. On any API
// failure no command identifier exists and the error must end the
// caller's flow; nothing may poll for a command that was never accepted.
func (c *Client) Submit(ctx context.Context, clusterID, contextID, language, command string) (string, error) {
	if contextID == "" {
		return "", newError("BAD_REQUEST", "context id is required", 400, nil)
	}
	if command == "" {
		return "", newError("BAD_REQUEST", "command is required", 400, nil)
	}

	var out idResponse
	err := c.postJSON(ctx, c.endpoint("commands", "execute"), executeRequest{
		Language:  language,
		ClusterID: clusterID,
		ContextID: contextID,
		Command:   command,
	}, &out)
	if err != nil {
		return "", err
	}
	if out.ID == "" {
		return "", newError("INVALID_RESPONSE", "execute response carried no command id", 0, nil)
	}

	c.logDebug("command submitted", "commandId", out.ID, "contextId", contextID)
	return out.ID, nil
}

// CommandStatus fetches a single status snapshot for a command.
func (c *Client) CommandStatus(ctx context.Context, clusterID, contextID, commandID string) (*CommandInfo, error) {
	query := url.Values{}
	query.Set("clusterId", clusterID)
	query.Set("contextId", contextID)
	query.Set("commandId", commandID)

	var out CommandInfo
	if err := c.getJSON(ctx, c.endpoint("commands", "status"), query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelCommand asks the cluster to cancel a queued or running command.
// The command settles in the Cancelled status, observable via
// [Client.CommandStatus].
func (c *Client) CancelCommand(ctx context.Context, clusterID, contextID, commandID string) error {
	return c.postJSON(ctx, c.endpoint("commands", "cancel"), cancelCommandRequest{
		ClusterID: clusterID,
		ContextID: contextID,
		CommandID: commandID,
	}, nil)
}

// WaitForCommand polls the command status until it leaves the active
// set {Queued, Running}, then returns the final snapshot whatever the
// terminal status is.
//
// The wait is bounded by the client's [PollPolicy]: when the deadline or
// attempt cap is reached before the command terminates, the error
// matches [ErrPollTimeout]. Any HTTP failure during a poll ends the
// wait immediately with that transport error; the loop never continues
// on a stale status.
func (c *Client) WaitForCommand(ctx context.Context, clusterID, contextID, commandID string) (*CommandInfo, error) {
	var info *CommandInfo
	err := c.poll.wait(ctx, func(attempt int) (bool, error) {
		snapshot, err := c.CommandStatus(ctx, clusterID, contextID, commandID)
		if err != nil {
			return false, err
		}
		c.logDebug("command status polled",
			"commandId", commandID,
			"status", snapshot.Status,
			"attempt", attempt,
		)
		if !snapshot.Terminal() {
			return false, nil
		}
		info = snapshot
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return info, nil
}

// Run submits source text and blocks until the command finishes,
// returning the terminal snapshot with its results.
//
// Run distinguishes its failure modes: a transport or API error at the
// submit stage returns before any poll is issued; a poll that exceeds
// the [PollPolicy] bound returns an error matching [ErrPollTimeout]; a
// command that terminates in the Error status returns an
// EXECUTION_FAILED error carrying the remote cause; a cancelled command
// returns a CANCELLED error. Only the Finished status yields a nil
// error.
func (c *Client) Run(ctx context.Context, clusterID, contextID, language, command string) (*CommandInfo, error) {
	commandID, err := c.Submit(ctx, clusterID, contextID, language, command)
	if err != nil {
		return nil, err
	}

	info, err := c.WaitForCommand(ctx, clusterID, contextID, commandID)
	if err != nil {
		return nil, err
	}

	switch info.Status {
	case StatusFinished:
		return info, nil
	case StatusError:
		msg := "command execution failed"
		if info.Results != nil {
			if info.Results.Cause != "" {
				msg = info.Results.Cause
			} else if info.Results.Summary != "" {
				msg = info.Results.Summary
			}
		}
		return nil, newError("EXECUTION_FAILED", msg, 0, nil)
	case StatusCancelled, StatusCancelling:
		return nil, newError("CANCELLED", "command was cancelled", 0, nil)
	default:
		return nil, newError("UNEXPECTED_STATUS", "command ended with status "+info.Status, 0, nil)
	}
}

func (c *Client) logDebug(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}
