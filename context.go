package rexec

import (
	"context"
	"net/url"
)

// ExecutionContext is a live remote execution context on a compute
// cluster. It is created by [Client.CreateContext] and must be released
// with [ExecutionContext.Destroy] when no longer needed; contexts left
// behind keep holding interpreter state on the cluster.
type ExecutionContext struct {
	client *Client

	// ID is the opaque context identifier assigned by the workspace.
	ID string

	// ClusterID is the cluster the context is bound to.
	ClusterID string

	// Language is the language tag the context was created with. All
	// commands submitted through this context run under it.
	Language string
}

// CreateContext creates a remote execution context on the given cluster
// for the given language.
//
// The name is a human-readable label to tell contexts apart in the
// workspace UI; it may be empty. On any API failure no context is
// created and the returned error describes the server response.
func (c *Client) CreateContext(ctx context.Context, clusterID, language, name string) (*ExecutionContext, error) {
	if clusterID == "" {
		return nil, newError("BAD_REQUEST", "cluster id is required", 400, nil)
	}
	if language == "" {
		return nil, newError("BAD_REQUEST", "language is required", 400, nil)
	}

	var out idResponse
	err := c.postJSON(ctx, c.endpoint("contexts", "create"), createContextRequest{
		Language:  language,
		ClusterID: clusterID,
		Name:      name,
	}, &out)
	if err != nil {
		return nil, err
	}
	if out.ID == "" {
		return nil, newError("INVALID_RESPONSE", "create response carried no context id", 0, nil)
	}

	c.logDebug("execution context created", "contextId", out.ID, "clusterId", clusterID, "language", language)

	return &ExecutionContext{
		client:    c,
		ID:        out.ID,
		ClusterID: clusterID,
		Language:  language,
	}, nil
}

// ContextStatus fetches the current state of an execution context.
func (c *Client) ContextStatus(ctx context.Context, clusterID, contextID string) (*ContextInfo, error) {
	query := url.Values{}
	query.Set("clusterId", clusterID)
	query.Set("contextId", contextID)

	var out ContextInfo
	if err := c.getJSON(ctx, c.endpoint("contexts", "status"), query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DestroyContext releases an execution context and the interpreter
// state it holds on the cluster.
func (c *Client) DestroyContext(ctx context.Context, clusterID, contextID string) error {
	err := c.postJSON(ctx, c.endpoint("contexts", "destroy"), destroyContextRequest{
		ClusterID: clusterID,
		ContextID: contextID,
	}, nil)
	if err != nil {
		return err
	}
	c.logDebug("execution context destroyed", "contextId", contextID, "clusterId", clusterID)
	return nil
}

// Run submits source text to the context and waits for a successful
// result. See [Client.Run].
func (e *ExecutionContext) Run(ctx context.Context, command string) (*CommandInfo, error) {
	return e.client.Run(ctx, e.ClusterID, e.ID, e.Language, command)
}

// Submit submits source text to the context without waiting. See
// [Client.Submit].
func (e *ExecutionContext) Submit(ctx context.Context, command string) (string, error) {
	return e.client.Submit(ctx, e.ClusterID, e.ID, e.Language, command)
}

// Status fetches the current state of the context.
func (e *ExecutionContext) Status(ctx context.Context) (*ContextInfo, error) {
	return e.client.ContextStatus(ctx, e.ClusterID, e.ID)
}

// Destroy releases the context. Safe to call on both success and
// failure paths; typical usage is a defer right after CreateContext.
func (e *ExecutionContext) Destroy(ctx context.Context) error {
	return e.client.DestroyContext(ctx, e.ClusterID, e.ID)
}
