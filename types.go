package rexec

import "encoding/json"

// Language tags accepted by the API when creating a context or
// submitting a command.
const (
	LanguageR      = "r"
	LanguagePython = "python"
	LanguageScala  = "scala"
	LanguageSQL    = "sql"
)

// Command status values reported by the API.
//
// A command moves Queued -> Running and then settles in one of the
// terminal statuses. Cancelling appears transiently after a cancel
// request. The poller treats every status outside {Queued, Running} as
// terminal, so statuses added by future API versions end the wait
// instead of hanging it.
const (
	StatusQueued     = "Queued"
	StatusRunning    = "Running"
	StatusCancelling = "Cancelling"
	StatusFinished   = "Finished"
	StatusError      = "Error"
	StatusCancelled  = "Cancelled"
)

// IsActiveStatus reports whether a command status is still in flight,
// i.e. worth polling again.
func IsActiveStatus(status string) bool {
	return status == StatusQueued || status == StatusRunning
}

// Result type values in [CommandResults].ResultType.
const (
	ResultTypeText  = "text"
	ResultTypeTable = "table"
	ResultTypeError = "error"
)

// ContextInfo is the status of an execution context as reported by
// the contexts/status endpoint.
type ContextInfo struct {
	// ID is the opaque context identifier.
	ID string `json:"id"`

	// Status is the context state, typically "Pending", "Running" or
	// "Error".
	Status string `json:"status"`
}

// CommandInfo is the state of a submitted command as reported by the
// commands/status endpoint.
//
// Use [Client.CommandStatus] for a single snapshot or
// [Client.WaitForCommand] to block until the command is terminal:
//
//	info, err := client.WaitForCommand(ctx, clusterID, contextID, commandID)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(info.Status, info.Results.Text())
type CommandInfo struct {
	// ID is the opaque command (run) identifier.
	ID string `json:"id"`

	// Status is one of the Status* constants.
	Status string `json:"status"`

	// Results holds the command output once the command is terminal.
	// Nil while the command is queued or running.
	Results *CommandResults `json:"results,omitempty"`
}

// Terminal reports whether the command has left the active set
// {Queued, Running}.
func (ci *CommandInfo) Terminal() bool {
	return !IsActiveStatus(ci.Status)
}

// CommandResults is the result payload of a terminal command.
type CommandResults struct {
	// ResultType is one of the ResultType* constants.
	ResultType string `json:"resultType"`

	// Data is the result payload. For ResultTypeText this is a JSON
	// string; for ResultTypeTable it is an array of rows. Kept raw so
	// callers can decode the shape they expect.
	Data json.RawMessage `json:"data,omitempty"`

	// Summary is a short failure description when ResultType is "error".
	Summary string `json:"summary,omitempty"`

	// Cause is the detailed failure cause when ResultType is "error".
	Cause string `json:"cause,omitempty"`
}

// Text returns the result data as plain text.
//
// For the common string payload the JSON quoting is stripped; any other
// payload is returned as raw JSON. Returns "" when there is no data.
func (r *CommandResults) Text() string {
	if r == nil || len(r.Data) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(r.Data, &s); err == nil {
		return s
	}
	return string(r.Data)
}

// Wire request bodies. Field names follow the API's camelCase contract.

type createContextRequest struct {
	Language  string `json:"language"`
	ClusterID string `json:"clusterId"`
	Name      string `json:"name,omitempty"`
}

type executeRequest struct {
	Language  string `json:"language"`
	ClusterID string `json:"clusterId"`
	ContextID string `json:"contextId"`
	Command   string `json:"command"`
}

type destroyContextRequest struct {
	ClusterID string `json:"clusterId"`
	ContextID string `json:"contextId"`
}

type cancelCommandRequest struct {
	ClusterID string `json:"clusterId"`
	ContextID string `json:"contextId"`
	CommandID string `json:"commandId"`
}

// idResponse covers the create and execute responses, which return the
// new resource identifier only.
type idResponse struct {
	ID string `json:"id"`
}
