package types

// EventType defines the type of event emitted while Quill runs tools and
// scripts.
type EventType string

const (
	EventTypeToolCall        EventType = "tool_call"         // EventTypeToolCall indicates a tool is being invoked.
	EventTypeToolResult      EventType = "tool_result"       // EventTypeToolResult indicates a successful tool invocation result.
	EventTypeToolResultError EventType = "tool_result_error" // EventTypeToolResultError indicates a tool invocation resulted in an error.
	EventTypeScriptStart     EventType = "script_start"      // EventTypeScriptStart indicates an osascript process has started.
	EventTypeScriptOutput    EventType = "script_output"     // EventTypeScriptOutput indicates output from a running osascript process.
	EventTypeScriptComplete  EventType = "script_complete"   // EventTypeScriptComplete indicates an osascript process exited successfully.
	EventTypeScriptFailed    EventType = "script_failed"     // EventTypeScriptFailed indicates an osascript process failed or timed out.
)

// Event represents a single observable step of tool or script execution.
type Event struct {
	// Type indicates the kind of event.
	Type EventType

	// ToolName is the name of the tool being invoked (for tool events).
	ToolName string

	// ToolOutput is the result from the tool (for tool result events).
	ToolOutput interface{}

	// Error contains error information for error events.
	Error error

	// Metadata holds optional additional information about the event.
	Metadata map[string]interface{}

	// ScriptExecution contains process information (for script events).
	ScriptExecution *ScriptExecution
}

// ScriptExecution contains information about one osascript invocation.
type ScriptExecution struct {
	// ExecutionID is a unique identifier for this invocation.
	ExecutionID string

	// Output is a buffered output chunk (for script output events).
	Output string

	// StreamType indicates whether output is from stdout or stderr.
	StreamType string // "stdout" or "stderr"

	// ExitCode is the process exit code (for completion/failed events).
	ExitCode int

	// Duration is how long the process ran.
	Duration string
}

// NewToolCallEvent creates a tool call event.
func NewToolCallEvent(toolName string) *Event {
	return &Event{
		Type:     EventTypeToolCall,
		ToolName: toolName,
		Metadata: make(map[string]interface{}),
	}
}

// NewToolResultEvent creates a tool result event.
func NewToolResultEvent(toolName string, output interface{}) *Event {
	return &Event{
		Type:       EventTypeToolResult,
		ToolName:   toolName,
		ToolOutput: output,
		Metadata:   make(map[string]interface{}),
	}
}

// NewToolResultErrorEvent creates a tool error event.
func NewToolResultErrorEvent(toolName string, err error) *Event {
	return &Event{
		Type:     EventTypeToolResultError,
		ToolName: toolName,
		Error:    err,
		Metadata: make(map[string]interface{}),
	}
}

// NewScriptStartEvent creates a script execution start event.
func NewScriptStartEvent(executionID string) *Event {
	return &Event{
		Type: EventTypeScriptStart,
		ScriptExecution: &ScriptExecution{
			ExecutionID: executionID,
		},
	}
}

// NewScriptOutputEvent creates a script output event for one stream chunk.
func NewScriptOutputEvent(executionID, output, streamType string) *Event {
	return &Event{
		Type: EventTypeScriptOutput,
		ScriptExecution: &ScriptExecution{
			ExecutionID: executionID,
			Output:      output,
			StreamType:  streamType,
		},
	}
}

// NewScriptCompleteEvent creates a script completion event.
func NewScriptCompleteEvent(executionID string, exitCode int, duration string) *Event {
	return &Event{
		Type: EventTypeScriptComplete,
		ScriptExecution: &ScriptExecution{
			ExecutionID: executionID,
			ExitCode:    exitCode,
			Duration:    duration,
		},
	}
}

// NewScriptFailedEvent creates a script failure event.
func NewScriptFailedEvent(executionID string, exitCode int, duration string) *Event {
	return &Event{
		Type: EventTypeScriptFailed,
		ScriptExecution: &ScriptExecution{
			ExecutionID: executionID,
			ExitCode:    exitCode,
			Duration:    duration,
		},
	}
}
