package osascript

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/entrhq/quill/pkg/types"
	"github.com/google/uuid"
)

const (
	// DefaultBinary is the interpreter launched for every script.
	DefaultBinary = "osascript"

	// DefaultTimeout bounds the wall-clock duration of a single invocation.
	DefaultTimeout = 10 * time.Second
)

// Outcome is the structured result of one script invocation. Execute
// produces exactly one Outcome per call and never panics or returns a Go
// error across this boundary; callers decide which outcomes are hard
// failures.
type Outcome struct {
	// Success is true only when the process ran and exited zero.
	Success bool

	// Output is the trimmed stdout of a successful invocation. Empty
	// output with a zero exit is still success.
	Output string

	// Error is the trimmed diagnostic text of a failed invocation: stderr,
	// a timeout notice, or a spawn failure description. Callers must not
	// surface it verbatim to end users.
	Error string
}

// EventEmitter receives execution lifecycle events when installed in the
// context passed to Execute.
type EventEmitter func(*types.Event)

// contextKey is a private type for context keys to avoid collisions.
type contextKey string

const emitterKey contextKey = "script_event_emitter"

// WithEmitter returns a context carrying an emitter that Execute will send
// script lifecycle events to.
func WithEmitter(ctx context.Context, emit EventEmitter) context.Context {
	return context.WithValue(ctx, emitterKey, emit)
}

func emitterFromContext(ctx context.Context) EventEmitter {
	if emit, ok := ctx.Value(emitterKey).(EventEmitter); ok {
		return emit
	}
	return nil
}

// Executor runs AppleScript through the osascript interpreter. Each Execute
// call spawns an independent child process with its own timeout and stream
// buffers; an Executor holds no mutable state and is safe for concurrent use.
type Executor struct {
	binary  string
	args    []string
	timeout time.Duration
}

// Option configures an Executor.
type Option func(*Executor)

// WithBinary overrides the interpreter binary. Used by tests to substitute
// a controllable process.
func WithBinary(binary string, args ...string) Option {
	return func(e *Executor) {
		e.binary = binary
		e.args = args
	}
}

// WithTimeout overrides the per-invocation wall-clock bound.
func WithTimeout(timeout time.Duration) Option {
	return func(e *Executor) {
		if timeout > 0 {
			e.timeout = timeout
		}
	}
}

// NewExecutor creates an Executor that invokes `osascript -e <script>` with
// the default 10 second timeout.
func NewExecutor(opts ...Option) *Executor {
	e := &Executor{
		binary:  DefaultBinary,
		args:    []string{"-e"},
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Timeout returns the configured per-invocation bound.
func (e *Executor) Timeout() time.Duration {
	return e.timeout
}

// Execute runs one script to completion or timeout, whichever comes first.
//
// The script travels to the interpreter as a single argv element. No shell
// ever re-tokenizes it; together with sanitization in pkg/applescript this
// is the injection boundary. Both output streams are captured incrementally,
// accumulated, decoded and trimmed. Every failure mode, including a missing
// binary, folds into the returned Outcome.
func (e *Executor) Execute(ctx context.Context, script string) Outcome {
	execCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	args := make([]string, 0, len(e.args)+1)
	args = append(args, e.args...)
	args = append(args, script)
	cmd := exec.CommandContext(execCtx, e.binary, args...)

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return Outcome{Error: fmt.Sprintf("failed to open stdout pipe: %v", err)}
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return Outcome{Error: fmt.Sprintf("failed to open stderr pipe: %v", err)}
	}

	emit := emitterFromContext(ctx)
	execID := fmt.Sprintf("script_%s", uuid.New().String())

	start := time.Now()
	if err := cmd.Start(); err != nil {
		// Spawn failure: the process never ran, so there is no exit code
		// to report.
		return Outcome{Error: fmt.Sprintf("failed to start %s: %v", e.binary, err)}
	}

	if emit != nil {
		emit(types.NewScriptStartEvent(execID))
	}

	var wg sync.WaitGroup
	var stdout, stderr strings.Builder
	var outputMu sync.Mutex

	wg.Add(2)
	go func() {
		defer wg.Done()
		drainStream(stdoutPipe, "stdout", execID, emit, &stdout, &outputMu)
	}()
	go func() {
		defer wg.Done()
		drainStream(stderrPipe, "stderr", execID, emit, &stderr, &outputMu)
	}()

	// Both pipes must reach EOF before Wait: Wait closes them once the
	// process exits and buffered output would be lost.
	wg.Wait()
	waitErr := cmd.Wait()

	duration := time.Since(start)

	outputMu.Lock()
	outText := strings.TrimSpace(stdout.String())
	errText := strings.TrimSpace(stderr.String())
	outputMu.Unlock()

	if waitErr != nil {
		exitCode := -1
		if exitErr, ok := waitErr.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		if emit != nil {
			emit(types.NewScriptFailedEvent(execID, exitCode, duration.String()))
		}

		switch execCtx.Err() {
		case context.DeadlineExceeded:
			return Outcome{Error: fmt.Sprintf("command timed out after %s", e.timeout)}
		case context.Canceled:
			return Outcome{Error: "command canceled before completion"}
		}

		if errText == "" {
			errText = fmt.Sprintf("%s exited with code %d", e.binary, exitCode)
		}
		return Outcome{Error: errText}
	}

	if emit != nil {
		emit(types.NewScriptCompleteEvent(execID, 0, duration.String()))
	}
	return Outcome{Success: true, Output: outText}
}

// drainStream reads one pipe to EOF, accumulating lines and emitting chunk
// events when an emitter is installed. Output is consumed as it arrives so a
// chatty script cannot stall on a full pipe buffer.
func drainStream(pipe io.ReadCloser, streamType, execID string, emit EventEmitter, builder *strings.Builder, mu *sync.Mutex) {
	scanner := bufio.NewScanner(pipe)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text() + "\n"

		mu.Lock()
		builder.WriteString(line)
		mu.Unlock()

		if emit != nil {
			emit(types.NewScriptOutputEvent(execID, line, streamType))
		}
	}
}
