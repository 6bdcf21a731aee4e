// Package main provides the quill note automation runner. It executes
// XML-formatted note tool calls, either a single call from the command line
// or a batch from a YAML task file, against the local Notes application.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/entrhq/quill/pkg/agent/tools"
	appconfig "github.com/entrhq/quill/pkg/config"
	"github.com/entrhq/quill/pkg/executor/osascript"
	"github.com/entrhq/quill/pkg/logging"
	"github.com/entrhq/quill/pkg/notes"
	"github.com/entrhq/quill/pkg/tools/applenotes"
	"github.com/entrhq/quill/pkg/types"
)

const version = "0.1.0"

// Config holds the application configuration
type Config struct {
	ConfigPath  string
	TaskFile    string
	Call        string
	Account     string
	ListTools   bool
	ShowVersion bool
}

func main() {
	config := parseFlags()

	if config.ShowVersion {
		fmt.Printf("quill v%s\n", version)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nShutting down...")
		cancel()
	}()

	if err := run(ctx, config); err != nil {
		cancel()
		log.Fatalf("Error: %v", err)
	}
}

// parseFlags parses command line flags
func parseFlags() *Config {
	config := &Config{}

	flag.StringVar(&config.ConfigPath, "config", "", "Path to config file (default: ~/.quill/config.json)")
	flag.StringVar(&config.TaskFile, "tasks", "", "Path to a YAML task file of tool calls")
	flag.StringVar(&config.Call, "call", "", "A single XML tool call to execute")
	flag.StringVar(&config.Account, "account", "", "Override the configured fallback account")
	flag.BoolVar(&config.ListTools, "list-tools", false, "List available tools and exit")
	flag.BoolVar(&config.ShowVersion, "version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "quill - Apple Notes automation runner\n\n")
		fmt.Fprintf(os.Stderr, "Usage: quill [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  quill -list-tools\n")
		fmt.Fprintf(os.Stderr, "  quill -tasks tasks.yaml\n")
		fmt.Fprintf(os.Stderr, "  quill -call '<tool><tool_name>list_notes</tool_name><arguments></arguments></tool>'\n")
	}

	flag.Parse()
	return config
}

func run(ctx context.Context, config *Config) error {
	if err := appconfig.Initialize(config.ConfigPath); err != nil {
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}

	logger, err := logging.NewLogger("quill")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: file logging unavailable: %v\n", err)
	}
	defer logger.Close()

	registry := buildRegistry(config, logger)

	if config.ListTools {
		for _, tool := range registry.RegisterTools() {
			fmt.Printf("%-15s %s\n", tool.Name(), tool.Description())
		}
		return nil
	}

	taskList, err := loadTasks(config)
	if err != nil {
		return err
	}
	if len(taskList) == 0 {
		flag.Usage()
		return fmt.Errorf("nothing to do: provide -tasks, -call, or -list-tools")
	}

	return runTasks(ctx, registry, taskList, logger)
}

// buildRegistry wires the tool suite from configuration.
func buildRegistry(config *Config, logger *logging.Logger) *applenotes.Registry {
	executorCfg := appconfig.GetExecutor()
	runner := osascript.NewExecutor(
		osascript.WithBinary(executorCfg.BinaryPath(), "-e"),
		osascript.WithTimeout(executorCfg.Timeout()),
	)

	account := config.Account
	if account == "" {
		account = appconfig.GetNotes().DefaultAccount()
	}

	client := notes.NewClient(runner,
		notes.WithDefaultAccount(account),
		notes.WithLogger(logger),
	)

	limiter := appconfig.GetRateLimit().NewLimiter()
	return applenotes.NewRegistry(client, limiter)
}

// logEmitter forwards execution lifecycle events to the debug log.
func logEmitter(logger *logging.Logger) osascript.EventEmitter {
	return func(event *types.Event) {
		switch event.Type {
		case types.EventTypeToolCall:
			logger.Infof("tool call: %s", event.ToolName)
		case types.EventTypeToolResult:
			logger.Infof("tool result: %s", event.ToolName)
		case types.EventTypeToolResultError:
			logger.Errorf("tool error: %s: %v", event.ToolName, event.Error)
		case types.EventTypeScriptStart:
			logger.Debugf("script %s started", event.ScriptExecution.ExecutionID)
		case types.EventTypeScriptOutput:
			logger.Debugf("script %s %s: %s", event.ScriptExecution.ExecutionID,
				event.ScriptExecution.StreamType, event.ScriptExecution.Output)
		case types.EventTypeScriptComplete:
			logger.Debugf("script %s completed in %s", event.ScriptExecution.ExecutionID,
				event.ScriptExecution.Duration)
		case types.EventTypeScriptFailed:
			logger.Debugf("script %s failed with code %d after %s", event.ScriptExecution.ExecutionID,
				event.ScriptExecution.ExitCode, event.ScriptExecution.Duration)
		}
	}
}

// runTasks executes every task in order, reporting each result. A failed
// task does not stop the batch; the first failure is returned at the end.
func runTasks(ctx context.Context, registry *applenotes.Registry, taskList []task, logger *logging.Logger) error {
	emit := logEmitter(logger)
	ctx = osascript.WithEmitter(ctx, emit)

	var firstErr error
	for i, tk := range taskList {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		label := tk.Name
		if label == "" {
			label = fmt.Sprintf("task %d", i+1)
		}

		result, err := executeCall(ctx, registry, tk.Call, emit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "[%s] failed: %v\n", label, err)
			logger.Errorf("task %q failed: %v", label, err)
			if firstErr == nil {
				firstErr = fmt.Errorf("task %q failed: %w", label, err)
			}
			continue
		}

		fmt.Printf("[%s] %s\n", label, result)
		logger.Infof("task %q completed", label)
	}
	return firstErr
}

// executeCall parses one XML tool call and dispatches it to the registry.
func executeCall(ctx context.Context, registry *applenotes.Registry, callXML string, emit osascript.EventEmitter) (string, error) {
	toolCall, _, err := tools.ParseToolCall(callXML)
	if err != nil {
		return "", err
	}

	tool, ok := registry.Get(toolCall.ToolName)
	if !ok {
		return "", fmt.Errorf("unknown tool %q", toolCall.ToolName)
	}

	emit(types.NewToolCallEvent(toolCall.ToolName))
	result, metadata, err := tool.Execute(ctx, toolCall.GetArgumentsXML())
	if err != nil {
		emit(types.NewToolResultErrorEvent(toolCall.ToolName, err))
		return "", err
	}

	resultEvent := types.NewToolResultEvent(toolCall.ToolName, result)
	for k, v := range metadata {
		resultEvent.Metadata[k] = v
	}
	emit(resultEvent)
	return result, nil
}
