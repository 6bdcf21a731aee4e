package config

import (
	"fmt"
	"time"
)

// SectionIDExecutor is the identifier for the executor section.
const SectionIDExecutor = "executor"

// DefaultTimeoutSeconds bounds how long a single script run may take.
const DefaultTimeoutSeconds = 10

// ExecutorSection holds the subprocess settings for script execution.
type ExecutorSection struct {
	timeoutSeconds int
	binaryPath     string
}

// NewExecutorSection creates an executor section with defaults.
func NewExecutorSection() *ExecutorSection {
	return &ExecutorSection{
		timeoutSeconds: DefaultTimeoutSeconds,
		binaryPath:     "osascript",
	}
}

// ID returns the section identifier.
func (s *ExecutorSection) ID() string {
	return SectionIDExecutor
}

// Title returns the section title.
func (s *ExecutorSection) Title() string {
	return "Executor"
}

// Description returns the section description.
func (s *ExecutorSection) Description() string {
	return "Subprocess settings for running generated scripts"
}

// Data returns the current configuration data.
func (s *ExecutorSection) Data() map[string]interface{} {
	return map[string]interface{}{
		"timeout_seconds": s.timeoutSeconds,
		"binary_path":     s.binaryPath,
	}
}

// SetData updates the configuration from the provided data.
func (s *ExecutorSection) SetData(data map[string]interface{}) error {
	if data == nil {
		return nil
	}

	if v, ok := data["timeout_seconds"]; ok {
		seconds, err := toInt(v)
		if err != nil {
			return fmt.Errorf("invalid timeout_seconds: %w", err)
		}
		s.timeoutSeconds = seconds
	}

	if v, ok := data["binary_path"]; ok {
		path, ok := v.(string)
		if !ok {
			return fmt.Errorf("invalid binary_path: expected string, got %T", v)
		}
		if path != "" {
			s.binaryPath = path
		}
	}

	return nil
}

// Validate validates the current configuration.
func (s *ExecutorSection) Validate() error {
	if s.timeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds must be positive, got %d", s.timeoutSeconds)
	}
	if s.binaryPath == "" {
		return fmt.Errorf("binary_path is empty")
	}
	return nil
}

// Reset restores the section to default configuration.
func (s *ExecutorSection) Reset() {
	s.timeoutSeconds = DefaultTimeoutSeconds
	s.binaryPath = "osascript"
}

// Timeout returns the configured timeout as a duration.
func (s *ExecutorSection) Timeout() time.Duration {
	return time.Duration(s.timeoutSeconds) * time.Second
}

// BinaryPath returns the configured interpreter path.
func (s *ExecutorSection) BinaryPath() string {
	return s.binaryPath
}

// toInt normalizes the numeric types JSON decoding can produce.
func toInt(v interface{}) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("expected number, got %T", v)
	}
}
