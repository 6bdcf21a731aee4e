package config

import (
	"fmt"
	"sort"
	"time"

	"github.com/entrhq/quill/pkg/ratelimit"
)

// SectionIDRateLimit is the identifier for the rate limit section.
const SectionIDRateLimit = "rate_limit"

// Default budget applied to every tool without an explicit override.
const (
	DefaultMaxCalls      = 30
	DefaultWindowSeconds = 60
)

// limitEntry is the stored form of one budget.
type limitEntry struct {
	MaxCalls      int `json:"max_calls"`
	WindowSeconds int `json:"window_seconds"`
}

// RateLimitSection holds the per-tool call budgets enforced before script
// execution.
type RateLimitSection struct {
	fallback  limitEntry
	overrides map[string]limitEntry
}

// NewRateLimitSection creates a rate limit section with defaults.
func NewRateLimitSection() *RateLimitSection {
	return &RateLimitSection{
		fallback:  limitEntry{MaxCalls: DefaultMaxCalls, WindowSeconds: DefaultWindowSeconds},
		overrides: make(map[string]limitEntry),
	}
}

// ID returns the section identifier.
func (s *RateLimitSection) ID() string {
	return SectionIDRateLimit
}

// Title returns the section title.
func (s *RateLimitSection) Title() string {
	return "Rate Limits"
}

// Description returns the section description.
func (s *RateLimitSection) Description() string {
	return "Per-tool call budgets, enforced before any script executes"
}

// Data returns the current configuration data.
func (s *RateLimitSection) Data() map[string]interface{} {
	overrides := make(map[string]interface{}, len(s.overrides))
	for name, entry := range s.overrides {
		overrides[name] = map[string]interface{}{
			"max_calls":      entry.MaxCalls,
			"window_seconds": entry.WindowSeconds,
		}
	}

	return map[string]interface{}{
		"max_calls":      s.fallback.MaxCalls,
		"window_seconds": s.fallback.WindowSeconds,
		"overrides":      overrides,
	}
}

// SetData updates the configuration from the provided data.
func (s *RateLimitSection) SetData(data map[string]interface{}) error {
	if data == nil {
		return nil
	}

	if v, ok := data["max_calls"]; ok {
		n, err := toInt(v)
		if err != nil {
			return fmt.Errorf("invalid max_calls: %w", err)
		}
		s.fallback.MaxCalls = n
	}

	if v, ok := data["window_seconds"]; ok {
		n, err := toInt(v)
		if err != nil {
			return fmt.Errorf("invalid window_seconds: %w", err)
		}
		s.fallback.WindowSeconds = n
	}

	rawOverrides, ok := data["overrides"]
	if !ok {
		return nil
	}
	overridesMap, ok := rawOverrides.(map[string]interface{})
	if !ok {
		return fmt.Errorf("invalid overrides: expected map, got %T", rawOverrides)
	}

	overrides := make(map[string]limitEntry, len(overridesMap))
	for name, raw := range overridesMap {
		entryMap, ok := raw.(map[string]interface{})
		if !ok {
			return fmt.Errorf("invalid override for %q: expected map, got %T", name, raw)
		}

		entry := s.fallback
		if v, ok := entryMap["max_calls"]; ok {
			n, err := toInt(v)
			if err != nil {
				return fmt.Errorf("invalid max_calls for %q: %w", name, err)
			}
			entry.MaxCalls = n
		}
		if v, ok := entryMap["window_seconds"]; ok {
			n, err := toInt(v)
			if err != nil {
				return fmt.Errorf("invalid window_seconds for %q: %w", name, err)
			}
			entry.WindowSeconds = n
		}
		overrides[name] = entry
	}

	s.overrides = overrides
	return nil
}

// Validate validates the current configuration.
func (s *RateLimitSection) Validate() error {
	if s.fallback.MaxCalls < 0 {
		return fmt.Errorf("max_calls must not be negative, got %d", s.fallback.MaxCalls)
	}
	if s.fallback.WindowSeconds < 0 {
		return fmt.Errorf("window_seconds must not be negative, got %d", s.fallback.WindowSeconds)
	}
	for name, entry := range s.overrides {
		if entry.MaxCalls < 0 || entry.WindowSeconds < 0 {
			return fmt.Errorf("override for %q has negative values", name)
		}
	}
	return nil
}

// Reset restores the section to default configuration.
func (s *RateLimitSection) Reset() {
	s.fallback = limitEntry{MaxCalls: DefaultMaxCalls, WindowSeconds: DefaultWindowSeconds}
	s.overrides = make(map[string]limitEntry)
}

// FallbackLimit returns the budget applied to tools without an override.
func (s *RateLimitSection) FallbackLimit() ratelimit.Limit {
	return ratelimit.Limit{
		MaxCalls: s.fallback.MaxCalls,
		Window:   time.Duration(s.fallback.WindowSeconds) * time.Second,
	}
}

// SetOverride sets a budget for a specific tool name.
func (s *RateLimitSection) SetOverride(name string, maxCalls, windowSeconds int) {
	s.overrides[name] = limitEntry{MaxCalls: maxCalls, WindowSeconds: windowSeconds}
}

// NewLimiter builds a limiter from the configured budgets.
func (s *RateLimitSection) NewLimiter(opts ...ratelimit.Option) *ratelimit.Limiter {
	names := make([]string, 0, len(s.overrides))
	for name := range s.overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	options := make([]ratelimit.Option, 0, len(names)+len(opts))
	for _, name := range names {
		entry := s.overrides[name]
		options = append(options, ratelimit.WithLimit(name, ratelimit.Limit{
			MaxCalls: entry.MaxCalls,
			Window:   time.Duration(entry.WindowSeconds) * time.Second,
		}))
	}
	options = append(options, opts...)

	return ratelimit.NewLimiter(s.FallbackLimit(), options...)
}
