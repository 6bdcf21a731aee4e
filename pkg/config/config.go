package config

import (
	"sync"
)

var (
	// globalManager is the singleton configuration manager instance
	globalManager *Manager
	globalMu      sync.Mutex
)

// Initialize creates and initializes the global configuration manager.
// This should be called once at application startup.
func Initialize(configPath string) error {
	globalMu.Lock()
	defer globalMu.Unlock()

	store, err := NewFileStore(configPath)
	if err != nil {
		return err
	}

	manager := NewManager(store)

	if err := manager.RegisterSection(NewNotesSection()); err != nil {
		return err
	}

	if err := manager.RegisterSection(NewExecutorSection()); err != nil {
		return err
	}

	if err := manager.RegisterSection(NewRateLimitSection()); err != nil {
		return err
	}

	if err := manager.LoadAll(); err != nil {
		return err
	}

	globalManager = manager
	return nil
}

// Global returns the global configuration manager.
// Panics if Initialize has not been called.
func Global() *Manager {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalManager == nil {
		panic("config not initialized: call config.Initialize first")
	}

	return globalManager
}

// IsInitialized returns true if the global configuration has been initialized.
func IsInitialized() bool {
	globalMu.Lock()
	defer globalMu.Unlock()
	return globalManager != nil
}

// GetNotes returns the notes section from global config.
// Returns nil if config is not initialized.
func GetNotes() *NotesSection {
	if !IsInitialized() {
		return nil
	}

	section, ok := Global().GetSection(SectionIDNotes)
	if !ok {
		return nil
	}

	notes, ok := section.(*NotesSection)
	if !ok {
		return nil
	}

	return notes
}

// GetExecutor returns the executor section from global config.
// Returns nil if config is not initialized.
func GetExecutor() *ExecutorSection {
	if !IsInitialized() {
		return nil
	}

	section, ok := Global().GetSection(SectionIDExecutor)
	if !ok {
		return nil
	}

	executor, ok := section.(*ExecutorSection)
	if !ok {
		return nil
	}

	return executor
}

// GetRateLimit returns the rate limit section from global config.
// Returns nil if config is not initialized.
func GetRateLimit() *RateLimitSection {
	if !IsInitialized() {
		return nil
	}

	section, ok := Global().GetSection(SectionIDRateLimit)
	if !ok {
		return nil
	}

	limits, ok := section.(*RateLimitSection)
	if !ok {
		return nil
	}

	return limits
}
