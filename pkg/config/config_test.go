package config

import (
	"path/filepath"
	"testing"
)

func resetGlobal() {
	globalMu.Lock()
	globalManager = nil
	globalMu.Unlock()
}

func TestInitialize(t *testing.T) {
	t.Run("initializes global manager successfully", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.json")

		resetGlobal()

		if err := Initialize(configPath); err != nil {
			t.Fatalf("Initialize failed: %v", err)
		}

		if !IsInitialized() {
			t.Error("Global manager should be initialized")
		}

		manager := Global()
		for _, id := range []string{SectionIDNotes, SectionIDExecutor, SectionIDRateLimit} {
			section, ok := manager.GetSection(id)
			if !ok || section == nil {
				t.Errorf("section %q not registered", id)
			}
		}
	})

	t.Run("loads existing configuration", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.json")

		resetGlobal()
		if err := Initialize(configPath); err != nil {
			t.Fatalf("First initialize failed: %v", err)
		}

		notes := GetNotes()
		notes.SetDefaultAccount("Work")
		notes.SetDefaultFolder("Projects")
		if err := Global().SaveAll(); err != nil {
			t.Fatalf("SaveAll failed: %v", err)
		}

		resetGlobal()
		if err := Initialize(configPath); err != nil {
			t.Fatalf("Second initialize failed: %v", err)
		}

		reloaded := GetNotes()
		if reloaded.DefaultAccount() != "Work" {
			t.Errorf("DefaultAccount = %q, want Work", reloaded.DefaultAccount())
		}
		if reloaded.DefaultFolder() != "Projects" {
			t.Errorf("DefaultFolder = %q, want Projects", reloaded.DefaultFolder())
		}
	})
}

func TestGlobal_PanicsWhenUninitialized(t *testing.T) {
	resetGlobal()

	defer func() {
		if recover() == nil {
			t.Error("Global() should panic before Initialize")
		}
	}()
	Global()
}

func TestTypedGetters_NilWhenUninitialized(t *testing.T) {
	resetGlobal()

	if GetNotes() != nil {
		t.Error("GetNotes should return nil before Initialize")
	}
	if GetExecutor() != nil {
		t.Error("GetExecutor should return nil before Initialize")
	}
	if GetRateLimit() != nil {
		t.Error("GetRateLimit should return nil before Initialize")
	}
}
