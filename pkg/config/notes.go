package config

import (
	"fmt"
	"strings"
)

// SectionIDNotes is the identifier for the notes section.
const SectionIDNotes = "notes"

// DefaultFallbackAccount is the account tried when a simple creation attempt
// fails and the caller did not name one.
const DefaultFallbackAccount = "iCloud"

// NotesSection holds the account and folder defaults applied when a tool
// call omits them.
type NotesSection struct {
	defaultAccount string
	defaultFolder  string
}

// NewNotesSection creates a notes section with defaults.
func NewNotesSection() *NotesSection {
	return &NotesSection{
		defaultAccount: DefaultFallbackAccount,
	}
}

// ID returns the section identifier.
func (s *NotesSection) ID() string {
	return SectionIDNotes
}

// Title returns the section title.
func (s *NotesSection) Title() string {
	return "Notes"
}

// Description returns the section description.
func (s *NotesSection) Description() string {
	return "Default account and folder used when a tool call does not name them"
}

// Data returns the current configuration data.
func (s *NotesSection) Data() map[string]interface{} {
	return map[string]interface{}{
		"default_account": s.defaultAccount,
		"default_folder":  s.defaultFolder,
	}
}

// SetData updates the configuration from the provided data.
func (s *NotesSection) SetData(data map[string]interface{}) error {
	if data == nil {
		return nil
	}

	if v, ok := data["default_account"]; ok {
		account, ok := v.(string)
		if !ok {
			return fmt.Errorf("invalid default_account: expected string, got %T", v)
		}
		s.defaultAccount = account
	}

	if v, ok := data["default_folder"]; ok {
		folder, ok := v.(string)
		if !ok {
			return fmt.Errorf("invalid default_folder: expected string, got %T", v)
		}
		s.defaultFolder = folder
	}

	return nil
}

// Validate validates the current configuration.
func (s *NotesSection) Validate() error {
	if s.defaultAccount != "" && strings.TrimSpace(s.defaultAccount) == "" {
		return fmt.Errorf("default_account is blank")
	}
	return nil
}

// Reset restores the section to default configuration.
func (s *NotesSection) Reset() {
	s.defaultAccount = DefaultFallbackAccount
	s.defaultFolder = ""
}

// DefaultAccount returns the configured fallback account.
func (s *NotesSection) DefaultAccount() string {
	return s.defaultAccount
}

// DefaultFolder returns the configured default folder, empty when unset.
func (s *NotesSection) DefaultFolder() string {
	return s.defaultFolder
}

// SetDefaultAccount updates the fallback account.
func (s *NotesSection) SetDefaultAccount(account string) {
	s.defaultAccount = strings.TrimSpace(account)
}

// SetDefaultFolder updates the default folder.
func (s *NotesSection) SetDefaultFolder(folder string) {
	s.defaultFolder = strings.TrimSpace(folder)
}
