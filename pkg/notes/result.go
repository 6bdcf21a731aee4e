package notes

import (
	"strings"

	"github.com/entrhq/quill/pkg/applescript"
	"github.com/entrhq/quill/pkg/executor/osascript"
)

// ResultKind enumerates the decoded outcomes of a note operation.
type ResultKind int

const (
	// KindOK means the operation succeeded. Payload holds the script
	// output for read-style operations and is empty for mutations.
	KindOK ResultKind = iota

	// KindNotFound means the target note does not exist. This is an
	// expected outcome, not a failure.
	KindNotFound

	// KindFolderNotFound means a referenced folder does not exist.
	KindFolderNotFound

	// KindFailed means the process layer failed: spawn error, timeout or
	// non-zero exit. Reason carries the generic failure text.
	KindFailed
)

// GenericFailure is the only failure reason callers ever see. The raw
// interpreter diagnostics stay in the debug log; surfacing them here would
// leak process-layer detail through the tool boundary.
const GenericFailure = "Failed to execute command"

// Result is the typed outcome of one note operation.
type Result struct {
	Kind    ResultKind
	Payload string
	Reason  string
}

// OK reports whether the operation succeeded.
func (r Result) OK() bool {
	return r.Kind == KindOK
}

// sentinelSet declares which sentinels the script behind an outcome can
// emit. Decoding matches only declared sentinels, so output that merely
// looks like one (a folder literally named "not found") survives as payload.
type sentinelSet struct {
	// Folder: the script locates a folder and can return
	// SentinelFolderNotFound.
	Folder bool

	// Note: the script locates a note inside a folder and can return
	// SentinelNoteNotFound.
	Note bool

	// Bare: the script locates a note without a folder scope and can
	// return SentinelNotFound.
	Bare bool
}

var noSentinels = sentinelSet{}

// locateSet returns the sentinels a note-locate script emits for the given
// folder scope.
func locateSet(folder string) sentinelSet {
	if folder == "" {
		return sentinelSet{Bare: true}
	}
	return sentinelSet{Folder: true, Note: true}
}

// decode maps a raw script outcome onto a Result using the shared sentinel
// constants. Order matters: process failure first, then folder-not-found
// before note-not-found, so a script touching both entities can never decode
// ambiguously.
func decode(outcome osascript.Outcome, set sentinelSet) Result {
	if !outcome.Success {
		return Result{Kind: KindFailed, Reason: GenericFailure}
	}
	switch {
	case set.Folder && outcome.Output == applescript.SentinelFolderNotFound:
		return Result{Kind: KindFolderNotFound}
	case set.Note && outcome.Output == applescript.SentinelNoteNotFound:
		return Result{Kind: KindNotFound}
	case set.Bare && outcome.Output == applescript.SentinelNotFound:
		return Result{Kind: KindNotFound}
	}
	return Result{Kind: KindOK, Payload: outcome.Output}
}

// splitList decodes separator-joined enumeration output. Empty output means
// an empty collection, never a single empty element. Elements are trimmed
// and blank elements are dropped: the builders never emit them, so a blank
// can only come from malformed output.
func splitList(output string) []string {
	if output == "" {
		return []string{}
	}
	parts := strings.Split(output, applescript.ListSeparator)
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
