// Package osascript runs generated AppleScript through the system osascript
// interpreter as an isolated child process per invocation.
//
// The package is deliberately narrow: it knows nothing about notes, folders
// or sentinels. It guarantees that the script text reaches the interpreter
// as one opaque argv element (never re-parsed by a shell), that no invocation
// outlives its timeout, and that every possible failure — spawn error,
// timeout, non-zero exit — resolves to a plain Outcome value instead of an
// error or a panic. Interpretation of the output belongs to pkg/notes.
package osascript
