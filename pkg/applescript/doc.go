// Package applescript generates the AppleScript that Quill runs against the
// Notes application, and owns the two conventions every generated script must
// follow:
//
// Sanitization: any caller-supplied text embedded in a script goes through
// Sanitize first, so it can sit inside a string literal without closing the
// literal early or smuggling in additional statements. Sanitization is purely
// structural; length limits and content validation happen upstream on the raw
// input.
//
// Sentinels: a script that locates an entity by name cannot rely on the
// osascript exit code to distinguish "found" from "missing" (both exit 0), so
// every locate path returns an explicit sentinel string. The sentinel literals
// are defined here, next to the builders that emit them, and the decoding
// layer in pkg/notes imports the same constants. Keeping both sides on one
// set of constants is what stops the script text and the decoder from
// drifting apart.
//
// Builder Overview:
//
// CreateNote: create a note, optionally inside a named folder
//
// GetNoteBody: locate a note by exact name and return its body
//
// UpdateNoteBody: locate a note by exact name and replace its body
//
// DeleteNote: locate a note by exact name and delete it
//
// MoveNote: locate a note and move it to a named folder
//
// SearchNotes: return names of notes whose name or body contains a query
//
// ListNotes, ListFolders, ListAccounts: enumeration scripts returning
// separator-joined name lists
package applescript
