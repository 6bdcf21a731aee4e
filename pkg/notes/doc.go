// Package notes implements the note operations Quill exposes: create, read,
// edit, delete, move, search and enumeration of notes, folders and accounts.
//
// Each operation builds a script with pkg/applescript, runs it through an
// injected Runner, and decodes the raw outcome with the shared sentinel
// protocol. Decoding follows a fixed priority: a failed process maps to a
// generic failure, then folder-not-found is checked before note-not-found,
// and only then is remaining output treated as payload.
//
// Raw process diagnostics never cross this package's boundary. A caller sees
// the fixed generic failure reason; the underlying stderr goes to the debug
// log only. Semantic misses (note or folder not found) are typed results,
// not failures.
package notes
