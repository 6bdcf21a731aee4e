// Package applenotes provides the agent tools for managing notes in the
// macOS Notes application.
//
// Every tool follows the same shape: decode XML arguments, consult the rate
// limiter, run one operation through the notes service, and map the typed
// result onto a message plus metadata. Semantic misses (note or folder not
// found) come back as calm, precise messages rather than errors; process
// failures surface only the generic failure text, never raw interpreter
// diagnostics.
//
// Tool Overview:
//
// create_note: create a note with a name, body and optional folder/account
//
// get_note: read a note's body by exact name, optionally copying it to the
// system clipboard
//
// search_notes: find notes whose name or body contains a query, with an
// optional glob filter on titles
//
// edit_note: replace a note's body by exact name
//
// delete_note: delete a note by exact name
//
// move_note: move a note into a named folder
//
// list_notes: enumerate note names, optionally scoped to a folder
//
// list_folders: enumerate folder names
//
// list_accounts: enumerate account names
//
// Usage Example:
//
//	client := notes.NewClient(osascript.NewExecutor())
//	limiter := ratelimit.NewLimiter(ratelimit.Limit{MaxCalls: 30, Window: time.Minute})
//	registry := applenotes.NewRegistry(client, limiter)
//	for _, tool := range registry.RegisterTools() {
//		// hand to the calling agent
//	}
package applenotes
