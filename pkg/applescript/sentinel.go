package applescript

// Sentinel values returned from inside generated scripts. The osascript exit
// code cannot distinguish "ran and found nothing" from "ran and succeeded"
// (both exit 0), so locate-by-name scripts return one of these literals on
// every path. The decoder in pkg/notes matches against the same constants;
// neither side hardcodes the strings.
const (
	// SentinelSuccess is returned by mutation scripts that completed.
	SentinelSuccess = "success"

	// SentinelNotFound is returned when the target entity does not exist
	// and the script locates only one kind of entity.
	SentinelNotFound = "not found"

	// SentinelNoteNotFound is returned when a script that first locates a
	// folder found the folder but not the note inside it.
	SentinelNoteNotFound = "note not found"

	// SentinelFolderNotFound is returned when a referenced folder does not
	// exist. Decoders must check this before SentinelNoteNotFound.
	SentinelFolderNotFound = "folder not found"
)

// ListSeparator joins entity names in the output of enumeration and search
// scripts. Decoders split on it and treat empty output as an empty list.
const ListSeparator = "|"
