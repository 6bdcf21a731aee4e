package applescript

import (
	"fmt"
	"strings"
)

// CreateNote builds a script that creates a note, optionally inside a named
// folder. When a folder is given the script locates it by exact name and
// returns SentinelFolderNotFound if it is missing; without one the note lands
// in the account's default location.
func CreateNote(account, folder, name, body string) string {
	props := fmt.Sprintf("{name:%s, body:%s}", stringLiteral(name), stringLiteral(body))
	if folder == "" {
		return wrap(account, fmt.Sprintf("make new note with properties %s\nreturn %q", props, SentinelSuccess))
	}
	action := fmt.Sprintf("make new note at f with properties %s\nreturn %q", props, SentinelSuccess)
	return wrap(account, locateFolder(folder, action))
}

// GetNoteBody builds a script that locates a note by exact name and returns
// its body as the script output.
func GetNoteBody(account, folder, name string) string {
	return wrap(account, locateNote(folder, name, "return body of n as text"))
}

// UpdateNoteBody builds a script that locates a note by exact name and
// replaces its body.
func UpdateNoteBody(account, folder, name, body string) string {
	action := fmt.Sprintf("set body of n to %s\nreturn %q", stringLiteral(body), SentinelSuccess)
	return wrap(account, locateNote(folder, name, action))
}

// DeleteNote builds a script that locates a note by exact name and deletes it.
func DeleteNote(account, folder, name string) string {
	action := fmt.Sprintf("delete n\nreturn %q", SentinelSuccess)
	return wrap(account, locateNote(folder, name, action))
}

// MoveNote builds a script that moves a note into a named folder. The folder
// is located before the note, so a missing folder wins over a missing note
// when both would match.
func MoveNote(account, name, targetFolder string) string {
	action := fmt.Sprintf(`repeat with n in notes
	if name of n is %s then
		move n to f
		return %q
	end if
end repeat
return %q`, stringLiteral(name), SentinelSuccess, SentinelNoteNotFound)
	return wrap(account, locateFolder(targetFolder, action))
}

// SearchNotes builds a script that returns the names of notes whose name or
// body contains the query, joined with ListSeparator. No matches produce
// empty output, not a sentinel.
func SearchNotes(account, query string) string {
	q := stringLiteral(query)
	s := fmt.Sprintf(`set output to ""
repeat with n in notes
	if (name of n contains %s) or (body of n contains %s) then
%s
	end if
end repeat
return output`, q, q, indent(appendName("n"), 2))
	return wrap(account, s)
}

// ListNotes builds a script that enumerates note names, scoped to a named
// folder when one is given.
func ListNotes(account, folder string) string {
	if folder == "" {
		return wrap(account, collectNames("notes", "n"))
	}
	return wrap(account, locateFolder(folder, collectNames("notes of f", "n")))
}

// ListFolders builds a script that enumerates folder names.
func ListFolders(account string) string {
	return wrap(account, collectNames("folders", "f"))
}

// ListAccounts builds a script that enumerates account names.
func ListAccounts() string {
	return wrap("", collectNames("accounts", "a"))
}

// wrap surrounds body with the Notes application scope and, when account is
// non-empty, an inner account scope.
func wrap(account, body string) string {
	if account != "" {
		body = fmt.Sprintf("tell account %s\n%s\nend tell", stringLiteral(account), indent(body, 1))
	}
	return fmt.Sprintf("tell application \"Notes\"\n%s\nend tell", indent(body, 1))
}

// locateFolder emits a loop over folders that runs action (which sees the
// folder as f) on an exact name match and returns SentinelFolderNotFound when
// the loop completes without one.
func locateFolder(folder, action string) string {
	return fmt.Sprintf(`repeat with f in folders
	if name of f is %s then
%s
	end if
end repeat
return %q`, stringLiteral(folder), indent(action, 2), SentinelFolderNotFound)
}

// locateNote emits the note-location loop, scoped to a folder when one is
// given. The action sees the note as n. Without a folder the not-found path
// returns SentinelNotFound; with one it returns SentinelNoteNotFound, nested
// under the folder loop so SentinelFolderNotFound takes priority.
func locateNote(folder, name, action string) string {
	if folder == "" {
		return fmt.Sprintf(`repeat with n in notes
	if name of n is %s then
%s
	end if
end repeat
return %q`, stringLiteral(name), indent(action, 2), SentinelNotFound)
	}
	inner := fmt.Sprintf(`repeat with n in notes of f
	if name of n is %s then
%s
	end if
end repeat
return %q`, stringLiteral(name), indent(action, 2), SentinelNoteNotFound)
	return locateFolder(folder, inner)
}

// indent prefixes every line of s with depth tabs.
func indent(s string, depth int) string {
	prefix := strings.Repeat("\t", depth)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

// collectNames emits a loop that joins the names of a collection's elements
// with ListSeparator into the output variable.
func collectNames(collection, loopVar string) string {
	return fmt.Sprintf(`set output to ""
repeat with %[2]s in %[1]s
%[3]s
end repeat
return output`, collection, loopVar, indent(appendName(loopVar), 1))
}

// appendName emits the separator-aware append of an element name to output.
func appendName(loopVar string) string {
	return fmt.Sprintf(`if output is "" then
	set output to (name of %[1]s as text)
else
	set output to output & %[2]q & (name of %[1]s as text)
end if`, loopVar, ListSeparator)
}
