package applescript

import (
	"strings"
	"testing"
)

func TestCreateNote_NoFolder(t *testing.T) {
	script := CreateNote("", "", `My "Note"`, "body text")

	if !strings.Contains(script, `name:"My \"Note\""`) {
		t.Errorf("note name not sanitized in script:\n%s", script)
	}
	if !strings.Contains(script, `return "success"`) {
		t.Error("create script missing success sentinel")
	}
	if strings.Contains(script, "repeat with f in folders") {
		t.Error("folderless create should not emit a folder loop")
	}
	if strings.Contains(script, "tell account") {
		t.Error("accountless create should not emit an account scope")
	}
}

func TestCreateNote_WithFolder(t *testing.T) {
	script := CreateNote("iCloud", "Work", "Standup", "agenda")

	for _, want := range []string{
		`tell account "iCloud"`,
		`repeat with f in folders`,
		`if name of f is "Work" then`,
		`make new note at f with properties`,
		`return "folder not found"`,
	} {
		if !strings.Contains(script, want) {
			t.Errorf("create script missing %q:\n%s", want, script)
		}
	}
}

func TestGetNoteBody_FolderScoped_SentinelOrder(t *testing.T) {
	script := GetNoteBody("", "Work", "Standup")

	folderSentinel := strings.Index(script, `return "folder not found"`)
	noteSentinel := strings.Index(script, `return "note not found"`)
	if folderSentinel < 0 || noteSentinel < 0 {
		t.Fatalf("missing sentinel returns:\n%s", script)
	}
	// The note sentinel must sit inside the folder loop so a missing folder
	// can never fall through to "note not found".
	if noteSentinel > folderSentinel {
		t.Error("note-not-found sentinel emitted outside the folder loop")
	}
	if !strings.Contains(script, "repeat with n in notes of f") {
		t.Error("folder-scoped get must iterate notes of the matched folder")
	}
}

func TestGetNoteBody_Unscoped(t *testing.T) {
	script := GetNoteBody("", "", "Standup")

	if !strings.Contains(script, `return "not found"`) {
		t.Errorf("unscoped get missing not-found sentinel:\n%s", script)
	}
	if strings.Contains(script, `"folder not found"`) {
		t.Error("unscoped get should not mention folders")
	}
}

func TestMoveNote_LocatesFolderFirst(t *testing.T) {
	script := MoveNote("", "Standup", "Archive")

	folderLoop := strings.Index(script, "repeat with f in folders")
	noteLoop := strings.Index(script, "repeat with n in notes")
	if folderLoop < 0 || noteLoop < 0 {
		t.Fatalf("missing loops:\n%s", script)
	}
	if noteLoop < folderLoop {
		t.Error("move script must locate the folder before the note")
	}
	if !strings.Contains(script, "move n to f") {
		t.Error("move script missing move statement")
	}
}

func TestSearchNotes(t *testing.T) {
	script := SearchNotes("", `project "X"`)

	if !strings.Contains(script, `contains "project \"X\""`) {
		t.Errorf("query not sanitized:\n%s", script)
	}
	if !strings.Contains(script, `output & "|" &`) {
		t.Error("search script must join matches with the list separator")
	}
	if !strings.Contains(script, "return output") {
		t.Error("search script must return the joined output")
	}
}

func TestListAccounts_NoAccountScope(t *testing.T) {
	script := ListAccounts()

	if strings.Contains(script, "tell account") {
		t.Error("account enumeration must not scope to an account")
	}
	if !strings.Contains(script, "repeat with a in accounts") {
		t.Errorf("missing accounts loop:\n%s", script)
	}
}

// Nested blocks must carry cumulative tab prefixes: one for the application
// scope, two more per enclosing loop body.
func TestScripts_NestedIndentation(t *testing.T) {
	script := GetNoteBody("", "Work", "Standup")

	for _, want := range []string{
		"\trepeat with f in folders",
		"\t\tif name of f is \"Work\" then",
		"\t\t\trepeat with n in notes of f",
		"\t\t\t\tif name of n is \"Standup\" then",
		"\t\t\t\t\treturn body of n as text",
	} {
		if !strings.Contains(script, want) {
			t.Errorf("script missing indented line %q:\n%s", want, script)
		}
	}

	if strings.Contains(script, "\n\treturn body") {
		t.Error("action leaked out of its enclosing loops")
	}
}

// Generated scripts stay structurally intact under hostile input: the
// statement-counting double must see the same shape with a crafted name as
// with a benign one.
func TestScripts_InjectionSafety(t *testing.T) {
	hostile := `abc" & do shell script "rm -rf /" & "`

	benign := countStatements(GetNoteBody("", "", "safe"))
	crafted := countStatements(GetNoteBody("", "", hostile))
	if benign != crafted {
		t.Errorf("hostile note name changed statement count: %d != %d", crafted, benign)
	}

	outside := textOutsideLiterals(DeleteNote("", "", hostile))
	if strings.Contains(outside, "do shell script") {
		t.Error("hostile input escaped its string literal")
	}
}
