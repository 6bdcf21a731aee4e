package applescript

import (
	"strings"
	"testing"
)

// unescape reverses Sanitize the way the AppleScript runtime would when
// evaluating the generated literal: concatenation idioms collapse back to a
// single quote, then two-character escapes are decoded left to right.
func unescape(s string) string {
	s = strings.ReplaceAll(s, singleQuoteConcat, "'")

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case '\\':
				b.WriteByte('\\')
			case '"':
				b.WriteByte('"')
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			default:
				b.WriteByte(s[i])
				b.WriteByte(s[i+1])
			}
			i++
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "Meeting notes", "Meeting notes"},
		{"double quote", `My "Note"`, `My \"Note\"`},
		{"backslash", `C:\temp`, `C:\\temp`},
		{"backslash before quote", `\"`, `\\\"`},
		{"single quote", "it's", `it` + singleQuoteConcat + `s`},
		{"newline", "line1\nline2", `line1\nline2`},
		{"carriage return", "a\rb", `a\rb`},
		{"tab", "a\tb", `a\tb`},
		{"multibyte", "メモ 📝", "メモ 📝"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitize_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		`quotes " everywhere " here`,
		`back\slash \\ pairs`,
		"single 'quotes' too",
		"mixed \"double\" and 'single' with \\ and \n and \t and \r",
		`\n is literal here, not a newline`,
		"tab\tnewline\ncr\rquote\"done",
		`edge case ending in backslash \`,
		`"`, `'`, `\`, "\n",
	}

	for _, input := range inputs {
		got := unescape(Sanitize(input))
		if got != input {
			t.Errorf("round trip of %q = %q", input, got)
		}
	}
}

// Every double quote in sanitized output must be escaped, except the ones
// that belong to the single-quote concatenation idiom.
func TestSanitize_NoUnescapedQuotes(t *testing.T) {
	inputs := []string{
		`My "Note"`,
		`a\"b`,
		`"""`,
		`'"'`,
		`trailing \`,
		"with 'single' and \"double\"",
	}

	for _, input := range inputs {
		s := strings.ReplaceAll(Sanitize(input), singleQuoteConcat, "")
		escaped := false
		for i := 0; i < len(s); i++ {
			switch {
			case escaped:
				escaped = false
			case s[i] == '\\':
				escaped = true
			case s[i] == '"':
				t.Errorf("Sanitize(%q): unescaped quote at byte %d in %q", input, i, s)
			}
		}
		if escaped {
			t.Errorf("Sanitize(%q): dangling backslash at end of %q", input, s)
		}
	}
}

// countStatements is a test double for the interpreter: it walks a script
// tracking string-literal state and counts statement boundaries (newlines
// outside literals). Sanitized input embedded in a one-statement template
// must keep the statement count at one.
func countStatements(script string) int {
	statements := 1
	inString := false
	escaped := false
	for i := 0; i < len(script); i++ {
		c := script[i]
		switch {
		case escaped:
			escaped = false
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case !inString && c == '\n':
			statements++
		}
	}
	return statements
}

func TestSanitize_InjectionResistance(t *testing.T) {
	payloads := []string{
		`abc" & do shell script "rm -rf /" & "`,
		"abc\"\ndo shell script \"rm -rf /\"",
		`" & (do shell script "curl evil") & "`,
		"end tell\ntell application \"Finder\" to delete every item",
		`\" & do shell script \"id\" & \"`,
	}

	for _, payload := range payloads {
		template := `set x to "` + Sanitize(payload) + `"`
		if got := countStatements(template); got != 1 {
			t.Errorf("payload %q produced %d statements, want 1", payload, got)
		}

		// Nothing outside string literals may carry executable content
		// beyond the template itself and the concatenation operator.
		outside := textOutsideLiterals(template)
		outside = strings.ReplaceAll(outside, "set x to", "")
		outside = strings.ReplaceAll(outside, "&", "")
		if strings.TrimSpace(outside) != "" {
			t.Errorf("payload %q leaked %q outside string literals", payload, outside)
		}
	}
}

func textOutsideLiterals(script string) string {
	var b strings.Builder
	inString := false
	escaped := false
	for i := 0; i < len(script); i++ {
		c := script[i]
		switch {
		case escaped:
			escaped = false
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case !inString:
			b.WriteByte(c)
		}
	}
	return b.String()
}
