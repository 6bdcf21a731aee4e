package applescript

import "strings"

// singleQuoteConcat is the close/concatenate/reopen idiom used to embed a
// single quote. AppleScript has no in-line escape for it inside a string
// literal, so the literal is closed, a lone quote character is concatenated,
// and the literal is reopened.
const singleQuoteConcat = `" & "'" & "`

// Sanitize escapes raw text so it can be embedded verbatim between the double
// quotes of an AppleScript string literal without terminating the literal
// early or introducing additional statements.
//
// The replacement order is load-bearing: backslashes are escaped before
// anything else, because every later replacement introduces backslashes of
// its own and escaping them again would corrupt the output.
//
// Sanitize performs no semantic validation. Length limits, character-class
// checks and the like happen upstream on the raw input, before this call.
func Sanitize(raw string) string {
	if raw == "" {
		return ""
	}

	s := strings.ReplaceAll(raw, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "'", singleQuoteConcat)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\r", `\r`)
	s = strings.ReplaceAll(s, "\t", `\t`)
	return s
}

// stringLiteral wraps sanitized text in AppleScript string delimiters.
// All caller-supplied values enter generated scripts through this function.
func stringLiteral(raw string) string {
	return `"` + Sanitize(raw) + `"`
}
