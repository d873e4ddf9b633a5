package main

import "strings"

// Lex tokenizes Forge source text into a flat token stream.
// Each line has everything from its first '#' onward stripped, is trimmed,
// and is split by a small state machine tracking whether a string literal
// is open and whether the next rune is escaped. String-literal tokens
// retain their surrounding quotes; the evaluator strips them.
func Lex(source string) []string {
	var tokens []string
	for _, line := range strings.Split(source, "\n") {
		line = stripComment(line)
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		tokens = append(tokens, lexLine(line)...)
	}
	return tokens
}

// stripComment removes everything from the first '#' to the end of the
// line, including inside a string literal: comment-stripping runs before
// string-aware tokenizing, so `"a#b"` truncates to `"a`.
func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		return line[:i]
	}
	return line
}

var escapeChars = map[rune]rune{
	'n':  '\n',
	't':  '\t',
	'r':  '\r',
	'b':  '\b',
	'f':  '\f',
	'\\': '\\',
	'"':  '"',
}

// lexLine splits a single comment-free, trimmed line into tokens. Outside a
// string, tokens are maximal runs of non-whitespace; an opening quote always
// starts a new token even mid-run (e.g. `load"x"` lexes as `load` and `"x"`).
func lexLine(line string) []string {
	var result []string
	var token strings.Builder
	inString := false
	escape := false

	flush := func() {
		if token.Len() > 0 {
			result = append(result, token.String())
			token.Reset()
		}
	}

	for _, ch := range line {
		switch {
		case inString && escape:
			if mapped, ok := escapeChars[ch]; ok {
				token.WriteRune(mapped)
			} else {
				token.WriteRune(ch)
			}
			escape = false
		case inString && ch == '\\':
			escape = true
		case inString && ch == '"':
			token.WriteRune(ch)
			inString = false
			flush()
		case inString:
			token.WriteRune(ch)
		case isSpace(ch):
			flush()
		case ch == '"':
			flush()
			token.WriteRune(ch)
			inString = true
		default:
			token.WriteRune(ch)
		}
	}
	flush()
	return result
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}
