// Copyright 2026 The Mdwire Authors
// SPDX-License-Identifier: Apache-2.0

package markdown

import "strings"

// Escape returns s with every character the grammar could interpret
// as markup made inert: each ASCII punctuation character is prefixed
// with a backslash, and NUL, TAB, CR, and LF become \0, \t, \r, and
// \n so that arbitrary strings survive the line-oriented grammar.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case isASCIIPunct(r):
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == 0:
			b.WriteString(`\0`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Unescape reverses Escape. A backslash followed by ASCII punctuation
// yields that character; \0, \t, \r, and \n yield the control
// character. Any other escape, a trailing backslash, or a raw
// occurrence of a markup-significant character is a GrammarError
// (with Line 0; callers attach the source line).
func Unescape(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '\\' {
			if isReservedRaw(r) {
				return "", &GrammarError{Message: describeRaw(r)}
			}
			b.WriteRune(r)
			continue
		}
		if i+1 >= len(runes) {
			return "", &GrammarError{Message: "trailing backslash"}
		}
		i++
		next := runes[i]
		switch {
		case isASCIIPunct(next):
			b.WriteRune(next)
		case next == 'n':
			b.WriteByte('\n')
		case next == 't':
			b.WriteByte('\t')
		case next == 'r':
			b.WriteByte('\r')
		case next == '0':
			b.WriteByte(0)
		default:
			return "", &GrammarError{Message: `unknown escape \` + string(next)}
		}
	}
	return b.String(), nil
}

// isASCIIPunct matches the same set the writer escapes: the four
// ASCII punctuation ranges of the basic latin block.
func isASCIIPunct(r rune) bool {
	switch {
	case r >= '!' && r <= '/':
		return true
	case r >= ':' && r <= '@':
		return true
	case r >= '[' && r <= '`':
		return true
	case r >= '{' && r <= '~':
		return true
	}
	return false
}

// verbatimLabel reports whether a link label is carried verbatim on
// the wire. Blob payloads are raw base64: escaping would corrupt the
// padding and the URL-safe alphabet.
func verbatimLabel(uri string) bool {
	return uri == "serde://blob"
}

// isReservedRaw matches characters that must never appear unescaped
// inside label or text content: they introduce constructs outside the
// wire subset.
func isReservedRaw(r rune) bool {
	switch r {
	case '[', ']', '(', ')', '*', '_', '`', '#', '>':
		return true
	}
	return false
}

func describeRaw(r rune) string {
	switch r {
	case '#':
		return "unescaped '#' (headings are not supported)"
	case '>':
		return "unescaped '>' (block quotes are not supported)"
	case '`':
		return "unescaped '`' (code spans are not supported)"
	case '*', '_':
		return "unescaped '" + string(r) + "' (emphasis is not supported)"
	default:
		return "unescaped '" + string(r) + "'"
	}
}
