// Copyright 2026 The Mdwire Authors
// SPDX-License-Identifier: Apache-2.0

package markdown

import (
	"strconv"
	"strings"
)

// IndentWidth is the number of spaces per nesting level.
const IndentWidth = 4

// Bullet classifies the list marker of a line.
type Bullet int

const (
	// BulletNone marks a line with no list marker (a bare leaf or
	// link, legal only as a whole single-node document).
	BulletNone Bullet = iota
	// BulletOrdered marks "N. " items. The numeric value is ignored;
	// only position carries meaning.
	BulletOrdered
	// BulletUnordered marks "* " items.
	BulletUnordered
)

// Token is one classified input line. Label and Text are unescaped
// (except blob labels, which are raw base64 and carried verbatim);
// the URI is carried verbatim.
type Token struct {
	// Line is the 1-based source line number.
	Line int
	// Indent is the nesting level (leading spaces / IndentWidth).
	Indent int
	Bullet Bullet

	// IsLink marks a link line; Label and URI hold its parts. When
	// false, Text holds the line's literal content, which is empty
	// for an item that only introduces a nested list.
	IsLink bool
	Label  string
	URI    string
	Text   string

	// Blank marks a line with no content at all. Blank lines are
	// tolerated between items and carry no structure.
	Blank bool
}

// Scanner splits input into line-level tokens. It is a lazy pull
// scanner: each Next call classifies one line.
type Scanner struct {
	lines []string
	pos   int
}

// NewScanner returns a Scanner over the given document text.
func NewScanner(input string) *Scanner {
	lines := strings.Split(input, "\n")
	// A trailing newline produces one final empty element; drop it so
	// it does not register as a blank line.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return &Scanner{lines: lines}
}

// Next returns the next token. The second result is false once the
// input is exhausted.
func (s *Scanner) Next() (Token, bool, error) {
	if s.pos >= len(s.lines) {
		return Token{}, false, nil
	}
	line := strings.TrimSuffix(s.lines[s.pos], "\r")
	s.pos++
	tok, err := s.scanLine(line, s.pos)
	if err != nil {
		return Token{}, false, err
	}
	return tok, true, nil
}

func (s *Scanner) scanLine(line string, lineNo int) (Token, error) {
	tok := Token{Line: lineNo}

	// Measure indentation. Only spaces align; a tab cannot be
	// attributed to a nesting level.
	spaces := 0
	for spaces < len(line) && line[spaces] == ' ' {
		spaces++
	}
	rest := line[spaces:]
	if rest == "" {
		tok.Blank = true
		return tok, nil
	}
	if rest[0] == '\t' {
		return Token{}, &IndentationError{Line: lineNo, Message: "tab in indentation"}
	}
	if spaces%IndentWidth != 0 {
		return Token{}, &IndentationError{
			Line:    lineNo,
			Message: "indentation is not a multiple of " + strconv.Itoa(IndentWidth) + " spaces",
		}
	}
	tok.Indent = spaces / IndentWidth

	rest = s.scanBullet(rest, &tok)

	if rest == "" {
		return tok, nil
	}
	if rest[0] == '[' {
		return s.scanLink(rest, tok)
	}

	text, err := Unescape(rest)
	if err != nil {
		return Token{}, atLine(err, lineNo)
	}
	tok.Text = text
	return tok, nil
}

// scanBullet strips a leading "N. " or "* " marker, recording the
// bullet kind. The space after the marker may be absent at end of
// line (an empty item). Content that merely begins with a digit or
// asterisk without the marker shape is left untouched.
func (s *Scanner) scanBullet(rest string, tok *Token) string {
	if rest[0] >= '0' && rest[0] <= '9' {
		i := 1
		for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
			i++
		}
		if i < len(rest) && rest[i] == '.' {
			after := rest[i+1:]
			if after == "" {
				tok.Bullet = BulletOrdered
				return ""
			}
			if after[0] == ' ' {
				// Exactly one space separates marker and content;
				// further spaces belong to the content itself.
				tok.Bullet = BulletOrdered
				return after[1:]
			}
		}
		return rest
	}
	if rest[0] == '*' {
		after := rest[1:]
		if after == "" {
			tok.Bullet = BulletUnordered
			return ""
		}
		if after[0] == ' ' {
			tok.Bullet = BulletUnordered
			return after[1:]
		}
	}
	return rest
}

// scanLink parses "[label](uri)" content. The label may contain
// escaped brackets; the URI runs to the first closing parenthesis.
func (s *Scanner) scanLink(rest string, tok Token) (Token, error) {
	label, after, ok := cutLabel(rest[1:])
	if !ok {
		return Token{}, &GrammarError{Line: tok.Line, Message: "unterminated link label"}
	}
	if after == "" || after[0] != '(' {
		return Token{}, &GrammarError{Line: tok.Line, Message: "link label not followed by (uri)"}
	}
	uri, trailing, ok := strings.Cut(after[1:], ")")
	if !ok {
		return Token{}, &GrammarError{Line: tok.Line, Message: "unterminated link uri"}
	}
	if strings.TrimRight(trailing, " ") != "" {
		return Token{}, &GrammarError{Line: tok.Line, Message: "trailing content after link"}
	}

	tok.IsLink = true
	tok.URI = uri
	if verbatimLabel(uri) {
		tok.Label = label
		return tok, nil
	}
	unescaped, err := Unescape(label)
	if err != nil {
		return Token{}, atLine(err, tok.Line)
	}
	tok.Label = unescaped
	return tok, nil
}

// cutLabel splits s at the first unescaped ']', returning the raw
// label and the remainder after the bracket.
func cutLabel(s string) (label, after string, ok bool) {
	escaped := false
	for i := 0; i < len(s); i++ {
		if escaped {
			escaped = false
			continue
		}
		switch s[i] {
		case '\\':
			escaped = true
		case ']':
			return s[:i], s[i+1:], true
		}
	}
	return "", "", false
}

// atLine stamps the line number onto an escape error produced without
// position information.
func atLine(err error, line int) error {
	if grammarErr, ok := err.(*GrammarError); ok && grammarErr.Line == 0 {
		grammarErr.Line = line
	}
	return err
}
