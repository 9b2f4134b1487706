// Copyright 2026 The Mdwire Authors
// SPDX-License-Identifier: Apache-2.0

package markdown

import "fmt"

// GrammarError reports input outside the supported Markdown subset:
// an unterminated link, a stray markup character, mixed bullet kinds
// in one list, or any construct (heading, emphasis, code fence) the
// wire grammar does not carry.
type GrammarError struct {
	// Line is the 1-based source line, or 0 when the fault has no
	// single line (for example an empty document).
	Line    int
	Message string
}

func (e *GrammarError) Error() string {
	if e.Line == 0 {
		return "markdown: " + e.Message
	}
	return fmt.Sprintf("markdown: line %d: %s", e.Line, e.Message)
}

// IndentationError reports nesting that does not align to the
// four-space indent unit, or an indent level that jumps deeper than
// its syntactic parent allows.
type IndentationError struct {
	Line    int
	Message string
}

func (e *IndentationError) Error() string {
	return fmt.Sprintf("markdown: line %d: %s", e.Line, e.Message)
}

// DepthError reports nesting beyond the configured maximum depth.
// Both the structure builder and the renderer enforce the limit so
// that adversarially deep documents fail cleanly instead of
// exhausting the call stack.
type DepthError struct {
	Limit int
	Line  int
}

func (e *DepthError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("markdown: nesting exceeds maximum depth %d", e.Limit)
	}
	return fmt.Sprintf("markdown: line %d: nesting exceeds maximum depth %d", e.Line, e.Limit)
}
