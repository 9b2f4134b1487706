// Copyright 2026 The Mdwire Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"fmt"
	"strconv"
	"strings"
)

// StructureError reports a node whose shape does not fit its declared
// type: a composite marker outside a list, a list without a marker, a
// map entry that is not a two-item pair, a Some marker whose label is
// not "Some".
type StructureError struct {
	// Path locates the node: "/" for the root, then list item indices
	// ("/2/0" is the first child of the root list's third item). The
	// marker link counts as item 0.
	Path string
	// Line is the 1-based source line, zero when encoding.
	Line    int
	Message string
}

func (e *StructureError) Error() string {
	return "structure: " + e.Message + locate(e.Path, e.Line)
}

// ArityError reports a composite whose declared length disagrees with
// the number of elements actually present.
type ArityError struct {
	Path string
	Line int
	// Shape names the composite: "seq", "tuple", "map entry", "Some".
	Shape    string
	Declared int
	Actual   int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("arity: %s declares %d elements but holds %d%s",
		e.Shape, e.Declared, e.Actual, locate(e.Path, e.Line))
}

// ValueError reports leaf content that fails its primitive parse: a
// non-numeric integer label, an out-of-range width, invalid base64,
// a multi-rune char. Err holds the underlying parse error when one
// exists and is reachable through errors.Unwrap.
type ValueError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

func (e *ValueError) Error() string {
	msg := "value: " + e.Message
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg + locate(e.Path, e.Line)
}

func (e *ValueError) Unwrap() error { return e.Err }

// locate renders the shared path/line suffix of the error messages.
func locate(path string, line int) string {
	var b strings.Builder
	if path != "" {
		b.WriteString(" at ")
		b.WriteString(path)
	}
	if line > 0 {
		b.WriteString(" (line ")
		b.WriteString(strconv.Itoa(line))
		b.WriteString(")")
	}
	return b.String()
}
