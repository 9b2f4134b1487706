// Copyright 2026 The Mdwire Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec converts between data-model values and the Markdown
// wire form.
//
// [Marshal] encodes a [value.Value] to wire text; [Unmarshal] decodes
// wire text back to a value. Both are pure functions with no shared
// state: concurrent calls on independent inputs need no
// synchronization. Unmarshal(Marshal(v)) reproduces v under
// value.Equal for every representable value.
//
// Errors are typed and matchable with errors.As. The text layer's
// GrammarError, IndentationError, and DepthError (package
// lib/markdown) and the URI layer's SchemeError (package lib/typeuri)
// propagate unchanged; this package adds [StructureError] (node shape
// wrong for its declared type), [ArityError] (declared length
// disagrees with the element count), and [ValueError] (leaf content
// fails its primitive parse). Decoding is all-or-nothing: the first
// error aborts and carries the source line of the fault.
//
// Nesting depth is bounded. The default limit suits ordinary data;
// deeply recursive values can raise it through [Options].
package codec
