// Copyright 2026 The Mdwire Authors
// SPDX-License-Identifier: Apache-2.0

// Package markdown implements the constrained Markdown subset that
// carries the serialization data model: link anchors tagged with type
// URIs, and nested ordered/unordered lists indented four spaces per
// level. It is not a general Markdown parser — anything outside the
// subset (headings, emphasis, code fences, block quotes) is rejected
// with a GrammarError rather than interpreted.
//
// [Scanner] classifies raw input line by line. [Parse] consumes the
// token stream and builds a generic [Node] tree; [Render] serializes a
// tree back to wire text. [Escape] and [Unescape] translate between
// literal text and the backslash-escaped form used in link labels and
// text leaves. Blob labels are the one exception: the base64 payload
// appears on the wire verbatim.
//
// The wire layout, concretely:
//
//   - A document holding a single primitive is one bare link line:
//     [8](serde://u64)
//   - A composite is a list whose first item is the marker link and
//     whose remaining items are the elements:
//     1. [Seq of length 1](serde://seq/1)
//     2.
//     1. [Some](serde://option/some)
//     2. [8](serde://u64)
//     (the inner pair indented one level in the real document)
//   - A nested composite is introduced by an empty list item; its own
//     list sits exactly one level deeper.
//   - Unordered lists (maps, structs) use "*" bullets; each entry is
//     an empty item owning an ordered two-item key/value list.
//
// Nesting depth is bounded ([DefaultMaxDepth], configurable through
// [ParseOptions] and [RenderOptions]); exceeding the bound yields a
// DepthError instead of unbounded recursion.
package markdown
