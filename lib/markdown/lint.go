// Copyright 2026 The Mdwire Authors
// SPDX-License-Identifier: Apache-2.0

package markdown

import (
	"fmt"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// subsetParserInstance is initialized once and reused. The parser
// configuration never changes and a goldmark Parser is safe to share;
// parsing creates per-call state via Parse(reader).
var (
	subsetParserInstance goldmark.Markdown
	subsetParserOnce     sync.Once
)

func getSubsetParser() goldmark.Markdown {
	subsetParserOnce.Do(func() {
		subsetParserInstance = goldmark.New()
	})
	return subsetParserInstance
}

// CheckSubset parses doc with a full CommonMark parser and verifies
// that the document contains nothing but the constructs the wire
// grammar emits: lists, list items, paragraphs and text blocks, plain
// text, and links. This is a cross-check, independent of the strict
// scanner: a document that our own grammar accepts but that a real
// Markdown renderer would interpret as headings, emphasis, or code is
// a bug in the escaping layer.
func CheckSubset(doc string) error {
	source := []byte(doc)
	reader := text.NewReader(source)
	root := getSubsetParser().Parser().Parse(reader)

	return ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node.Kind() {
		case ast.KindDocument, ast.KindList, ast.KindListItem,
			ast.KindParagraph, ast.KindTextBlock,
			ast.KindText, ast.KindString, ast.KindLink:
			return ast.WalkContinue, nil
		default:
			return ast.WalkStop, fmt.Errorf("markdown construct %s outside the wire subset", node.Kind())
		}
	})
}
