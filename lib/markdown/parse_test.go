// Copyright 2026 The Mdwire Authors
// SPDX-License-Identifier: Apache-2.0

package markdown_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/mdwire/mdwire/lib/markdown"
)

// stripLines clears the source line numbers of a parsed tree so it can
// be compared against a hand-built one.
func stripLines(node *markdown.Node) {
	node.Line = 0
	for _, item := range node.Items {
		stripLines(item)
	}
}

func mustParse(t *testing.T, input string) *markdown.Node {
	t.Helper()
	node, err := markdown.Parse(input)
	if err != nil {
		t.Fatalf("Parse:\n%s\nerror: %v", input, err)
	}
	return node
}

func equalNodes(a, b *markdown.Node) bool {
	if a.Kind != b.Kind || a.Text != b.Text || a.Label != b.Label ||
		a.URI != b.URI || a.Ordered != b.Ordered || len(a.Items) != len(b.Items) {
		return false
	}
	for i := range a.Items {
		if !equalNodes(a.Items[i], b.Items[i]) {
			return false
		}
	}
	return true
}

func anchor(label, uri string) *markdown.Node {
	return &markdown.Node{Kind: markdown.NodeAnchor, Label: label, URI: uri}
}

func text(s string) *markdown.Node {
	return &markdown.Node{Kind: markdown.NodeText, Text: s}
}

func ordered(items ...*markdown.Node) *markdown.Node {
	return &markdown.Node{Kind: markdown.NodeList, Ordered: true, Items: items}
}

func unordered(items ...*markdown.Node) *markdown.Node {
	return &markdown.Node{Kind: markdown.NodeList, Items: items}
}

func TestParseDocuments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *markdown.Node
	}{
		{
			"bare link",
			"[8](serde://u64)\n",
			anchor("8", "serde://u64"),
		},
		{
			"bare text",
			"hello\n",
			text("hello"),
		},
		{
			"flat ordered list",
			"1. [Seq of length 2](serde://seq/2)\n" +
				"2. [1](serde://u64)\n" +
				"3. [2](serde://u64)\n",
			ordered(
				anchor("Seq of length 2", "serde://seq/2"),
				anchor("1", "serde://u64"),
				anchor("2", "serde://u64"),
			),
		},
		{
			"nested list under empty item",
			"1. [Tuple of length 1](serde://tuple/1)\n" +
				"2.\n" +
				"    1. [x](serde://string)\n",
			ordered(
				anchor("Tuple of length 1", "serde://tuple/1"),
				ordered(anchor("x", "serde://string")),
			),
		},
		{
			"struct with field pairs",
			"* [Struct Point of length 2](serde://struct/Point/2)\n" +
				"*\n" +
				"    1. x\n" +
				"    2. [1](serde://i32)\n" +
				"*\n" +
				"    1. y\n" +
				"    2. [2](serde://i32)\n",
			unordered(
				anchor("Struct Point of length 2", "serde://struct/Point/2"),
				ordered(text("x"), anchor("1", "serde://i32")),
				ordered(text("y"), anchor("2", "serde://i32")),
			),
		},
		{
			"blank lines between items",
			"1. [a](serde://string)\n\n2. [b](serde://string)\n",
			ordered(anchor("a", "serde://string"), anchor("b", "serde://string")),
		},
		{
			"bullet numbering ignored",
			"7. [a](serde://string)\n3. [b](serde://string)\n",
			ordered(anchor("a", "serde://string"), anchor("b", "serde://string")),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustParse(t, tt.input)
			stripLines(got)
			if !equalNodes(got, tt.want) {
				t.Errorf("parsed tree mismatch for:\n%s", tt.input)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  any
	}{
		{"empty document", "", new(*markdown.GrammarError)},
		{"only blanks", "\n\n", new(*markdown.GrammarError)},
		{
			"mixed bullets",
			"1. [a](serde://string)\n* [b](serde://string)\n",
			new(*markdown.GrammarError),
		},
		{
			"two root nodes",
			"[a](serde://string)\n[b](serde://string)\n",
			new(*markdown.GrammarError),
		},
		{
			"list after bare link",
			"[a](serde://string)\n1. [b](serde://string)\n",
			new(*markdown.GrammarError),
		},
		{
			"indented root",
			"    [a](serde://string)\n",
			new(*markdown.IndentationError),
		},
		{
			"nested under non-empty item",
			"1. [a](serde://string)\n    1. [b](serde://string)\n",
			new(*markdown.IndentationError),
		},
		{
			"empty item without nested list",
			"1. [a](serde://seq/0)\n2.\n",
			new(*markdown.GrammarError),
		},
		{
			"nested list skips a level",
			"1. [a](serde://seq/1)\n2.\n        1. [b](serde://string)\n",
			new(*markdown.IndentationError),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := markdown.Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse accepted:\n%s", tt.input)
			}
			if !errors.As(err, tt.want) {
				t.Errorf("Parse error %v (%T), want %T", err, err, tt.want)
			}
		})
	}
}

func TestRenderDocuments(t *testing.T) {
	tests := []struct {
		name string
		node *markdown.Node
		want string
	}{
		{
			"bare link escapes the label",
			anchor("()", "serde://unit"),
			"[\\(\\)](serde://unit)\n",
		},
		{
			"blob label stays verbatim",
			anchor("-_8=", "serde://blob"),
			"[-_8=](serde://blob)\n",
		},
		{
			"flat list numbers from one",
			ordered(
				anchor("Seq of length 2", "serde://seq/2"),
				anchor("a", "serde://string"),
				anchor("b", "serde://string"),
			),
			"1. [Seq of length 2](serde://seq/2)\n" +
				"2. [a](serde://string)\n" +
				"3. [b](serde://string)\n",
		},
		{
			"empty item line has no trailing space",
			ordered(
				anchor("Tuple of length 1", "serde://tuple/1"),
				ordered(anchor("x", "serde://string")),
			),
			"1. [Tuple of length 1](serde://tuple/1)\n" +
				"2.\n" +
				"    1. [x](serde://string)\n",
		},
		{
			"unordered list",
			unordered(
				anchor("Map of length 1", "serde://map/1"),
				ordered(anchor("k", "serde://string"), anchor("v", "serde://string")),
			),
			"* [Map of length 1](serde://map/1)\n" +
				"*\n" +
				"    1. [k](serde://string)\n" +
				"    2. [v](serde://string)\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := markdown.Render(tt.node)
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if got != tt.want {
				t.Errorf("Render = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseRenderRoundTrip(t *testing.T) {
	// Rendered form of a parsed document must parse to the same tree.
	inputs := []string{
		"[8](serde://u64)\n",
		"[d2F0Pw==](serde://blob)\n",
		"1. [Seq of length 2](serde://seq/2)\n2. [1](serde://u64)\n3. [2](serde://u64)\n",
		"* [Struct Point of length 1](serde://struct/Point/1)\n*\n    1. x\n    2. [1](serde://i32)\n",
	}
	for _, input := range inputs {
		first := mustParse(t, input)
		rendered, err := markdown.Render(first)
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		second := mustParse(t, rendered)
		stripLines(first)
		stripLines(second)
		if !equalNodes(first, second) {
			t.Errorf("round trip changed the tree for:\n%s", input)
		}
	}
}

func TestParseDepthLimit(t *testing.T) {
	deep := nestedDocument(300)

	if _, err := markdown.Parse(deep); err == nil {
		t.Fatal("Parse accepted 300 levels with the default limit")
	} else {
		var depthErr *markdown.DepthError
		if !errors.As(err, &depthErr) {
			t.Fatalf("Parse error %v, want DepthError", err)
		}
		if depthErr.Limit != markdown.DefaultMaxDepth {
			t.Errorf("Limit = %d, want %d", depthErr.Limit, markdown.DefaultMaxDepth)
		}
	}

	if _, err := markdown.ParseWithOptions(deep, markdown.ParseOptions{MaxDepth: 400}); err != nil {
		t.Errorf("ParseWithOptions(MaxDepth: 400): %v", err)
	}
}

// nestedDocument builds a document of the given nesting depth: each
// level is a one-element tuple holding the next.
func nestedDocument(levels int) string {
	var b strings.Builder
	for level := 0; level < levels-1; level++ {
		indent := strings.Repeat(" ", markdown.IndentWidth*level)
		b.WriteString(indent + "1. [Tuple of length 1](serde://tuple/1)\n")
		b.WriteString(indent + "2.\n")
	}
	indent := strings.Repeat(" ", markdown.IndentWidth*(levels-1))
	b.WriteString(indent + "1. [end](serde://string)\n")
	return b.String()
}

func TestRenderDepthLimit(t *testing.T) {
	node := anchor("leaf", "serde://string")
	for i := 0; i < 300; i++ {
		node = ordered(anchor("Tuple of length 1", "serde://tuple/1"), node)
	}
	_, err := markdown.Render(node)
	var depthErr *markdown.DepthError
	if !errors.As(err, &depthErr) {
		t.Fatalf("Render error %v, want DepthError", err)
	}
}

func TestCheckSubset(t *testing.T) {
	valid := []string{
		"1. [Seq of length 1](serde://seq/1)\n2. [a](serde://string)\n",
		"[\\(\\)](serde://unit)\n",
		"* [Map of length 0](serde://map/0)\n",
	}
	for _, doc := range valid {
		if err := markdown.CheckSubset(doc); err != nil {
			t.Errorf("CheckSubset rejected wire output:\n%s\nerror: %v", doc, err)
		}
	}

	invalid := []string{
		"# heading\n",
		"> quoted\n",
		"```\ncode\n```\n",
	}
	for _, doc := range invalid {
		if err := markdown.CheckSubset(doc); err == nil {
			t.Errorf("CheckSubset accepted:\n%s", doc)
		}
	}
}
