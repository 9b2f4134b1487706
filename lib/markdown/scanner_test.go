// Copyright 2026 The Mdwire Authors
// SPDX-License-Identifier: Apache-2.0

package markdown_test

import (
	"errors"
	"testing"

	"github.com/mdwire/mdwire/lib/markdown"
)

func scanOne(t *testing.T, line string) markdown.Token {
	t.Helper()
	tok, ok, err := markdown.NewScanner(line).Next()
	if err != nil {
		t.Fatalf("Next(%q): %v", line, err)
	}
	if !ok {
		t.Fatalf("Next(%q): no token", line)
	}
	return tok
}

func TestScannerClassification(t *testing.T) {
	tests := []struct {
		name string
		line string
		want markdown.Token
	}{
		{
			"bare link",
			"[8](serde://u64)",
			markdown.Token{Line: 1, IsLink: true, Label: "8", URI: "serde://u64"},
		},
		{
			"ordered item",
			"1. [true](serde://bool)",
			markdown.Token{Line: 1, Bullet: markdown.BulletOrdered, IsLink: true, Label: "true", URI: "serde://bool"},
		},
		{
			"unordered item",
			"* hello",
			markdown.Token{Line: 1, Bullet: markdown.BulletUnordered, Text: "hello"},
		},
		{
			"indented one level",
			"    2. [x](serde://string)",
			markdown.Token{Line: 1, Indent: 1, Bullet: markdown.BulletOrdered, IsLink: true, Label: "x", URI: "serde://string"},
		},
		{
			"empty ordered item",
			"3.",
			markdown.Token{Line: 1, Bullet: markdown.BulletOrdered},
		},
		{
			"empty unordered item",
			"*",
			markdown.Token{Line: 1, Bullet: markdown.BulletUnordered},
		},
		{
			"blank",
			"  ",
			markdown.Token{Line: 1, Blank: true},
		},
		{
			"blob label carried verbatim",
			"[d2F0Pw==](serde://blob)",
			markdown.Token{Line: 1, IsLink: true, Label: "d2F0Pw==", URI: "serde://blob"},
		},
		{
			"blob label with url-safe characters",
			"2. [-_8=](serde://blob)",
			markdown.Token{Line: 1, Bullet: markdown.BulletOrdered, IsLink: true, Label: "-_8=", URI: "serde://blob"},
		},
		{
			"escaped label",
			`[\(\)](serde://unit)`,
			markdown.Token{Line: 1, IsLink: true, Label: "()", URI: "serde://unit"},
		},
		{
			"text with escapes",
			`1. field \*name\*`,
			markdown.Token{Line: 1, Bullet: markdown.BulletOrdered, Text: "field *name*"},
		},
		{
			"digits without dot are content",
			"1x",
			markdown.Token{Line: 1, Text: "1x"},
		},
		{
			"extra space belongs to content",
			"1.  x",
			markdown.Token{Line: 1, Bullet: markdown.BulletOrdered, Text: " x"},
		},
		{
			"multi digit bullet",
			"12. y",
			markdown.Token{Line: 1, Bullet: markdown.BulletOrdered, Text: "y"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scanOne(t, tt.line)
			if got != tt.want {
				t.Errorf("scan(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestScannerIndentationErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"tab", "\t* x"},
		{"three spaces", "   * x"},
		{"five spaces", "     * x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := markdown.NewScanner(tt.line).Next()
			var indentErr *markdown.IndentationError
			if !errors.As(err, &indentErr) {
				t.Fatalf("scan(%q) = %v, want IndentationError", tt.line, err)
			}
			if indentErr.Line != 1 {
				t.Errorf("Line = %d, want 1", indentErr.Line)
			}
		})
	}
}

func TestScannerGrammarErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"unterminated label", "[abc(serde://u8)"},
		{"label without uri", "[abc] def"},
		{"unterminated uri", "[abc](serde://u8"},
		{"trailing content", "[abc](serde://u8) tail"},
		{"raw emphasis in text", "1. a*b"},
		{"unknown escape in label", `[\q](serde://u8)`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := markdown.NewScanner(tt.line).Next()
			var grammarErr *markdown.GrammarError
			if !errors.As(err, &grammarErr) {
				t.Fatalf("scan(%q) = %v, want GrammarError", tt.line, err)
			}
			if grammarErr.Line != 1 {
				t.Errorf("Line = %d, want 1", grammarErr.Line)
			}
		})
	}
}

func TestScannerLineNumbers(t *testing.T) {
	scanner := markdown.NewScanner("1. a\n\n2. b\n")
	var lines []int
	for {
		tok, ok, err := scanner.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if !ok {
			break
		}
		lines = append(lines, tok.Line)
	}
	want := []int{1, 2, 3}
	if len(lines) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("token %d on line %d, want %d", i, lines[i], want[i])
		}
	}
}

func TestScannerCRLF(t *testing.T) {
	tok := scanOne(t, "1. x\r\n")
	if tok.Text != "x" {
		t.Errorf("Text = %q, want %q", tok.Text, "x")
	}
}
