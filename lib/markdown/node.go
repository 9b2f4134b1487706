// Copyright 2026 The Mdwire Authors
// SPDX-License-Identifier: Apache-2.0

package markdown

// NodeKind discriminates the three node shapes of the generic tree.
type NodeKind int

const (
	// NodeText is a plain text leaf with no type URI. It appears as
	// the field-name item of struct entries.
	NodeText NodeKind = iota
	// NodeAnchor is a link: a label plus a type URI.
	NodeAnchor
	// NodeList is an ordered or unordered list of items. Composite
	// values are lists whose first item is the marker anchor;
	// map/struct entry pairs are two-item lists with no marker.
	NodeList
)

// Node is one node of the generic document tree. Trees are built
// fresh per parse or render call and hold no cross-call state.
type Node struct {
	Kind NodeKind

	// Text is the literal content of a NodeText leaf, unescaped.
	Text string

	// Label and URI are set for NodeAnchor. Label is unescaped.
	Label string
	URI   string

	// Ordered and Items are set for NodeList.
	Ordered bool
	Items   []*Node

	// Line is the 1-based source line the node started on. Zero for
	// trees built by an encoder rather than parsed from text.
	Line int
}

// DefaultMaxDepth bounds nesting when ParseOptions or RenderOptions
// leave MaxDepth unset.
const DefaultMaxDepth = 256

// ParseOptions configures Parse. The zero value uses DefaultMaxDepth.
type ParseOptions struct {
	MaxDepth int
}

// Parse builds the node tree for a wire document using default
// options.
func Parse(input string) (*Node, error) {
	return ParseWithOptions(input, ParseOptions{})
}

// ParseWithOptions builds the node tree for a wire document. The
// document must hold exactly one node: either a single bare leaf or
// link line, or one list. Anything left over, misaligned, or outside
// the grammar subset fails with a GrammarError, IndentationError, or
// DepthError.
func ParseWithOptions(input string, opts ParseOptions) (*Node, error) {
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	tokens, err := scanAll(input)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, &GrammarError{Message: "empty document"}
	}

	p := &parser{tokens: tokens, maxDepth: maxDepth}

	var node *Node
	if tokens[0].Bullet == BulletNone {
		if tokens[0].Indent != 0 {
			return nil, &IndentationError{Line: tokens[0].Line, Message: "unexpected indentation"}
		}
		node = contentNode(p.next())
	} else {
		node, err = p.list(0)
		if err != nil {
			return nil, err
		}
	}

	if leftover := p.peek(); leftover != nil {
		return nil, &GrammarError{Line: leftover.Line, Message: "content after the document's single node"}
	}
	return node, nil
}

// scanAll drains the scanner, dropping blank lines.
func scanAll(input string) ([]Token, error) {
	scanner := NewScanner(input)
	var tokens []Token
	for {
		tok, ok, err := scanner.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return tokens, nil
		}
		if tok.Blank {
			continue
		}
		tokens = append(tokens, tok)
	}
}

type parser struct {
	tokens   []Token
	pos      int
	maxDepth int
}

func (p *parser) peek() *Token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	return &p.tokens[p.pos]
}

func (p *parser) next() *Token {
	tok := &p.tokens[p.pos]
	p.pos++
	return tok
}

// list consumes one homogeneous list whose items sit at the given
// nesting level and returns it as a NodeList.
func (p *parser) list(level int) (*Node, error) {
	if level >= p.maxDepth {
		tok := p.peek()
		line := 0
		if tok != nil {
			line = tok.Line
		}
		return nil, &DepthError{Limit: p.maxDepth, Line: line}
	}

	first := p.peek()
	if first.Indent != level {
		return nil, &IndentationError{Line: first.Line, Message: "unexpected indentation"}
	}
	if first.Bullet == BulletNone {
		return nil, &GrammarError{Line: first.Line, Message: "expected a list item"}
	}

	list := &Node{Kind: NodeList, Ordered: first.Bullet == BulletOrdered, Line: first.Line}

	for {
		tok := p.peek()
		if tok == nil || tok.Indent < level {
			return list, nil
		}
		if tok.Indent > level {
			return nil, &IndentationError{Line: tok.Line, Message: "unexpected indentation"}
		}
		if tok.Bullet == BulletNone {
			return nil, &GrammarError{Line: tok.Line, Message: "list item without a bullet marker"}
		}
		if (tok.Bullet == BulletOrdered) != list.Ordered {
			return nil, &GrammarError{Line: tok.Line, Message: "ordered and unordered markers mixed in one list"}
		}
		p.next()

		item, err := p.item(tok, level)
		if err != nil {
			return nil, err
		}
		list.Items = append(list.Items, item)
	}
}

// item turns one consumed list-item token into a node, descending
// into a nested list when the item is empty.
func (p *parser) item(tok *Token, level int) (*Node, error) {
	if !tok.IsLink && tok.Text == "" {
		// An empty item introduces a nested list exactly one level
		// deeper.
		child := p.peek()
		if child == nil || child.Indent <= level {
			return nil, &GrammarError{Line: tok.Line, Message: "empty list item without a nested list"}
		}
		return p.list(level + 1)
	}

	node := contentNode(tok)
	if deeper := p.peek(); deeper != nil && deeper.Indent > level {
		return nil, &IndentationError{Line: deeper.Line, Message: "nested list under a non-empty item"}
	}
	return node, nil
}

// contentNode builds the leaf or anchor node for a token's content.
func contentNode(tok *Token) *Node {
	if tok.IsLink {
		return &Node{Kind: NodeAnchor, Label: tok.Label, URI: tok.URI, Line: tok.Line}
	}
	return &Node{Kind: NodeText, Text: tok.Text, Line: tok.Line}
}
