// Copyright 2026 The Mdwire Authors
// SPDX-License-Identifier: Apache-2.0

package markdown

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// RenderOptions configures Render. The zero value uses
// DefaultMaxDepth.
type RenderOptions struct {
	MaxDepth int
}

// Render serializes a node tree to wire text using default options.
func Render(node *Node) (string, error) {
	var b strings.Builder
	if err := RenderTo(&b, node, RenderOptions{}); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderTo serializes a node tree to w. Ordered items are numbered
// from 1; readers ignore the numbers. Trees deeper than the
// configured limit fail with a DepthError.
func RenderTo(w io.Writer, node *Node, opts RenderOptions) error {
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	r := &renderer{w: w, maxDepth: maxDepth}

	switch node.Kind {
	case NodeText:
		return r.line("", Escape(node.Text))
	case NodeAnchor:
		return r.line("", anchorText(node))
	default:
		return r.list(node, 0)
	}
}

type renderer struct {
	w        io.Writer
	maxDepth int
}

func (r *renderer) line(prefix, content string) error {
	if content == "" {
		_, err := fmt.Fprintf(r.w, "%s\n", strings.TrimRight(prefix, " "))
		return err
	}
	_, err := fmt.Fprintf(r.w, "%s%s\n", prefix, content)
	return err
}

func (r *renderer) list(list *Node, depth int) error {
	if depth >= r.maxDepth {
		return &DepthError{Limit: r.maxDepth}
	}

	indent := strings.Repeat(" ", IndentWidth*depth)
	for i, item := range list.Items {
		bullet := "* "
		if list.Ordered {
			bullet = strconv.Itoa(i+1) + ". "
		}
		prefix := indent + bullet

		switch item.Kind {
		case NodeText:
			if err := r.line(prefix, Escape(item.Text)); err != nil {
				return err
			}
		case NodeAnchor:
			if err := r.line(prefix, anchorText(item)); err != nil {
				return err
			}
		case NodeList:
			// A nested list is introduced by an empty item and
			// indented one level deeper.
			if err := r.line(prefix, ""); err != nil {
				return err
			}
			if err := r.list(item, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

func anchorText(node *Node) string {
	label := node.Label
	if !verbatimLabel(node.URI) {
		label = Escape(label)
	}
	return "[" + label + "](" + node.URI + ")"
}
