// Copyright 2026 The Mdwire Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"io"

	"github.com/mdwire/mdwire/lib/markdown"
	"github.com/mdwire/mdwire/lib/value"
)

// Options configures a codec call. The zero value uses
// markdown.DefaultMaxDepth.
type Options struct {
	// MaxDepth bounds value nesting. Both directions enforce it:
	// decoding fails with DepthError instead of exhausting the stack
	// on hostile input, and encoding fails the same way on cyclic or
	// degenerate values.
	MaxDepth int
}

func (o Options) maxDepth() int {
	if o.MaxDepth > 0 {
		return o.MaxDepth
	}
	return markdown.DefaultMaxDepth
}

// Marshal encodes a value to its Markdown wire form.
func Marshal(v value.Value) ([]byte, error) {
	return MarshalWithOptions(v, Options{})
}

// MarshalWithOptions encodes a value to its Markdown wire form with
// explicit options.
func MarshalWithOptions(v value.Value, opts Options) ([]byte, error) {
	var b bytes.Buffer
	if err := encodeTo(&b, v, opts); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// MarshalTo encodes a value directly to w.
func MarshalTo(w io.Writer, v value.Value, opts Options) error {
	return encodeTo(w, v, opts)
}

func encodeTo(w io.Writer, v value.Value, opts Options) error {
	maxDepth := opts.maxDepth()
	enc := &encoder{maxDepth: maxDepth}
	node, err := enc.node(v, 0)
	if err != nil {
		return err
	}
	return markdown.RenderTo(w, node, markdown.RenderOptions{MaxDepth: maxDepth})
}

// Unmarshal decodes a Markdown wire document back to a value.
func Unmarshal(data []byte) (value.Value, error) {
	return UnmarshalWithOptions(data, Options{})
}

// UnmarshalWithOptions decodes a Markdown wire document with explicit
// options.
func UnmarshalWithOptions(data []byte, opts Options) (value.Value, error) {
	maxDepth := opts.maxDepth()
	node, err := markdown.ParseWithOptions(string(data), markdown.ParseOptions{MaxDepth: maxDepth})
	if err != nil {
		return nil, err
	}
	dec := &decoder{maxDepth: maxDepth}
	return dec.node(node, 0)
}
