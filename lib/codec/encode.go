// Copyright 2026 The Mdwire Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/mdwire/mdwire/lib/markdown"
	"github.com/mdwire/mdwire/lib/typeuri"
	"github.com/mdwire/mdwire/lib/value"
)

// encoder builds the node tree for a value. It carries the depth limit
// and the path to the node under construction for error reporting.
type encoder struct {
	maxDepth int
	path     []int
}

func (e *encoder) node(v value.Value, depth int) (*markdown.Node, error) {
	switch v := v.(type) {
	case value.Bool:
		return anchor(strconv.FormatBool(bool(v)), typeuri.Format("bool")), nil

	case value.Integer:
		return e.integer(v)

	case value.Float:
		return e.float(v)

	case value.Char:
		return anchor(string(rune(v)), typeuri.Format("char")), nil

	case value.String:
		return anchor(string(v), typeuri.Format("string")), nil

	case value.Bytes:
		return anchor(base64.URLEncoding.EncodeToString(v), typeuri.Format("blob")), nil

	case value.Unit:
		return anchor("()", typeuri.Format("unit")), nil

	case value.Option:
		if v.Inner == nil {
			return anchor("None", typeuri.Format("option", "none")), nil
		}
		return e.wrapper("Some", typeuri.Format("option", "some"), v.Inner, depth)

	case value.UnitStruct:
		if err := e.checkName(v.Name); err != nil {
			return nil, err
		}
		return anchor(v.Name, typeuri.Format("unit_struct", v.Name)), nil

	case value.UnitVariant:
		if err := e.checkNames(v.Enum, v.Variant); err != nil {
			return nil, err
		}
		return anchor(v.Enum+"::"+v.Variant, typeuri.Format("unit_variant", v.Enum, v.Variant)), nil

	case value.NewtypeStruct:
		if err := e.checkName(v.Name); err != nil {
			return nil, err
		}
		return e.wrapper(v.Name, typeuri.Format("newtype_struct", v.Name), v.Inner, depth)

	case value.NewtypeVariant:
		if err := e.checkNames(v.Enum, v.Variant); err != nil {
			return nil, err
		}
		return e.wrapper(v.Enum+"::"+v.Variant,
			typeuri.Format("newtype_variant", v.Enum, v.Variant), v.Inner, depth)

	case value.Seq:
		if v.Len == value.LenUnknown {
			return e.elements("Seq of unknown length", typeuri.Format("seq"), v.Items, depth)
		}
		if v.Len != len(v.Items) {
			return nil, &ArityError{Path: e.at(), Shape: "seq", Declared: v.Len, Actual: len(v.Items)}
		}
		return e.elements(fmt.Sprintf("Seq of length %d", v.Len),
			typeuri.Format("seq", strconv.Itoa(v.Len)), v.Items, depth)

	case value.Tuple:
		n := len(v.Items)
		return e.elements(fmt.Sprintf("Tuple of length %d", n),
			typeuri.Format("tuple", strconv.Itoa(n)), v.Items, depth)

	case value.TupleStruct:
		if err := e.checkName(v.Name); err != nil {
			return nil, err
		}
		n := len(v.Items)
		return e.elements(fmt.Sprintf("Tuple struct %s of length %d", v.Name, n),
			typeuri.Format("tuple_struct", v.Name, strconv.Itoa(n)), v.Items, depth)

	case value.TupleVariant:
		if err := e.checkNames(v.Enum, v.Variant); err != nil {
			return nil, err
		}
		n := len(v.Items)
		return e.elements(fmt.Sprintf("Tuple variant %s::%s of length %d", v.Enum, v.Variant, n),
			typeuri.Format("tuple_variant", v.Enum, v.Variant, strconv.Itoa(n)), v.Items, depth)

	case value.Map:
		return e.mapNode(v, depth)

	case value.Struct:
		if err := e.checkName(v.Name); err != nil {
			return nil, err
		}
		n := len(v.Fields)
		return e.fields(fmt.Sprintf("Struct %s of length %d", v.Name, n),
			typeuri.Format("struct", v.Name, strconv.Itoa(n)), v.Fields, depth)

	case value.StructVariant:
		if err := e.checkNames(v.Enum, v.Variant); err != nil {
			return nil, err
		}
		n := len(v.Fields)
		return e.fields(fmt.Sprintf("Struct variant %s::%s of length %d", v.Enum, v.Variant, n),
			typeuri.Format("struct_variant", v.Enum, v.Variant, strconv.Itoa(n)), v.Fields, depth)

	case nil:
		return nil, &StructureError{Path: e.at(), Message: "nil value"}

	default:
		return nil, &StructureError{Path: e.at(), Message: fmt.Sprintf("unsupported value kind %v", v.Kind())}
	}
}

func (e *encoder) integer(v value.Integer) (*markdown.Node, error) {
	switch v.Width {
	case 8, 16, 32, 64:
	default:
		return nil, &ValueError{Path: e.at(), Message: fmt.Sprintf("integer width %d (want 8, 16, 32, or 64)", v.Width)}
	}
	prefix, label := "u", strconv.FormatUint(v.U, 10)
	if v.Signed {
		prefix, label = "i", strconv.FormatInt(v.I, 10)
	}
	uri := typeuri.Format(prefix + strconv.Itoa(v.Width))
	if err := e.checkRange(label, v.Width, v.Signed, uri); err != nil {
		return nil, err
	}
	return anchor(label, uri), nil
}

// checkRange rejects an Integer whose payload does not fit its
// declared width. The model stores all integers in 64-bit fields, so
// narrower widths can carry out-of-range values that must not reach
// the wire.
func (e *encoder) checkRange(label string, width int, signed bool, uri string) error {
	var err error
	if signed {
		_, err = strconv.ParseInt(label, 10, width)
	} else {
		_, err = strconv.ParseUint(label, 10, width)
	}
	if err != nil {
		return &ValueError{Path: e.at(), Message: label + " does not fit " + uri, Err: err}
	}
	return nil
}

func (e *encoder) float(v value.Float) (*markdown.Node, error) {
	switch v.Width {
	case 32, 64:
	default:
		return nil, &ValueError{Path: e.at(), Message: fmt.Sprintf("float width %d (want 32 or 64)", v.Width)}
	}
	label := strconv.FormatFloat(v.F, 'g', -1, v.Width)
	return anchor(label, typeuri.Format("f"+strconv.Itoa(v.Width))), nil
}

// wrapper emits the ordered marker-plus-one-element list shared by
// Some, newtype structs, and newtype variants.
func (e *encoder) wrapper(label, uri string, inner value.Value, depth int) (*markdown.Node, error) {
	if inner == nil {
		return nil, &StructureError{Path: e.at(), Message: "wrapper around a nil value"}
	}
	return e.elements(label, uri, []value.Value{inner}, depth)
}

// elements emits an ordered list: the marker link, then one item per
// element.
func (e *encoder) elements(label, uri string, items []value.Value, depth int) (*markdown.Node, error) {
	if depth >= e.maxDepth {
		return nil, &markdown.DepthError{Limit: e.maxDepth}
	}
	list := &markdown.Node{Kind: markdown.NodeList, Ordered: true}
	list.Items = append(list.Items, anchor(label, uri))
	for i, item := range items {
		e.push(i + 1)
		node, err := e.node(item, depth+1)
		e.pop()
		if err != nil {
			return nil, err
		}
		list.Items = append(list.Items, node)
	}
	return list, nil
}

// mapNode emits an unordered list: the marker link, then one ordered
// two-item pair list per entry.
func (e *encoder) mapNode(v value.Map, depth int) (*markdown.Node, error) {
	if depth >= e.maxDepth {
		return nil, &markdown.DepthError{Limit: e.maxDepth}
	}
	label, uri := "Map of unknown length", typeuri.Format("map")
	if v.Len != value.LenUnknown {
		if v.Len != len(v.Entries) {
			return nil, &ArityError{Path: e.at(), Shape: "map", Declared: v.Len, Actual: len(v.Entries)}
		}
		label = fmt.Sprintf("Map of length %d", v.Len)
		uri = typeuri.Format("map", strconv.Itoa(v.Len))
	}

	list := &markdown.Node{Kind: markdown.NodeList}
	list.Items = append(list.Items, anchor(label, uri))
	for i, entry := range v.Entries {
		e.push(i + 1)
		pair := &markdown.Node{Kind: markdown.NodeList, Ordered: true}

		e.push(0)
		key, err := e.node(entry.Key, depth+2)
		e.pop()
		if err != nil {
			e.pop()
			return nil, err
		}
		e.push(1)
		val, err := e.node(entry.Val, depth+2)
		e.pop()
		e.pop()
		if err != nil {
			return nil, err
		}

		pair.Items = append(pair.Items, key, val)
		list.Items = append(list.Items, pair)
	}
	return list, nil
}

// fields emits the struct layout: an unordered list of pair lists
// whose first item is the field name as a plain text leaf.
func (e *encoder) fields(label, uri string, fields []value.Field, depth int) (*markdown.Node, error) {
	if depth >= e.maxDepth {
		return nil, &markdown.DepthError{Limit: e.maxDepth}
	}
	list := &markdown.Node{Kind: markdown.NodeList}
	list.Items = append(list.Items, anchor(label, uri))
	for i, field := range fields {
		e.push(i + 1)
		if field.Name == "" {
			err := &ValueError{Path: e.at(), Message: "empty field name"}
			e.pop()
			return nil, err
		}
		pair := &markdown.Node{Kind: markdown.NodeList, Ordered: true}
		pair.Items = append(pair.Items, &markdown.Node{Kind: markdown.NodeText, Text: field.Name})

		e.push(1)
		val, err := e.node(field.Val, depth+2)
		e.pop()
		e.pop()
		if err != nil {
			return nil, err
		}

		pair.Items = append(pair.Items, val)
		list.Items = append(list.Items, pair)
	}
	return list, nil
}

// checkName rejects struct, enum, and variant names that cannot
// survive a URI path segment or a link line: empty names, slashes,
// whitespace, and parentheses.
func (e *encoder) checkName(name string) error {
	if name == "" {
		return &ValueError{Path: e.at(), Message: "empty type name"}
	}
	if i := strings.IndexAny(name, "/() \t\r\n"); i >= 0 {
		return &ValueError{
			Path:    e.at(),
			Message: fmt.Sprintf("type name %q contains %q", name, name[i]),
		}
	}
	return nil
}

func (e *encoder) checkNames(enum, variant string) error {
	if err := e.checkName(enum); err != nil {
		return err
	}
	return e.checkName(variant)
}

func (e *encoder) push(i int) { e.path = append(e.path, i) }
func (e *encoder) pop()       { e.path = e.path[:len(e.path)-1] }

// at renders the current path for an error.
func (e *encoder) at() string {
	if len(e.path) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, i := range e.path {
		b.WriteByte('/')
		b.WriteString(strconv.Itoa(i))
	}
	return b.String()
}

func anchor(label, uri string) *markdown.Node {
	return &markdown.Node{Kind: markdown.NodeAnchor, Label: label, URI: uri}
}
