// Copyright 2026 The Mdwire Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"encoding/base64"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mdwire/mdwire/lib/markdown"
	"github.com/mdwire/mdwire/lib/typeuri"
	"github.com/mdwire/mdwire/lib/value"
)

// decoder walks a node tree and rebuilds the value it encodes. It
// carries the depth limit and the path to the node under
// interpretation for error reporting.
type decoder struct {
	maxDepth int
	path     []int
}

func (d *decoder) node(n *markdown.Node, depth int) (value.Value, error) {
	switch n.Kind {
	case markdown.NodeText:
		return nil, &StructureError{
			Path: d.at(), Line: n.Line,
			Message: "plain text where a value was expected",
		}
	case markdown.NodeAnchor:
		return d.leaf(n)
	default:
		return d.list(n, depth)
	}
}

// leaf interprets a bare link line. Only leaf-shaped types may stand
// alone; a composite marker outside its list is a structure fault.
func (d *decoder) leaf(n *markdown.Node) (value.Value, error) {
	t, err := d.typeOf(n)
	if err != nil {
		return nil, err
	}
	if t.shape != shapeLeaf {
		return nil, &StructureError{
			Path: d.at(), Line: n.Line,
			Message: "composite type " + n.URI + " outside a list",
		}
	}

	switch t.domain {
	case "bool":
		switch n.Label {
		case "true":
			return value.Bool(true), nil
		case "false":
			return value.Bool(false), nil
		default:
			return nil, d.badLeaf(n, "not a bool", nil)
		}

	case "u8", "u16", "u32", "u64":
		u, err := strconv.ParseUint(n.Label, 10, t.intWidth)
		if err != nil {
			return nil, d.badLeaf(n, "does not fit "+n.URI, err)
		}
		return value.Integer{Width: t.intWidth, U: u}, nil

	case "i8", "i16", "i32", "i64":
		i, err := strconv.ParseInt(n.Label, 10, t.intWidth)
		if err != nil {
			return nil, d.badLeaf(n, "does not fit "+n.URI, err)
		}
		return value.Integer{Width: t.intWidth, Signed: true, I: i}, nil

	case "f32", "f64":
		f, err := strconv.ParseFloat(n.Label, t.floatWidth)
		if err != nil {
			return nil, d.badLeaf(n, "does not fit "+n.URI, err)
		}
		return value.Float{Width: t.floatWidth, F: f}, nil

	case "char":
		r, size := utf8.DecodeRuneInString(n.Label)
		if size == 0 || size != len(n.Label) || r == utf8.RuneError && size == 1 {
			return nil, d.badLeaf(n, "not a single character", nil)
		}
		return value.Char(r), nil

	case "string":
		return value.String(n.Label), nil

	case "blob":
		buf, err := base64.URLEncoding.DecodeString(n.Label)
		if err != nil {
			return nil, d.badLeaf(n, "invalid base64", err)
		}
		return value.Bytes(buf), nil

	case "unit":
		if n.Label != "()" {
			return nil, d.badLeaf(n, "is not the unit label ()", nil)
		}
		return value.Unit{}, nil

	case "option":
		// Leaf shape means none; some is a wrapper.
		return value.None(), nil

	case "unit_struct":
		return value.UnitStruct{Name: t.name}, nil

	default: // unit_variant
		return value.UnitVariant{Enum: t.enum, Variant: t.variant}, nil
	}
}

// list interprets a marker-led list. The pair lists inside maps and
// structs never reach here; the map branch consumes them directly.
func (d *decoder) list(n *markdown.Node, depth int) (value.Value, error) {
	if depth >= d.maxDepth {
		return nil, &markdown.DepthError{Limit: d.maxDepth, Line: n.Line}
	}

	marker := n.Items[0]
	if marker.Kind != markdown.NodeAnchor {
		return nil, &StructureError{
			Path: d.at(), Line: marker.Line,
			Message: "list does not start with a type link",
		}
	}
	t, err := d.typeOf(marker)
	if err != nil {
		return nil, err
	}

	elements := n.Items[1:]
	switch t.shape {
	case shapeLeaf:
		return nil, &StructureError{
			Path: d.at(), Line: marker.Line,
			Message: "leaf type " + marker.URI + " marking a list",
		}

	case shapeWrapper:
		if !n.Ordered {
			return nil, d.wantOrdered(marker, true)
		}
		if len(elements) != 1 {
			return nil, &ArityError{
				Path: d.at(), Line: marker.Line,
				Shape: d.shapeName(t), Declared: 1, Actual: len(elements),
			}
		}
		if t.some && marker.Label != "Some" {
			return nil, &StructureError{
				Path: d.at(), Line: marker.Line,
				Message: "option/some marker labelled " + strconv.Quote(marker.Label),
			}
		}
		d.push(1)
		inner, err := d.node(elements[0], depth+1)
		d.pop()
		if err != nil {
			return nil, err
		}
		switch {
		case t.some:
			return value.Some(inner), nil
		case t.domain == "newtype_struct":
			return value.NewtypeStruct{Name: t.name, Inner: inner}, nil
		default:
			return value.NewtypeVariant{Enum: t.enum, Variant: t.variant, Inner: inner}, nil
		}

	case shapeSeq:
		if !n.Ordered {
			return nil, d.wantOrdered(marker, true)
		}
		if t.length != lengthUnknown && t.length != len(elements) {
			return nil, &ArityError{
				Path: d.at(), Line: marker.Line,
				Shape: d.shapeName(t), Declared: t.length, Actual: len(elements),
			}
		}
		items := make([]value.Value, len(elements))
		for i, element := range elements {
			d.push(i + 1)
			items[i], err = d.node(element, depth+1)
			d.pop()
			if err != nil {
				return nil, err
			}
		}
		switch t.domain {
		case "seq":
			length := t.length
			if length == lengthUnknown {
				length = value.LenUnknown
			}
			return value.Seq{Len: length, Items: items}, nil
		case "tuple":
			return value.Tuple{Items: items}, nil
		case "tuple_struct":
			return value.TupleStruct{Name: t.name, Items: items}, nil
		default:
			return value.TupleVariant{Enum: t.enum, Variant: t.variant, Items: items}, nil
		}

	default: // shapeMap
		if n.Ordered {
			return nil, d.wantOrdered(marker, false)
		}
		if t.length != lengthUnknown && t.length != len(elements) {
			return nil, &ArityError{
				Path: d.at(), Line: marker.Line,
				Shape: d.shapeName(t), Declared: t.length, Actual: len(elements),
			}
		}
		if t.domain == "map" {
			return d.mapEntries(t, elements, depth)
		}
		return d.structFields(t, elements, depth)
	}
}

// mapEntries decodes the pair lists of a map. Pairs are ordered
// two-item lists with no marker; both positions hold full values.
func (d *decoder) mapEntries(t wireType, pairs []*markdown.Node, depth int) (value.Value, error) {
	entries := make([]value.Entry, len(pairs))
	for i, pair := range pairs {
		d.push(i + 1)
		if err := d.checkPair(pair, "map entry"); err != nil {
			d.pop()
			return nil, err
		}

		d.push(0)
		key, err := d.node(pair.Items[0], depth+2)
		d.pop()
		if err != nil {
			d.pop()
			return nil, err
		}
		d.push(1)
		val, err := d.node(pair.Items[1], depth+2)
		d.pop()
		d.pop()
		if err != nil {
			return nil, err
		}
		entries[i] = value.Entry{Key: key, Val: val}
	}

	length := t.length
	if length == lengthUnknown {
		length = value.LenUnknown
	}
	return value.Map{Len: length, Entries: entries}, nil
}

// structFields decodes the pair lists of a struct or struct variant.
// The first position of each pair is the field name as a plain text
// leaf.
func (d *decoder) structFields(t wireType, pairs []*markdown.Node, depth int) (value.Value, error) {
	fields := make([]value.Field, len(pairs))
	for i, pair := range pairs {
		d.push(i + 1)
		if err := d.checkPair(pair, "field entry"); err != nil {
			d.pop()
			return nil, err
		}

		name := pair.Items[0]
		if name.Kind != markdown.NodeText {
			d.pop()
			return nil, &StructureError{
				Path: d.at(), Line: name.Line,
				Message: "field name is not a plain text leaf",
			}
		}

		d.push(1)
		val, err := d.node(pair.Items[1], depth+2)
		d.pop()
		d.pop()
		if err != nil {
			return nil, err
		}
		fields[i] = value.Field{Name: name.Text, Val: val}
	}

	if t.domain == "struct" {
		return value.Struct{Name: t.name, Fields: fields}, nil
	}
	return value.StructVariant{Enum: t.enum, Variant: t.variant, Fields: fields}, nil
}

// checkPair validates the shared shape of map and struct entries: an
// ordered list of exactly two items with no marker.
func (d *decoder) checkPair(pair *markdown.Node, shape string) error {
	if pair.Kind != markdown.NodeList || !pair.Ordered {
		return &StructureError{
			Path: d.at(), Line: pair.Line,
			Message: shape + " is not an ordered pair list",
		}
	}
	if len(pair.Items) != 2 {
		return &ArityError{
			Path: d.at(), Line: pair.Line,
			Shape: shape, Declared: 2, Actual: len(pair.Items),
		}
	}
	return nil
}

func (d *decoder) typeOf(n *markdown.Node) (wireType, error) {
	u, err := typeuri.Parse(n.URI)
	if err != nil {
		return wireType{}, err
	}
	return parseWireType(u)
}

// shapeName renders the composite's name for an ArityError.
func (d *decoder) shapeName(t wireType) string {
	switch t.domain {
	case "option":
		return "Some"
	case "tuple_struct", "tuple_variant", "struct_variant", "newtype_struct", "newtype_variant":
		return strings.ReplaceAll(t.domain, "_", " ")
	default:
		return t.domain
	}
}

func (d *decoder) badLeaf(n *markdown.Node, message string, err error) error {
	return &ValueError{
		Path: d.at(), Line: n.Line,
		Message: strconv.Quote(n.Label) + " " + message,
		Err:     err,
	}
}

func (d *decoder) wantOrdered(marker *markdown.Node, ordered bool) error {
	kind := "an ordered"
	if !ordered {
		kind = "an unordered"
	}
	return &StructureError{
		Path: d.at(), Line: marker.Line,
		Message: marker.URI + " requires " + kind + " list",
	}
}

func (d *decoder) push(i int) { d.path = append(d.path, i) }
func (d *decoder) pop()       { d.path = d.path[:len(d.path)-1] }

func (d *decoder) at() string {
	if len(d.path) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, i := range d.path {
		b.WriteByte('/')
		b.WriteString(strconv.Itoa(i))
	}
	return b.String()
}
