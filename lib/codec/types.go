// Copyright 2026 The Mdwire Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"strconv"

	"github.com/mdwire/mdwire/lib/typeuri"
)

// lengthUnknown marks a wireType whose domain carries no declared
// length segment ("serde://seq", "serde://map").
const lengthUnknown = -1

// shape groups wire domains by the node layout they demand.
type shape int

const (
	// shapeLeaf types are complete in a single link: primitives, unit,
	// None, unit structs, unit variants.
	shapeLeaf shape = iota
	// shapeWrapper types are ordered lists holding the marker plus
	// exactly one element: Some, newtype structs, newtype variants.
	shapeWrapper
	// shapeSeq types are ordered lists of elements after the marker.
	shapeSeq
	// shapeMap types are unordered lists of two-item pair lists after
	// the marker.
	shapeMap
)

// wireType is a type URI interpreted against the domain table. Exactly
// the fields implied by the domain are set.
type wireType struct {
	domain string
	shape  shape

	// Primitive facts.
	intWidth   int
	intSigned  bool
	floatWidth int

	// Names, for the *_struct and *_variant domains.
	name    string
	enum    string
	variant string

	// some distinguishes option/some from option/none.
	some bool

	// length is the declared element count, or lengthUnknown for a
	// seq or map without one.
	length int
}

// parseWireType interprets a parsed URI against the domain table.
// Unknown domains and malformed segment lists are a SchemeError.
func parseWireType(u typeuri.URI) (wireType, error) {
	t := wireType{domain: u.Domain, length: lengthUnknown}

	switch u.Domain {
	case "bool", "char", "string", "blob", "unit":
		return t, wantSegments(u, 0)

	case "u8", "u16", "u32", "u64", "i8", "i16", "i32", "i64":
		t.intSigned = u.Domain[0] == 'i'
		t.intWidth, _ = strconv.Atoi(u.Domain[1:])
		return t, wantSegments(u, 0)

	case "f32", "f64":
		t.floatWidth, _ = strconv.Atoi(u.Domain[1:])
		return t, wantSegments(u, 0)

	case "option":
		if err := wantSegments(u, 1); err != nil {
			return t, err
		}
		switch u.Segments[0] {
		case "none":
			return t, nil
		case "some":
			t.some = true
			t.shape = shapeWrapper
			return t, nil
		default:
			return t, &typeuri.SchemeError{URI: u.String(), Message: "option expects none or some"}
		}

	case "unit_struct":
		if err := wantSegments(u, 1); err != nil {
			return t, err
		}
		t.name = u.Segments[0]
		return t, nil

	case "unit_variant":
		if err := wantSegments(u, 2); err != nil {
			return t, err
		}
		t.enum, t.variant = u.Segments[0], u.Segments[1]
		return t, nil

	case "newtype_struct":
		if err := wantSegments(u, 1); err != nil {
			return t, err
		}
		t.shape = shapeWrapper
		t.name = u.Segments[0]
		return t, nil

	case "newtype_variant":
		if err := wantSegments(u, 2); err != nil {
			return t, err
		}
		t.shape = shapeWrapper
		t.enum, t.variant = u.Segments[0], u.Segments[1]
		return t, nil

	case "seq":
		t.shape = shapeSeq
		if len(u.Segments) == 0 {
			return t, nil
		}
		if err := wantSegments(u, 1); err != nil {
			return t, err
		}
		return t, t.parseLength(u, u.Segments[0])

	case "tuple":
		if err := wantSegments(u, 1); err != nil {
			return t, err
		}
		t.shape = shapeSeq
		return t, t.parseLength(u, u.Segments[0])

	case "tuple_struct":
		if err := wantSegments(u, 2); err != nil {
			return t, err
		}
		t.shape = shapeSeq
		t.name = u.Segments[0]
		return t, t.parseLength(u, u.Segments[1])

	case "tuple_variant":
		if err := wantSegments(u, 3); err != nil {
			return t, err
		}
		t.shape = shapeSeq
		t.enum, t.variant = u.Segments[0], u.Segments[1]
		return t, t.parseLength(u, u.Segments[2])

	case "map":
		t.shape = shapeMap
		if len(u.Segments) == 0 {
			return t, nil
		}
		if err := wantSegments(u, 1); err != nil {
			return t, err
		}
		return t, t.parseLength(u, u.Segments[0])

	case "struct":
		if err := wantSegments(u, 2); err != nil {
			return t, err
		}
		t.shape = shapeMap
		t.name = u.Segments[0]
		return t, t.parseLength(u, u.Segments[1])

	case "struct_variant":
		if err := wantSegments(u, 3); err != nil {
			return t, err
		}
		t.shape = shapeMap
		t.enum, t.variant = u.Segments[0], u.Segments[1]
		return t, t.parseLength(u, u.Segments[2])

	default:
		return t, &typeuri.SchemeError{URI: u.String(), Message: "unknown domain " + strconv.Quote(u.Domain)}
	}
}

func wantSegments(u typeuri.URI, n int) error {
	if len(u.Segments) == n {
		return nil
	}
	return &typeuri.SchemeError{
		URI: u.String(),
		Message: "domain " + u.Domain + " expects " + strconv.Itoa(n) +
			" path segments, got " + strconv.Itoa(len(u.Segments)),
	}
}

func (t *wireType) parseLength(u typeuri.URI, segment string) error {
	n, err := strconv.Atoi(segment)
	if err != nil || n < 0 {
		return &typeuri.SchemeError{URI: u.String(), Message: "length segment " + strconv.Quote(segment) + " is not a non-negative integer"}
	}
	t.length = n
	return nil
}
