// Copyright 2026 The Mdwire Authors
// SPDX-License-Identifier: Apache-2.0

package value

import (
	"bytes"
	"math"
)

// Equal reports whether a and b are structurally equal: same variant,
// same names and variant tags, same declared lengths, same scalar
// content, and element-wise equal children. Map and struct entry order
// is significant.
//
// Two nil Values are equal; a nil Value never equals a non-nil one.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch av := a.(type) {
	case Bool:
		return av == b.(Bool)
	case Integer:
		return av == b.(Integer)
	case Float:
		bv := b.(Float)
		if av.Width != bv.Width {
			return false
		}
		// NaN payloads are not part of the model; any NaN equals any
		// other so round-trip properties hold for NaN values.
		if math.IsNaN(av.F) && math.IsNaN(bv.F) {
			return true
		}
		return av.F == bv.F
	case Char:
		return av == b.(Char)
	case String:
		return av == b.(String)
	case Bytes:
		return bytes.Equal(av, b.(Bytes))
	case Unit:
		return true
	case Option:
		return Equal(av.Inner, b.(Option).Inner)
	case UnitStruct:
		return av == b.(UnitStruct)
	case UnitVariant:
		return av == b.(UnitVariant)
	case NewtypeStruct:
		bv := b.(NewtypeStruct)
		return av.Name == bv.Name && Equal(av.Inner, bv.Inner)
	case NewtypeVariant:
		bv := b.(NewtypeVariant)
		return av.Enum == bv.Enum && av.Variant == bv.Variant && Equal(av.Inner, bv.Inner)
	case Seq:
		bv := b.(Seq)
		return av.Len == bv.Len && equalItems(av.Items, bv.Items)
	case Tuple:
		return equalItems(av.Items, b.(Tuple).Items)
	case TupleStruct:
		bv := b.(TupleStruct)
		return av.Name == bv.Name && equalItems(av.Items, bv.Items)
	case TupleVariant:
		bv := b.(TupleVariant)
		return av.Enum == bv.Enum && av.Variant == bv.Variant && equalItems(av.Items, bv.Items)
	case Map:
		bv := b.(Map)
		if av.Len != bv.Len || len(av.Entries) != len(bv.Entries) {
			return false
		}
		for i := range av.Entries {
			if !Equal(av.Entries[i].Key, bv.Entries[i].Key) {
				return false
			}
			if !Equal(av.Entries[i].Val, bv.Entries[i].Val) {
				return false
			}
		}
		return true
	case Struct:
		bv := b.(Struct)
		return av.Name == bv.Name && equalFields(av.Fields, bv.Fields)
	case StructVariant:
		bv := b.(StructVariant)
		return av.Enum == bv.Enum && av.Variant == bv.Variant && equalFields(av.Fields, bv.Fields)
	}
	return false
}

func equalItems(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalFields(a, b []Field) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name || !Equal(a[i].Val, b[i].Val) {
			return false
		}
	}
	return true
}
