// Copyright 2026 The Mdwire Authors
// SPDX-License-Identifier: Apache-2.0

// Package value defines the serialization data model carried by the
// Markdown wire format: a closed set of shapes covering primitive
// scalars, options, the unit/newtype/tuple/struct forms and their
// enum-variant counterparts, sequences, tuples, and maps.
//
// [Value] is a sealed interface; the variant types in this package are
// the only implementations. Values form trees: composites own their
// children exclusively, and no cycles are representable. Use [Equal]
// for structural comparison — it compares shape, names, variant tags,
// declared lengths, and scalar content, and treats map and struct
// entry order as significant (order is part of the wire form).
//
// Sequences and maps may carry an unknown declared length, represented
// as [LenUnknown]. Tuples, tuple structs, tuple variants, structs, and
// struct variants always know their arity: it is the length of their
// element slice.
package value
