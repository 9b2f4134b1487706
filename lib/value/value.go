// Copyright 2026 The Mdwire Authors
// SPDX-License-Identifier: Apache-2.0

package value

// Kind identifies which variant of the data model a Value is.
type Kind int

const (
	KindBool Kind = iota
	KindInteger
	KindFloat
	KindChar
	KindString
	KindBytes
	KindUnit
	KindOption
	KindUnitStruct
	KindUnitVariant
	KindNewtypeStruct
	KindNewtypeVariant
	KindSeq
	KindTuple
	KindTupleStruct
	KindTupleVariant
	KindMap
	KindStruct
	KindStructVariant
)

var kindNames = map[Kind]string{
	KindBool:           "bool",
	KindInteger:        "integer",
	KindFloat:          "float",
	KindChar:           "char",
	KindString:         "string",
	KindBytes:          "bytes",
	KindUnit:           "unit",
	KindOption:         "option",
	KindUnitStruct:     "unit struct",
	KindUnitVariant:    "unit variant",
	KindNewtypeStruct:  "newtype struct",
	KindNewtypeVariant: "newtype variant",
	KindSeq:            "seq",
	KindTuple:          "tuple",
	KindTupleStruct:    "tuple struct",
	KindTupleVariant:   "tuple variant",
	KindMap:            "map",
	KindStruct:         "struct",
	KindStructVariant:  "struct variant",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// LenUnknown marks a Seq or Map whose length was not declared on the
// wire.
const LenUnknown = -1

// Value is one value in the serialization data model. It is a sealed
// interface: the variant types in this package are the only
// implementations.
type Value interface {
	Kind() Kind
	isValue()
}

// Bool is a boolean scalar.
type Bool bool

// Integer is a fixed-width integer. Width is 8, 16, 32, or 64. Signed
// values live in I, unsigned values in U; the other field is zero.
type Integer struct {
	Width  int
	Signed bool
	I      int64
	U      uint64
}

// Float is a floating-point scalar. Width is 32 or 64. F holds the
// value; for Width 32 it is always exactly representable as float32.
type Float struct {
	Width int
	F     float64
}

// Char is a single Unicode scalar value.
type Char rune

// String is UTF-8 text. It may contain NUL and newlines; the codec
// escapes whatever the grammar would otherwise interpret as markup.
type String string

// Bytes is an opaque byte sequence, carried as URL-safe base64 on the
// wire.
type Bytes []byte

// Unit is the unit value.
type Unit struct{}

// Option is an optional value. A nil Inner is None; anything else is
// Some(Inner).
type Option struct {
	Inner Value
}

// UnitStruct is a named struct with no data.
type UnitStruct struct {
	Name string
}

// UnitVariant is an enum case with no data, identified by enum and
// variant name.
type UnitVariant struct {
	Enum    string
	Variant string
}

// NewtypeStruct is a named single-field wrapper.
type NewtypeStruct struct {
	Name  string
	Inner Value
}

// NewtypeVariant is an enum case wrapping a single value.
type NewtypeVariant struct {
	Enum    string
	Variant string
	Inner   Value
}

// Seq is an ordered sequence. Len is the declared length from the
// wire, or LenUnknown when the length was not declared. When declared,
// Len always equals len(Items) for values that passed through the
// codec; Marshal rejects a mismatch.
type Seq struct {
	Len   int
	Items []Value
}

// Tuple is a fixed-arity ordered sequence. Arity is len(Items).
type Tuple struct {
	Items []Value
}

// TupleStruct is a named tuple.
type TupleStruct struct {
	Name  string
	Items []Value
}

// TupleVariant is an enum case carrying a tuple.
type TupleVariant struct {
	Enum    string
	Variant string
	Items   []Value
}

// Entry is one key/value pair of a Map. Keys may be arbitrary values,
// including composites, and may repeat: the codec preserves the wire
// faithfully and enforces no uniqueness.
type Entry struct {
	Key Value
	Val Value
}

// Map is an ordered collection of entries. Len is the declared length,
// or LenUnknown when the length was not declared.
type Map struct {
	Len     int
	Entries []Entry
}

// Field is one named field of a Struct or StructVariant.
type Field struct {
	Name string
	Val  Value
}

// Struct is a named record. Arity is len(Fields); field order is part
// of the wire form and preserved.
type Struct struct {
	Name   string
	Fields []Field
}

// StructVariant is an enum case carrying named fields.
type StructVariant struct {
	Enum    string
	Variant string
	Fields  []Field
}

func (Bool) Kind() Kind           { return KindBool }
func (Integer) Kind() Kind        { return KindInteger }
func (Float) Kind() Kind          { return KindFloat }
func (Char) Kind() Kind           { return KindChar }
func (String) Kind() Kind         { return KindString }
func (Bytes) Kind() Kind          { return KindBytes }
func (Unit) Kind() Kind           { return KindUnit }
func (Option) Kind() Kind         { return KindOption }
func (UnitStruct) Kind() Kind     { return KindUnitStruct }
func (UnitVariant) Kind() Kind    { return KindUnitVariant }
func (NewtypeStruct) Kind() Kind  { return KindNewtypeStruct }
func (NewtypeVariant) Kind() Kind { return KindNewtypeVariant }
func (Seq) Kind() Kind            { return KindSeq }
func (Tuple) Kind() Kind          { return KindTuple }
func (TupleStruct) Kind() Kind    { return KindTupleStruct }
func (TupleVariant) Kind() Kind   { return KindTupleVariant }
func (Map) Kind() Kind            { return KindMap }
func (Struct) Kind() Kind         { return KindStruct }
func (StructVariant) Kind() Kind  { return KindStructVariant }

func (Bool) isValue()           {}
func (Integer) isValue()        {}
func (Float) isValue()          {}
func (Char) isValue()           {}
func (String) isValue()         {}
func (Bytes) isValue()          {}
func (Unit) isValue()           {}
func (Option) isValue()         {}
func (UnitStruct) isValue()     {}
func (UnitVariant) isValue()    {}
func (NewtypeStruct) isValue()  {}
func (NewtypeVariant) isValue() {}
func (Seq) isValue()            {}
func (Tuple) isValue()          {}
func (TupleStruct) isValue()    {}
func (TupleVariant) isValue()   {}
func (Map) isValue()            {}
func (Struct) isValue()         {}
func (StructVariant) isValue()  {}

// Int8 through Uint64 construct Integer values of the corresponding
// width and signedness.

func Int8(v int8) Integer   { return Integer{Width: 8, Signed: true, I: int64(v)} }
func Int16(v int16) Integer { return Integer{Width: 16, Signed: true, I: int64(v)} }
func Int32(v int32) Integer { return Integer{Width: 32, Signed: true, I: int64(v)} }
func Int64(v int64) Integer { return Integer{Width: 64, Signed: true, I: v} }

func Uint8(v uint8) Integer   { return Integer{Width: 8, U: uint64(v)} }
func Uint16(v uint16) Integer { return Integer{Width: 16, U: uint64(v)} }
func Uint32(v uint32) Integer { return Integer{Width: 32, U: uint64(v)} }
func Uint64(v uint64) Integer { return Integer{Width: 64, U: v} }

// Float32 and Float64 construct Float values.

func Float32(v float32) Float { return Float{Width: 32, F: float64(v)} }
func Float64(v float64) Float { return Float{Width: 64, F: v} }

// None is the absent Option.
func None() Option { return Option{} }

// Some wraps inner in a present Option.
func Some(inner Value) Option { return Option{Inner: inner} }
