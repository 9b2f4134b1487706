// Copyright 2026 The Mdwire Authors
// SPDX-License-Identifier: Apache-2.0

package transcode

import (
	"fmt"
	"math"
	"sort"

	"github.com/fxamacker/cbor/v2"

	"github.com/mdwire/mdwire/lib/markdown"
	"github.com/mdwire/mdwire/lib/value"
)

// encMode is the CBOR encoder configured with Core Deterministic
// Encoding (RFC 8949 §4.2): sorted map keys, smallest integer
// encoding, no indefinite-length items. Same logical data always
// produces identical bytes.
var encMode cbor.EncMode

// decMode is the CBOR decoder configured to accept standard CBOR.
var decMode cbor.DecMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("transcode: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("transcode: CBOR decoder initialization failed: " + err.Error())
	}
}

// FromCBOR converts a CBOR item to a value. CBOR maps have no
// meaningful order after decoding, so entries are sorted by key to
// keep the conversion deterministic.
func FromCBOR(data []byte) (value.Value, error) {
	var raw any
	if err := decMode.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse CBOR: %w", err)
	}
	return fromCBORValue(raw, 0)
}

func fromCBORValue(raw any, depth int) (value.Value, error) {
	if depth >= maxNesting {
		return nil, &markdown.DepthError{Limit: maxNesting}
	}
	switch raw := raw.(type) {
	case nil:
		return value.Unit{}, nil

	case bool:
		return value.Bool(raw), nil

	case uint64:
		if raw <= math.MaxInt64 {
			return value.Int64(int64(raw)), nil
		}
		return value.Uint64(raw), nil

	case int64:
		return value.Int64(raw), nil

	case float64:
		return value.Float64(raw), nil

	case string:
		return value.String(raw), nil

	case []byte:
		return value.Bytes(raw), nil

	case []any:
		items := make([]value.Value, len(raw))
		for i, item := range raw {
			v, err := fromCBORValue(item, depth+1)
			if err != nil {
				return nil, err
			}
			items[i] = v
		}
		return value.Seq{Len: len(items), Items: items}, nil

	case map[any]any:
		keys := make([]any, 0, len(raw))
		for k := range raw {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			return cborKeyOrder(keys[i]) < cborKeyOrder(keys[j])
		})

		entries := make([]value.Entry, 0, len(raw))
		for _, k := range keys {
			key, err := fromCBORValue(k, depth+1)
			if err != nil {
				return nil, err
			}
			val, err := fromCBORValue(raw[k], depth+1)
			if err != nil {
				return nil, err
			}
			entries = append(entries, value.Entry{Key: key, Val: val})
		}
		return value.Map{Len: len(entries), Entries: entries}, nil

	default:
		return nil, fmt.Errorf("unsupported CBOR item of type %T", raw)
	}
}

// cborKeyOrder renders a decoded map key into a sortable string. The
// type name prefix keeps distinct key types apart.
func cborKeyOrder(k any) string {
	return fmt.Sprintf("%T/%v", k, k)
}

// ToCBOR converts a value to a CBOR item using Core Deterministic
// Encoding. Composite map keys are not supported: the converter goes
// through Go maps, whose keys must be scalars.
func ToCBOR(v value.Value) ([]byte, error) {
	item, err := toCBORValue(v)
	if err != nil {
		return nil, err
	}
	return encMode.Marshal(item)
}

func toCBORValue(v value.Value) (any, error) {
	switch v := v.(type) {
	case value.Bool:
		return bool(v), nil

	case value.Integer:
		if v.Signed {
			return v.I, nil
		}
		return v.U, nil

	case value.Float:
		if v.Width == 32 {
			return float32(v.F), nil
		}
		return v.F, nil

	case value.Char:
		return string(rune(v)), nil

	case value.String:
		return string(v), nil

	case value.Bytes:
		return []byte(v), nil

	case value.Unit:
		return nil, nil

	case value.Option:
		if v.Inner == nil {
			return nil, nil
		}
		return toCBORValue(v.Inner)

	case value.UnitStruct:
		return nil, nil

	case value.UnitVariant:
		return v.Enum + "::" + v.Variant, nil

	case value.NewtypeStruct:
		return toCBORValue(v.Inner)

	case value.NewtypeVariant:
		inner, err := toCBORValue(v.Inner)
		if err != nil {
			return nil, err
		}
		return map[string]any{v.Variant: inner}, nil

	case value.Seq:
		return toCBORSlice(v.Items)

	case value.Tuple:
		return toCBORSlice(v.Items)

	case value.TupleStruct:
		return toCBORSlice(v.Items)

	case value.TupleVariant:
		inner, err := toCBORSlice(v.Items)
		if err != nil {
			return nil, err
		}
		return map[string]any{v.Variant: inner}, nil

	case value.Map:
		out := make(map[any]any, len(v.Entries))
		for _, entry := range v.Entries {
			key, err := toCBORKey(entry.Key)
			if err != nil {
				return nil, err
			}
			val, err := toCBORValue(entry.Val)
			if err != nil {
				return nil, err
			}
			out[key] = val
		}
		return out, nil

	case value.Struct:
		return toCBORFields(v.Fields)

	case value.StructVariant:
		inner, err := toCBORFields(v.Fields)
		if err != nil {
			return nil, err
		}
		return map[string]any{v.Variant: inner}, nil

	default:
		return nil, fmt.Errorf("value kind %v has no CBOR mapping", v.Kind())
	}
}

func toCBORSlice(items []value.Value) ([]any, error) {
	out := make([]any, len(items))
	for i, item := range items {
		converted, err := toCBORValue(item)
		if err != nil {
			return nil, err
		}
		out[i] = converted
	}
	return out, nil
}

func toCBORFields(fields []value.Field) (map[string]any, error) {
	out := make(map[string]any, len(fields))
	for _, field := range fields {
		val, err := toCBORValue(field.Val)
		if err != nil {
			return nil, err
		}
		out[field.Name] = val
	}
	return out, nil
}

// toCBORKey converts a map key. Go map keys must be comparable, so
// only scalar keys survive the trip.
func toCBORKey(key value.Value) (any, error) {
	switch key := key.(type) {
	case value.Bool:
		return bool(key), nil
	case value.Integer:
		if key.Signed {
			return key.I, nil
		}
		return key.U, nil
	case value.Char:
		return string(rune(key)), nil
	case value.String:
		return string(key), nil
	default:
		return nil, fmt.Errorf("map key kind %v cannot be a CBOR map key here", key.Kind())
	}
}
