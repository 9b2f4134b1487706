// Copyright 2026 The Mdwire Authors
// SPDX-License-Identifier: Apache-2.0

package transcode

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/tidwall/jsonc"

	"github.com/mdwire/mdwire/lib/markdown"
	"github.com/mdwire/mdwire/lib/value"
)

// maxNesting bounds the recursive peer-format walks the same way the
// codec bounds wire documents. A deeply nested peer document fails
// with a DepthError instead of exhausting the call stack.
const maxNesting = markdown.DefaultMaxDepth

// FromJSON converts a JSON document to a value. Comments and trailing
// commas (JSONC) are accepted. Object key order is preserved: objects
// become Maps with string keys, arrays become Seqs, numbers become
// 64-bit integers when they parse as one and 64-bit floats otherwise.
func FromJSON(data []byte) (value.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.UseNumber()

	v, err := readJSON(dec, 0)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing content after JSON document")
	}
	return v, nil
}

func readJSON(dec *json.Decoder, depth int) (value.Value, error) {
	if depth >= maxNesting {
		return nil, &markdown.DepthError{Limit: maxNesting}
	}
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("read JSON: %w", err)
	}

	switch tok := tok.(type) {
	case json.Delim:
		switch tok {
		case '[':
			var items []value.Value
			for dec.More() {
				item, err := readJSON(dec, depth+1)
				if err != nil {
					return nil, err
				}
				items = append(items, item)
			}
			if _, err := dec.Token(); err != nil {
				return nil, fmt.Errorf("read JSON array: %w", err)
			}
			return value.Seq{Len: len(items), Items: items}, nil

		case '{':
			var entries []value.Entry
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, fmt.Errorf("read JSON key: %w", err)
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("JSON object key %v is not a string", keyTok)
				}
				val, err := readJSON(dec, depth+1)
				if err != nil {
					return nil, err
				}
				entries = append(entries, value.Entry{Key: value.String(key), Val: val})
			}
			if _, err := dec.Token(); err != nil {
				return nil, fmt.Errorf("read JSON object: %w", err)
			}
			return value.Map{Len: len(entries), Entries: entries}, nil

		default:
			return nil, fmt.Errorf("unexpected JSON delimiter %v", tok)
		}

	case bool:
		return value.Bool(tok), nil

	case json.Number:
		if i, err := tok.Int64(); err == nil {
			return value.Int64(i), nil
		}
		f, err := tok.Float64()
		if err != nil {
			return nil, fmt.Errorf("JSON number %s: %w", tok, err)
		}
		return value.Float64(f), nil

	case string:
		return value.String(tok), nil

	case nil:
		return value.Unit{}, nil

	default:
		return nil, fmt.Errorf("unexpected JSON token %v", tok)
	}
}

// ToJSON converts a value to JSON. Output is indented with two spaces
// unless compact is set. Map entry and struct field order is
// preserved.
func ToJSON(v value.Value, compact bool) ([]byte, error) {
	var b bytes.Buffer
	if err := writeJSON(&b, v); err != nil {
		return nil, err
	}
	if compact {
		return b.Bytes(), nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, b.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func writeJSON(b *bytes.Buffer, v value.Value) error {
	switch v := v.(type) {
	case value.Bool:
		b.WriteString(strconv.FormatBool(bool(v)))
		return nil

	case value.Integer:
		if v.Signed {
			b.WriteString(strconv.FormatInt(v.I, 10))
		} else {
			b.WriteString(strconv.FormatUint(v.U, 10))
		}
		return nil

	case value.Float:
		if math.IsNaN(v.F) || math.IsInf(v.F, 0) {
			return fmt.Errorf("float %v has no JSON representation", v.F)
		}
		b.WriteString(strconv.FormatFloat(v.F, 'g', -1, v.Width))
		return nil

	case value.Char:
		return writeJSONString(b, string(rune(v)))

	case value.String:
		return writeJSONString(b, string(v))

	case value.Bytes:
		return writeJSONString(b, base64.StdEncoding.EncodeToString(v))

	case value.Unit:
		b.WriteString("null")
		return nil

	case value.Option:
		if v.Inner == nil {
			b.WriteString("null")
			return nil
		}
		return writeJSON(b, v.Inner)

	case value.UnitStruct:
		b.WriteString("null")
		return nil

	case value.UnitVariant:
		return writeJSONString(b, v.Enum+"::"+v.Variant)

	case value.NewtypeStruct:
		return writeJSON(b, v.Inner)

	case value.NewtypeVariant:
		return writeJSONVariant(b, v.Variant, func() error {
			return writeJSON(b, v.Inner)
		})

	case value.Seq:
		return writeJSONArray(b, v.Items)

	case value.Tuple:
		return writeJSONArray(b, v.Items)

	case value.TupleStruct:
		return writeJSONArray(b, v.Items)

	case value.TupleVariant:
		return writeJSONVariant(b, v.Variant, func() error {
			return writeJSONArray(b, v.Items)
		})

	case value.Map:
		b.WriteByte('{')
		for i, entry := range v.Entries {
			if i > 0 {
				b.WriteByte(',')
			}
			key, err := scalarKey(entry.Key)
			if err != nil {
				return err
			}
			if err := writeJSONString(b, key); err != nil {
				return err
			}
			b.WriteByte(':')
			if err := writeJSON(b, entry.Val); err != nil {
				return err
			}
		}
		b.WriteByte('}')
		return nil

	case value.Struct:
		return writeJSONFields(b, v.Fields)

	case value.StructVariant:
		return writeJSONVariant(b, v.Variant, func() error {
			return writeJSONFields(b, v.Fields)
		})

	default:
		return fmt.Errorf("value kind %v has no JSON mapping", v.Kind())
	}
}

func writeJSONString(b *bytes.Buffer, s string) error {
	quoted, err := json.Marshal(s)
	if err != nil {
		return err
	}
	b.Write(quoted)
	return nil
}

func writeJSONArray(b *bytes.Buffer, items []value.Value) error {
	b.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			b.WriteByte(',')
		}
		if err := writeJSON(b, item); err != nil {
			return err
		}
	}
	b.WriteByte(']')
	return nil
}

func writeJSONFields(b *bytes.Buffer, fields []value.Field) error {
	b.WriteByte('{')
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		if err := writeJSONString(b, field.Name); err != nil {
			return err
		}
		b.WriteByte(':')
		if err := writeJSON(b, field.Val); err != nil {
			return err
		}
	}
	b.WriteByte('}')
	return nil
}

// writeJSONVariant emits the external tagging shape {"Variant": ...}.
func writeJSONVariant(b *bytes.Buffer, variant string, payload func() error) error {
	b.WriteByte('{')
	if err := writeJSONString(b, variant); err != nil {
		return err
	}
	b.WriteByte(':')
	if err := payload(); err != nil {
		return err
	}
	b.WriteByte('}')
	return nil
}

// scalarKey renders a map key as the string an object key demands.
// Composite keys have no JSON form.
func scalarKey(key value.Value) (string, error) {
	switch key := key.(type) {
	case value.String:
		return string(key), nil
	case value.Char:
		return string(rune(key)), nil
	case value.Bool:
		return strconv.FormatBool(bool(key)), nil
	case value.Integer:
		if key.Signed {
			return strconv.FormatInt(key.I, 10), nil
		}
		return strconv.FormatUint(key.U, 10), nil
	default:
		return "", fmt.Errorf("map key kind %v cannot be an object key", key.Kind())
	}
}
