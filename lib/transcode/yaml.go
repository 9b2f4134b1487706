// Copyright 2026 The Mdwire Authors
// SPDX-License-Identifier: Apache-2.0

package transcode

import (
	"encoding/base64"
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/mdwire/mdwire/lib/markdown"
	"github.com/mdwire/mdwire/lib/value"
)

// FromYAML converts a YAML document to a value. Mapping key order is
// preserved (the yaml.Node representation keeps it); anchors and
// aliases are resolved; !!binary scalars become Bytes.
func FromYAML(data []byte) (value.Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		// An empty document is the null value.
		return value.Unit{}, nil
	}
	return readYAML(doc.Content[0], 0)
}

func readYAML(node *yaml.Node, depth int) (value.Value, error) {
	if depth >= maxNesting {
		return nil, &markdown.DepthError{Limit: maxNesting}
	}
	switch node.Kind {
	case yaml.AliasNode:
		return readYAML(node.Alias, depth+1)

	case yaml.ScalarNode:
		return readYAMLScalar(node)

	case yaml.SequenceNode:
		items := make([]value.Value, len(node.Content))
		for i, child := range node.Content {
			item, err := readYAML(child, depth+1)
			if err != nil {
				return nil, err
			}
			items[i] = item
		}
		return value.Seq{Len: len(items), Items: items}, nil

	case yaml.MappingNode:
		entries := make([]value.Entry, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, err := readYAML(node.Content[i], depth+1)
			if err != nil {
				return nil, err
			}
			val, err := readYAML(node.Content[i+1], depth+1)
			if err != nil {
				return nil, err
			}
			entries = append(entries, value.Entry{Key: key, Val: val})
		}
		return value.Map{Len: len(entries), Entries: entries}, nil

	default:
		return nil, fmt.Errorf("unsupported YAML node kind %v on line %d", node.Kind, node.Line)
	}
}

func readYAMLScalar(node *yaml.Node) (value.Value, error) {
	switch node.Tag {
	case "!!null":
		return value.Unit{}, nil

	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return nil, fmt.Errorf("YAML bool on line %d: %w", node.Line, err)
		}
		return value.Bool(b), nil

	case "!!int":
		var i int64
		if err := node.Decode(&i); err == nil {
			return value.Int64(i), nil
		}
		var u uint64
		if err := node.Decode(&u); err != nil {
			return nil, fmt.Errorf("YAML integer on line %d: %w", node.Line, err)
		}
		return value.Uint64(u), nil

	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return nil, fmt.Errorf("YAML float on line %d: %w", node.Line, err)
		}
		return value.Float64(f), nil

	case "!!binary":
		buf, err := base64.StdEncoding.DecodeString(node.Value)
		if err != nil {
			return nil, fmt.Errorf("YAML binary on line %d: %w", node.Line, err)
		}
		return value.Bytes(buf), nil

	default:
		// Strings, timestamps, and anything custom-tagged carry their
		// literal text.
		return value.String(node.Value), nil
	}
}

// ToYAML converts a value to YAML. Composite map keys are supported;
// entry and field order is preserved.
func ToYAML(v value.Value) ([]byte, error) {
	node, err := writeYAML(v)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(node)
}

func writeYAML(v value.Value) (*yaml.Node, error) {
	switch v := v.(type) {
	case value.Bool:
		return yamlScalar("!!bool", strconv.FormatBool(bool(v))), nil

	case value.Integer:
		if v.Signed {
			return yamlScalar("!!int", strconv.FormatInt(v.I, 10)), nil
		}
		return yamlScalar("!!int", strconv.FormatUint(v.U, 10)), nil

	case value.Float:
		return yamlFloat(v)

	case value.Char:
		return yamlScalar("!!str", string(rune(v))), nil

	case value.String:
		return yamlScalar("!!str", string(v)), nil

	case value.Bytes:
		return yamlScalar("!!binary", base64.StdEncoding.EncodeToString(v)), nil

	case value.Unit:
		return yamlNull(), nil

	case value.Option:
		if v.Inner == nil {
			return yamlNull(), nil
		}
		return writeYAML(v.Inner)

	case value.UnitStruct:
		return yamlNull(), nil

	case value.UnitVariant:
		return yamlScalar("!!str", v.Enum+"::"+v.Variant), nil

	case value.NewtypeStruct:
		return writeYAML(v.Inner)

	case value.NewtypeVariant:
		inner, err := writeYAML(v.Inner)
		if err != nil {
			return nil, err
		}
		return yamlVariant(v.Variant, inner), nil

	case value.Seq:
		return yamlSequence(v.Items)

	case value.Tuple:
		return yamlSequence(v.Items)

	case value.TupleStruct:
		return yamlSequence(v.Items)

	case value.TupleVariant:
		inner, err := yamlSequence(v.Items)
		if err != nil {
			return nil, err
		}
		return yamlVariant(v.Variant, inner), nil

	case value.Map:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, entry := range v.Entries {
			key, err := writeYAML(entry.Key)
			if err != nil {
				return nil, err
			}
			val, err := writeYAML(entry.Val)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, key, val)
		}
		return node, nil

	case value.Struct:
		return yamlFields(v.Fields)

	case value.StructVariant:
		inner, err := yamlFields(v.Fields)
		if err != nil {
			return nil, err
		}
		return yamlVariant(v.Variant, inner), nil

	default:
		return nil, fmt.Errorf("value kind %v has no YAML mapping", v.Kind())
	}
}

func yamlScalar(tag, val string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: val}
}

func yamlNull() *yaml.Node {
	return yamlScalar("!!null", "null")
}

func yamlFloat(v value.Float) (*yaml.Node, error) {
	switch {
	case math.IsNaN(v.F):
		return yamlScalar("!!float", ".nan"), nil
	case math.IsInf(v.F, 1):
		return yamlScalar("!!float", ".inf"), nil
	case math.IsInf(v.F, -1):
		return yamlScalar("!!float", "-.inf"), nil
	}
	return yamlScalar("!!float", strconv.FormatFloat(v.F, 'g', -1, v.Width)), nil
}

func yamlSequence(items []value.Value) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, item := range items {
		child, err := writeYAML(item)
		if err != nil {
			return nil, err
		}
		node.Content = append(node.Content, child)
	}
	return node, nil
}

func yamlFields(fields []value.Field) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, field := range fields {
		val, err := writeYAML(field.Val)
		if err != nil {
			return nil, err
		}
		node.Content = append(node.Content, yamlScalar("!!str", field.Name), val)
	}
	return node, nil
}

func yamlVariant(variant string, payload *yaml.Node) *yaml.Node {
	return &yaml.Node{
		Kind:    yaml.MappingNode,
		Tag:     "!!map",
		Content: []*yaml.Node{yamlScalar("!!str", variant), payload},
	}
}
