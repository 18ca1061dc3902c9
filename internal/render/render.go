// Package render writes pipeline output as YAML or JSON with tuple keys in
// header declaration order. Keys the header does not declare follow, sorted.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"

	"tuple-mapper/header"
	"tuple-mapper/step"
)

// Object is a tuple with a fixed key order.
type Object struct {
	keys   []string
	values map[string]any
}

// Keys returns the keys in output order.
func (o *Object) Keys() []string {
	return slices.Clone(o.keys)
}

// Get returns the value stored at key.
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Order converts tuples nested anywhere in v into Objects ordered by h. Model
// instances and scalars are returned unchanged.
func Order(v any, h *header.Header) any {
	if t, ok := step.AsTuple(v); ok {
		return order(t, h)
	}

	if seq, ok := v.([]any); ok {
		out := make([]any, len(seq))
		for i, item := range seq {
			out[i] = Order(item, h)
		}

		return out
	}

	return v
}

func order(t step.Tuple, h *header.Header) *Object {
	o := &Object{values: make(map[string]any, len(t))}

	var declared []string
	if h != nil {
		declared = h.Keys()
	}

	for _, k := range declared {
		if _, ok := t[k]; ok {
			o.keys = append(o.keys, k)
		}
	}

	var rest []string

	for k := range t {
		if !slices.Contains(declared, k) {
			rest = append(rest, k)
		}
	}

	slices.Sort(rest)
	o.keys = append(o.keys, rest...)

	for _, k := range o.keys {
		var sub *header.Header

		if h != nil {
			if a, ok := h.Attribute(k); ok {
				sub = a.Header
			}
		}

		o.values[k] = Order(t[k], sub)
	}

	return o
}

func (o *Object) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, k := range o.keys {
		var value yaml.Node
		if err := value.Encode(o.values[k]); err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}

		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&value,
		)
	}

	return node, nil
}

func (o *Object) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer

	b.WriteByte('{')

	for i, k := range o.keys {
		if i > 0 {
			b.WriteByte(',')
		}

		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}

		value, err := json.Marshal(o.values[k])
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}

		b.Write(key)
		b.WriteByte(':')
		b.Write(value)
	}

	b.WriteByte('}')

	return b.Bytes(), nil
}

// YAML writes out as a YAML sequence.
func YAML(w io.Writer, out []any, h *header.Header) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(Order(out, h)); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return enc.Close()
}

// JSON writes out as an indented JSON array.
func JSON(w io.Writer, out []any, h *header.Header) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(Order(out, h)); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	return nil
}
