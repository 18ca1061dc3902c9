package header

import (
	"slices"
	"strings"

	"tuple-mapper/internal/common"
	"tuple-mapper/model"
)

// Header is an ordered, immutable set of attributes. Headers are built by
// Coerce and may be shared freely.
type Header struct {
	model       model.Model
	attributes  []Attribute
	fingerprint string
}

// Model returns the target model of this level, or nil for plain tuples.
func (h *Header) Model() model.Model {
	return h.model
}

// Attributes returns a copy of the attributes in declaration order.
func (h *Header) Attributes() []Attribute {
	return slices.Clone(h.attributes)
}

// Len returns the number of attributes.
func (h *Header) Len() int {
	return len(h.attributes)
}

// Keys returns the target keys in declaration order.
func (h *Header) Keys() []string {
	keys := make([]string, len(h.attributes))
	for i, a := range h.attributes {
		keys[i] = a.Name
	}

	return keys
}

// Attribute looks an attribute up by target key.
func (h *Header) Attribute(name string) (Attribute, bool) {
	for _, a := range h.attributes {
		if a.Name == name {
			return a, true
		}
	}

	return Attribute{}, false
}

// FlatKeys returns the keys a Wrap or Group combinator pulls out of the
// enclosing tuple to build one value of this header. Wrapped and grouped
// attributes are themselves flat, so their keys are included recursively.
func (h *Header) FlatKeys() []string {
	var keys []string

	for _, a := range h.attributes {
		if a.Combinator == CombinatorNone {
			keys = common.AppendUnique(keys, a.From)
			continue
		}

		keys = common.AppendUnique(keys, a.Header.FlatKeys()...)
	}

	return keys
}

// Renames returns the source to target key mapping of renamed scalars.
func (h *Header) Renames() map[string]string {
	renames := make(map[string]string)

	for _, a := range h.attributes {
		if a.IsScalar() && a.Renamed() {
			renames[a.From] = a.Name
		}
	}

	return renames
}

// Fingerprint returns a stable digest of the header tree, including model
// names. Equal descriptions produce equal fingerprints.
func (h *Header) Fingerprint() string {
	if h.fingerprint != "" {
		return h.fingerprint
	}

	fp, err := fingerprint(h)
	if err != nil {
		// Only reachable for headers not built by Coerce.
		return ""
	}

	return fp
}

// String returns a compact representation of the header tree.
func (h *Header) String() string {
	if h == nil {
		return "<nil>"
	}

	parts := make([]string, len(h.attributes))
	for i, a := range h.attributes {
		parts[i] = a.String()
	}

	s := "[" + strings.Join(parts, ", ") + "]"
	if h.model != nil {
		s = h.model.Name() + s
	}

	return s
}
