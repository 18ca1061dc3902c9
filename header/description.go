package header

import (
	"strings"

	"tuple-mapper/model"
)

// TypeMarker declares the non-scalar shape of an entry.
type TypeMarker string

const (
	TypeScalar TypeMarker = ""
	TypeHash   TypeMarker = "hash"
	TypeArray  TypeMarker = "array"
)

// IsValid returns true if the marker is a recognized value.
func (m TypeMarker) IsValid() bool {
	return m == TypeScalar || m == TypeHash || m == TypeArray
}

// NormalizeTypeMarker maps the accepted spellings of a type marker onto its
// canonical value. Unknown spellings are returned unchanged (and rejected
// during coercion).
func NormalizeTypeMarker(s string) TypeMarker {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return TypeScalar
	case "hash", "object", "nested", "map":
		return TypeHash
	case "array", "collection", "list":
		return TypeArray
	default:
		return TypeMarker(s)
	}
}

// Description is the raw, unvalidated form of a Header.
type Description struct {
	// Model is the optional target model of this level.
	Model model.Model
	// Attributes in declaration order.
	Attributes []Entry
}

// Entry is one (target key, options) pair of a Description.
type Entry struct {
	Name    string
	Options Options
}

// Options are the settings of a single entry.
type Options struct {
	// From is the source key; empty means the entry name.
	From string
	// Type declares a nested (hash) or collection (array) shape.
	Type TypeMarker
	// Wrap builds the nested tuple from flat sibling keys.
	Wrap bool
	// Group builds the collection by folding tuples.
	Group bool
	// Header is the nested description.
	Header *Description
}

// EntryOption configures an Entry built by Attr.
type EntryOption func(*Options)

// Describe builds a Description from entries.
func Describe(entries ...Entry) Description {
	return Description{Attributes: entries}
}

// WithModel returns a copy of d targeting m.
func (d Description) WithModel(m model.Model) Description {
	d.Model = m
	return d
}

// Attr builds an Entry.
func Attr(name string, opts ...EntryOption) Entry {
	e := Entry{Name: name}
	for _, opt := range opts {
		opt(&e.Options)
	}

	return e
}

// From sets the source key.
func From(source string) EntryOption {
	return func(o *Options) { o.From = source }
}

// Hash declares a nested tuple described by sub.
func Hash(sub Description) EntryOption {
	return func(o *Options) {
		o.Type = TypeHash
		o.Header = &sub
	}
}

// Array declares a collection whose elements are described by sub.
func Array(sub Description) EntryOption {
	return func(o *Options) {
		o.Type = TypeArray
		o.Header = &sub
	}
}

// Wrapped sets the wrap flag.
func Wrapped() EntryOption {
	return func(o *Options) { o.Wrap = true }
}

// Grouped sets the group flag.
func Grouped() EntryOption {
	return func(o *Options) { o.Group = true }
}
