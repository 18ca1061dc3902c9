package model

import (
	"errors"
	"reflect"
)

var (
	ErrNotAStruct      = errors.New("model type is not a struct")
	ErrNotAConstructor = errors.New("provided function is not a recognizable constructor")
	ErrUnknownKey      = errors.New("model has no field for key")
	ErrUnassignable    = errors.New("value is not assignable to field")
	ErrDuplicateModel  = errors.New("model already registered")
	ErrUnnamedModel    = errors.New("model name is empty")
)

// Model builds a domain value out of the keys of a tuple.
type Model interface {
	// Name identifies the model in descriptions, fingerprints and messages.
	Name() string
	// New constructs an instance from values.
	New(values map[string]any) (any, error)
}

type funcModel[T any] struct {
	name string
	fn   func(map[string]any) (T, error)
}

func (m *funcModel[T]) Name() string { return m.name }

func (m *funcModel[T]) Identity() string {
	return m.name + " -> " + reflect.TypeFor[T]().String()
}

func (m *funcModel[T]) New(values map[string]any) (any, error) {
	return m.fn(values)
}

// FuncOf wraps a typed constructor.
func FuncOf[T any](name string, fn func(map[string]any) (T, error)) Model {
	return &funcModel[T]{name: name, fn: fn}
}

// Identity returns the key telling m apart from other models of the same
// name. Models built by this package report their output type along with the
// name; other models are identified by Name alone.
func Identity(m Model) string {
	if m == nil {
		return ""
	}

	if id, ok := m.(interface{ Identity() string }); ok {
		return id.Identity()
	}

	return m.Name()
}

// Same reports whether a and b are the same model value. Models of
// incomparable dynamic types are never the same.
func Same(a, b Model) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}

	return a == b
}
