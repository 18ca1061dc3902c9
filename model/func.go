package model

import "reflect"

var (
	valuesType = reflect.TypeFor[map[string]any]()
	errorType  = reflect.TypeFor[error]()
)

type reflectFunc struct {
	name   string
	fn     reflect.Value
	hasErr bool
}

// Func inspects fn and returns a Model calling it. When name is empty the
// name of the constructed type is used.
//
// Supported signatures:
//   - func(map[string]any) T
//   - func(map[string]any) (T, error)
func Func(name string, fn any) (Model, error) {
	fnVal := reflect.ValueOf(fn)
	if !fnVal.IsValid() || fnVal.Kind() != reflect.Func || fnVal.IsNil() {
		return nil, ErrNotAConstructor
	}

	fnType := fnVal.Type()
	if fnType.NumIn() != 1 || !valuesType.AssignableTo(fnType.In(0)) {
		return nil, ErrNotAConstructor
	}

	m := &reflectFunc{name: name, fn: fnVal}

	switch fnType.NumOut() {
	default:
		return nil, ErrNotAConstructor

	case 1:
		if fnType.Out(0) == errorType {
			return nil, ErrNotAConstructor
		}

	case 2:
		if !isError(fnType.Out(1)) {
			return nil, ErrNotAConstructor
		}

		m.hasErr = true
	}

	if m.name == "" {
		m.name = fnType.Out(0).String()
	}

	return m, nil
}

// MustFunc is like Func but panics on an invalid constructor.
func MustFunc(name string, fn any) Model {
	m, err := Func(name, fn)
	if err != nil {
		panic(err)
	}

	return m
}

func (m *reflectFunc) Name() string { return m.name }

func (m *reflectFunc) Identity() string {
	return m.name + " -> " + m.fn.Type().Out(0).String()
}

func (m *reflectFunc) New(values map[string]any) (any, error) {
	out := m.fn.Call([]reflect.Value{reflect.ValueOf(values)})

	if m.hasErr && !out[1].IsNil() {
		return nil, out[1].Interface().(error)
	}

	return out[0].Interface(), nil
}

func isError(t reflect.Type) bool {
	return t.Kind() == reflect.Interface && t.Implements(errorType)
}
