package model

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// structModels holds one model per reflect.Type, so equal types yield the
// same Model value.
var structModels sync.Map

type structModel struct {
	typ     reflect.Type // struct type
	pointer bool         // New returns *typ instead of typ
	fields  map[string][]int
	lower   map[string][]int
}

// Struct returns a Model instantiating T, which must be a struct or a pointer
// to a struct. It panics otherwise.
func Struct[T any]() Model {
	m, err := StructOf(reflect.TypeFor[T]())
	if err != nil {
		panic(err)
	}

	return m
}

// StructOf returns a Model instantiating t, which must be a struct or a
// pointer to a struct.
func StructOf(t reflect.Type) (Model, error) {
	if t == nil {
		return nil, ErrNotAStruct
	}

	if m, ok := structModels.Load(t); ok {
		return m.(Model), nil
	}

	m := &structModel{
		typ:    t,
		fields: make(map[string][]int),
		lower:  make(map[string][]int),
	}

	if t.Kind() == reflect.Ptr {
		m.typ = t.Elem()
		m.pointer = true
	}

	if m.typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%s: %w", t, ErrNotAStruct)
	}

	// Lower-priority matches are registered first and overwritten by
	// higher-priority ones: exact name, json tag, then map tag.
	for i := range m.typ.NumField() {
		f := m.typ.Field(i)
		if !f.IsExported() {
			continue
		}

		m.lower[strings.ToLower(f.Name)] = f.Index
		m.fields[f.Name] = f.Index
	}

	for i := range m.typ.NumField() {
		f := m.typ.Field(i)
		if !f.IsExported() {
			continue
		}

		if name := tagName(f, "json"); name != "" {
			m.fields[name] = f.Index
		}
	}

	for i := range m.typ.NumField() {
		f := m.typ.Field(i)
		if !f.IsExported() {
			continue
		}

		if name := tagName(f, "map"); name != "" {
			m.fields[name] = f.Index
		}
	}

	actual, _ := structModels.LoadOrStore(t, m)

	return actual.(Model), nil
}

func (m *structModel) Name() string {
	return m.typ.String()
}

// Identity is the import path qualified type, prefixed with "*" for pointer
// models.
func (m *structModel) Identity() string {
	id := m.typ.String()
	if m.typ.Name() != "" {
		id = m.typ.PkgPath() + "." + m.typ.Name()
	}

	if m.pointer {
		id = "*" + id
	}

	return id
}

func (m *structModel) New(values map[string]any) (any, error) {
	ptr := reflect.New(m.typ)
	if err := m.fill(ptr.Elem(), values); err != nil {
		return nil, err
	}

	if m.pointer {
		return ptr.Interface(), nil
	}

	return ptr.Elem().Interface(), nil
}

func (m *structModel) fill(dst reflect.Value, values map[string]any) error {
	for key, val := range values {
		idx, ok := m.field(key)
		if !ok {
			return fmt.Errorf("%s: %w %q", m.typ, ErrUnknownKey, key)
		}

		field := dst.FieldByIndex(idx)
		if err := assign(field, val); err != nil {
			return fmt.Errorf("%s.%s: %w", m.typ, m.typ.FieldByIndex(idx).Name, err)
		}
	}

	return nil
}

// field resolves a tuple key: tags and exact names first, then the
// case-insensitive field name.
func (m *structModel) field(key string) ([]int, bool) {
	if idx, ok := m.fields[key]; ok {
		return idx, true
	}

	idx, ok := m.lower[strings.ToLower(key)]

	return idx, ok
}

func tagName(f reflect.StructField, key string) string {
	tag := f.Tag.Get(key)
	if tag == "" || tag == "-" {
		return ""
	}

	if idx := strings.IndexByte(tag, ','); idx >= 0 {
		tag = tag[:idx]
	}

	return tag
}
