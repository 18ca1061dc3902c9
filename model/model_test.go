package model_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tuple-mapper/model"
)

type Task struct {
	Title string `json:"title"`
	Done  bool
}

type User struct {
	ID       int64  `map:"user_id"`
	Name     string `json:"name,omitempty"`
	Email    string
	Task     *Task
	Tasks    []Task
	internal string
}

func TestStruct(t *testing.T) {
	t.Parallel()

	m := model.Struct[User]()
	assert.Equal(t, "model_test.User", m.Name())

	t.Run("fills fields by tag and name", func(t *testing.T) {
		t.Parallel()

		v, err := m.New(map[string]any{
			"user_id": 7,
			"name":    "Jane",
			"EMAIL":   "jane@example.com",
		})
		require.NoError(t, err)

		assert.Equal(t, User{ID: 7, Name: "Jane", Email: "jane@example.com"}, v)
	})

	t.Run("nested tuples and sequences", func(t *testing.T) {
		t.Parallel()

		v, err := m.New(map[string]any{
			"task":  map[string]any{"title": "One", "done": true},
			"tasks": []any{map[string]any{"title": "Two"}, Task{Title: "Three"}},
		})
		require.NoError(t, err)

		assert.Equal(t, User{
			Task:  &Task{Title: "One", Done: true},
			Tasks: []Task{{Title: "Two"}, {Title: "Three"}},
		}, v)
	})

	t.Run("nil leaves zero value", func(t *testing.T) {
		t.Parallel()

		v, err := m.New(map[string]any{"task": nil, "name": nil})
		require.NoError(t, err)
		assert.Equal(t, User{}, v)
	})

	t.Run("unknown key", func(t *testing.T) {
		t.Parallel()

		_, err := m.New(map[string]any{"internal": "x"})
		require.ErrorIs(t, err, model.ErrUnknownKey)
	})

	t.Run("wrong type", func(t *testing.T) {
		t.Parallel()

		_, err := m.New(map[string]any{"name": 42})
		require.ErrorIs(t, err, model.ErrUnassignable)
		assert.Contains(t, err.Error(), "User.Name")
	})

	t.Run("pointer model", func(t *testing.T) {
		t.Parallel()

		v, err := model.Struct[*Task]().New(map[string]any{"title": "One"})
		require.NoError(t, err)
		assert.Equal(t, &Task{Title: "One"}, v)
	})
}

func TestStructOf_NotAStruct(t *testing.T) {
	t.Parallel()

	_, err := model.StructOf(nil)
	require.ErrorIs(t, err, model.ErrNotAStruct)

	assert.Panics(t, func() { model.Struct[int]() })
}

func TestFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		fn      any
		wantErr bool
	}{
		{name: "plain", fn: func(map[string]any) Task { return Task{} }},
		{name: "with error", fn: func(map[string]any) (Task, error) { return Task{}, nil }},
		{name: "not a function", fn: 42, wantErr: true},
		{name: "nil", fn: nil, wantErr: true},
		{name: "no args", fn: func() Task { return Task{} }, wantErr: true},
		{name: "wrong arg", fn: func(string) Task { return Task{} }, wantErr: true},
		{name: "only error", fn: func(map[string]any) error { return nil }, wantErr: true},
		{name: "second not error", fn: func(map[string]any) (Task, bool) { return Task{}, true }, wantErr: true},
		{name: "too many results", fn: func(map[string]any) (Task, bool, error) { return Task{}, true, nil }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := model.Func("", tt.fn)
			if tt.wantErr {
				require.ErrorIs(t, err, model.ErrNotAConstructor)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestFunc_New(t *testing.T) {
	t.Parallel()

	m := model.MustFunc("", func(values map[string]any) (Task, error) {
		title, ok := values["title"].(string)
		if !ok {
			return Task{}, errors.New("title required")
		}

		return Task{Title: title}, nil
	})
	assert.Equal(t, "model_test.Task", m.Name())

	v, err := m.New(map[string]any{"title": "One"})
	require.NoError(t, err)
	assert.Equal(t, Task{Title: "One"}, v)

	_, err = m.New(map[string]any{})
	require.EqualError(t, err, "title required")
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	r := model.NewRegistry(model.Struct[User]())
	r.MustRegister(model.FuncOf("Label", func(values map[string]any) (string, error) {
		return fmt.Sprint(values["name"]), nil
	}))

	assert.True(t, r.Has("model_test.User"))
	assert.False(t, r.Has("nonexistent"))
	assert.Equal(t, []string{"Label", "model_test.User"}, r.Names())

	err := r.Register(model.Struct[User]())
	require.ErrorIs(t, err, model.ErrDuplicateModel)

	err = r.Register(model.FuncOf("", func(map[string]any) (int, error) { return 0, nil }))
	require.ErrorIs(t, err, model.ErrUnnamedModel)

	m, ok := r.Get("Label")
	require.True(t, ok)

	v, err := m.New(map[string]any{"name": "Jane"})
	require.NoError(t, err)
	assert.Equal(t, "Jane", v)
}

func TestIdentity(t *testing.T) {
	t.Parallel()

	byValue := model.Struct[User]()
	byPointer := model.Struct[*User]()

	assert.Equal(t, byValue.Name(), byPointer.Name())
	assert.Equal(t, "tuple-mapper/model_test.User", model.Identity(byValue))
	assert.Equal(t, "*tuple-mapper/model_test.User", model.Identity(byPointer))
	assert.Same(t, byValue, model.Struct[User](), "one model per type")

	label := model.FuncOf("Label", func(map[string]any) (string, error) { return "", nil })
	count := model.MustFunc("Label", func(map[string]any) int { return 0 })

	assert.Equal(t, "Label -> string", model.Identity(label))
	assert.Equal(t, "Label -> int", model.Identity(count))
	assert.Empty(t, model.Identity(nil))
}

func TestSame(t *testing.T) {
	t.Parallel()

	first := model.FuncOf("User", func(map[string]any) (string, error) { return "first", nil })
	second := model.FuncOf("User", func(map[string]any) (string, error) { return "second", nil })

	assert.True(t, model.Same(first, first))
	assert.False(t, model.Same(first, second))
	assert.True(t, model.Same(model.Struct[User](), model.Struct[User]()))
	assert.False(t, model.Same(model.Struct[User](), model.Struct[*User]()))
	assert.True(t, model.Same(nil, nil))
	assert.False(t, model.Same(first, nil))
}
