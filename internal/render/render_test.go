package render_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"tuple-mapper/header"
	"tuple-mapper/internal/render"
)

type user struct {
	Name string `yaml:"name" json:"name"`
}

func tasksHeader() *header.Header {
	return header.MustCoerce(header.Describe(
		header.Attr("name"),
		header.Attr("tasks", header.Grouped(), header.Array(header.Describe(
			header.Attr("title"),
			header.Attr("done"),
		))),
	))
}

func output() []any {
	return []any{
		map[string]any{
			"name":  "Jane",
			"extra": 1,
			"tasks": []any{
				map[string]any{"title": "Task One", "done": true},
			},
		},
	}
}

func TestOrder(t *testing.T) {
	t.Parallel()

	ordered := render.Order(output(), tasksHeader())

	seq, ok := ordered.([]any)
	require.True(t, ok)
	require.Len(t, seq, 1)

	obj, ok := seq[0].(*render.Object)
	require.True(t, ok)
	assert.Equal(t, []string{"name", "tasks", "extra"}, obj.Keys())

	tasks, ok := obj.Get("tasks")
	require.True(t, ok)

	child, ok := tasks.([]any)[0].(*render.Object)
	require.True(t, ok)
	assert.Equal(t, []string{"title", "done"}, child.Keys())

	assert.Equal(t, user{Name: "Jane"}, render.Order(user{Name: "Jane"}, tasksHeader()))
}

func TestJSON(t *testing.T) {
	t.Parallel()

	var b bytes.Buffer
	require.NoError(t, render.JSON(&b, output(), tasksHeader()))

	expected := `[
  {
    "name": "Jane",
    "tasks": [
      {
        "title": "Task One",
        "done": true
      }
    ],
    "extra": 1
  }
]
`
	assert.Equal(t, expected, b.String())
}

func TestYAML(t *testing.T) {
	t.Parallel()

	var b bytes.Buffer
	require.NoError(t, render.YAML(&b, output(), tasksHeader()))

	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal(b.Bytes(), &doc))

	item := doc.Content[0].Content[0]
	require.Equal(t, yaml.MappingNode, item.Kind)

	keys := make([]string, 0)
	for i := 0; i < len(item.Content); i += 2 {
		keys = append(keys, item.Content[i].Value)
	}

	assert.Equal(t, []string{"name", "tasks", "extra"}, keys)

	var decoded []map[string]any
	require.NoError(t, yaml.Unmarshal(b.Bytes(), &decoded))
	assert.Equal(t, []any{map[string]any{"title": "Task One", "done": true}}, decoded[0]["tasks"])
}

func TestYAML_Models(t *testing.T) {
	t.Parallel()

	var b bytes.Buffer
	require.NoError(t, render.YAML(&b, []any{user{Name: "Jane"}}, nil))
	assert.Equal(t, "- name: Jane\n", b.String())
}
